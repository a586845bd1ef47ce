package treemap

// Iterator 双向迭代器.
//
// 游标位于两个元素之间：next 是 Next 将返回的节点，prev 是 Previous 将返回的节点.
// 方向与边界由创建它的视图决定，逆序视图的 Next 按键降序前进.
//
// 迭代期间只能通过 Remove 修改结构，经由其他句柄的结构修改会使迭代结果不确定.
type Iterator[K any, V comparable] struct {
	src  navigator[K, V]
	next *node[K, V]
	prev *node[K, V]
	curr *node[K, V]
}

func newIterator[K any, V comparable](src navigator[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{src: src, next: src.firstNode()}
}

// HasNext 是否还有下一个元素.
func (it *Iterator[K, V]) HasNext() bool {
	return it.next != nil
}

// Next 返回下一个键值对并前进.
func (it *Iterator[K, V]) Next() (Entry[K, V], bool) {
	n := it.next
	if n == nil {
		it.curr = nil
		return Entry[K, V]{}, false
	}
	it.curr = n
	it.prev = n
	it.next = it.src.nextNode(n)
	return n.entry(), true
}

// HasPrevious 是否还有上一个元素.
func (it *Iterator[K, V]) HasPrevious() bool {
	return it.prev != nil
}

// Previous 返回上一个键值对并后退.
func (it *Iterator[K, V]) Previous() (Entry[K, V], bool) {
	n := it.prev
	if n == nil {
		it.curr = nil
		return Entry[K, V]{}, false
	}
	it.curr = n
	it.next = n
	it.prev = it.src.prevNode(n)
	return n.entry(), true
}

// Remove 删除最近一次 Next 或 Previous 返回的元素.
// 没有可删除的元素时返回 ErrNoCurrent.
func (it *Iterator[K, V]) Remove() error {
	n := it.curr
	if n == nil {
		return ErrNoCurrent
	}
	it.prev = it.src.prevNode(n)
	it.next = it.src.nextNode(n)

	// 有两个子节点时，后继节点的键值会搬进 n，后继节点本身被摘除
	var moved *node[K, V]
	if n.left != nil && n.right != nil {
		moved = n.next()
	}
	it.src.tree().deleteNode(n)
	if moved != nil {
		if it.next == moved {
			it.next = n
		}
		if it.prev == moved {
			it.prev = n
		}
	}
	it.curr = nil
	return nil
}
