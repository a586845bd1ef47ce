package treemap

// node 树节点.
//
// tag 的含义由平衡策略决定: 红黑树存放颜色，AVL 树存放高度.
// left/right 归当前节点所有，parent 只是回指.
type node[K any, V comparable] struct {
	key    K
	value  V
	tag    int
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// entry 导出当前节点的键值对快照.
func (n *node[K, V]) entry() Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}

// min 返回以 n 为根的子树中最小的节点，n 不能为 nil.
func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max 返回以 n 为根的子树中最大的节点，n 不能为 nil.
func (n *node[K, V]) max() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next 返回中序后继，不存在时返回 nil.
func (n *node[K, V]) next() *node[K, V] {
	if n.right != nil {
		return n.right.min()
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// prev 返回中序前驱，不存在时返回 nil.
func (n *node[K, V]) prev() *node[K, V] {
	if n.left != nil {
		return n.left.max()
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

// clone 递归复制子树，保留 tag.
// 树高受平衡不变式约束为 O(log n)，递归深度安全.
func (n *node[K, V]) clone(parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	c := &node[K, V]{key: n.key, value: n.value, tag: n.tag, parent: parent}
	c.left = n.left.clone(c)
	c.right = n.right.clone(c)
	return c
}
