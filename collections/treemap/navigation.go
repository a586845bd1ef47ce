package treemap

import "iter"

// ceilingNode 返回键 >= key 的最小节点.
func (m *TreeMap[K, V]) ceilingNode(key K) *node[K, V] {
	p := m.root
	for p != nil {
		c := m.cmp(key, p.key)
		switch {
		case c < 0:
			if p.left == nil {
				return p
			}
			p = p.left
		case c > 0:
			if p.right == nil {
				return rightAncestor(p)
			}
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// floorNode 返回键 <= key 的最大节点.
func (m *TreeMap[K, V]) floorNode(key K) *node[K, V] {
	p := m.root
	for p != nil {
		c := m.cmp(key, p.key)
		switch {
		case c > 0:
			if p.right == nil {
				return p
			}
			p = p.right
		case c < 0:
			if p.left == nil {
				return leftAncestor(p)
			}
			p = p.left
		default:
			return p
		}
	}
	return nil
}

// higherNode 返回键 > key 的最小节点.
func (m *TreeMap[K, V]) higherNode(key K) *node[K, V] {
	p := m.root
	for p != nil {
		if m.cmp(key, p.key) < 0 {
			if p.left == nil {
				return p
			}
			p = p.left
		} else {
			if p.right == nil {
				return rightAncestor(p)
			}
			p = p.right
		}
	}
	return nil
}

// lowerNode 返回键 < key 的最大节点.
func (m *TreeMap[K, V]) lowerNode(key K) *node[K, V] {
	p := m.root
	for p != nil {
		if m.cmp(key, p.key) > 0 {
			if p.right == nil {
				return p
			}
			p = p.right
		} else {
			if p.left == nil {
				return leftAncestor(p)
			}
			p = p.left
		}
	}
	return nil
}

// rightAncestor 沿父链上溯，返回第一个以 p 所在子树为左子树的祖先.
func rightAncestor[K any, V comparable](p *node[K, V]) *node[K, V] {
	parent := p.parent
	for parent != nil && p == parent.right {
		p = parent
		parent = parent.parent
	}
	return parent
}

// leftAncestor 沿父链上溯，返回第一个以 p 所在子树为右子树的祖先.
func leftAncestor[K any, V comparable](p *node[K, V]) *node[K, V] {
	parent := p.parent
	for parent != nil && p == parent.left {
		p = parent
		parent = parent.parent
	}
	return parent
}

// navigator 实现，TreeMap 自身没有边界.

func (m *TreeMap[K, V]) tree() *TreeMap[K, V]               { return m }
func (m *TreeMap[K, V]) inRange(K) bool                     { return true }
func (m *TreeMap[K, V]) firstNode() *node[K, V]             { return m.first }
func (m *TreeMap[K, V]) lastNode() *node[K, V]              { return m.last }
func (m *TreeMap[K, V]) nextNode(n *node[K, V]) *node[K, V] { return n.next() }
func (m *TreeMap[K, V]) prevNode(n *node[K, V]) *node[K, V] { return n.prev() }

// FirstKey 返回最小的键，映射为空时返回 ErrEmptyMap.
func (m *TreeMap[K, V]) FirstKey() (K, error) { return firstKey[K, V](m) }

// LastKey 返回最大的键，映射为空时返回 ErrEmptyMap.
func (m *TreeMap[K, V]) LastKey() (K, error) { return lastKey[K, V](m) }

// FirstValue 返回最小键对应的值，映射为空时返回 ErrEmptyMap.
func (m *TreeMap[K, V]) FirstValue() (V, error) { return firstValue[K, V](m) }

// LastValue 返回最大键对应的值，映射为空时返回 ErrEmptyMap.
func (m *TreeMap[K, V]) LastValue() (V, error) { return lastValue[K, V](m) }

// FirstEntry 返回最小键的键值对.
func (m *TreeMap[K, V]) FirstEntry() (Entry[K, V], bool) { return entryOf(m.first) }

// LastEntry 返回最大键的键值对.
func (m *TreeMap[K, V]) LastEntry() (Entry[K, V], bool) { return entryOf(m.last) }

// PollFirstEntry 删除并返回最小键的键值对.
func (m *TreeMap[K, V]) PollFirstEntry() (Entry[K, V], bool) { return poll[K, V](m, m.first) }

// PollLastEntry 删除并返回最大键的键值对.
func (m *TreeMap[K, V]) PollLastEntry() (Entry[K, V], bool) { return poll[K, V](m, m.last) }

// PollFirstKey 删除并返回最小的键，映射为空时返回 false.
func (m *TreeMap[K, V]) PollFirstKey() (K, bool) { return pollKey[K, V](m, m.first) }

// PollLastKey 删除并返回最大的键，映射为空时返回 false.
func (m *TreeMap[K, V]) PollLastKey() (K, bool) { return pollKey[K, V](m, m.last) }

// LowerKey 返回严格小于 key 的最大键.
func (m *TreeMap[K, V]) LowerKey(key K) (K, bool) { return keyOf(m.lowerNode(key)) }

// FloorKey 返回小于等于 key 的最大键.
func (m *TreeMap[K, V]) FloorKey(key K) (K, bool) { return keyOf(m.floorNode(key)) }

// CeilingKey 返回大于等于 key 的最小键.
func (m *TreeMap[K, V]) CeilingKey(key K) (K, bool) { return keyOf(m.ceilingNode(key)) }

// HigherKey 返回严格大于 key 的最小键.
func (m *TreeMap[K, V]) HigherKey(key K) (K, bool) { return keyOf(m.higherNode(key)) }

// LowerEntry 返回严格小于 key 的最大键的键值对.
func (m *TreeMap[K, V]) LowerEntry(key K) (Entry[K, V], bool) { return entryOf(m.lowerNode(key)) }

// FloorEntry 返回小于等于 key 的最大键的键值对.
func (m *TreeMap[K, V]) FloorEntry(key K) (Entry[K, V], bool) { return entryOf(m.floorNode(key)) }

// CeilingEntry 返回大于等于 key 的最小键的键值对.
func (m *TreeMap[K, V]) CeilingEntry(key K) (Entry[K, V], bool) { return entryOf(m.ceilingNode(key)) }

// HigherEntry 返回严格大于 key 的最小键的键值对.
func (m *TreeMap[K, V]) HigherEntry(key K) (Entry[K, V], bool) { return entryOf(m.higherNode(key)) }

// ComputeIfAbsent 键不存在（或映射到默认返回值）时以 fn(key) 的结果写入.
// 返回当前值；fn 返回默认返回值时不写入，已存在的键保持不变.
func (m *TreeMap[K, V]) ComputeIfAbsent(key K, fn func(key K) V) (V, error) {
	return computeIfAbsent[K, V](m, key, fn)
}

// ComputeIfPresent 键存在且值不为默认返回值时以 fn(key, old) 的结果替换.
// fn 返回默认返回值时删除该键.
func (m *TreeMap[K, V]) ComputeIfPresent(key K, fn func(key K, old V) V) V {
	return computeIfPresent[K, V](m, key, fn)
}

// Compute 以 fn(key, old, present) 的结果写入，fn 返回默认返回值时删除该键.
func (m *TreeMap[K, V]) Compute(key K, fn func(key K, old V, present bool) V) (V, error) {
	return compute[K, V](m, key, fn)
}

// Merge 键不存在时写入 value，否则写入 fn(old, value)；结果为默认返回值时删除该键.
func (m *TreeMap[K, V]) Merge(key K, value V, fn func(old, value V) V) (V, error) {
	return merge[K, V](m, key, value, fn)
}

// MergeAll 把 other 的每个键值对依次 Merge 到 m，不保证整体原子性.
func (m *TreeMap[K, V]) MergeAll(other NavigableMap[K, V], fn func(old, value V) V) error {
	return mergeAll[K, V](m, other, fn)
}

// SubMap 返回键在 [from, to] 之间的视图，端点是否包含由参数决定.
func (m *TreeMap[K, V]) SubMap(from K, fromInclusive bool, to K, toInclusive bool) (NavigableMap[K, V], error) {
	return newSubMap(m, makeBound(from, fromInclusive), makeBound(to, toInclusive), false)
}

// HeadMap 返回键小于（或等于）to 的视图.
func (m *TreeMap[K, V]) HeadMap(to K, inclusive bool) (NavigableMap[K, V], error) {
	return newSubMap(m, bound[K]{}, makeBound(to, inclusive), false)
}

// TailMap 返回键大于（或等于）from 的视图.
func (m *TreeMap[K, V]) TailMap(from K, inclusive bool) (NavigableMap[K, V], error) {
	return newSubMap(m, makeBound(from, inclusive), bound[K]{}, false)
}

// DescendingMap 返回逆序视图.
func (m *TreeMap[K, V]) DescendingMap() NavigableMap[K, V] {
	if m.views.descending == nil {
		m.views.descending = &subMap[K, V]{m: m, descending: true}
	}
	return m.views.descending
}

// KeySet 返回键视图.
func (m *TreeMap[K, V]) KeySet() *KeySet[K, V] { return m.views.keySet(m) }

// NavigableKeySet 返回可导航的键视图，与 KeySet 相同.
func (m *TreeMap[K, V]) NavigableKeySet() *KeySet[K, V] { return m.views.keySet(m) }

// DescendingKeySet 返回逆序键视图.
func (m *TreeMap[K, V]) DescendingKeySet() *KeySet[K, V] { return m.DescendingMap().KeySet() }

// Values 返回值视图.
func (m *TreeMap[K, V]) Values() *Values[K, V] { return m.views.valueSet(m) }

// EntrySet 返回键值对视图.
func (m *TreeMap[K, V]) EntrySet() *EntrySet[K, V] { return m.views.entrySet(m) }

// Iterator 返回从最小键开始的双向迭代器.
func (m *TreeMap[K, V]) Iterator() *Iterator[K, V] { return newIterator[K, V](m) }

// All 按键升序遍历.
func (m *TreeMap[K, V]) All() iter.Seq2[K, V] { return all[K, V](m) }

// Backward 按键降序遍历.
func (m *TreeMap[K, V]) Backward() iter.Seq2[K, V] { return backward[K, V](m) }
