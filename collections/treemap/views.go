package treemap

import (
	"fmt"
	"iter"
)

// collection 键、值、键值对视图的公共部分.
// 视图不保存数据，每次访问都经由所属映射遍历节点.
type collection[K any, V comparable, T any] struct {
	m   NavigableMap[K, V]
	get func(n *node[K, V]) T
	tag string
}

// Len 返回元素数量.
func (c collection[K, V, T]) Len() int { return c.m.Len() }

// IsEmpty 判断是否为空.
func (c collection[K, V, T]) IsEmpty() bool { return c.m.IsEmpty() }

// ForEach 按视图顺序对每个元素调用 fn.
func (c collection[K, V, T]) ForEach(fn func(T)) {
	for n := c.m.firstNode(); n != nil; n = c.m.nextNode(n) {
		fn(c.get(n))
	}
}

// Reduce 以 identity 为初值依次折叠.
func (c collection[K, V, T]) Reduce(identity T, op func(acc, x T) T) T {
	acc := identity
	for n := c.m.firstNode(); n != nil; n = c.m.nextNode(n) {
		acc = op(acc, c.get(n))
	}
	return acc
}

// ReduceFirst 以第一个元素为初值折叠，视图为空时返回零值.
func (c collection[K, V, T]) ReduceFirst(op func(acc, x T) T) T {
	n := c.m.firstNode()
	if n == nil {
		var zero T
		return zero
	}
	acc := c.get(n)
	for n = c.m.nextNode(n); n != nil; n = c.m.nextNode(n) {
		acc = op(acc, c.get(n))
	}
	return acc
}

// MatchesAny 是否存在满足 pred 的元素.
func (c collection[K, V, T]) MatchesAny(pred func(T) bool) bool {
	_, ok := c.FindFirst(pred)
	return ok
}

// MatchesNone 是否没有元素满足 pred.
func (c collection[K, V, T]) MatchesNone(pred func(T) bool) bool {
	return !c.MatchesAny(pred)
}

// MatchesAll 是否所有元素都满足 pred，空视图返回 true.
func (c collection[K, V, T]) MatchesAll(pred func(T) bool) bool {
	for n := c.m.firstNode(); n != nil; n = c.m.nextNode(n) {
		if !pred(c.get(n)) {
			return false
		}
	}
	return true
}

// FindFirst 返回视图顺序下第一个满足 pred 的元素.
func (c collection[K, V, T]) FindFirst(pred func(T) bool) (T, bool) {
	for n := c.m.firstNode(); n != nil; n = c.m.nextNode(n) {
		if x := c.get(n); pred(x) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// Count 统计满足 pred 的元素个数.
func (c collection[K, V, T]) Count(pred func(T) bool) int {
	count := 0
	for n := c.m.firstNode(); n != nil; n = c.m.nextNode(n) {
		if pred(c.get(n)) {
			count++
		}
	}
	return count
}

// ToSlice 按视图顺序导出为切片.
func (c collection[K, V, T]) ToSlice() []T {
	out := make([]T, 0)
	for n := c.m.firstNode(); n != nil; n = c.m.nextNode(n) {
		out = append(out, c.get(n))
	}
	return out
}

// All 按视图顺序遍历.
func (c collection[K, V, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.m.firstNode(); n != nil; n = c.m.nextNode(n) {
			if !yield(c.get(n)) {
				return
			}
		}
	}
}

// Add 视图不支持直接添加元素.
func (c collection[K, V, T]) Add(T) error {
	return fmt.Errorf("%w: %s 视图不支持 Add", ErrUnsupported, c.tag)
}

// Iterator 返回视图上的双向迭代器，Remove 会删除所属映射中的对应键.
func (c collection[K, V, T]) Iterator() *ViewIterator[K, V, T] {
	return &ViewIterator[K, V, T]{it: newIterator[K, V](c.m), get: c.get}
}

// ViewIterator 集合视图的迭代器.
type ViewIterator[K any, V comparable, T any] struct {
	it  *Iterator[K, V]
	get func(n *node[K, V]) T
}

// HasNext 是否还有下一个元素.
func (v *ViewIterator[K, V, T]) HasNext() bool { return v.it.HasNext() }

// HasPrevious 是否还有上一个元素.
func (v *ViewIterator[K, V, T]) HasPrevious() bool { return v.it.HasPrevious() }

// Next 返回下一个元素.
func (v *ViewIterator[K, V, T]) Next() (T, bool) {
	n := v.it.next
	if _, ok := v.it.Next(); !ok {
		var zero T
		return zero, false
	}
	return v.get(n), true
}

// Previous 返回上一个元素.
func (v *ViewIterator[K, V, T]) Previous() (T, bool) {
	n := v.it.prev
	if _, ok := v.it.Previous(); !ok {
		var zero T
		return zero, false
	}
	return v.get(n), true
}

// Remove 删除最近一次返回的元素.
func (v *ViewIterator[K, V, T]) Remove() error { return v.it.Remove() }

// KeySet 键视图，支持导航.
type KeySet[K any, V comparable] struct {
	collection[K, V, K]
}

func newKeySet[K any, V comparable](m NavigableMap[K, V]) *KeySet[K, V] {
	return &KeySet[K, V]{collection[K, V, K]{
		m:   m,
		get: func(n *node[K, V]) K { return n.key },
		tag: "key",
	}}
}

// Comparator 返回视图顺序对应的比较器.
func (s *KeySet[K, V]) Comparator() Comparator[K] { return s.m.Comparator() }

// Contains 判断键是否存在.
func (s *KeySet[K, V]) Contains(key K) bool { return s.m.ContainsKey(key) }

// Remove 删除键，返回是否删除.
func (s *KeySet[K, V]) Remove(key K) bool {
	n := lookup[K, V](s.m, key)
	if n == nil {
		return false
	}
	s.m.tree().deleteNode(n)
	return true
}

// Clear 删除视图内的全部键.
func (s *KeySet[K, V]) Clear() { s.m.Clear() }

// First 返回第一个键.
func (s *KeySet[K, V]) First() (K, error) { return s.m.FirstKey() }

// Last 返回最后一个键.
func (s *KeySet[K, V]) Last() (K, error) { return s.m.LastKey() }

func (s *KeySet[K, V]) Floor(key K) (K, bool)   { return s.m.FloorKey(key) }
func (s *KeySet[K, V]) Ceiling(key K) (K, bool) { return s.m.CeilingKey(key) }
func (s *KeySet[K, V]) Lower(key K) (K, bool)   { return s.m.LowerKey(key) }
func (s *KeySet[K, V]) Higher(key K) (K, bool)  { return s.m.HigherKey(key) }

// PollFirst 删除并返回第一个键.
func (s *KeySet[K, V]) PollFirst() (K, bool) { return s.m.PollFirstKey() }

// PollLast 删除并返回最后一个键.
func (s *KeySet[K, V]) PollLast() (K, bool) { return s.m.PollLastKey() }

// Descending 返回逆序键视图.
func (s *KeySet[K, V]) Descending() *KeySet[K, V] { return s.m.DescendingKeySet() }

// SubSet 返回键在 from 与 to 之间的子视图.
func (s *KeySet[K, V]) SubSet(from K, fromInclusive bool, to K, toInclusive bool) (*KeySet[K, V], error) {
	sub, err := s.m.SubMap(from, fromInclusive, to, toInclusive)
	if err != nil {
		return nil, err
	}
	return sub.KeySet(), nil
}

// HeadSet 返回键在 to 之前的子视图.
func (s *KeySet[K, V]) HeadSet(to K, inclusive bool) (*KeySet[K, V], error) {
	sub, err := s.m.HeadMap(to, inclusive)
	if err != nil {
		return nil, err
	}
	return sub.KeySet(), nil
}

// TailSet 返回键从 from 开始的子视图.
func (s *KeySet[K, V]) TailSet(from K, inclusive bool) (*KeySet[K, V], error) {
	sub, err := s.m.TailMap(from, inclusive)
	if err != nil {
		return nil, err
	}
	return sub.KeySet(), nil
}

// Values 值视图.
type Values[K any, V comparable] struct {
	collection[K, V, V]
}

func newValues[K any, V comparable](m NavigableMap[K, V]) *Values[K, V] {
	return &Values[K, V]{collection[K, V, V]{
		m:   m,
		get: func(n *node[K, V]) V { return n.value },
		tag: "values",
	}}
}

// Contains 判断是否存在等于 value 的值，时间复杂度 O(n).
func (s *Values[K, V]) Contains(value V) bool { return s.m.ContainsValue(value) }

// Remove 删除视图顺序下第一个等于 value 的条目，返回是否删除.
func (s *Values[K, V]) Remove(value V) bool {
	for n := s.m.firstNode(); n != nil; n = s.m.nextNode(n) {
		if n.value == value {
			s.m.tree().deleteNode(n)
			return true
		}
	}
	return false
}

// Clear 删除视图内的全部条目.
func (s *Values[K, V]) Clear() { s.m.Clear() }

// EntrySet 键值对视图.
type EntrySet[K any, V comparable] struct {
	collection[K, V, Entry[K, V]]
}

func newEntrySet[K any, V comparable](m NavigableMap[K, V]) *EntrySet[K, V] {
	return &EntrySet[K, V]{collection[K, V, Entry[K, V]]{
		m:   m,
		get: (*node[K, V]).entry,
		tag: "entry",
	}}
}

// Contains 判断映射中是否存在键为 e.Key 且值为 e.Value 的条目.
func (s *EntrySet[K, V]) Contains(e Entry[K, V]) bool {
	n := lookup[K, V](s.m, e.Key)
	return n != nil && n.value == e.Value
}

// Remove 仅当键当前映射到 e.Value 时删除，返回是否删除.
func (s *EntrySet[K, V]) Remove(e Entry[K, V]) bool { return s.m.RemoveValue(e.Key, e.Value) }

// Clear 删除视图内的全部条目.
func (s *EntrySet[K, V]) Clear() { s.m.Clear() }
