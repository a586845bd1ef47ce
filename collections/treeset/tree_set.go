// Package treeset 提供基于 treemap 的可导航有序集合.
package treeset

import (
	"cmp"
	"iter"

	"github.com/Tsukikage7/navmap/collections/treemap"
)

// TreeSet 有序集合，元素即底层 TreeMap 的键.
//
// 示例:
//
//	ts := treeset.NewOrdered[int]()
//	ts.Add(3, 1, 2)
//	ts.Ceiling(2) // 2, true
type TreeSet[T any] struct {
	tm *treemap.TreeMap[T, struct{}]
}

// New 创建 TreeSet，需要提供比较器.
func New[T any](cmp treemap.Comparator[T], opts ...treemap.Option) *TreeSet[T] {
	return &TreeSet[T]{tm: treemap.New[T, struct{}](cmp, opts...)}
}

// NewOrdered 创建 TreeSet，使用内置类型的默认比较.
func NewOrdered[T cmp.Ordered](opts ...treemap.Option) *TreeSet[T] {
	return New[T](treemap.OrderedCompare[T], opts...)
}

// FromSlice 从切片创建 TreeSet.
func FromSlice[T cmp.Ordered](items []T, opts ...treemap.Option) *TreeSet[T] {
	s := NewOrdered[T](opts...)
	s.Add(items...)
	return s
}

// Add 添加元素，返回新加入的个数.
func (s *TreeSet[T]) Add(items ...T) int {
	added := 0
	for _, item := range items {
		if !s.tm.ContainsKey(item) {
			s.tm.Put(item, struct{}{})
			added++
		}
	}
	return added
}

// Remove 移除元素，返回实际移除的个数.
func (s *TreeSet[T]) Remove(items ...T) int {
	removed := 0
	for _, item := range items {
		if s.tm.KeySet().Remove(item) {
			removed++
		}
	}
	return removed
}

func (s *TreeSet[T]) Contains(item T) bool { return s.tm.ContainsKey(item) }
func (s *TreeSet[T]) Len() int             { return s.tm.Len() }
func (s *TreeSet[T]) IsEmpty() bool        { return s.tm.IsEmpty() }
func (s *TreeSet[T]) Clear()               { s.tm.Clear() }

// First 返回最小元素.
func (s *TreeSet[T]) First() (T, bool) {
	k, err := s.tm.FirstKey()
	return k, err == nil
}

// Last 返回最大元素.
func (s *TreeSet[T]) Last() (T, bool) {
	k, err := s.tm.LastKey()
	return k, err == nil
}

// Floor 返回小于等于 item 的最大元素.
func (s *TreeSet[T]) Floor(item T) (T, bool) { return s.tm.FloorKey(item) }

// Ceiling 返回大于等于 item 的最小元素.
func (s *TreeSet[T]) Ceiling(item T) (T, bool) { return s.tm.CeilingKey(item) }

// Lower 返回严格小于 item 的最大元素.
func (s *TreeSet[T]) Lower(item T) (T, bool) { return s.tm.LowerKey(item) }

// Higher 返回严格大于 item 的最小元素.
func (s *TreeSet[T]) Higher(item T) (T, bool) { return s.tm.HigherKey(item) }

// PollFirst 删除并返回最小元素.
func (s *TreeSet[T]) PollFirst() (T, bool) { return s.tm.PollFirstKey() }

// PollLast 删除并返回最大元素.
func (s *TreeSet[T]) PollLast() (T, bool) { return s.tm.PollLastKey() }

// SubSet 返回 from 与 to 之间元素的视图，对视图的删除会作用到集合本身.
func (s *TreeSet[T]) SubSet(from T, fromInclusive bool, to T, toInclusive bool) (*treemap.KeySet[T, struct{}], error) {
	return s.tm.KeySet().SubSet(from, fromInclusive, to, toInclusive)
}

// HeadSet 返回 to 之前元素的视图.
func (s *TreeSet[T]) HeadSet(to T, inclusive bool) (*treemap.KeySet[T, struct{}], error) {
	return s.tm.KeySet().HeadSet(to, inclusive)
}

// TailSet 返回从 from 开始元素的视图.
func (s *TreeSet[T]) TailSet(from T, inclusive bool) (*treemap.KeySet[T, struct{}], error) {
	return s.tm.KeySet().TailSet(from, inclusive)
}

// Descending 返回逆序视图.
func (s *TreeSet[T]) Descending() *treemap.KeySet[T, struct{}] {
	return s.tm.DescendingKeySet()
}

// ToSlice 按顺序导出所有元素.
func (s *TreeSet[T]) ToSlice() []T { return s.tm.KeySet().ToSlice() }

// All 按升序遍历.
func (s *TreeSet[T]) All() iter.Seq[T] { return s.tm.KeySet().All() }

// Backward 按降序遍历.
func (s *TreeSet[T]) Backward() iter.Seq[T] { return s.Descending().All() }

// Clone 深拷贝集合.
func (s *TreeSet[T]) Clone() *TreeSet[T] {
	return &TreeSet[T]{tm: s.tm.Copy()}
}

// Union 返回并集.
func (s *TreeSet[T]) Union(other *TreeSet[T]) *TreeSet[T] {
	result := s.Clone()
	for item := range other.All() {
		result.tm.Put(item, struct{}{})
	}
	return result
}

// Intersection 返回交集，结果沿用 s 的比较器与平衡策略.
func (s *TreeSet[T]) Intersection(other *TreeSet[T]) *TreeSet[T] {
	result := s.Clone()
	it := result.tm.Iterator()
	for it.HasNext() {
		e, _ := it.Next()
		if !other.Contains(e.Key) {
			_ = it.Remove()
		}
	}
	return result
}

// Difference 返回差集 s - other.
func (s *TreeSet[T]) Difference(other *TreeSet[T]) *TreeSet[T] {
	result := s.Clone()
	for item := range other.All() {
		result.tm.Remove(item)
	}
	return result
}

// IsSubset 判断 s 是否为 other 的子集.
func (s *TreeSet[T]) IsSubset(other *TreeSet[T]) bool {
	if s.Len() > other.Len() {
		return false
	}
	return s.tm.KeySet().MatchesAll(other.Contains)
}

// IsSuperset 判断 s 是否为 other 的超集.
func (s *TreeSet[T]) IsSuperset(other *TreeSet[T]) bool {
	return other.IsSubset(s)
}

// Equal 判断两个集合元素是否相同.
func (s *TreeSet[T]) Equal(other *TreeSet[T]) bool {
	return s.Len() == other.Len() && s.IsSubset(other)
}

// Verify 校验底层树的不变式.
func (s *TreeSet[T]) Verify() error { return s.tm.Verify() }
