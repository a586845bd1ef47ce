package treemap

import (
	"fmt"
	"iter"
	"strings"
)

// bound 视图的一侧边界，present 为 false 表示该侧无界.
type bound[K any] struct {
	key       K
	present   bool
	inclusive bool
}

func makeBound[K any](k K, inclusive bool) bound[K] {
	return bound[K]{key: k, present: true, inclusive: inclusive}
}

// subMap 子映射视图.
//
// 只保存边界，不持有节点，所有读写都落到根 TreeMap 上.
// lo/hi 始终按根映射的比较器解释；descending 为 true 时遍历方向与导航语义反转.
type subMap[K any, V comparable] struct {
	m          *TreeMap[K, V]
	lo, hi     bound[K]
	descending bool

	views viewCache[K, V]
}

// newSubMap 校验边界并创建视图.
func newSubMap[K any, V comparable](m *TreeMap[K, V], lo, hi bound[K], descending bool) (*subMap[K, V], error) {
	if lo.present && hi.present {
		if m.cmp(lo.key, hi.key) > 0 {
			return nil, fmt.Errorf("%w: 起始键 %v 大于结束键 %v", ErrInvalidRange, lo.key, hi.key)
		}
	} else {
		// 只有一侧有界时，至少要求比较器认为该键与自身相等
		if lo.present && m.cmp(lo.key, lo.key) != 0 {
			return nil, fmt.Errorf("%w: 比较器不接受起始键 %v", ErrInvalidRange, lo.key)
		}
		if hi.present && m.cmp(hi.key, hi.key) != 0 {
			return nil, fmt.Errorf("%w: 比较器不接受结束键 %v", ErrInvalidRange, hi.key)
		}
	}
	return &subMap[K, V]{m: m, lo: lo, hi: hi, descending: descending}, nil
}

// String 返回区间表示，例如 [3, 8).
func (s *subMap[K, V]) String() string {
	var b strings.Builder
	if !s.lo.present {
		b.WriteString("(-∞")
	} else {
		if s.lo.inclusive {
			b.WriteByte('[')
		} else {
			b.WriteByte('(')
		}
		fmt.Fprintf(&b, "%v", s.lo.key)
	}
	b.WriteString(", ")
	if !s.hi.present {
		b.WriteString("+∞)")
	} else {
		fmt.Fprintf(&b, "%v", s.hi.key)
		if s.hi.inclusive {
			b.WriteByte(']')
		} else {
			b.WriteByte(')')
		}
	}
	if s.descending {
		b.WriteString(" desc")
	}
	return b.String()
}

// 边界判断

func (s *subMap[K, V]) tooLow(key K) bool {
	if !s.lo.present {
		return false
	}
	c := s.m.cmp(key, s.lo.key)
	return c < 0 || (c == 0 && !s.lo.inclusive)
}

func (s *subMap[K, V]) tooHigh(key K) bool {
	if !s.hi.present {
		return false
	}
	c := s.m.cmp(key, s.hi.key)
	return c > 0 || (c == 0 && !s.hi.inclusive)
}

func (s *subMap[K, V]) inRange(key K) bool {
	return !s.tooLow(key) && !s.tooHigh(key)
}

// inClosedRange 忽略端点是否包含，用于校验嵌套视图的边界.
func (s *subMap[K, V]) inClosedRange(key K) bool {
	return (!s.lo.present || s.m.cmp(key, s.lo.key) >= 0) &&
		(!s.hi.present || s.m.cmp(key, s.hi.key) <= 0)
}

func (s *subMap[K, V]) boundInRange(b bound[K]) bool {
	if !b.present {
		return true
	}
	if b.inclusive {
		return s.inRange(b.key)
	}
	return s.inClosedRange(b.key)
}

// 绝对导航：在根映射上查询，越界的结果视为不存在.
// 查询键本身越界时先收敛到对应的端点.

func (s *subMap[K, V]) within(n *node[K, V]) *node[K, V] {
	if n == nil || !s.inRange(n.key) {
		return nil
	}
	return n
}

func (s *subMap[K, V]) absLowest() *node[K, V] {
	switch {
	case !s.lo.present:
		return s.within(s.m.first)
	case s.lo.inclusive:
		return s.within(s.m.ceilingNode(s.lo.key))
	default:
		return s.within(s.m.higherNode(s.lo.key))
	}
}

func (s *subMap[K, V]) absHighest() *node[K, V] {
	switch {
	case !s.hi.present:
		return s.within(s.m.last)
	case s.hi.inclusive:
		return s.within(s.m.floorNode(s.hi.key))
	default:
		return s.within(s.m.lowerNode(s.hi.key))
	}
}

func (s *subMap[K, V]) absCeiling(key K) *node[K, V] {
	if s.tooLow(key) {
		return s.absLowest()
	}
	return s.within(s.m.ceilingNode(key))
}

func (s *subMap[K, V]) absHigher(key K) *node[K, V] {
	if s.tooLow(key) {
		return s.absLowest()
	}
	return s.within(s.m.higherNode(key))
}

func (s *subMap[K, V]) absFloor(key K) *node[K, V] {
	if s.tooHigh(key) {
		return s.absHighest()
	}
	return s.within(s.m.floorNode(key))
}

func (s *subMap[K, V]) absLower(key K) *node[K, V] {
	if s.tooHigh(key) {
		return s.absHighest()
	}
	return s.within(s.m.lowerNode(key))
}

// navigator 实现，按视图方向映射到绝对导航.

func (s *subMap[K, V]) tree() *TreeMap[K, V] { return s.m }

func (s *subMap[K, V]) firstNode() *node[K, V] {
	if s.descending {
		return s.absHighest()
	}
	return s.absLowest()
}

func (s *subMap[K, V]) lastNode() *node[K, V] {
	if s.descending {
		return s.absLowest()
	}
	return s.absHighest()
}

func (s *subMap[K, V]) ceilingNode(key K) *node[K, V] {
	if s.descending {
		return s.absFloor(key)
	}
	return s.absCeiling(key)
}

func (s *subMap[K, V]) floorNode(key K) *node[K, V] {
	if s.descending {
		return s.absCeiling(key)
	}
	return s.absFloor(key)
}

func (s *subMap[K, V]) higherNode(key K) *node[K, V] {
	if s.descending {
		return s.absLower(key)
	}
	return s.absHigher(key)
}

func (s *subMap[K, V]) lowerNode(key K) *node[K, V] {
	if s.descending {
		return s.absHigher(key)
	}
	return s.absLower(key)
}

func (s *subMap[K, V]) nextNode(n *node[K, V]) *node[K, V] {
	if s.descending {
		return s.within(n.prev())
	}
	return s.within(n.next())
}

func (s *subMap[K, V]) prevNode(n *node[K, V]) *node[K, V] {
	if s.descending {
		return s.within(n.next())
	}
	return s.within(n.prev())
}

func (s *subMap[K, V]) update(key K, fn func(old V, present bool) (V, bool)) (V, error) {
	if err := s.checkKey(key); err != nil {
		return s.m.def, err
	}
	return s.m.update(key, fn)
}

// checkKey 拒绝越界写入，不会触及根映射.
func (s *subMap[K, V]) checkKey(key K) error {
	if s.inRange(key) {
		return nil
	}
	s.m.log.Warnf("treemap: 键 %v 超出视图 %s", key, s)
	return fmt.Errorf("%w: 键 %v 不在 %s 内", ErrOutOfRange, key, s)
}

// 基础信息

// Len 返回视图内元素数量，时间复杂度 O(n).
func (s *subMap[K, V]) Len() int { return size[K, V](s) }

func (s *subMap[K, V]) IsEmpty() bool { return s.firstNode() == nil }

func (s *subMap[K, V]) Comparator() Comparator[K] {
	if s.descending {
		return Reverse(s.m.cmp)
	}
	return s.m.cmp
}

func (s *subMap[K, V]) DefaultValue() V { return s.m.def }

// 点查询

func (s *subMap[K, V]) Get(key K) V {
	if n := lookup[K, V](s, key); n != nil {
		return n.value
	}
	return s.m.def
}

func (s *subMap[K, V]) Lookup(key K) (V, bool) {
	if n := lookup[K, V](s, key); n != nil {
		return n.value, true
	}
	return s.m.def, false
}

func (s *subMap[K, V]) GetOrDefault(key K, defaultVal V) V {
	if n := lookup[K, V](s, key); n != nil {
		return n.value
	}
	return defaultVal
}

func (s *subMap[K, V]) ContainsKey(key K) bool { return lookup[K, V](s, key) != nil }

func (s *subMap[K, V]) ContainsValue(value V) bool { return containsValue[K, V](s, value) }

// 点更新

func (s *subMap[K, V]) Put(key K, value V) (V, error) {
	if err := s.checkKey(key); err != nil {
		return s.m.def, err
	}
	return s.m.Put(key, value)
}

func (s *subMap[K, V]) PutIfAbsent(key K, value V) (V, error) {
	if err := s.checkKey(key); err != nil {
		return s.m.def, err
	}
	return s.m.PutIfAbsent(key, value)
}

func (s *subMap[K, V]) Remove(key K) V {
	if !s.inRange(key) {
		return s.m.def
	}
	return s.m.Remove(key)
}

func (s *subMap[K, V]) RemoveValue(key K, value V) bool {
	return s.inRange(key) && s.m.RemoveValue(key, value)
}

func (s *subMap[K, V]) Replace(key K, value V) V {
	if !s.inRange(key) {
		return s.m.def
	}
	return s.m.Replace(key, value)
}

func (s *subMap[K, V]) ReplaceIf(key K, oldValue, newValue V) bool {
	return s.inRange(key) && s.m.ReplaceIf(key, oldValue, newValue)
}

// Clear 删除视图范围内的全部键.
func (s *subMap[K, V]) Clear() {
	it := newIterator[K, V](s)
	for it.HasNext() {
		it.Next()
		_ = it.Remove()
	}
}

func (s *subMap[K, V]) ComputeIfAbsent(key K, fn func(key K) V) (V, error) {
	return computeIfAbsent[K, V](s, key, fn)
}

func (s *subMap[K, V]) ComputeIfPresent(key K, fn func(key K, old V) V) V {
	return computeIfPresent[K, V](s, key, fn)
}

func (s *subMap[K, V]) Compute(key K, fn func(key K, old V, present bool) V) (V, error) {
	return compute[K, V](s, key, fn)
}

func (s *subMap[K, V]) Merge(key K, value V, fn func(old, value V) V) (V, error) {
	return merge[K, V](s, key, value, fn)
}

func (s *subMap[K, V]) MergeAll(other NavigableMap[K, V], fn func(old, value V) V) error {
	return mergeAll[K, V](s, other, fn)
}

// 首尾

func (s *subMap[K, V]) FirstKey() (K, error)   { return firstKey[K, V](s) }
func (s *subMap[K, V]) LastKey() (K, error)    { return lastKey[K, V](s) }
func (s *subMap[K, V]) FirstValue() (V, error) { return firstValue[K, V](s) }
func (s *subMap[K, V]) LastValue() (V, error)  { return lastValue[K, V](s) }

func (s *subMap[K, V]) FirstEntry() (Entry[K, V], bool)     { return entryOf(s.firstNode()) }
func (s *subMap[K, V]) LastEntry() (Entry[K, V], bool)      { return entryOf(s.lastNode()) }
func (s *subMap[K, V]) PollFirstEntry() (Entry[K, V], bool) { return poll[K, V](s, s.firstNode()) }
func (s *subMap[K, V]) PollLastEntry() (Entry[K, V], bool)  { return poll[K, V](s, s.lastNode()) }
func (s *subMap[K, V]) PollFirstKey() (K, bool)             { return pollKey[K, V](s, s.firstNode()) }
func (s *subMap[K, V]) PollLastKey() (K, bool)              { return pollKey[K, V](s, s.lastNode()) }

// 导航

func (s *subMap[K, V]) LowerKey(key K) (K, bool)   { return keyOf(s.lowerNode(key)) }
func (s *subMap[K, V]) FloorKey(key K) (K, bool)   { return keyOf(s.floorNode(key)) }
func (s *subMap[K, V]) CeilingKey(key K) (K, bool) { return keyOf(s.ceilingNode(key)) }
func (s *subMap[K, V]) HigherKey(key K) (K, bool)  { return keyOf(s.higherNode(key)) }

func (s *subMap[K, V]) LowerEntry(key K) (Entry[K, V], bool)   { return entryOf(s.lowerNode(key)) }
func (s *subMap[K, V]) FloorEntry(key K) (Entry[K, V], bool)   { return entryOf(s.floorNode(key)) }
func (s *subMap[K, V]) CeilingEntry(key K) (Entry[K, V], bool) { return entryOf(s.ceilingNode(key)) }
func (s *subMap[K, V]) HigherEntry(key K) (Entry[K, V], bool)  { return entryOf(s.higherNode(key)) }

// 视图
//
// 参数按视图自身顺序解释：逆序视图的 SubMap(from, to) 要求 from 在根映射顺序下不小于 to.

func (s *subMap[K, V]) SubMap(from K, fromInclusive bool, to K, toInclusive bool) (NavigableMap[K, V], error) {
	lo, hi := makeBound(from, fromInclusive), makeBound(to, toInclusive)
	if s.descending {
		lo, hi = hi, lo
	}
	return s.narrow(lo, hi)
}

func (s *subMap[K, V]) HeadMap(to K, inclusive bool) (NavigableMap[K, V], error) {
	if s.descending {
		return s.narrow(makeBound(to, inclusive), s.hi)
	}
	return s.narrow(s.lo, makeBound(to, inclusive))
}

func (s *subMap[K, V]) TailMap(from K, inclusive bool) (NavigableMap[K, V], error) {
	if s.descending {
		return s.narrow(s.lo, makeBound(from, inclusive))
	}
	return s.narrow(makeBound(from, inclusive), s.hi)
}

// narrow 创建嵌套视图，新边界必须落在当前视图内.
func (s *subMap[K, V]) narrow(lo, hi bound[K]) (NavigableMap[K, V], error) {
	if !s.boundInRange(lo) {
		return nil, fmt.Errorf("%w: 起始键 %v 不在 %s 内", ErrOutOfRange, lo.key, s)
	}
	if !s.boundInRange(hi) {
		return nil, fmt.Errorf("%w: 结束键 %v 不在 %s 内", ErrOutOfRange, hi.key, s)
	}
	return newSubMap(s.m, lo, hi, s.descending)
}

func (s *subMap[K, V]) DescendingMap() NavigableMap[K, V] {
	if s.views.descending == nil {
		s.views.descending = &subMap[K, V]{m: s.m, lo: s.lo, hi: s.hi, descending: !s.descending}
	}
	return s.views.descending
}

func (s *subMap[K, V]) KeySet() *KeySet[K, V]          { return s.views.keySet(s) }
func (s *subMap[K, V]) NavigableKeySet() *KeySet[K, V] { return s.views.keySet(s) }
func (s *subMap[K, V]) DescendingKeySet() *KeySet[K, V] {
	return s.DescendingMap().KeySet()
}
func (s *subMap[K, V]) Values() *Values[K, V]     { return s.views.valueSet(s) }
func (s *subMap[K, V]) EntrySet() *EntrySet[K, V] { return s.views.entrySet(s) }

// 遍历

func (s *subMap[K, V]) Iterator() *Iterator[K, V] { return newIterator[K, V](s) }
func (s *subMap[K, V]) All() iter.Seq2[K, V]      { return all[K, V](s) }
func (s *subMap[K, V]) Backward() iter.Seq2[K, V] { return backward[K, V](s) }
