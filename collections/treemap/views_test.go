package treemap

import (
	"errors"
	"strconv"
)

func (s *TreeMapTestSuite) TestKeySet() {
	m := s.scenarioMap()
	ks := m.KeySet()

	s.Same(ks, m.KeySet())
	s.Same(ks, m.NavigableKeySet())
	s.Equal(7, ks.Len())
	s.True(ks.Contains(4))
	s.False(ks.Contains(6))
	s.Equal([]int{1, 3, 4, 5, 7, 8, 9}, ks.ToSlice())

	first, err := ks.First()
	s.NoError(err)
	s.Equal(1, first)
	last, _ := ks.Last()
	s.Equal(9, last)
	k, _ := ks.Floor(6)
	s.Equal(5, k)
	k, _ = ks.Ceiling(6)
	s.Equal(7, k)
	k, _ = ks.Lower(3)
	s.Equal(1, k)
	k, _ = ks.Higher(9)
	s.Equal(0, k)

	s.True(ks.Remove(4))
	s.False(ks.Remove(4))
	s.False(m.ContainsKey(4))
	s.Equal(0, ks.Comparator()(3, 3))

	k, ok := ks.PollFirst()
	s.True(ok)
	s.Equal(1, k)
	k, _ = ks.PollLast()
	s.Equal(9, k)
	s.Equal([]int{3, 5, 7, 8}, keysOf[string](m))
	s.assertValid(m)
}

func (s *TreeMapTestSuite) TestKeySetDescendingAndRanges() {
	m := s.rangeMap()
	ks := m.KeySet()

	s.Equal([]int{18, 16, 14, 12, 10, 8, 6, 4, 2, 0}, ks.Descending().ToSlice())
	s.Same(ks.Descending(), m.DescendingKeySet())

	sub, err := ks.SubSet(4, true, 8, true)
	s.Require().NoError(err)
	s.Equal([]int{4, 6, 8}, sub.ToSlice())
	head, _ := ks.HeadSet(4, false)
	s.Equal([]int{0, 2}, head.ToSlice())
	tail, _ := ks.TailSet(16, true)
	s.Equal([]int{16, 18}, tail.ToSlice())

	_, err = ks.SubSet(8, true, 4, true)
	s.ErrorIs(err, ErrInvalidRange)
	_, err = sub.HeadSet(10, true)
	s.ErrorIs(err, ErrOutOfRange)
	_, err = sub.TailSet(-2, true)
	s.ErrorIs(err, ErrOutOfRange)

	// 子视图上的 Remove 只作用于范围内的键
	s.False(sub.Remove(10))
	s.True(sub.Remove(6))
	s.False(m.ContainsKey(6))
	sub.Clear()
	s.Equal([]int{0, 2, 10, 12, 14, 16, 18}, keysOf[string](m))
}

func (s *TreeMapTestSuite) TestCollectionOps() {
	m := s.newIntMap()
	for i := 1; i <= 10; i++ {
		m.Put(i, i*i)
	}
	ks := m.KeySet()
	vs := m.Values()

	sum := ks.Reduce(0, func(acc, x int) int { return acc + x })
	s.Equal(55, sum)
	s.Equal(385, vs.ReduceFirst(func(acc, x int) int { return acc + x }))

	even := func(x int) bool { return x%2 == 0 }
	s.True(ks.MatchesAny(even))
	s.False(ks.MatchesAll(even))
	s.False(ks.MatchesNone(even))
	s.True(ks.MatchesAll(func(x int) bool { return x > 0 }))
	s.True(vs.MatchesNone(func(x int) bool { return x == 2 }))
	s.Equal(5, ks.Count(even))

	v, ok := vs.FindFirst(func(x int) bool { return x > 30 })
	s.True(ok)
	s.Equal(36, v)
	_, ok = vs.FindFirst(func(x int) bool { return x > 1000 })
	s.False(ok)

	var visited []int
	ks.ForEach(func(k int) { visited = append(visited, k) })
	s.Len(visited, 10)

	var seen []int
	for k := range ks.All() {
		if k > 3 {
			break
		}
		seen = append(seen, k)
	}
	s.Equal([]int{1, 2, 3}, seen)
}

func (s *TreeMapTestSuite) TestCollectionOpsEmpty() {
	m := s.newIntMap()
	ks := m.KeySet()

	s.True(ks.IsEmpty())
	s.Equal(0, ks.ReduceFirst(func(acc, x int) int { return acc + x }))
	s.Equal(7, ks.Reduce(7, func(acc, x int) int { return acc + x }))
	s.True(ks.MatchesAll(func(int) bool { return false }))
	s.False(ks.MatchesAny(func(int) bool { return true }))
	s.Empty(ks.ToSlice())
	_, err := ks.First()
	s.ErrorIs(err, ErrEmptyMap)
}

func (s *TreeMapTestSuite) TestViewsRejectAdd() {
	m := s.scenarioMap()

	for _, err := range []error{
		m.KeySet().Add(2),
		m.Values().Add("x"),
		m.EntrySet().Add(Entry[int, string]{Key: 2, Value: "x"}),
	} {
		s.ErrorIs(err, ErrUnsupported)
		s.True(errors.Is(err, errors.ErrUnsupported))
	}
	s.False(m.ContainsKey(2))
}

func (s *TreeMapTestSuite) TestValues() {
	m := s.newMap()
	for i, v := range []string{"b", "a", "b", "c"} {
		m.Put(i, v)
	}
	vs := m.Values()

	s.Same(vs, m.Values())
	s.Equal([]string{"b", "a", "b", "c"}, vs.ToSlice())
	s.True(vs.Contains("c"))
	s.False(vs.Contains("z"))

	s.True(vs.Remove("b"))
	s.Equal([]string{"a", "b", "c"}, vs.ToSlice())
	s.False(m.ContainsKey(0))
	s.False(vs.Remove("z"))

	desc := m.DescendingMap().Values()
	s.Equal([]string{"c", "b", "a"}, desc.ToSlice())
	s.True(desc.Remove("b"))
	s.Equal([]int{1, 3}, keysOf[string](m))
	s.assertValid(m)
}

func (s *TreeMapTestSuite) TestEntrySet() {
	m := s.scenarioMap()
	es := m.EntrySet()

	s.Same(es, m.EntrySet())
	s.True(es.Contains(Entry[int, string]{Key: 3, Value: "3"}))
	s.False(es.Contains(Entry[int, string]{Key: 3, Value: "x"}))
	s.False(es.Contains(Entry[int, string]{Key: 6, Value: "6"}))

	s.False(es.Remove(Entry[int, string]{Key: 3, Value: "x"}))
	s.True(es.Remove(Entry[int, string]{Key: 3, Value: "3"}))
	s.False(m.ContainsKey(3))

	first, ok := es.FindFirst(func(e Entry[int, string]) bool { return e.Key > 4 })
	s.True(ok)
	s.Equal(Entry[int, string]{Key: 5, Value: "5"}, first)

	joined := es.Reduce(Entry[int, string]{}, func(acc, e Entry[int, string]) Entry[int, string] {
		return Entry[int, string]{Key: acc.Key + e.Key, Value: acc.Value + e.Value}
	})
	s.Equal(1+4+5+7+8+9, joined.Key)
	s.Equal("145789", joined.Value)
}

func (s *TreeMapTestSuite) TestViewIterator() {
	m := s.newMap()
	for i := 0; i < 10; i++ {
		m.Put(i, strconv.Itoa(i))
	}

	it := m.KeySet().Iterator()
	for it.HasNext() {
		k, _ := it.Next()
		if k%2 == 0 {
			s.NoError(it.Remove())
		}
	}
	s.Equal([]int{1, 3, 5, 7, 9}, keysOf[string](m))

	var back []string
	vit := m.Values().Iterator()
	for vit.HasNext() {
		vit.Next()
	}
	for vit.HasPrevious() {
		v, _ := vit.Previous()
		back = append(back, v)
	}
	s.Equal([]string{"9", "7", "5", "3", "1"}, back)

	eit := m.EntrySet().Iterator()
	e, ok := eit.Next()
	s.True(ok)
	s.Equal(Entry[int, string]{Key: 1, Value: "1"}, e)
	s.NoError(eit.Remove())
	s.False(m.ContainsKey(1))
	s.assertValid(m)
}
