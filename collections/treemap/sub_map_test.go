package treemap

import "slices"

func (s *TreeMapTestSuite) rangeMap() *TreeMap[int, string] {
	m := s.newMap()
	for k := 0; k < 20; k += 2 {
		m.Put(k, "")
	}
	return m
}

func (s *TreeMapTestSuite) TestSubMapRoundTrip() {
	m := s.rangeMap()
	all := keysOf[string](m)

	for lo := -1; lo <= 20; lo++ {
		for hi := lo; hi <= 20; hi++ {
			sub, err := m.SubMap(lo, true, hi, true)
			s.Require().NoError(err)

			want := []int{}
			for _, k := range all {
				if k >= lo && k <= hi {
					want = append(want, k)
				}
			}
			s.Equal(want, keysOf(sub), "[%d, %d]", lo, hi)
			s.Equal(len(want), sub.Len())
			s.Equal(len(want) == 0, sub.IsEmpty())
		}
	}
}

func (s *TreeMapTestSuite) TestSubMapExclusiveBounds() {
	m := s.rangeMap()

	sub, err := m.SubMap(4, false, 10, false)
	s.Require().NoError(err)
	s.Equal([]int{6, 8}, keysOf(sub))

	sub, _ = m.SubMap(4, false, 4, false)
	s.True(sub.IsEmpty())
	_, err = sub.FirstKey()
	s.ErrorIs(err, ErrEmptyMap)
}

func (s *TreeMapTestSuite) TestHeadAndTailMap() {
	m := s.rangeMap()

	head, err := m.HeadMap(6, false)
	s.Require().NoError(err)
	s.Equal([]int{0, 2, 4}, keysOf(head))
	head, _ = m.HeadMap(6, true)
	s.Equal([]int{0, 2, 4, 6}, keysOf(head))

	tail, err := m.TailMap(15, true)
	s.Require().NoError(err)
	s.Equal([]int{16, 18}, keysOf(tail))
	tail, _ = m.TailMap(16, false)
	s.Equal([]int{18}, keysOf(tail))
}

func (s *TreeMapTestSuite) TestSubMapInvalidRange() {
	m := s.rangeMap()

	_, err := m.SubMap(8, true, 2, true)
	s.ErrorIs(err, ErrInvalidRange)

	// 比较器不认为负数与自身相等
	picky := func(a, b int) int {
		if a < 0 || b < 0 {
			return 1
		}
		return OrderedCompare(a, b)
	}
	p := New[int, string](picky, WithBalance(s.balance))
	_, err = p.HeadMap(-1, true)
	s.ErrorIs(err, ErrInvalidRange)
	_, err = p.TailMap(-1, false)
	s.ErrorIs(err, ErrInvalidRange)
	_, err = p.TailMap(1, false)
	s.NoError(err)
}

func (s *TreeMapTestSuite) TestSubMapNavigationClamped() {
	m := s.rangeMap()
	sub, _ := m.SubMap(5, true, 13, false)

	k, ok := sub.FloorKey(100)
	s.True(ok)
	s.Equal(12, k)
	_, ok = sub.FloorKey(5)
	s.False(ok)
	k, _ = sub.CeilingKey(-100)
	s.Equal(6, k)
	_, ok = sub.CeilingKey(13)
	s.False(ok)
	k, _ = sub.HigherKey(0)
	s.Equal(6, k)
	_, ok = sub.HigherKey(12)
	s.False(ok)
	k, _ = sub.LowerKey(50)
	s.Equal(12, k)
	_, ok = sub.LowerKey(6)
	s.False(ok)

	last, err := sub.LastKey()
	s.NoError(err)
	s.Equal(12, last)
}

func (s *TreeMapTestSuite) TestSubMapWrites() {
	m := s.rangeMap()
	sub, _ := m.SubMap(4, true, 10, true)

	old, err := sub.Put(5, "five")
	s.NoError(err)
	s.Equal("", old)
	s.Equal("five", m.Get(5))

	_, err = sub.Put(11, "x")
	s.ErrorIs(err, ErrOutOfRange)
	_, err = sub.PutIfAbsent(3, "x")
	s.ErrorIs(err, ErrOutOfRange)
	s.False(m.ContainsKey(11))
	s.False(m.ContainsKey(3))

	// 越界读与删除表现为缺失
	s.Equal("", sub.Get(0))
	s.Equal("", sub.Remove(0))
	s.True(m.ContainsKey(0))
	s.False(sub.ContainsKey(12))
	s.False(sub.RemoveValue(12, ""))
	s.Equal("", sub.Replace(12, "x"))
	s.Equal("", m.Get(12))

	s.Equal("five", sub.Remove(5))
	s.False(m.ContainsKey(5))
	s.assertValid(m)
}

func (s *TreeMapTestSuite) TestSubMapSeesLaterChanges() {
	m := s.rangeMap()
	sub, _ := m.SubMap(3, true, 9, true)

	m.Put(7, "7")
	m.Remove(4)
	s.Equal([]int{6, 7, 8}, keysOf(sub))
}

func (s *TreeMapTestSuite) TestSubMapClear() {
	m := s.rangeMap()
	sub, _ := m.SubMap(4, true, 12, false)

	sub.Clear()
	s.True(sub.IsEmpty())
	s.Equal([]int{0, 2, 12, 14, 16, 18}, keysOf[string](m))
	s.assertValid(m)
}

func (s *TreeMapTestSuite) TestNestedSubMap() {
	m := s.rangeMap()
	sub, _ := m.SubMap(4, true, 14, true)

	inner, err := sub.SubMap(6, true, 10, false)
	s.Require().NoError(err)
	s.Equal([]int{6, 8}, keysOf(inner))

	_, err = sub.SubMap(2, true, 10, true)
	s.ErrorIs(err, ErrOutOfRange)
	_, err = sub.TailMap(16, true)
	s.ErrorIs(err, ErrOutOfRange)

	head, err := sub.HeadMap(8, true)
	s.Require().NoError(err)
	s.Equal([]int{4, 6, 8}, keysOf(head))

	// 父视图的开区间端点可以作为子视图的开区间端点
	open, _ := m.SubMap(4, false, 14, false)
	inner, err = open.SubMap(4, false, 14, false)
	s.NoError(err)
	s.Equal([]int{6, 8, 10, 12}, keysOf(inner))
	_, err = open.SubMap(4, true, 10, true)
	s.ErrorIs(err, ErrOutOfRange)
}

func (s *TreeMapTestSuite) TestDescendingIsReverse() {
	m := s.scenarioMap()
	desc := m.DescendingMap()

	want := keysOf[string](m)
	slices.Reverse(want)
	s.Equal(want, keysOf(desc))
	s.Equal(keysOf[string](m), keysBackward(desc))
	s.Same(desc, m.DescendingMap())
	s.Equal(keysOf[string](m), keysOf(desc.DescendingMap()))

	first, _ := desc.FirstKey()
	s.Equal(9, first)
	last, _ := desc.LastKey()
	s.Equal(1, last)
	s.Positive(desc.Comparator()(1, 2))
}

func (s *TreeMapTestSuite) TestDescendingNavigation() {
	m := s.scenarioMap()
	desc := m.DescendingMap()

	// 逆序下 ceiling 是 <= key 的最大键
	k, _ := desc.CeilingKey(6)
	s.Equal(5, k)
	k, _ = desc.FloorKey(6)
	s.Equal(7, k)
	k, _ = desc.HigherKey(5)
	s.Equal(4, k)
	k, _ = desc.LowerKey(5)
	s.Equal(7, k)

	e, _ := desc.PollFirstEntry()
	s.Equal(9, e.Key)
	s.False(m.ContainsKey(9))
}

func (s *TreeMapTestSuite) TestDescendingSubMap() {
	m := s.rangeMap()
	desc := m.DescendingMap()

	sub, err := desc.SubMap(12, true, 4, false)
	s.Require().NoError(err)
	s.Equal([]int{12, 10, 8, 6}, keysOf(sub))

	_, err = desc.SubMap(4, true, 12, true)
	s.ErrorIs(err, ErrInvalidRange)

	head, _ := desc.HeadMap(14, false)
	s.Equal([]int{18, 16}, keysOf(head))
	tail, _ := desc.TailMap(4, true)
	s.Equal([]int{4, 2, 0}, keysOf(tail))

	asc := sub.DescendingMap()
	s.Equal([]int{6, 8, 10, 12}, keysOf(asc))

	_, err = sub.Put(13, "x")
	s.ErrorIs(err, ErrOutOfRange)
	_, err = sub.Put(5, "x")
	s.NoError(err)
	s.Equal([]int{12, 10, 8, 6, 5}, keysOf(sub))
}
