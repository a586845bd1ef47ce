package treemap

import "math/rand/v2"

// scan 线性扫描参照实现.
func scan(keys []int, key int, pick func(k, key int) bool, preferLarger bool) (int, bool) {
	best, found := 0, false
	for _, k := range keys {
		if !pick(k, key) {
			continue
		}
		if !found || (preferLarger && k > best) || (!preferLarger && k < best) {
			best, found = k, true
		}
	}
	return best, found
}

func (s *TreeMapTestSuite) TestNavigationAgainstScan() {
	r := rand.New(rand.NewPCG(11, 13))
	for round := 0; round < 20; round++ {
		m := s.newMap()
		n := r.IntN(60)
		for i := 0; i < n; i++ {
			m.Put(r.IntN(100)*2, "")
		}
		keys := keysOf[string](m)

		for q := -3; q <= 203; q++ {
			want, wantOK := scan(keys, q, func(k, key int) bool { return k <= key }, true)
			got, ok := m.FloorKey(q)
			s.Equal(wantOK, ok, "floor %d", q)
			s.Equal(want, got, "floor %d", q)

			want, wantOK = scan(keys, q, func(k, key int) bool { return k >= key }, false)
			got, ok = m.CeilingKey(q)
			s.Equal(wantOK, ok, "ceiling %d", q)
			s.Equal(want, got, "ceiling %d", q)

			want, wantOK = scan(keys, q, func(k, key int) bool { return k < key }, true)
			got, ok = m.LowerKey(q)
			s.Equal(wantOK, ok, "lower %d", q)
			s.Equal(want, got, "lower %d", q)

			want, wantOK = scan(keys, q, func(k, key int) bool { return k > key }, false)
			got, ok = m.HigherKey(q)
			s.Equal(wantOK, ok, "higher %d", q)
			s.Equal(want, got, "higher %d", q)
		}
	}
}

func (s *TreeMapTestSuite) TestNavigationEntries() {
	m := s.scenarioMap()

	e, ok := m.FloorEntry(6)
	s.True(ok)
	s.Equal(Entry[int, string]{Key: 5, Value: "5"}, e)

	e, ok = m.HigherEntry(9)
	s.False(ok)
	s.Equal(Entry[int, string]{}, e)

	e, _ = m.CeilingEntry(0)
	s.Equal(1, e.Key)
	e, _ = m.LowerEntry(100)
	s.Equal(9, e.Key)
}

func (s *TreeMapTestSuite) TestFirstAndLast() {
	m := s.newMap()

	_, err := m.FirstKey()
	s.ErrorIs(err, ErrEmptyMap)
	_, err = m.LastKey()
	s.ErrorIs(err, ErrEmptyMap)
	_, err = m.FirstValue()
	s.ErrorIs(err, ErrEmptyMap)
	_, err = m.LastValue()
	s.ErrorIs(err, ErrEmptyMap)
	_, ok := m.FirstEntry()
	s.False(ok)

	m = s.scenarioMap()
	k, err := m.FirstKey()
	s.NoError(err)
	s.Equal(1, k)
	k, _ = m.LastKey()
	s.Equal(9, k)
	v, _ := m.FirstValue()
	s.Equal("1", v)
	v, _ = m.LastValue()
	s.Equal("9", v)
	e, _ := m.LastEntry()
	s.Equal(9, e.Key)
}

func (s *TreeMapTestSuite) TestEntrySnapshotDetached() {
	m := s.scenarioMap()
	e, _ := m.FirstEntry()

	m.Put(1, "changed")
	s.Equal("1", e.Value)
}

func (s *TreeMapTestSuite) TestPoll() {
	m := s.scenarioMap()

	e, ok := m.PollFirstEntry()
	s.True(ok)
	s.Equal(1, e.Key)
	e, _ = m.PollLastEntry()
	s.Equal(9, e.Key)
	k, ok := m.PollFirstKey()
	s.True(ok)
	s.Equal(3, k)
	k, _ = m.PollLastKey()
	s.Equal(8, k)
	s.Equal([]int{4, 5, 7}, keysOf[string](m))
	s.assertValid(m)

	m.Clear()
	_, ok = m.PollFirstEntry()
	s.False(ok)
	_, ok = m.PollLastKey()
	s.False(ok)
}

func (s *TreeMapTestSuite) TestBackward() {
	m := s.scenarioMap()
	s.Equal([]int{9, 8, 7, 5, 4, 3, 1}, keysBackward[string](m))

	var seen []int
	for k := range m.All() {
		if k > 4 {
			break
		}
		seen = append(seen, k)
	}
	s.Equal([]int{1, 3, 4}, seen)
}
