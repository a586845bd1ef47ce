package treemap

import (
	"math/rand/v2"
	"slices"
	"time"
)

func (s *TreeMapTestSuite) TestNew() {
	m := s.newMap()
	s.NotNil(m)
	s.Equal(0, m.Len())
	s.True(m.IsEmpty())
	s.Equal(s.balance, m.Balance())
	s.assertValid(m)
}

func (s *TreeMapTestSuite) TestPutAndGet() {
	m := s.newMap()

	old, err := m.Put(3, "three")
	s.NoError(err)
	s.Equal("", old)
	m.Put(1, "one")
	m.Put(2, "two")

	s.Equal(3, m.Len())
	s.Equal("one", m.Get(1))
	s.Equal("two", m.Get(2))
	s.Equal("three", m.Get(3))
	s.Equal("", m.Get(4))

	old, err = m.Put(1, "ONE")
	s.NoError(err)
	s.Equal("one", old)
	s.Equal("ONE", m.Get(1))
	s.Equal(3, m.Len())
	s.assertValid(m)
}

func (s *TreeMapTestSuite) TestDefaultValue() {
	m := s.newMap()
	m.SetDefaultValue("none")
	s.Equal("none", m.DefaultValue())

	s.Equal("none", m.Get(1))
	old, _ := m.Put(1, "one")
	s.Equal("none", old)
	s.Equal("none", m.Remove(42))

	// 存储值恰好等于默认返回值时，Get 无法区分，Lookup 可以
	m.Put(2, "none")
	s.Equal("none", m.Get(2))
	v, ok := m.Lookup(2)
	s.True(ok)
	s.Equal("none", v)
	_, ok = m.Lookup(3)
	s.False(ok)
}

func (s *TreeMapTestSuite) TestGetOrDefault() {
	m := s.newMap()
	m.Put(1, "one")

	s.Equal("one", m.GetOrDefault(1, "x"))
	s.Equal("x", m.GetOrDefault(2, "x"))
}

func (s *TreeMapTestSuite) TestPutIfAbsent() {
	m := s.newMap()

	old, err := m.PutIfAbsent(1, "one")
	s.NoError(err)
	s.Equal("", old)
	s.Equal("one", m.Get(1))

	old, _ = m.PutIfAbsent(1, "uno")
	s.Equal("one", old)
	s.Equal("one", m.Get(1))

	// 映射到默认返回值的键视为缺失
	m.Put(2, "")
	old, _ = m.PutIfAbsent(2, "two")
	s.Equal("", old)
	s.Equal("two", m.Get(2))
}

func (s *TreeMapTestSuite) TestRemove() {
	m := s.scenarioMap()

	s.Equal("3", m.Remove(3))
	s.Equal("", m.Remove(3))
	s.False(m.ContainsKey(3))
	s.Equal(6, m.Len())
	s.assertValid(m)

	s.False(m.RemoveValue(4, "x"))
	s.True(m.RemoveValue(4, "4"))
	s.False(m.ContainsKey(4))
	s.assertValid(m)

	for _, k := range []int{1, 5, 7, 8, 9} {
		m.Remove(k)
		s.assertValid(m)
	}
	s.True(m.IsEmpty())
}

func (s *TreeMapTestSuite) TestReplace() {
	m := s.newMap()
	m.Put(1, "one")

	s.Equal("one", m.Replace(1, "uno"))
	s.Equal("", m.Replace(2, "two"))
	s.False(m.ContainsKey(2))

	s.False(m.ReplaceIf(1, "one", "eins"))
	s.True(m.ReplaceIf(1, "uno", "eins"))
	s.Equal("eins", m.Get(1))
}

func (s *TreeMapTestSuite) TestContains() {
	m := s.scenarioMap()

	s.True(m.ContainsKey(5))
	s.False(m.ContainsKey(6))
	s.True(m.ContainsValue("9"))
	s.False(m.ContainsValue("6"))
}

func (s *TreeMapTestSuite) TestClear() {
	m := s.scenarioMap()
	m.Clear()

	s.True(m.IsEmpty())
	_, err := m.FirstKey()
	s.ErrorIs(err, ErrEmptyMap)
	s.assertValid(m)

	m.Put(1, "one")
	s.Equal([]int{1}, keysOf[string](m))
}

func (s *TreeMapTestSuite) TestScenarioInsert() {
	m := s.newMap()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		m.Put(k, "")
		if s.balance == BalanceRedBlack {
			s.Equal(black, m.root.tag)
		}
		s.assertValid(m)
	}
	s.Equal([]int{1, 3, 4, 5, 7, 8, 9}, keysOf[string](m))
}

func (s *TreeMapTestSuite) TestScenarioNavigation() {
	m := s.scenarioMap()

	k, ok := m.FloorKey(6)
	s.True(ok)
	s.Equal(5, k)
	k, _ = m.CeilingKey(6)
	s.Equal(7, k)
	k, _ = m.LowerKey(5)
	s.Equal(4, k)
	k, _ = m.HigherKey(5)
	s.Equal(7, k)
}

func (s *TreeMapTestSuite) TestScenarioRemoveTwoChildren() {
	m := s.scenarioMap()
	n := m.findNode(5)
	s.Require().NotNil(n.left)
	s.Require().NotNil(n.right)

	s.Equal("5", m.Remove(5))

	// 后继 7 的键值搬进了原节点
	s.Equal(7, n.key)
	s.Equal("7", n.value)
	s.Equal([]int{1, 3, 4, 7, 8, 9}, keysOf[string](m))
	s.assertValid(m)
}

func (s *TreeMapTestSuite) TestScenarioSubMap() {
	m := s.scenarioMap()

	sub, err := m.SubMap(3, true, 8, false)
	s.Require().NoError(err)
	s.Equal([]int{3, 4, 5, 7}, keysOf(sub))

	first, err := sub.FirstKey()
	s.NoError(err)
	s.Equal(3, first)

	_, err = sub.Put(2, "2")
	s.ErrorIs(err, ErrOutOfRange)
	s.False(m.ContainsKey(2))
}

func (s *TreeMapTestSuite) TestScenarioCopy() {
	m := s.scenarioMap()
	c := m.Copy()

	c.Remove(1)
	s.True(m.ContainsKey(1))
	s.False(c.ContainsKey(1))
	s.assertValid(m)
	s.assertValid(c)

	m.Put(100, "100")
	s.False(c.ContainsKey(100))
	s.Equal(s.balance, c.Balance())
}

func (s *TreeMapTestSuite) TestCopyKeepsDefault() {
	m := s.newMap()
	m.SetDefaultValue("?")
	c := m.Copy()

	s.Equal("?", c.Get(1))
	s.True(c.IsEmpty())
	s.assertValid(c)
}

func (s *TreeMapTestSuite) TestRandomAgainstModel() {
	m := s.newMap()
	model := map[int]string{}
	r := rand.New(rand.NewPCG(7, uint64(len(s.balance))))

	for i := 0; i < 3000; i++ {
		k := r.IntN(200)
		switch r.IntN(3) {
		case 0, 1:
			v := time.Duration(i).String()
			m.Put(k, v)
			model[k] = v
		default:
			s.Equal(model[k], m.Remove(k))
			delete(model, k)
		}
		if i%100 == 0 {
			s.assertValid(m)
		}
	}
	s.assertValid(m)

	want := make([]int, 0, len(model))
	for k := range model {
		want = append(want, k)
	}
	slices.Sort(want)
	s.Equal(want, keysOf[string](m))
	s.Equal(len(model), m.Len())
	for k, v := range model {
		s.Equal(v, m.Get(k))
	}
}

func (s *TreeMapTestSuite) TestSequentialInsertBalanced() {
	m := s.newMap()
	for i := 0; i < 1024; i++ {
		m.Put(i, "")
	}
	s.assertValid(m)

	st := m.Stats()
	s.Equal(1024, st.Size)
	s.Equal(uint64(1024), st.Inserts)
	s.Positive(st.Rotations)
	// 红黑树高度不超过 2log(n+1)，AVL 约 1.44log(n)
	s.LessOrEqual(st.Height, 20)

	for i := 0; i < 1024; i += 2 {
		m.Remove(i)
	}
	s.assertValid(m)
	s.Equal(uint64(512), m.Stats().Removes)
}

func (s *TreeMapTestSuite) TestReverseComparator() {
	m := New[int, string](ReverseCompare[int], WithBalance(s.balance))
	for _, k := range []int{2, 9, 4} {
		m.Put(k, "")
	}
	s.Equal([]int{9, 4, 2}, keysOf[string](m))

	k, _ := m.FloorKey(5)
	s.Equal(9, k)
	k, _ = m.CeilingKey(5)
	s.Equal(4, k)
}

func (s *TreeMapTestSuite) TestTimeKey() {
	m := New[time.Time, int](TimeCompare, WithBalance(s.balance))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 3; i >= 0; i-- {
		m.Put(base.Add(time.Duration(i)*time.Hour), i)
	}

	first, err := m.FirstKey()
	s.NoError(err)
	s.True(first.Equal(base))

	k, ok := m.FloorKey(base.Add(90 * time.Minute))
	s.True(ok)
	s.True(k.Equal(base.Add(time.Hour)))
}

func (s *TreeMapTestSuite) TestStringKey() {
	m := NewOrdered[string, int](WithBalance(s.balance))
	for i, k := range []string{"pear", "apple", "fig"} {
		m.Put(k, i)
	}
	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	s.Equal([]string{"apple", "fig", "pear"}, keys)
}
