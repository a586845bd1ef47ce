package treemap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Tsukikage7/navmap/logger"
)

func (s *TreeMapTestSuite) observed() (*TreeMap[int, string], *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewOrdered[int, string](WithBalance(s.balance), WithLogger(logger.FromZap(zap.New(core))))
	return m, logs
}

func (s *TreeMapTestSuite) TestVerifyDetectsDisorder() {
	m, logs := s.observed()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		m.Put(k, "")
	}
	s.NoError(m.Verify())

	m.root.left.key, m.root.right.key = m.root.right.key, m.root.left.key
	s.ErrorIs(m.Verify(), ErrCorrupt)
	s.Equal(1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func (s *TreeMapTestSuite) TestVerifyDetectsBalanceViolation() {
	m, _ := s.observed()
	for i := 0; i < 16; i++ {
		m.Put(i, "")
	}
	s.NoError(m.Verify())

	if s.balance == BalanceRedBlack {
		m.root.tag = red
	} else {
		m.root.tag += 3
	}
	s.ErrorIs(m.Verify(), ErrCorrupt)
}

func (s *TreeMapTestSuite) TestVerifyDetectsStaleCache() {
	m, _ := s.observed()
	for i := 0; i < 8; i++ {
		m.Put(i, "")
	}
	m.first = m.root
	s.ErrorIs(m.Verify(), ErrCorrupt)

	m.first = m.root.min()
	m.size++
	s.ErrorIs(m.Verify(), ErrCorrupt)
}

func (s *TreeMapTestSuite) TestOutOfRangeLogged() {
	m, logs := s.observed()
	m.Put(1, "")
	sub, _ := m.HeadMap(5, false)

	_, err := sub.Put(9, "")
	s.ErrorIs(err, ErrOutOfRange)
	s.Equal(1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
