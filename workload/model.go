package workload

import (
	"fmt"

	"github.com/google/btree"
)

// outcome 一次操作的可观察结果.
type outcome struct {
	key   int
	value int
	ok    bool
	err   bool
}

func (o outcome) String() string {
	if o.err {
		return "out-of-range"
	}
	return fmt.Sprintf("{key:%d value:%d ok:%t}", o.key, o.value, o.ok)
}

type item struct {
	key   int
	value int
}

func itemLess(a, b item) bool { return a.key < b.key }

// model 参照实现，基于 B 树，默认返回值为 0.
// 所有写入都经由视图，因此其中只会出现视图范围内的键.
type model struct {
	rng  *Range
	desc bool
	tree *btree.BTreeG[item]
}

func newModel(rng *Range, desc bool) *model {
	return &model{rng: rng, desc: desc, tree: btree.NewG(8, itemLess)}
}

func (m *model) inRange(k int) bool {
	r := m.rng
	if r == nil {
		return true
	}
	if r.From != nil && (k < *r.From || (k == *r.From && !r.FromInclusive)) {
		return false
	}
	if r.To != nil && (k > *r.To || (k == *r.To && !r.ToInclusive)) {
		return false
	}
	return true
}

func (m *model) len() int { return m.tree.Len() }

func (m *model) get(k int) (int, bool) {
	it, ok := m.tree.Get(item{key: k})
	return it.value, ok
}

func (m *model) set(k, v int) { m.tree.ReplaceOrInsert(item{key: k, value: v}) }

func (m *model) del(k int) { m.tree.Delete(item{key: k}) }

// items 按键升序导出.
func (m *model) items() []item {
	out := make([]item, 0, m.tree.Len())
	m.tree.Ascend(func(it item) bool {
		out = append(out, it)
		return true
	})
	return out
}

// 以下导航均按根映射顺序.

func (m *model) ceiling(k int) (it item, ok bool) {
	m.tree.AscendGreaterOrEqual(item{key: k}, func(x item) bool {
		it, ok = x, true
		return false
	})
	return it, ok
}

func (m *model) higher(k int) (it item, ok bool) {
	m.tree.AscendGreaterOrEqual(item{key: k}, func(x item) bool {
		if x.key == k {
			return true
		}
		it, ok = x, true
		return false
	})
	return it, ok
}

func (m *model) floor(k int) (it item, ok bool) {
	m.tree.DescendLessOrEqual(item{key: k}, func(x item) bool {
		it, ok = x, true
		return false
	})
	return it, ok
}

func (m *model) lower(k int) (it item, ok bool) {
	m.tree.DescendLessOrEqual(item{key: k}, func(x item) bool {
		if x.key == k {
			return true
		}
		it, ok = x, true
		return false
	})
	return it, ok
}

func (m *model) poll(first bool) outcome {
	var (
		it item
		ok bool
	)
	if first != m.desc {
		it, ok = m.tree.DeleteMin()
	} else {
		it, ok = m.tree.DeleteMax()
	}
	if !ok {
		return outcome{}
	}
	return outcome{key: it.key, value: it.value, ok: true}
}

// navigate 按视图顺序解释导航操作，逆序视图交换方向.
func (m *model) navigate(kind OpKind, k int) outcome {
	if m.desc {
		switch kind {
		case OpFloor:
			kind = OpCeiling
		case OpCeiling:
			kind = OpFloor
		case OpLower:
			kind = OpHigher
		case OpHigher:
			kind = OpLower
		}
	}
	var (
		it item
		ok bool
	)
	switch kind {
	case OpFloor:
		it, ok = m.floor(k)
	case OpCeiling:
		it, ok = m.ceiling(k)
	case OpLower:
		it, ok = m.lower(k)
	default:
		it, ok = m.higher(k)
	}
	if !ok {
		return outcome{}
	}
	return outcome{key: it.key, ok: true}
}

func (m *model) apply(op Op) outcome {
	k := op.Key
	old, present := m.get(k)
	switch op.Kind {
	case OpPut:
		if !m.inRange(k) {
			return outcome{err: true}
		}
		m.set(k, op.Value)
		return outcome{value: old}
	case OpPutIfAbsent:
		if !m.inRange(k) {
			return outcome{err: true}
		}
		if !present || old == 0 {
			m.set(k, op.Value)
		}
		return outcome{value: old}
	case OpRemove:
		if !m.inRange(k) || !present {
			return outcome{}
		}
		m.del(k)
		return outcome{value: old}
	case OpGet:
		if !m.inRange(k) || !present {
			return outcome{}
		}
		return outcome{value: old, ok: true}
	case OpAddTo:
		if !m.inRange(k) {
			return outcome{err: true}
		}
		m.set(k, old+op.Value)
		return outcome{value: old}
	case OpSubFrom:
		if !m.inRange(k) {
			return outcome{err: true}
		}
		if op.Value == 0 {
			return outcome{value: old}
		}
		nv := old - op.Value
		keep := nv < 0
		if op.Value > 0 {
			keep = nv > 0
		}
		switch {
		case keep:
			m.set(k, nv)
		case present:
			m.del(k)
		}
		return outcome{value: old}
	case OpPollFirst:
		return m.poll(true)
	case OpPollLast:
		return m.poll(false)
	case OpFloor, OpCeiling, OpLower, OpHigher:
		return m.navigate(op.Kind, k)
	case OpClear:
		m.tree.Clear(false)
	}
	return outcome{}
}
