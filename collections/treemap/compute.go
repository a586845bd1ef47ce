package treemap

import "golang.org/x/exp/constraints"

// Number 支持累加的值类型.
type Number interface {
	constraints.Integer | constraints.Float
}

// update 单次下降完成查找与条件写入.
func (m *TreeMap[K, V]) update(key K, fn func(old V, present bool) (V, bool)) (V, error) {
	n, parent, c := m.locate(key)
	if n != nil {
		old := n.value
		if nv, keep := fn(old, true); keep {
			n.value = nv
		} else {
			m.deleteNode(n)
		}
		return old, nil
	}
	if nv, keep := fn(m.def, false); keep {
		m.insert(parent, c, key, nv)
	}
	return m.def, nil
}

func computeIfAbsent[K any, V comparable](m navigator[K, V], key K, fn func(K) V) (V, error) {
	def := m.tree().def
	result := def
	_, err := m.update(key, func(old V, present bool) (V, bool) {
		if present && old != def {
			result = old
			return old, true
		}
		result = fn(key)
		// 已存在但映射到默认返回值的键保持不变.
		return result, present || result != def
	})
	return result, err
}

func computeIfPresent[K any, V comparable](m navigator[K, V], key K, fn func(K, V) V) V {
	def := m.tree().def
	if !m.inRange(key) {
		return def
	}
	result := def
	_, _ = m.update(key, func(old V, present bool) (V, bool) {
		if !present {
			return old, false
		}
		if old == def {
			return old, true
		}
		result = fn(key, old)
		return result, result != def
	})
	return result
}

func compute[K any, V comparable](m navigator[K, V], key K, fn func(K, V, bool) V) (V, error) {
	def := m.tree().def
	result := def
	_, err := m.update(key, func(old V, present bool) (V, bool) {
		result = fn(key, old, present)
		return result, result != def
	})
	if err != nil {
		return def, err
	}
	return result, nil
}

func merge[K any, V comparable](m navigator[K, V], key K, value V, fn func(V, V) V) (V, error) {
	def := m.tree().def
	result := def
	_, err := m.update(key, func(old V, present bool) (V, bool) {
		if present && old != def {
			result = fn(old, value)
		} else {
			result = value
		}
		return result, result != def
	})
	if err != nil {
		return def, err
	}
	return result, nil
}

// mergeAll 逐条合并 other 的键值对，遇到第一个错误即停止，已合并的条目不回滚.
// other 不能是 m 自身或与 m 共享同一棵树的视图.
func mergeAll[K any, V comparable](m NavigableMap[K, V], other NavigableMap[K, V], fn func(V, V) V) error {
	for k, v := range other.All() {
		if _, err := m.Merge(k, v, fn); err != nil {
			return err
		}
	}
	return nil
}

// AddTo 把 delta 累加到 key 的值上，键不存在时以默认返回值为初值插入.
// 返回累加前的值.
func AddTo[K any, V Number](m NavigableMap[K, V], key K, delta V) (V, error) {
	return m.update(key, func(old V, _ bool) (V, bool) {
		return old + delta, true
	})
}

// SubFrom 从 key 的值中减去 delta，返回减去前的值.
//
// 结果越过默认返回值时删除该键（键不存在时不插入）：
// delta > 0 时结果 <= 默认返回值即删除，delta < 0 时结果 >= 默认返回值即删除.
func SubFrom[K any, V Number](m NavigableMap[K, V], key K, delta V) (V, error) {
	def := m.DefaultValue()
	return m.update(key, func(old V, present bool) (V, bool) {
		if delta == 0 {
			return old, present
		}
		nv := old - delta
		if delta > 0 {
			return nv, nv > def
		}
		return nv, nv < def
	})
}
