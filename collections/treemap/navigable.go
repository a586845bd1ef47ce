package treemap

import "iter"

// NavigableMap 可导航有序 Map 接口.
//
// 由 *TreeMap 及其子映射、逆序映射视图实现. 所有视图共享同一棵树，
// 通过任何视图做的修改都走 TreeMap 唯一的插入/删除/平衡路径.
//
// 键不存在时，返回值类型为 V 的查询方法返回默认返回值（见 TreeMap.SetDefaultValue）.
// 可能插入新键的方法返回 error：子映射视图在键越界时返回 ErrOutOfRange.
type NavigableMap[K any, V comparable] interface {
	navigator[K, V]

	// 基础信息
	Len() int
	IsEmpty() bool
	Comparator() Comparator[K]
	DefaultValue() V

	// 点查询
	Get(key K) V
	Lookup(key K) (V, bool)
	GetOrDefault(key K, defaultVal V) V
	ContainsKey(key K) bool
	ContainsValue(value V) bool

	// 点更新
	Put(key K, value V) (V, error)
	PutIfAbsent(key K, value V) (V, error)
	Remove(key K) V
	RemoveValue(key K, value V) bool
	Replace(key K, value V) V
	ReplaceIf(key K, oldValue, newValue V) bool
	Clear()

	// 函数式更新，结果等于默认返回值时删除该键
	ComputeIfAbsent(key K, fn func(key K) V) (V, error)
	ComputeIfPresent(key K, fn func(key K, old V) V) V
	Compute(key K, fn func(key K, old V, present bool) V) (V, error)
	Merge(key K, value V, fn func(old, value V) V) (V, error)
	MergeAll(other NavigableMap[K, V], fn func(old, value V) V) error

	// 首尾
	FirstKey() (K, error)
	LastKey() (K, error)
	FirstValue() (V, error)
	LastValue() (V, error)
	FirstEntry() (Entry[K, V], bool)
	LastEntry() (Entry[K, V], bool)
	PollFirstEntry() (Entry[K, V], bool)
	PollLastEntry() (Entry[K, V], bool)
	PollFirstKey() (K, bool)
	PollLastKey() (K, bool)

	// 导航
	LowerKey(key K) (K, bool)
	FloorKey(key K) (K, bool)
	CeilingKey(key K) (K, bool)
	HigherKey(key K) (K, bool)
	LowerEntry(key K) (Entry[K, V], bool)
	FloorEntry(key K) (Entry[K, V], bool)
	CeilingEntry(key K) (Entry[K, V], bool)
	HigherEntry(key K) (Entry[K, V], bool)

	// 视图
	SubMap(from K, fromInclusive bool, to K, toInclusive bool) (NavigableMap[K, V], error)
	HeadMap(to K, inclusive bool) (NavigableMap[K, V], error)
	TailMap(from K, inclusive bool) (NavigableMap[K, V], error)
	DescendingMap() NavigableMap[K, V]
	KeySet() *KeySet[K, V]
	NavigableKeySet() *KeySet[K, V]
	DescendingKeySet() *KeySet[K, V]
	Values() *Values[K, V]
	EntrySet() *EntrySet[K, V]

	// 遍历
	Iterator() *Iterator[K, V]
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]
}

// navigator 视图内部接口，方法均按视图自身的顺序与边界解释.
type navigator[K any, V comparable] interface {
	tree() *TreeMap[K, V]
	inRange(key K) bool

	firstNode() *node[K, V]
	lastNode() *node[K, V]
	ceilingNode(key K) *node[K, V]
	floorNode(key K) *node[K, V]
	higherNode(key K) *node[K, V]
	lowerNode(key K) *node[K, V]

	// nextNode/prevNode 越过视图边界时返回 nil.
	nextNode(n *node[K, V]) *node[K, V]
	prevNode(n *node[K, V]) *node[K, V]

	// update 是所有条件写入的唯一入口.
	// fn 收到旧值（不存在时为默认返回值）与是否存在，返回新值以及是否保留；
	// 不保留时删除已存在的键，或不插入缺失的键. 返回旧值.
	update(key K, fn func(old V, present bool) (V, bool)) (V, error)
}

// viewCache 懒加载的视图缓存.
type viewCache[K any, V comparable] struct {
	keys       *KeySet[K, V]
	values     *Values[K, V]
	entries    *EntrySet[K, V]
	descending NavigableMap[K, V]
}

func (c *viewCache[K, V]) keySet(m NavigableMap[K, V]) *KeySet[K, V] {
	if c.keys == nil {
		c.keys = newKeySet(m)
	}
	return c.keys
}

func (c *viewCache[K, V]) valueSet(m NavigableMap[K, V]) *Values[K, V] {
	if c.values == nil {
		c.values = newValues(m)
	}
	return c.values
}

func (c *viewCache[K, V]) entrySet(m NavigableMap[K, V]) *EntrySet[K, V] {
	if c.entries == nil {
		c.entries = newEntrySet(m)
	}
	return c.entries
}

func keyOf[K any, V comparable](n *node[K, V]) (K, bool) {
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}

func entryOf[K any, V comparable](n *node[K, V]) (Entry[K, V], bool) {
	if n == nil {
		return Entry[K, V]{}, false
	}
	return n.entry(), true
}

func firstKey[K any, V comparable](m navigator[K, V]) (K, error) {
	n := m.firstNode()
	if n == nil {
		var zero K
		return zero, ErrEmptyMap
	}
	return n.key, nil
}

func lastKey[K any, V comparable](m navigator[K, V]) (K, error) {
	n := m.lastNode()
	if n == nil {
		var zero K
		return zero, ErrEmptyMap
	}
	return n.key, nil
}

func firstValue[K any, V comparable](m navigator[K, V]) (V, error) {
	n := m.firstNode()
	if n == nil {
		return m.tree().def, ErrEmptyMap
	}
	return n.value, nil
}

func lastValue[K any, V comparable](m navigator[K, V]) (V, error) {
	n := m.lastNode()
	if n == nil {
		return m.tree().def, ErrEmptyMap
	}
	return n.value, nil
}

// poll 摘除 n 并返回其快照.
func poll[K any, V comparable](m navigator[K, V], n *node[K, V]) (Entry[K, V], bool) {
	if n == nil {
		return Entry[K, V]{}, false
	}
	e := n.entry()
	m.tree().deleteNode(n)
	return e, true
}

func pollKey[K any, V comparable](m navigator[K, V], n *node[K, V]) (K, bool) {
	e, ok := poll(m, n)
	return e.Key, ok
}

func lookup[K any, V comparable](m navigator[K, V], key K) *node[K, V] {
	if !m.inRange(key) {
		return nil
	}
	return m.tree().findNode(key)
}

func containsValue[K any, V comparable](m navigator[K, V], value V) bool {
	for n := m.firstNode(); n != nil; n = m.nextNode(n) {
		if n.value == value {
			return true
		}
	}
	return false
}

func size[K any, V comparable](m navigator[K, V]) int {
	count := 0
	for n := m.firstNode(); n != nil; n = m.nextNode(n) {
		count++
	}
	return count
}

// all 按视图顺序遍历.
// 遍历过程中通过其他句柄修改结构时，部分键可能被跳过；需要边遍历边删除请使用 Iterator.
func all[K any, V comparable](m navigator[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.firstNode(); n != nil; n = m.nextNode(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// backward 按视图逆序遍历.
func backward[K any, V comparable](m navigator[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.lastNode(); n != nil; n = m.prevNode(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
