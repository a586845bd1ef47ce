// Package treemap 提供基于自平衡二叉搜索树实现的可导航有序 Map.
//
// 默认使用红黑树，也可以在构造时切换为 AVL 树，两者对外行为完全一致.
// 除点查询与更新外，还支持 floor/ceiling/lower/higher 导航、子映射视图、
// 逆序视图以及可在遍历中删除的双向迭代器.
//
// TreeMap 不是并发安全的.
package treemap

import (
	"cmp"

	"github.com/Tsukikage7/navmap/logger"
)

// Entry 键值对.
// 由查询方法导出的快照，与树节点脱离，之后的修改不会影响已导出的 Entry.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// TreeMap 基于自平衡二叉搜索树的有序 Map.
//
// 特性:
//   - 按键排序存储
//   - Put/Get/Remove 操作时间复杂度 O(log n)
//   - FirstKey/LastKey 时间复杂度 O(1)
//   - 支持自定义比较器与默认返回值
//
// 默认返回值（见 SetDefaultValue）在键不存在时由 Get 等方法返回.
// 注意: 若某个键实际存储的值恰好等于默认返回值，Get 无法区分二者，
// 需要区分时请使用 Lookup.
//
// 示例:
//
//	tm := treemap.New[int, string](treemap.OrderedCompare[int])
//	tm.Put(3, "three")
//	tm.Put(1, "one")
//	tm.Put(2, "two")
//	tm.FloorKey(2) // 2, true
type TreeMap[K any, V comparable] struct {
	root  *node[K, V]
	first *node[K, V]
	last  *node[K, V]
	size  int

	cmp      Comparator[K]
	def      V
	balancer balancer[K, V]
	stats    Stats
	log      logger.Logger

	views viewCache[K, V]
}

// New 创建 TreeMap，需要提供比较器.
func New[K any, V comparable](cmp Comparator[K], opts ...Option) *TreeMap[K, V] {
	o := buildOptions(opts)
	return &TreeMap[K, V]{
		cmp:      cmp,
		balancer: newBalancer[K, V](o.Balance),
		log:      o.Logger,
	}
}

// NewOrdered 创建 TreeMap，使用内置类型的默认比较.
// 支持 int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
// float32, float64, string 等实现了 cmp.Ordered 的类型.
func NewOrdered[K cmp.Ordered, V comparable](opts ...Option) *TreeMap[K, V] {
	return New[K, V](OrderedCompare[K], opts...)
}

// SetDefaultValue 设置默认返回值.
// 该值用于缺失键的查询结果，也是 Compute/Merge 系列方法的删除信号.
func (m *TreeMap[K, V]) SetDefaultValue(v V) {
	m.def = v
}

// DefaultValue 返回默认返回值.
func (m *TreeMap[K, V]) DefaultValue() V {
	return m.def
}

// Balance 返回平衡策略.
func (m *TreeMap[K, V]) Balance() Balance {
	return m.balancer.kind()
}

// Comparator 返回比较器.
func (m *TreeMap[K, V]) Comparator() Comparator[K] {
	return m.cmp
}

// Len 返回元素数量.
func (m *TreeMap[K, V]) Len() int {
	return m.size
}

// IsEmpty 判断是否为空.
func (m *TreeMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Get 获取键对应的值，不存在时返回默认返回值.
func (m *TreeMap[K, V]) Get(key K) V {
	if n := m.findNode(key); n != nil {
		return n.value
	}
	return m.def
}

// Lookup 获取键对应的值并报告键是否存在.
func (m *TreeMap[K, V]) Lookup(key K) (V, bool) {
	if n := m.findNode(key); n != nil {
		return n.value, true
	}
	return m.def, false
}

// GetOrDefault 获取键对应的值，不存在则返回 defaultVal.
func (m *TreeMap[K, V]) GetOrDefault(key K, defaultVal V) V {
	if n := m.findNode(key); n != nil {
		return n.value
	}
	return defaultVal
}

// ContainsKey 判断键是否存在.
func (m *TreeMap[K, V]) ContainsKey(key K) bool {
	return m.findNode(key) != nil
}

// ContainsValue 判断是否存在等于 value 的值，时间复杂度 O(n).
func (m *TreeMap[K, V]) ContainsValue(value V) bool {
	for n := m.first; n != nil; n = n.next() {
		if n.value == value {
			return true
		}
	}
	return false
}

// Put 插入或更新键值对，返回旧值；键不存在时返回默认返回值.
// 对 TreeMap 本身总是返回 nil 错误，子映射视图在键越界时返回 ErrOutOfRange.
func (m *TreeMap[K, V]) Put(key K, value V) (V, error) {
	n, parent, c := m.locate(key)
	if n != nil {
		old := n.value
		n.value = value
		return old, nil
	}
	m.insert(parent, c, key, value)
	return m.def, nil
}

// PutIfAbsent 键不存在或映射到默认返回值时写入 value.
// 返回写入前的值，键不存在时返回默认返回值.
func (m *TreeMap[K, V]) PutIfAbsent(key K, value V) (V, error) {
	n, parent, c := m.locate(key)
	if n != nil {
		old := n.value
		if old == m.def {
			n.value = value
		}
		return old, nil
	}
	m.insert(parent, c, key, value)
	return m.def, nil
}

// Remove 删除键值对，返回被删除的值；键不存在时返回默认返回值.
func (m *TreeMap[K, V]) Remove(key K) V {
	n := m.findNode(key)
	if n == nil {
		return m.def
	}
	old := n.value
	m.deleteNode(n)
	return old
}

// RemoveValue 仅当键当前映射到 value 时删除，返回是否删除.
func (m *TreeMap[K, V]) RemoveValue(key K, value V) bool {
	n := m.findNode(key)
	if n == nil || n.value != value {
		return false
	}
	m.deleteNode(n)
	return true
}

// Replace 仅当键存在时替换值，返回旧值；键不存在时返回默认返回值.
func (m *TreeMap[K, V]) Replace(key K, value V) V {
	n := m.findNode(key)
	if n == nil {
		return m.def
	}
	old := n.value
	n.value = value
	return old
}

// ReplaceIf 仅当键当前映射到 oldValue 时替换为 newValue.
func (m *TreeMap[K, V]) ReplaceIf(key K, oldValue, newValue V) bool {
	n := m.findNode(key)
	if n == nil || n.value != oldValue {
		return false
	}
	n.value = newValue
	return true
}

// Clear 清空所有元素.
func (m *TreeMap[K, V]) Clear() {
	m.log.Debugf("treemap: 清空 %d 个元素", m.size)
	m.root = nil
	m.first = nil
	m.last = nil
	m.size = 0
}

// Copy 深拷贝 TreeMap.
// 副本保留节点颜色/高度与默认返回值，之后与原映射互不影响.
func (m *TreeMap[K, V]) Copy() *TreeMap[K, V] {
	c := &TreeMap[K, V]{
		root:     m.root.clone(nil),
		size:     m.size,
		cmp:      m.cmp,
		def:      m.def,
		balancer: m.balancer,
		log:      m.log,
	}
	if c.root != nil {
		c.first = c.root.min()
		c.last = c.root.max()
	}
	return c
}

// findNode 查找键对应的节点.
func (m *TreeMap[K, V]) findNode(key K) *node[K, V] {
	current := m.root
	for current != nil {
		c := m.cmp(key, current.key)
		if c < 0 {
			current = current.left
		} else if c > 0 {
			current = current.right
		} else {
			return current
		}
	}
	return nil
}

// locate 查找键.
// 找到时返回该节点；否则返回插入位置的父节点与最后一次比较结果.
func (m *TreeMap[K, V]) locate(key K) (n, parent *node[K, V], c int) {
	n = m.root
	for n != nil {
		c = m.cmp(key, n.key)
		if c == 0 {
			return n, n.parent, 0
		}
		parent = n
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil, parent, c
}

// insert 在 parent 下挂入新节点并恢复平衡，c 决定挂在左侧还是右侧.
func (m *TreeMap[K, V]) insert(parent *node[K, V], c int, key K, value V) *node[K, V] {
	n := &node[K, V]{key: key, value: value, parent: parent}
	m.balancer.init(n)

	switch {
	case parent == nil:
		m.root = n
		m.first = n
		m.last = n
	case c < 0:
		parent.left = n
		if parent == m.first {
			m.first = n
		}
	default:
		parent.right = n
		if parent == m.last {
			m.last = n
		}
	}
	m.size++
	m.stats.Inserts++

	m.balancer.afterInsert(m, n)
	return n
}

// deleteNode 从树中删除 n.
//
// n 有两个子节点时，把后继的键值复制到 n，转而摘除后继节点；
// 此时持有后继节点引用的游标需要改为指向 n.
func (m *TreeMap[K, V]) deleteNode(n *node[K, V]) {
	m.size--
	m.stats.Removes++

	if n == m.first {
		m.first = n.next()
	}
	if n == m.last {
		m.last = n.prev()
	}

	if n.left != nil && n.right != nil {
		successor := n.right.min()
		n.key = successor.key
		n.value = successor.value
		if successor == m.last {
			m.last = n
		}
		n = successor
	}

	child := n.left
	if child == nil {
		child = n.right
	}
	parent := n.parent

	if child != nil {
		child.parent = parent
	}
	if parent == nil {
		m.root = child
	} else if n == parent.left {
		parent.left = child
	} else {
		parent.right = child
	}

	m.balancer.afterRemove(m, child, parent, n)

	n.left = nil
	n.right = nil
	n.parent = nil
}
