package treemap

// Stats 结构调整计数.
// 计数随操作累加，Clear 不会重置.
type Stats struct {
	// Size 当前元素数量
	Size int
	// Height 树高，空树为 0
	Height int
	// Inserts 新建节点次数
	Inserts uint64
	// Removes 摘除节点次数
	Removes uint64
	// Rotations 单次旋转次数
	Rotations uint64
	// Fixups 触发平衡修复的次数
	Fixups uint64
}

// Stats 返回统计快照，计算树高需要 O(n).
func (m *TreeMap[K, V]) Stats() Stats {
	s := m.stats
	s.Size = m.size
	s.Height = treeHeight(m.root)
	return s
}

func treeHeight[K any, V comparable](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(treeHeight(n.left), treeHeight(n.right))
}
