package treemap

import "fmt"

// Verify 校验树的全部不变式:
// 父子指针一致、中序严格递增、元素数量、首尾缓存以及平衡策略自身的约束.
// 发现问题时返回包装了 ErrCorrupt 的错误.
func (m *TreeMap[K, V]) Verify() error {
	if err := m.verify(); err != nil {
		m.log.Errorf("treemap: 校验失败: %v", err)
		return err
	}
	return nil
}

func (m *TreeMap[K, V]) verify() error {
	if m.root == nil {
		if m.size != 0 || m.first != nil || m.last != nil {
			return fmt.Errorf("%w: 空树但 size=%d", ErrCorrupt, m.size)
		}
		return nil
	}
	if m.root.parent != nil {
		return fmt.Errorf("%w: 根节点存在父节点", ErrCorrupt)
	}
	if err := checkLinks(m.root); err != nil {
		return err
	}

	count := 0
	var prev *node[K, V]
	for n := m.root.min(); n != nil; n = n.next() {
		if prev != nil && m.cmp(prev.key, n.key) >= 0 {
			return fmt.Errorf("%w: 键 %v 与 %v 顺序错误", ErrCorrupt, prev.key, n.key)
		}
		prev = n
		count++
	}
	if count != m.size {
		return fmt.Errorf("%w: 记录 size=%d，实际 %d", ErrCorrupt, m.size, count)
	}
	if m.first != m.root.min() {
		return fmt.Errorf("%w: first 缓存失效", ErrCorrupt)
	}
	if m.last != m.root.max() {
		return fmt.Errorf("%w: last 缓存失效", ErrCorrupt)
	}

	_, err := m.balancer.check(m.root)
	return err
}

// checkLinks 校验子节点的 parent 指针.
func checkLinks[K any, V comparable](n *node[K, V]) error {
	if n == nil {
		return nil
	}
	if n.left != nil && n.left.parent != n {
		return fmt.Errorf("%w: 节点 %v 的左子节点父指针错误", ErrCorrupt, n.key)
	}
	if n.right != nil && n.right.parent != n {
		return fmt.Errorf("%w: 节点 %v 的右子节点父指针错误", ErrCorrupt, n.key)
	}
	if err := checkLinks(n.left); err != nil {
		return err
	}
	return checkLinks(n.right)
}
