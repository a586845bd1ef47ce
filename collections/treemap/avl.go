package treemap

import "fmt"

// avl AVL 平衡策略，node.tag 存放子树高度（叶子为 1）.
type avl[K any, V comparable] struct{}

func (avl[K, V]) kind() Balance { return BalanceAVL }

func (avl[K, V]) init(n *node[K, V]) { n.tag = 1 }

func height[K any, V comparable](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.tag
}

// updateHeight 根据子节点重算高度.
func updateHeight[K any, V comparable](n *node[K, V]) {
	n.tag = 1 + max(height(n.left), height(n.right))
}

// balanceFactor 返回 height(left) - height(right).
func balanceFactor[K any, V comparable](n *node[K, V]) int {
	return height(n.left) - height(n.right)
}

func (avl[K, V]) afterInsert(m *TreeMap[K, V], n *node[K, V]) {
	m.stats.Fixups++
	avlRebalance(m, n.parent)
}

func (avl[K, V]) afterRemove(m *TreeMap[K, V], _, parent, _ *node[K, V]) {
	m.stats.Fixups++
	avlRebalance(m, parent)
}

// avlRebalance 从 n 向根回溯，更新高度并在失衡处做单旋或双旋.
// 某个子树根的高度不再变化时，祖先不受影响，提前结束.
func avlRebalance[K any, V comparable](m *TreeMap[K, V], n *node[K, V]) {
	for n != nil {
		h := n.tag
		updateHeight(n)
		switch bf := balanceFactor(n); {
		case bf > 1:
			if balanceFactor(n.left) < 0 {
				avlRotateLeft(m, n.left)
			}
			n = avlRotateRight(m, n)
		case bf < -1:
			if balanceFactor(n.right) > 0 {
				avlRotateRight(m, n.right)
			}
			n = avlRotateLeft(m, n)
		}
		if n.tag == h {
			return
		}
		n = n.parent
	}
}

// avlRotateLeft 左旋并返回新的子树根.
func avlRotateLeft[K any, V comparable](m *TreeMap[K, V], n *node[K, V]) *node[K, V] {
	r := n.right
	m.rotateLeft(n)
	updateHeight(n)
	updateHeight(r)
	return r
}

// avlRotateRight 右旋并返回新的子树根.
func avlRotateRight[K any, V comparable](m *TreeMap[K, V], n *node[K, V]) *node[K, V] {
	l := n.left
	m.rotateRight(n)
	updateHeight(n)
	updateHeight(l)
	return l
}

// check 返回子树高度.
func (a avl[K, V]) check(n *node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	lh, err := a.check(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := a.check(n.right)
	if err != nil {
		return 0, err
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, fmt.Errorf("%w: 节点 %v 平衡因子 %d 越界", ErrCorrupt, n.key, d)
	}
	h := 1 + max(lh, rh)
	if n.tag != h {
		return 0, fmt.Errorf("%w: 节点 %v 记录高度 %d，实际 %d", ErrCorrupt, n.key, n.tag, h)
	}
	return h, nil
}
