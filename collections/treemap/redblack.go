package treemap

import "fmt"

// 红黑树节点颜色，存放在 node.tag.
const (
	black = 0
	red   = 1
)

// redBlack 红黑树平衡策略.
type redBlack[K any, V comparable] struct{}

func (redBlack[K, V]) kind() Balance { return BalanceRedBlack }

func (redBlack[K, V]) init(n *node[K, V]) { n.tag = red }

func isRed[K any, V comparable](n *node[K, V]) bool {
	return n != nil && n.tag == red
}

func (redBlack[K, V]) afterInsert(m *TreeMap[K, V], n *node[K, V]) {
	m.stats.Fixups++
	for n.parent != nil && n.parent.tag == red {
		gp := n.parent.parent
		if n.parent == gp.left {
			uncle := gp.right
			if isRed(uncle) {
				n.parent.tag = black
				uncle.tag = black
				gp.tag = red
				n = gp
			} else {
				if n == n.parent.right {
					n = n.parent
					m.rotateLeft(n)
				}
				n.parent.tag = black
				n.parent.parent.tag = red
				m.rotateRight(n.parent.parent)
			}
		} else {
			uncle := gp.left
			if isRed(uncle) {
				n.parent.tag = black
				uncle.tag = black
				gp.tag = red
				n = gp
			} else {
				if n == n.parent.left {
					n = n.parent
					m.rotateRight(n)
				}
				n.parent.tag = black
				n.parent.parent.tag = red
				m.rotateLeft(n.parent.parent)
			}
		}
	}
	m.root.tag = black
}

func (redBlack[K, V]) afterRemove(m *TreeMap[K, V], n, parent, removed *node[K, V]) {
	if removed.tag != black {
		return
	}
	m.stats.Fixups++
	for n != m.root && !isRed(n) {
		if n == parent.left {
			sibling := parent.right
			if isRed(sibling) {
				sibling.tag = black
				parent.tag = red
				m.rotateLeft(parent)
				sibling = parent.right
			}
			if sibling == nil || (!isRed(sibling.left) && !isRed(sibling.right)) {
				if sibling != nil {
					sibling.tag = red
				}
				n = parent
				parent = n.parent
			} else {
				if !isRed(sibling.right) {
					sibling.left.tag = black
					sibling.tag = red
					m.rotateRight(sibling)
					sibling = parent.right
				}
				sibling.tag = parent.tag
				parent.tag = black
				if sibling.right != nil {
					sibling.right.tag = black
				}
				m.rotateLeft(parent)
				n = m.root
			}
		} else {
			sibling := parent.left
			if isRed(sibling) {
				sibling.tag = black
				parent.tag = red
				m.rotateRight(parent)
				sibling = parent.left
			}
			if sibling == nil || (!isRed(sibling.right) && !isRed(sibling.left)) {
				if sibling != nil {
					sibling.tag = red
				}
				n = parent
				parent = n.parent
			} else {
				if !isRed(sibling.left) {
					sibling.right.tag = black
					sibling.tag = red
					m.rotateLeft(sibling)
					sibling = parent.left
				}
				sibling.tag = parent.tag
				parent.tag = black
				if sibling.left != nil {
					sibling.left.tag = black
				}
				m.rotateRight(parent)
				n = m.root
			}
		}
	}
	if n != nil {
		n.tag = black
	}
}

// check 返回子树黑高.
func (rb redBlack[K, V]) check(n *node[K, V]) (int, error) {
	if n == nil {
		return 1, nil
	}
	if n.tag != red && n.tag != black {
		return 0, fmt.Errorf("%w: 节点 %v 颜色值 %d 非法", ErrCorrupt, n.key, n.tag)
	}
	if n.parent == nil && n.tag != black {
		return 0, fmt.Errorf("%w: 根节点 %v 不是黑色", ErrCorrupt, n.key)
	}
	if n.tag == red && (isRed(n.left) || isRed(n.right)) {
		return 0, fmt.Errorf("%w: 红色节点 %v 有红色子节点", ErrCorrupt, n.key)
	}
	lh, err := rb.check(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := rb.check(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: 节点 %v 左右黑高不等 (%d != %d)", ErrCorrupt, n.key, lh, rh)
	}
	if n.tag == black {
		lh++
	}
	return lh, nil
}
