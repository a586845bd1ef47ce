package treemap

import "fmt"

// Balance 平衡策略.
type Balance string

// 平衡策略常量.
const (
	// BalanceRedBlack 红黑树，默认策略
	BalanceRedBlack Balance = "redblack"
	// BalanceAVL AVL 树，查找更快，写入旋转更多
	BalanceAVL Balance = "avl"
)

// Valid 判断策略是否受支持.
func (b Balance) Valid() bool {
	return b == BalanceRedBlack || b == BalanceAVL
}

// balancer 平衡策略接口.
// 导航、迭代器、视图与策略无关，只有结构调整委托给它.
type balancer[K any, V comparable] interface {
	kind() Balance

	// init 初始化新节点的 tag.
	init(n *node[K, V])

	// afterInsert 在 n 挂入树后恢复不变式.
	afterInsert(t *TreeMap[K, V], n *node[K, V])

	// afterRemove 在 removed 被摘除后恢复不变式.
	// child 是顶替 removed 位置的节点（可能为 nil），parent 是它的新父节点.
	afterRemove(t *TreeMap[K, V], child, parent, removed *node[K, V])

	// check 递归校验子树并返回其黑高或高度.
	check(n *node[K, V]) (int, error)
}

func newBalancer[K any, V comparable](b Balance) balancer[K, V] {
	switch b {
	case BalanceRedBlack, "":
		return redBlack[K, V]{}
	case BalanceAVL:
		return avl[K, V]{}
	default:
		panic(fmt.Sprintf("treemap: unknown balance strategy %q", b))
	}
}

// rotateLeft 以 n 为轴左旋.
// (n a (r b c)) => (r (n a b) c)
func (m *TreeMap[K, V]) rotateLeft(n *node[K, V]) {
	m.stats.Rotations++
	r := n.right
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.parent = n.parent
	if n.parent == nil {
		m.root = r
	} else if n == n.parent.left {
		n.parent.left = r
	} else {
		n.parent.right = r
	}
	r.left = n
	n.parent = r
}

// rotateRight 以 n 为轴右旋.
// (n (l a b) c) => (l a (n b c))
func (m *TreeMap[K, V]) rotateRight(n *node[K, V]) {
	m.stats.Rotations++
	l := n.left
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.parent = n.parent
	if n.parent == nil {
		m.root = l
	} else if n == n.parent.right {
		n.parent.right = l
	} else {
		n.parent.left = l
	}
	l.right = n
	n.parent = l
}
