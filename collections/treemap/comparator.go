package treemap

import (
	"cmp"
	"time"
)

// Comparator 比较函数.
// 返回值: 负数(a<b), 0(a==b), 正数(a>b).
// 必须是全序关系，否则树的有序性无法保证.
type Comparator[K any] func(a, b K) int

// OrderedCompare 用于 cmp.Ordered 类型的比较器.
// 支持 int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
// float32, float64, string, uintptr 等类型.
func OrderedCompare[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// ReverseCompare 用于 cmp.Ordered 类型的逆序比较器.
func ReverseCompare[T cmp.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}

// TimeCompare 时间比较器.
func TimeCompare(a, b time.Time) int {
	return a.Compare(b)
}

// ReverseTimeCompare 时间逆序比较器.
func ReverseTimeCompare(a, b time.Time) int {
	return TimeCompare(b, a)
}

// Reverse 返回逆序比较器.
func Reverse[K any](cmp Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		return cmp(b, a)
	}
}
