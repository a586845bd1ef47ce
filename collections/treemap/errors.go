package treemap

import (
	"errors"
	"fmt"
)

// 预定义错误常量.
var (
	// ErrEmptyMap 映射为空，没有首尾元素.
	ErrEmptyMap = errors.New("treemap: 映射为空")

	// ErrOutOfRange 键超出子映射视图的范围.
	ErrOutOfRange = errors.New("treemap: 键超出视图范围")

	// ErrInvalidRange 子映射的起止键不合法.
	ErrInvalidRange = errors.New("treemap: 无效的范围")

	// ErrUnsupported 视图不支持该操作.
	ErrUnsupported = fmt.Errorf("treemap: %w", errors.ErrUnsupported)

	// ErrNoCurrent 迭代器尚未返回元素或当前元素已被删除.
	ErrNoCurrent = errors.New("treemap: 迭代器没有当前元素")

	// ErrCorrupt 树结构不满足不变式.
	ErrCorrupt = errors.New("treemap: 树结构损坏")
)
