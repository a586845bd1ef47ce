package workload

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidScript 脚本内容不合法.
	ErrInvalidScript = errors.New("workload: 脚本不合法")

	// ErrDiverged 映射的返回值或内容与参照模型不一致.
	ErrDiverged = errors.New("workload: 与参照模型不一致")
)

// DivergenceError 描述第一处不一致.
type DivergenceError struct {
	Step int
	Op   Op
	Want string
	Got  string
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("workload: step %d %s: want %s, got %s", e.Step, e.Op, e.Want, e.Got)
}

func (e *DivergenceError) Unwrap() error { return ErrDiverged }
