// Package workload 回放操作脚本，并在每一步与参照模型比对、校验树的不变式.
//
// 脚本可以从 YAML/JSON 加载，也可以由 Generate 随机生成:
//
//	name: smoke
//	tree:
//	  balance: avl
//	range:
//	  from: 10
//	  to: 90
//	ops:
//	  - {op: put, key: 15, value: 3}
//	  - {op: addTo, key: 15, value: 2}
//	  - {op: floor, key: 40}
package workload

import (
	"fmt"

	"github.com/Tsukikage7/navmap/collections/treemap"
	"github.com/Tsukikage7/navmap/config"
)

// OpKind 操作类型.
type OpKind string

const (
	OpPut         OpKind = "put"
	OpPutIfAbsent OpKind = "putIfAbsent"
	OpRemove      OpKind = "remove"
	OpGet         OpKind = "get"
	OpAddTo       OpKind = "addTo"
	OpSubFrom     OpKind = "subFrom"
	OpPollFirst   OpKind = "pollFirst"
	OpPollLast    OpKind = "pollLast"
	OpFloor       OpKind = "floor"
	OpCeiling     OpKind = "ceiling"
	OpLower       OpKind = "lower"
	OpHigher      OpKind = "higher"
	OpClear       OpKind = "clear"
)

var opKinds = map[OpKind]struct{}{
	OpPut: {}, OpPutIfAbsent: {}, OpRemove: {}, OpGet: {},
	OpAddTo: {}, OpSubFrom: {}, OpPollFirst: {}, OpPollLast: {},
	OpFloor: {}, OpCeiling: {}, OpLower: {}, OpHigher: {}, OpClear: {},
}

// Valid 判断操作类型是否受支持.
func (k OpKind) Valid() bool {
	_, ok := opKinds[k]
	return ok
}

// Op 单个操作. Value 对 put/putIfAbsent 是写入值，对 addTo/subFrom 是增量.
type Op struct {
	Kind  OpKind `json:"op" yaml:"op" mapstructure:"op"`
	Key   int    `json:"key" yaml:"key" mapstructure:"key"`
	Value int    `json:"value" yaml:"value" mapstructure:"value"`
}

func (o Op) String() string {
	switch o.Kind {
	case OpPut, OpPutIfAbsent, OpAddTo, OpSubFrom:
		return fmt.Sprintf("%s(%d, %d)", o.Kind, o.Key, o.Value)
	case OpPollFirst, OpPollLast, OpClear:
		return string(o.Kind) + "()"
	default:
		return fmt.Sprintf("%s(%d)", o.Kind, o.Key)
	}
}

// Range 脚本作用的子映射范围，From/To 为空表示该侧无界.
type Range struct {
	From          *int `json:"from" yaml:"from" mapstructure:"from"`
	FromInclusive bool `json:"fromInclusive" yaml:"fromInclusive" mapstructure:"frominclusive"`
	To            *int `json:"to" yaml:"to" mapstructure:"to"`
	ToInclusive   bool `json:"toInclusive" yaml:"toInclusive" mapstructure:"toinclusive"`
}

// Script 操作脚本.
type Script struct {
	// Name 脚本名称，写入日志与 span
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Tree 被测映射的构造参数
	Tree treemap.Config `json:"tree" yaml:"tree" mapstructure:"tree"`

	// Range 不为空时所有操作经由对应的子映射视图执行
	Range *Range `json:"range" yaml:"range" mapstructure:"range"`

	// Descending 为 true 时经由逆序视图执行
	Descending bool `json:"descending" yaml:"descending" mapstructure:"descending"`

	Ops []Op `json:"ops" yaml:"ops" mapstructure:"ops"`
}

// ApplyDefaults 应用默认值.
func (s *Script) ApplyDefaults() {
	if s.Name == "" {
		s.Name = "script"
	}
	s.Tree.ApplyDefaults()
}

// Validate 验证脚本.
func (s *Script) Validate() error {
	if err := s.Tree.Validate(); err != nil {
		return err
	}
	if r := s.Range; r != nil && r.From != nil && r.To != nil && *r.From > *r.To {
		return fmt.Errorf("%w: range from %d > to %d", ErrInvalidScript, *r.From, *r.To)
	}
	for i, op := range s.Ops {
		if !op.Kind.Valid() {
			return fmt.Errorf("%w: ops[%d] 未知操作 %q", ErrInvalidScript, i, op.Kind)
		}
	}
	return nil
}

// Parse 从内存数据解析脚本，format 为 yaml 或 json.
func Parse(data []byte, format string) (*Script, error) {
	return config.LoadFromBytes[Script](data, format, config.WithoutEnv())
}

// LoadFile 从文件加载脚本，格式按扩展名推断.
func LoadFile(path string) (*Script, error) {
	return config.Load[Script](path, config.WithoutEnv())
}
