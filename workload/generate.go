package workload

import (
	"fmt"
	"math/rand/v2"

	"github.com/Tsukikage7/navmap/collections/treemap"
)

// GenerateConfig 随机脚本参数.
type GenerateConfig struct {
	Name       string
	Seed       uint64
	Ops        int
	KeySpace   int
	Balance    treemap.Balance
	Range      *Range
	Descending bool
}

// 各操作的相对权重，写入占多数以便树保持一定规模.
var weights = []struct {
	kind   OpKind
	weight int
}{
	{OpPut, 30},
	{OpPutIfAbsent, 6},
	{OpRemove, 16},
	{OpGet, 8},
	{OpAddTo, 8},
	{OpSubFrom, 8},
	{OpPollFirst, 3},
	{OpPollLast, 3},
	{OpFloor, 4},
	{OpCeiling, 4},
	{OpLower, 4},
	{OpHigher, 4},
	{OpClear, 1},
}

// Generate 按种子生成确定性的随机脚本.
// 键取自 [-KeySpace/4, KeySpace)，会有一部分落在 Range 之外.
func Generate(cfg GenerateConfig) *Script {
	if cfg.Ops <= 0 {
		cfg.Ops = 1000
	}
	if cfg.KeySpace <= 0 {
		cfg.KeySpace = 256
	}
	if cfg.Name == "" {
		cfg.Name = fmt.Sprintf("random-%d", cfg.Seed)
	}

	total := 0
	for _, w := range weights {
		total += w.weight
	}

	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	lo := -cfg.KeySpace / 4
	span := cfg.KeySpace - lo

	ops := make([]Op, cfg.Ops)
	for i := range ops {
		n := r.IntN(total)
		kind := OpPut
		for _, w := range weights {
			if n < w.weight {
				kind = w.kind
				break
			}
			n -= w.weight
		}
		ops[i] = Op{Kind: kind, Key: lo + r.IntN(span), Value: r.IntN(21) - 5}
	}

	return &Script{
		Name:       cfg.Name,
		Tree:       treemap.Config{Balance: string(cfg.Balance)},
		Range:      cfg.Range,
		Descending: cfg.Descending,
		Ops:        ops,
	}
}
