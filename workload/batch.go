package workload

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// RunAll 并发回放多个脚本，同时最多 parallel 个.
// 返回的 Report 与 scripts 按下标对应，未执行的脚本对应 nil；各脚本的错误以 errors.Join 合并.
// scripts 中不能出现同一个 *Script 两次.
func (r *Runner) RunAll(ctx context.Context, scripts []*Script, parallel int) ([]*Report, error) {
	if parallel <= 0 {
		parallel = 1
	}
	sem := make(chan struct{}, parallel)
	reports := make([]*Report, len(scripts))
	errs := make([]error, len(scripts))

	var wg sync.WaitGroup
	for i, s := range scripts {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			errs[i] = ctx.Err()
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			report, err := r.Run(ctx, s)
			reports[i] = report
			if err != nil {
				errs[i] = fmt.Errorf("script %d (%s): %w", i, s.Name, err)
			}
		}()
	}
	wg.Wait()
	return reports, errors.Join(errs...)
}
