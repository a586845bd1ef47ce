package workload

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Tsukikage7/navmap/collections/treemap"
	"github.com/Tsukikage7/navmap/logger"
)

const tracerName = "github.com/Tsukikage7/navmap/workload"

// Recorder 接收每一步的执行结果，metrics.PrometheusCollector 实现了该接口.
type Recorder interface {
	RecordOp(op string, err error, duration time.Duration)
	RecordVerifyFailure()
}

type nopRecorder struct{}

func (nopRecorder) RecordOp(string, error, time.Duration) {}
func (nopRecorder) RecordVerifyFailure()                  {}

// Option Runner 选项.
type Option func(*Runner)

// WithLogger 设置日志.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithTracerProvider 设置链路追踪，默认使用全局 TracerProvider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Runner) { r.tracer = tp.Tracer(tracerName) }
}

// WithRecorder 设置指标记录器.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) { r.rec = rec }
}

// WithCheckpoint 每执行 n 步向 span 添加一次进度事件，0 表示不添加.
func WithCheckpoint(n int) Option {
	return func(r *Runner) { r.checkpoint = n }
}

// Report 一次回放的结果.
type Report struct {
	RunID    string
	Script   string
	Steps    int
	Rejected int
	Stats    treemap.Stats
	Duration time.Duration
}

// Runner 回放脚本.
//
// 每一步之后都会调用 Verify 校验树的不变式，并把映射内容与参照模型逐项比对，
// 遇到第一处不一致即停止. Runner 可以被多个协程复用，Stats 返回最近一步的快照.
type Runner struct {
	log        logger.Logger
	tracer     trace.Tracer
	rec        Recorder
	checkpoint int

	mu    sync.Mutex
	stats treemap.Stats
}

// NewRunner 创建 Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		log:        logger.NewNop(),
		tracer:     otel.Tracer(tracerName),
		rec:        nopRecorder{},
		checkpoint: 1000,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Stats 返回最近一次回放的统计快照，可并发调用.
func (r *Runner) Stats() treemap.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *Runner) setStats(s treemap.Stats) {
	r.mu.Lock()
	r.stats = s
	r.mu.Unlock()
}

// Run 回放脚本. 不一致时返回 *DivergenceError，树损坏时返回包装了 treemap.ErrCorrupt 的错误，
// 两种情况下 Report 都记录了已执行的步数.
func (r *Runner) Run(ctx context.Context, s *Script) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.ApplyDefaults()

	report := &Report{RunID: uuid.NewString(), Script: s.Name}
	ctx, span := r.tracer.Start(ctx, "workload.Run", trace.WithAttributes(
		attribute.String("workload.run_id", report.RunID),
		attribute.String("workload.script", s.Name),
		attribute.String("workload.balance", s.Tree.Balance),
		attribute.Int("workload.ops", len(s.Ops)),
	))
	defer span.End()

	log := r.log.WithContext(ctx).With(
		logger.String("runId", report.RunID),
		logger.String("script", s.Name),
	)

	tm, view, err := build(s, log)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	ref := newModel(s.Range, s.Descending)

	log.With(logger.Int("ops", len(s.Ops)), logger.String("view", viewName(s))).Info("workload: 开始回放")
	start := time.Now()
	defer func() { report.Duration = time.Since(start) }()

	for i, op := range s.Ops {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "canceled")
			return report, err
		}

		t0 := time.Now()
		got, opErr := execute(view, op)
		r.rec.RecordOp(string(op.Kind), opErr, time.Since(t0))
		want := ref.apply(op)
		report.Steps = i + 1
		if opErr != nil {
			report.Rejected++
		}

		if err := r.check(i, op, got, want, tm, view, ref); err != nil {
			r.rec.RecordVerifyFailure()
			span.RecordError(err)
			span.SetStatus(codes.Error, "verification failed")
			log.With(logger.Int("step", i), logger.String("op", op.String()), logger.Err(err)).Error("workload: 校验失败")
			report.Stats = tm.Stats()
			r.setStats(report.Stats)
			return report, err
		}
		r.setStats(tm.Stats())

		if r.checkpoint > 0 && (i+1)%r.checkpoint == 0 {
			span.AddEvent("checkpoint", trace.WithAttributes(
				attribute.Int("workload.step", i+1),
				attribute.Int("workload.size", tm.Len()),
			))
		}
	}

	report.Stats = tm.Stats()
	span.SetAttributes(
		attribute.Int("workload.rejected", report.Rejected),
		attribute.Int("workload.height", report.Stats.Height),
	)
	span.SetStatus(codes.Ok, "")
	log.With(
		logger.Int("steps", report.Steps),
		logger.Int("rejected", report.Rejected),
		logger.Int("size", report.Stats.Size),
		logger.Int("height", report.Stats.Height),
	).Info("workload: 回放完成")
	return report, nil
}

func (r *Runner) check(step int, op Op, got, want outcome, tm *treemap.TreeMap[int, int],
	view treemap.NavigableMap[int, int], ref *model) error {
	if got != want {
		return &DivergenceError{Step: step, Op: op, Want: want.String(), Got: got.String()}
	}
	if err := tm.Verify(); err != nil {
		return fmt.Errorf("workload: step %d %s: %w", step, op, err)
	}
	if n := view.Len(); n != ref.len() {
		return &DivergenceError{Step: step, Op: op, Want: fmt.Sprintf("len %d", ref.len()), Got: fmt.Sprintf("len %d", n)}
	}
	items := ref.items()
	i := 0
	for k, v := range tm.All() {
		if i >= len(items) || k != items[i].key || v != items[i].value {
			w := "end"
			if i < len(items) {
				w = fmt.Sprintf("%d=%d", items[i].key, items[i].value)
			}
			return &DivergenceError{
				Step: step,
				Op:   op,
				Want: fmt.Sprintf("entry[%d] %s", i, w),
				Got:  fmt.Sprintf("entry[%d] %d=%d", i, k, v),
			}
		}
		i++
	}
	return nil
}

// build 按脚本创建映射以及执行操作的视图.
func build(s *Script, log logger.Logger) (*treemap.TreeMap[int, int], treemap.NavigableMap[int, int], error) {
	opts, err := s.Tree.Options()
	if err != nil {
		return nil, nil, err
	}
	if s.Tree.Logger == nil {
		opts = append(opts, treemap.WithLogger(log))
	}
	tm := treemap.NewOrdered[int, int](opts...)

	var view treemap.NavigableMap[int, int] = tm
	if rg := s.Range; rg != nil {
		switch {
		case rg.From != nil && rg.To != nil:
			view, err = tm.SubMap(*rg.From, rg.FromInclusive, *rg.To, rg.ToInclusive)
		case rg.From != nil:
			view, err = tm.TailMap(*rg.From, rg.FromInclusive)
		case rg.To != nil:
			view, err = tm.HeadMap(*rg.To, rg.ToInclusive)
		}
		if err != nil {
			return nil, nil, err
		}
	}
	if s.Descending {
		view = view.DescendingMap()
	}
	return tm, view, nil
}

func viewName(s *Script) string {
	name := "full"
	if s.Range != nil {
		name = "range"
	}
	if s.Descending {
		name += "/desc"
	}
	return name
}

// execute 在视图上执行一个操作. 只有越界写入会返回错误.
func execute(v treemap.NavigableMap[int, int], op Op) (outcome, error) {
	k := op.Key
	var (
		o   outcome
		err error
	)
	switch op.Kind {
	case OpPut:
		o.value, err = v.Put(k, op.Value)
	case OpPutIfAbsent:
		o.value, err = v.PutIfAbsent(k, op.Value)
	case OpRemove:
		o.value = v.Remove(k)
	case OpGet:
		o.value, o.ok = v.Lookup(k)
	case OpAddTo:
		o.value, err = treemap.AddTo[int, int](v, k, op.Value)
	case OpSubFrom:
		o.value, err = treemap.SubFrom[int, int](v, k, op.Value)
	case OpPollFirst:
		var e treemap.Entry[int, int]
		e, o.ok = v.PollFirstEntry()
		o.key, o.value = e.Key, e.Value
	case OpPollLast:
		var e treemap.Entry[int, int]
		e, o.ok = v.PollLastEntry()
		o.key, o.value = e.Key, e.Value
	case OpFloor:
		o.key, o.ok = v.FloorKey(k)
	case OpCeiling:
		o.key, o.ok = v.CeilingKey(k)
	case OpLower:
		o.key, o.ok = v.LowerKey(k)
	case OpHigher:
		o.key, o.ok = v.HigherKey(k)
	case OpClear:
		v.Clear()
	}
	if err != nil {
		if !errors.Is(err, treemap.ErrOutOfRange) {
			return o, err
		}
		o = outcome{err: true}
	}
	return o, err
}
