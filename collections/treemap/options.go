package treemap

import "github.com/Tsukikage7/navmap/logger"

// Options TreeMap 构造选项.
type Options struct {
	// Balance 平衡策略，默认红黑树
	Balance Balance

	// Logger 诊断日志，默认不输出
	Logger logger.Logger
}

// Option 构造选项函数.
type Option func(*Options)

// WithBalance 设置平衡策略.
func WithBalance(b Balance) Option {
	return func(o *Options) {
		o.Balance = b
	}
}

// WithAVL 使用 AVL 平衡策略.
func WithAVL() Option {
	return WithBalance(BalanceAVL)
}

// WithLogger 设置诊断日志.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func buildOptions(opts []Option) *Options {
	o := &Options{Balance: BalanceRedBlack}
	for _, opt := range opts {
		opt(o)
	}
	if o.Balance == "" {
		o.Balance = BalanceRedBlack
	}
	if o.Logger == nil {
		o.Logger = logger.NewNop()
	}
	return o
}
