package config

import "strings"

// Options 加载选项.
type Options struct {
	// EnvPrefix 环境变量前缀，例如 "TREEMAP" 会把 TREEMAP_BALANCE 映射到 balance
	EnvPrefix string

	// AutomaticEnv 是否允许环境变量覆盖配置
	AutomaticEnv bool

	// ConfigType 显式指定配置类型，为空时按扩展名推断
	ConfigType string

	// Defaults 在文件之前生效的默认值
	Defaults map[string]any
}

// Option 加载选项函数.
type Option func(*Options)

func buildOptions(opts []Option) *Options {
	o := &Options{AutomaticEnv: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithEnvPrefix 设置环境变量前缀.
func WithEnvPrefix(prefix string) Option {
	return func(o *Options) {
		o.EnvPrefix = strings.ToUpper(prefix)
	}
}

// WithoutEnv 禁止环境变量覆盖.
func WithoutEnv() Option {
	return func(o *Options) {
		o.AutomaticEnv = false
	}
}

// WithDefaults 设置默认值，键使用点号分隔的路径.
func WithDefaults(defaults map[string]any) Option {
	return func(o *Options) {
		o.Defaults = defaults
	}
}

// WithConfigType 显式指定配置类型.
func WithConfigType(configType string) Option {
	return func(o *Options) {
		o.ConfigType = configType
	}
}
