package treemap

import (
	"fmt"

	"github.com/Tsukikage7/navmap/config"
	"github.com/Tsukikage7/navmap/logger"
)

// Config 可从配置文件加载的构造参数.
//
//	balance: avl
//	logger:
//	  level: debug
//	  format: console
type Config struct {
	// Balance 平衡策略，redblack 或 avl
	Balance string `json:"balance" yaml:"balance" mapstructure:"balance"`

	// Logger 诊断日志配置，为空时不输出
	Logger *logger.Config `json:"logger" yaml:"logger" mapstructure:"logger"`
}

// ConfigError 配置错误.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("treemap config error [%s]: %s", e.Field, e.Message)
}

// ApplyDefaults 应用默认值.
func (c *Config) ApplyDefaults() {
	if c.Balance == "" {
		c.Balance = string(BalanceRedBlack)
	}
}

// Validate 验证配置.
func (c *Config) Validate() error {
	if c == nil {
		return &ConfigError{Field: "config", Message: "config cannot be nil"}
	}
	if c.Balance != "" && !Balance(c.Balance).Valid() {
		return &ConfigError{Field: "balance", Message: "unsupported balance strategy: " + c.Balance}
	}
	if c.Logger != nil {
		if err := c.Logger.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Options 转换为构造选项.
func (c *Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	opts := []Option{WithBalance(Balance(c.Balance))}
	if c.Logger != nil {
		l, err := logger.New(c.Logger)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLogger(l))
	}
	return opts, nil
}

// LoadConfig 从文件加载配置，环境变量 TREEMAP_BALANCE 等可覆盖文件中的值.
func LoadConfig(path string) (*Config, error) {
	return config.Load[Config](path,
		config.WithEnvPrefix("treemap"),
		config.WithDefaults(map[string]any{"balance": string(BalanceRedBlack)}),
	)
}

// NewFromConfig 按配置创建 TreeMap，opts 在配置之后应用.
func NewFromConfig[K any, V comparable](cfg *Config, cmp Comparator[K], opts ...Option) (*TreeMap[K, V], error) {
	base, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New[K, V](cmp, append(base, opts...)...), nil
}
