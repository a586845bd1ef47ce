package logger

import (
	"fmt"
	"strings"
)

// Config 日志配置.
type Config struct {
	ServiceName  string `json:"service_name" yaml:"service_name" mapstructure:"service_name"`
	Level        string `json:"level" yaml:"level" mapstructure:"level"`
	Format       string `json:"format" yaml:"format" mapstructure:"format"`
	Output       string `json:"output" yaml:"output" mapstructure:"output"`
	EnableCaller bool   `json:"enable_caller" yaml:"enable_caller" mapstructure:"enable_caller"`
	TimeFormat   string `json:"time_format" yaml:"time_format" mapstructure:"time_format"`
	ColorLevel   bool   `json:"color_level" yaml:"color_level" mapstructure:"color_level"`
}

// ConfigError 配置错误.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("logger config error [%s]: %s", e.Field, e.Message)
}

// Validate 验证配置.
func (c *Config) Validate() error {
	if c == nil {
		return &ConfigError{Field: "config", Message: "config cannot be nil"}
	}
	if c.Level != "" {
		if _, ok := levels[strings.ToLower(c.Level)]; !ok {
			return &ConfigError{Field: "level", Message: "invalid log level: " + c.Level}
		}
	}
	switch strings.ToLower(c.Format) {
	case "", FormatJSON, FormatConsole:
	default:
		return &ConfigError{Field: "format", Message: "invalid format: " + c.Format}
	}
	return nil
}

// ApplyDefaults 应用默认值.
func (c *Config) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = "treemap"
	}
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.Output == "" {
		c.Output = OutputStderr
	}
	if c.TimeFormat == "" {
		c.TimeFormat = TimeFormatDateTime
	}
}

// DefaultConfig 返回默认配置.
func DefaultConfig() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// NewDevConfig 返回开发环境配置.
func NewDevConfig() *Config {
	return &Config{
		Level:        LevelDebug,
		Format:       FormatConsole,
		Output:       OutputStderr,
		EnableCaller: true,
		ColorLevel:   true,
	}
}
