package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load 从文件加载配置，类型由 WithConfigType 指定或按扩展名推断.
func Load[T any](path string, opts ...Option) (*T, error) {
	o := buildOptions(opts)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if o.ConfigType == "" {
		t, err := TypeOf(path)
		if err != nil {
			return nil, err
		}
		o.ConfigType = t
	}

	v := newViper(o)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	return decode[T](v)
}

// MustLoad 加载配置，失败时 panic.
func MustLoad[T any](path string, opts ...Option) *T {
	cfg, err := Load[T](path, opts...)
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadFromBytes 从内存数据加载配置.
func LoadFromBytes[T any](data []byte, configType string, opts ...Option) (*T, error) {
	o := buildOptions(append(opts, WithConfigType(configType)))
	v := newViper(o)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return decode[T](v)
}

func newViper(o *Options) *viper.Viper {
	v := viper.New()
	v.SetConfigType(o.ConfigType)
	for key, value := range o.Defaults {
		v.SetDefault(key, value)
	}
	if o.AutomaticEnv {
		if o.EnvPrefix != "" {
			v.SetEnvPrefix(o.EnvPrefix)
		}
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}
	return v
}

// decode 解析、补全默认值并校验.
func decode[T any](v *viper.Viper) (*T, error) {
	cfg := new(T)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshal, err)
	}
	if d, ok := any(cfg).(Defaulter); ok {
		d.ApplyDefaults()
	}
	if val, ok := any(cfg).(Validatable); ok {
		if err := val.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}
	return cfg, nil
}
