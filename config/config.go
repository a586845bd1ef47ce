// Package config 基于 viper 加载结构化配置.
//
// 目标类型通过 mapstructure 标签声明字段；实现 Defaulter 的类型在解析后补全默认值，
// 实现 Validatable 的类型在返回前做校验.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validatable 可验证的配置.
type Validatable interface {
	Validate() error
}

// Defaulter 可以补全默认值的配置.
type Defaulter interface {
	ApplyDefaults()
}

// configTypes 扩展名到 viper 配置类型的映射.
var configTypes = map[string]string{
	".yaml":       "yaml",
	".yml":        "yaml",
	".json":       "json",
	".toml":       "toml",
	".env":        "env",
	".properties": "properties",
}

// TypeOf 根据文件扩展名推断配置类型.
func TypeOf(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if t, ok := configTypes[ext]; ok {
		return t, nil
	}
	// .env 这类无主名的文件，Ext 会返回整个文件名
	if t, ok := configTypes[strings.ToLower(filepath.Base(filename))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, filename)
}
