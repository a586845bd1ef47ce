package config

import "errors"

var (
	// ErrFileNotFound 配置文件不存在.
	ErrFileNotFound = errors.New("config: 配置文件不存在")

	// ErrInvalidType 不支持的配置文件类型.
	ErrInvalidType = errors.New("config: 不支持的配置文件类型")

	// ErrRead 读取配置失败.
	ErrRead = errors.New("config: 读取配置失败")

	// ErrUnmarshal 解析配置失败.
	ErrUnmarshal = errors.New("config: 解析配置失败")

	// ErrValidation 配置验证失败.
	ErrValidation = errors.New("config: 配置验证失败")
)
