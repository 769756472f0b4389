package services

import (
	"errors"
	"fmt"
)

// 服务层错误按种类归一，HTTP 层据此映射状态码：
// - ValidationError → 400
// - ErrNotFound     → 404
// - ErrConflict     → 409
// - GenerationError / UnparsableError → 500
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// ValidationError 表示请求输入缺失或非法。
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// GenerationError 表示外部生成 API 调用本身失败（网络、配额、鉴权等）。
type GenerationError struct{ Cause error }

func (e *GenerationError) Error() string { return "ai generation failed: " + e.Cause.Error() }
func (e *GenerationError) Unwrap() error { return e.Cause }

// UnparsableError 表示生成 API 返回的文本在归一化后仍不是合法 JSON。
// Raw 保留归一化后的原文，供调用方诊断提示词或模型行为漂移。
type UnparsableError struct {
	Raw   string
	Cause error
}

func (e *UnparsableError) Error() string {
	return "ai response is not parsable json: " + e.Cause.Error()
}
func (e *UnparsableError) Unwrap() error { return e.Cause }
