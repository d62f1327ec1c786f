package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEnviron 环境不满足契约
	ErrInvalidEnviron = errors.New("invalid environ")
	// ErrBadStatus 状态行格式错误
	ErrBadStatus = errors.New("bad status line")
)

// FieldError 单个环境键的违规信息
type FieldError struct {
	Key    string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Reason)
}

func fieldError(key, reason string) error {
	return &FieldError{Key: key, Reason: reason}
}

func invalidEnviron(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidEnviron, err)
}
