package appgate

import (
	"github.com/Pentahill/appgate/internal/protocol"
)

// NoLimit 作为 size/hint 参数传入时表示不限制读取长度
const NoLimit = protocol.NoLimit

// 环境中约定的键名
const (
	KeyRequestMethod = protocol.KeyRequestMethod
	KeyPathInfo      = protocol.KeyPathInfo
	KeyScriptName    = protocol.KeyScriptName
	KeyQueryString   = protocol.KeyQueryString
	KeyContentType   = protocol.KeyContentType
	KeyVersion       = protocol.KeyVersion
	KeyURLScheme     = protocol.KeyURLScheme
	KeyInput         = protocol.KeyInput
	KeyErrors        = protocol.KeyErrors
	KeyMultithread   = protocol.KeyMultithread
	KeyMultiprocess  = protocol.KeyMultiprocess
	KeyRunOnce       = protocol.KeyRunOnce
)

var (
	// Version10 协议版本 1.0
	Version10 = protocol.Version10

	// ErrInvalidEnviron 环境不满足契约
	ErrInvalidEnviron = protocol.ErrInvalidEnviron
	// ErrBadStatus 状态行格式错误
	ErrBadStatus = protocol.ErrBadStatus
)

// DecodeEnviron 将宿主传入的无类型环境校验并转换为 Environ。
func DecodeEnviron(m map[string]any) (*Environ, error) {
	return protocol.DecodeEnviron(m)
}

// Narrow 将环境解码到下游定义的记录 v（带 key 标签的结构体指针）中。
func Narrow(env *Environ, v any) error {
	return protocol.Narrow(env, v)
}

// NarrowTo 将环境转换为 Extended[T]，结果仍满足 Environment。
func NarrowTo[T any](env *Environ) (*Extended[T], error) {
	return protocol.NarrowTo[T](env)
}

// String 返回可选字符串字段的指针。
func String(s string) *string {
	return protocol.String(s)
}

// Chunks 将给定的字节块包装为 Response。
func Chunks(chunks ...[]byte) Response {
	return protocol.Chunks(chunks...)
}

// StatusLine 根据状态码生成状态行。
func StatusLine(code int) string {
	return protocol.StatusLine(code)
}

// ParseStatus 解析状态行，返回状态码与原因短语。
func ParseStatus(status string) (int, string, error) {
	return protocol.ParseStatus(status)
}
