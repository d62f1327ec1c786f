package protocol

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/zeromicro/go-zero/core/errorx"
)

// 环境中约定的键名
const (
	KeyRequestMethod = "REQUEST_METHOD"
	KeyPathInfo      = "PATH_INFO"
	KeyScriptName    = "SCRIPT_NAME"
	KeyQueryString   = "QUERY_STRING"
	KeyContentType   = "CONTENT_TYPE"

	KeyVersion      = "wsgi.version"
	KeyURLScheme    = "wsgi.url_scheme"
	KeyInput        = "wsgi.input"
	KeyErrors       = "wsgi.errors"
	KeyMultithread  = "wsgi.multithread"
	KeyMultiprocess = "wsgi.multiprocess"
	KeyRunOnce      = "wsgi.run_once"
)

// ProtocolVersion 协议版本，固定为两个整数 (major, minor)
type ProtocolVersion [2]int

// Version10 表示协议版本 1.0
var Version10 = ProtocolVersion{1, 0}

func (v ProtocolVersion) String() string {
	return fmt.Sprintf("%d.%d", v[0], v[1])
}

// StandardEnviron 标准请求元数据
type StandardEnviron struct {
	// RequestMethod HTTP 请求方法，如 GET、POST，不能为空
	RequestMethod string
	// PathInfo 请求路径中剩余的部分，指向应用内部的虚拟位置。
	// 请求目标为应用根且没有结尾斜杠时可以为空串。
	PathInfo string
	// ScriptName 请求路径中对应应用挂载点的前缀；应用挂载在服务根时可以为空串。
	ScriptName string
	// QueryString "?" 之后的部分，缺省时为 nil
	QueryString *string
	// ContentType 请求的 Content-Type，缺省时为 nil
	ContentType *string
}

// GatewayEnviron 协议元数据
type GatewayEnviron struct {
	// Version 协议版本，通常为 Version10
	Version ProtocolVersion
	// URLScheme 通常为 "http" 或 "https"
	URLScheme string
	// Input 请求体输入流
	Input InputStream
	// Errors 错误输出流，通常是服务端的主错误日志
	Errors ErrorStream
	// Multithread 应用对象可能被同一进程的其他线程同时调用
	Multithread bool
	// Multiprocess 等价的应用对象可能被其他进程同时调用
	Multiprocess bool
	// RunOnce 服务端期望（但不保证）应用在进程生命周期内只被调用一次，通常仅 CGI 类网关为 true
	RunOnce bool
}

// Environment Environ 及其扩展记录共同满足的契约
type Environment interface {
	Base() *Environ
}

// Environ 组合后的环境，所有字段都必须存在，部分字段可以为 nil
// Extra 保存约定键以外的键（如 HTTP_*、SERVER_NAME），供下游扩展记录使用
type Environ struct {
	StandardEnviron
	GatewayEnviron

	Extra map[string]any
}

// Base 返回基础环境（实现 Environment 接口）
func (e *Environ) Base() *Environ {
	return e
}

// Path 按 SCRIPT_NAME + PATH_INFO 还原逻辑请求路径
func (e *Environ) Path() string {
	return e.ScriptName + e.PathInfo
}

// Query 返回查询串，缺省时返回空串
func (e *Environ) Query() string {
	if e.QueryString == nil {
		return ""
	}
	return *e.QueryString
}

// Validate 校验环境中各字段的取值
// 所有违反约束的字段一并返回
func (e *Environ) Validate() error {
	if e == nil {
		return invalidEnviron(errors.New("nil environ"))
	}

	var be errorx.BatchError
	if e.RequestMethod == "" {
		be.Add(fieldError(KeyRequestMethod, "must not be empty"))
	}
	if isNil(e.Input) {
		be.Add(fieldError(KeyInput, "must not be nil"))
	}
	if isNil(e.Errors) {
		be.Add(fieldError(KeyErrors, "must not be nil"))
	}
	for key := range e.Extra {
		if isWellKnownKey(key) {
			be.Add(fieldError(key, "must not be carried in Extra"))
		}
	}

	return invalidEnviron(be.Err())
}

// Map 返回环境的无类型表示
// QueryString/ContentType 缺省时以 nil 值出现，键本身总是存在
func (e *Environ) Map() map[string]any {
	m := make(map[string]any, len(wellKnownKeys)+len(e.Extra))
	for k, v := range e.Extra {
		m[k] = v
	}

	m[KeyRequestMethod] = e.RequestMethod
	m[KeyPathInfo] = e.PathInfo
	m[KeyScriptName] = e.ScriptName
	m[KeyQueryString] = optionalValue(e.QueryString)
	m[KeyContentType] = optionalValue(e.ContentType)
	m[KeyVersion] = e.Version
	m[KeyURLScheme] = e.URLScheme
	m[KeyInput] = e.Input
	m[KeyErrors] = e.Errors
	m[KeyMultithread] = e.Multithread
	m[KeyMultiprocess] = e.Multiprocess
	m[KeyRunOnce] = e.RunOnce

	return m
}

// String 返回一个可选字符串字段的指针，便于构造 Environ
func String(s string) *string {
	return &s
}

// isNil 同时识别 nil 接口值与装在接口里的 nil 指针（如 (*T)(nil)）
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func optionalValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

var wellKnownKeys = []string{
	KeyRequestMethod,
	KeyPathInfo,
	KeyScriptName,
	KeyQueryString,
	KeyContentType,
	KeyVersion,
	KeyURLScheme,
	KeyInput,
	KeyErrors,
	KeyMultithread,
	KeyMultiprocess,
	KeyRunOnce,
}

func isWellKnownKey(key string) bool {
	for _, k := range wellKnownKeys {
		if k == key {
			return true
		}
	}
	return false
}
