package protocol

import (
	"fmt"
	"iter"
	"net/http"
	"strconv"
	"strings"
)

// StartResponse 应用用来提交状态行与响应头的回调
// status 形如 "200 OK"
type StartResponse func(status string, headers Headers)

// Response 响应体：零个或多个字节块组成的序列
// 可以是预先准备好的列表，也可以是惰性生成的序列。
// 宿主只能假设它可以被遍历一次。
type Response = iter.Seq[[]byte]

// Application 应用契约
//
// 应用必须在交还第一个响应体字节块之前调用 start。
// 这是协议约定，类型本身无法表达该时序约束。
//
// 需要扩展环境时，在入口处用 Narrow 或 NarrowTo 将 Environ 转换为下游定义的更宽记录：
//
//	type MoreSpecificEnviron struct {
//	    Extra string `key:"HTTP_X_EXTRA"`
//	}
//
//	func (a *MyApplication) Serve(environ *Environ, start StartResponse) Response {
//	    env, err := NarrowTo[MoreSpecificEnviron](environ)
//	    ...
//	}
type Application interface {
	Serve(environ *Environ, start StartResponse) Response
}

// ApplicationFunc 函数类型，实现 Application 接口
// 方便将函数直接作为 Application 使用
type ApplicationFunc func(environ *Environ, start StartResponse) Response

// Serve 实现 Application 接口
func (f ApplicationFunc) Serve(environ *Environ, start StartResponse) Response {
	return f(environ, start)
}

// Chunks 将给定的字节块包装为 Response
func Chunks(chunks ...[]byte) Response {
	return func(yield func([]byte) bool) {
		for _, c := range chunks {
			if !yield(c) {
				return
			}
		}
	}
}

// StatusLine 根据状态码生成状态行，如 StatusLine(404) == "404 Not Found"
func StatusLine(code int) string {
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}

// ParseStatus 解析状态行，返回状态码与原因短语
// 状态码必须是三位数字，后跟一个空格
func ParseStatus(status string) (int, string, error) {
	code, reason, found := strings.Cut(status, " ")
	if !found || len(code) != 3 {
		return 0, "", fmt.Errorf("%w: %q", ErrBadStatus, status)
	}

	n, err := strconv.Atoi(code)
	if err != nil || n < 100 {
		return 0, "", fmt.Errorf("%w: %q", ErrBadStatus, status)
	}

	return n, reason, nil
}
