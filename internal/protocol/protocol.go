package protocol

import "iter"

// NoLimit 作为 size/hint 参数传入时表示不限制读取长度
const NoLimit = -1

// InputStream 请求体输入流契约
// 服务端不必读取超过客户端声明的 Content-Length 的数据，超过时应模拟文件结束；
// 应用也不应尝试读取超过 CONTENT_LENGTH 的数据。
//
// 从空流或已读尽的流中读取时返回空切片与 nil 错误，而不是 io.EOF。
// 调用方应通过返回长度为 0 判断输入结束。error 仅用于宿主侧的传输故障。
type InputStream interface {
	// ReadN 最多读取 size 字节；size < 0 时读取剩余全部数据
	ReadN(size int) ([]byte, error)

	// ReadLine 读取一行（包含结尾的 '\n'）
	// size >= 0 时最多返回 size 字节，服务端可以不支持该参数
	ReadLine(size int) ([]byte, error)

	// ReadLines 读取剩余的全部行
	// hint 对调用方和实现方都是可选的，hint <= 0 表示不提供，实现方可以忽略
	ReadLines(hint int) ([][]byte, error)

	// Lines 返回逐行迭代器：惰性、有限、只能向前遍历一次
	Lines() iter.Seq[[]byte]
}

// ErrorStream 错误输出流契约，文本模式，行尾统一使用 "\n"
type ErrorStream interface {
	WriteString(s string) (int, error)

	WriteLines(lines []string) error

	// Flush 对无缓冲的实现可以是空操作。
	// 调用方不能假设输出无缓冲，需要确保输出已写入时（例如避免多个进程
	// 写同一个错误日志时互相穿插）必须调用 Flush。
	Flush() error
}
