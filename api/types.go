package appgate

import (
	"github.com/Pentahill/appgate/internal/protocol"
)

// 以下类型从 internal 重导出，供应用层与宿主使用。

// InputStream 请求体输入流契约；读尽时返回空切片而不是错误。
type InputStream = protocol.InputStream

// ErrorStream 错误输出流契约。
type ErrorStream = protocol.ErrorStream

// ProtocolVersion 协议版本 (major, minor)。
type ProtocolVersion = protocol.ProtocolVersion

// StandardEnviron 标准请求元数据。
type StandardEnviron = protocol.StandardEnviron

// GatewayEnviron 协议元数据。
type GatewayEnviron = protocol.GatewayEnviron

// Environ 组合后的环境。
type Environ = protocol.Environ

// Environment Environ 及其扩展记录共同满足的契约。
type Environment = protocol.Environment

// Extended 下游定义的更宽环境记录，由 NarrowTo 创建。
type Extended[T any] = protocol.Extended[T]

// Header 单个响应头。
type Header = protocol.Header

// Headers 有序的响应头列表。
type Headers = protocol.Headers

// StartResponse 提交状态行与响应头的回调。
type StartResponse = protocol.StartResponse

// Response 响应体字节块序列，只保证可以遍历一次。
type Response = protocol.Response

// Application 应用契约。
type Application = protocol.Application

// ApplicationFunc 函数形式的 Application。
type ApplicationFunc = protocol.ApplicationFunc

// FieldError 单个环境键的违规信息。
type FieldError = protocol.FieldError
