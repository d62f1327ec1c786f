// Package appgate 提供宿主进程与应用之间同步请求处理网关契约的公开 API。
// 应用层与宿主都应通过本包引用，勿直接使用 internal。
//
// 示例：
//
//	import appgate "github.com/Pentahill/appgate/api"
//
//	app := appgate.ApplicationFunc(func(environ *appgate.Environ, start appgate.StartResponse) appgate.Response {
//	    start(appgate.StatusLine(http.StatusOK), appgate.Headers{{Name: "Content-Type", Value: "text/plain"}})
//	    return appgate.Chunks([]byte("hello, " + environ.Path()))
//	})
//
// 宿主收到无类型的环境时，在边界处调用 DecodeEnviron 完成校验与转换。
package appgate
