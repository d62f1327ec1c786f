package protocol

import (
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mapping"
)

// 环境键名本身可以包含 "."（如 wsgi.url_scheme、beaker.session），不作为嵌套路径拆分
var environUnmarshaler = mapping.NewUnmarshaler("key", mapping.WithOpaqueKeys())

// Extended 下游定义的更宽环境记录
// 内嵌 *Environ，因此仍然满足基础契约 Environment；Ext 保存扩展字段
type Extended[T any] struct {
	*Environ
	Ext T
}

// Narrow 将环境解码到下游定义的记录 v 中
// v 必须是指向结构体的指针，字段通过 key 标签声明对应的环境键，例如：
//
//	type MoreSpecificEnviron struct {
//	    Extra string `key:"HTTP_X_EXTRA"`
//	    Host  string `key:"HTTP_HOST,optional"`
//	}
//
// 未声明 optional 的键缺失时返回错误；取值为 nil 的可选字段视为缺失。
func Narrow(env *Environ, v any) error {
	if env == nil {
		return invalidEnviron(errors.New("nil environ"))
	}

	if err := environUnmarshaler.Unmarshal(env.present(), v); err != nil {
		logx.Debugf("Narrow environ failed, target=%T, error=%v", v, err)
		return fmt.Errorf("narrow environ to %T: %w", v, err)
	}

	return nil
}

// NarrowTo 将环境转换为 Extended[T]
func NarrowTo[T any](env *Environ) (*Extended[T], error) {
	var ext T
	if err := Narrow(env, &ext); err != nil {
		return nil, err
	}

	return &Extended[T]{Environ: env, Ext: ext}, nil
}

// present 返回去掉 nil 值的无类型环境
func (e *Environ) present() map[string]any {
	m := e.Map()
	for k, v := range m {
		if v == nil {
			delete(m, k)
		}
	}
	return m
}
