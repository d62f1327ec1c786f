package protocol

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/zeromicro/go-zero/core/errorx"
	"github.com/zeromicro/go-zero/core/logx"
)

// DecodeEnviron 将宿主传入的无类型环境转换为 Environ
// 所有约定键都必须存在；只有 QUERY_STRING 与 CONTENT_TYPE 允许取 nil。
// 约定键以外的键原样放入 Environ.Extra。
func DecodeEnviron(m map[string]any) (*Environ, error) {
	if m == nil {
		return nil, invalidEnviron(fmt.Errorf("nil map"))
	}

	d := &environDecoder{m: m}
	env := &Environ{
		StandardEnviron: StandardEnviron{
			RequestMethod: d.requestMethod(),
			PathInfo:      d.string(KeyPathInfo),
			ScriptName:    d.string(KeyScriptName),
			QueryString:   d.optionalString(KeyQueryString),
			ContentType:   d.optionalString(KeyContentType),
		},
		GatewayEnviron: GatewayEnviron{
			Version:      d.version(),
			URLScheme:    d.string(KeyURLScheme),
			Input:        d.input(),
			Errors:       d.errors(),
			Multithread:  d.bool(KeyMultithread),
			Multiprocess: d.bool(KeyMultiprocess),
			RunOnce:      d.bool(KeyRunOnce),
		},
	}

	for k, v := range m {
		if isWellKnownKey(k) {
			continue
		}
		if env.Extra == nil {
			env.Extra = make(map[string]any)
		}
		env.Extra[k] = v
	}

	if err := d.be.Err(); err != nil {
		logx.Debugf("Environ rejected, error=%v", err)
		return nil, invalidEnviron(err)
	}

	logx.Debugf("Environ decoded, request_method=%s, path=%s, extra_keys=%d",
		env.RequestMethod, env.Path(), len(env.Extra))
	return env, nil
}

type environDecoder struct {
	m  map[string]any
	be errorx.BatchError
}

func (d *environDecoder) lookup(key string) (any, bool) {
	v, ok := d.m[key]
	if !ok {
		d.be.Add(fieldError(key, "missing"))
	}
	return v, ok
}

func (d *environDecoder) mismatch(key string, want string, got any) {
	d.be.Add(fieldError(key, fmt.Sprintf("want %s, got %T", want, got)))
}

func (d *environDecoder) requestMethod() string {
	v, ok := d.lookup(KeyRequestMethod)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.mismatch(KeyRequestMethod, "string", v)
		return ""
	}
	if s == "" {
		d.be.Add(fieldError(KeyRequestMethod, "must not be empty"))
	}
	return s
}

func (d *environDecoder) string(key string) string {
	v, ok := d.lookup(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.mismatch(key, "string", v)
	}
	return s
}

// optionalString 键必须存在，值可以是 nil、string 或 *string
func (d *environDecoder) optionalString(key string) *string {
	v, ok := d.lookup(key)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return &val
	case *string:
		return val
	default:
		d.mismatch(key, "string or nil", v)
		return nil
	}
}

func (d *environDecoder) bool(key string) bool {
	v, ok := d.lookup(key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		d.mismatch(key, "bool", v)
	}
	return b
}

// version 接受 ProtocolVersion、[2]int，以及恰好包含两个整数的 []int / []any
// []any 的元素可以是任意整数类型，也可以是取整数值的浮点数或 json.Number（如 JSON 解码的结果）
func (d *environDecoder) version() ProtocolVersion {
	v, ok := d.lookup(KeyVersion)
	if !ok {
		return ProtocolVersion{}
	}
	switch val := v.(type) {
	case ProtocolVersion:
		return val
	case [2]int:
		return val
	case []int:
		if len(val) == 2 {
			return ProtocolVersion{val[0], val[1]}
		}
		d.be.Add(fieldError(KeyVersion, fmt.Sprintf("want 2 components, got %d", len(val))))
	case []any:
		if len(val) != 2 {
			d.be.Add(fieldError(KeyVersion, fmt.Sprintf("want 2 components, got %d", len(val))))
			return ProtocolVersion{}
		}
		major, ok1 := versionComponent(val[0])
		minor, ok2 := versionComponent(val[1])
		if ok1 && ok2 {
			return ProtocolVersion{major, minor}
		}
		d.be.Add(fieldError(KeyVersion, "components must be int"))
	default:
		d.mismatch(KeyVersion, "pair of int", v)
	}
	return ProtocolVersion{}
}

func versionComponent(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return floatComponent(float64(n))
	case float64:
		return floatComponent(n)
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	default:
		return 0, false
	}
}

func floatComponent(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

func (d *environDecoder) input() InputStream {
	v, ok := d.lookup(KeyInput)
	if !ok {
		return nil
	}
	in, ok := v.(InputStream)
	if !ok {
		d.mismatch(KeyInput, "InputStream", v)
		return nil
	}
	if isNil(in) {
		d.be.Add(fieldError(KeyInput, "must not be nil"))
		return nil
	}
	return in
}

func (d *environDecoder) errors() ErrorStream {
	v, ok := d.lookup(KeyErrors)
	if !ok {
		return nil
	}
	es, ok := v.(ErrorStream)
	if !ok {
		d.mismatch(KeyErrors, "ErrorStream", v)
		return nil
	}
	if isNil(es) {
		d.be.Add(fieldError(KeyErrors, "must not be nil"))
		return nil
	}
	return es
}
