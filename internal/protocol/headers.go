package protocol

import "strings"

// Header 单个响应头
type Header struct {
	Name  string
	Value string
}

// Headers 有序的响应头列表
// 同名响应头可以出现多次，顺序有意义并被保留
type Headers []Header

// Add 追加一个响应头
func (h *Headers) Add(name, value string) {
	*h = append(*h, Header{Name: name, Value: value})
}

// Get 返回第一个同名响应头的值，名称大小写不敏感
func (h Headers) Get(name string) (string, bool) {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			return hdr.Value, true
		}
	}
	return "", false
}

// Values 按出现顺序返回所有同名响应头的值
func (h Headers) Values(name string) []string {
	var values []string
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			values = append(values, hdr.Value)
		}
	}
	return values
}
