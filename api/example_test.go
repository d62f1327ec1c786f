package appgate

import (
	"fmt"
	"iter"
	"strings"
)

// stringInput 示例用的 InputStream
type stringInput struct {
	r *strings.Reader
}

func (s *stringInput) ReadN(size int) ([]byte, error) {
	if size < 0 || size > s.r.Len() {
		size = s.r.Len()
	}
	buf := make([]byte, size)
	n, _ := s.r.Read(buf)
	return buf[:n], nil
}

func (s *stringInput) ReadLine(size int) ([]byte, error) {
	var line []byte
	for size < 0 || len(line) < size {
		b, err := s.r.ReadByte()
		if err != nil {
			break
		}
		line = append(line, b)
		if b == '\n' {
			break
		}
	}
	return line, nil
}

func (s *stringInput) ReadLines(int) ([][]byte, error) {
	var lines [][]byte
	for line := range s.Lines() {
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *stringInput) Lines() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			line, _ := s.ReadLine(NoLimit)
			if len(line) == 0 || !yield(line) {
				return
			}
		}
	}
}

// stdoutErrors 示例用的 ErrorStream，直接输出
type stdoutErrors struct{}

func (stdoutErrors) WriteString(s string) (int, error) { return fmt.Print(s) }

func (e stdoutErrors) WriteLines(lines []string) error {
	for _, l := range lines {
		if _, err := e.WriteString(l); err != nil {
			return err
		}
	}
	return nil
}

func (stdoutErrors) Flush() error { return nil }

// ExampleDecodeEnviron 展示宿主如何在边界处校验无类型环境并调用应用
func ExampleDecodeEnviron() {
	app := ApplicationFunc(func(environ *Environ, start StartResponse) Response {
		body, _ := environ.Input.ReadN(NoLimit)
		start(StatusLine(201), Headers{{Name: "Content-Type", Value: "text/plain"}})
		return Chunks([]byte(environ.RequestMethod+" "), body)
	})

	env, err := DecodeEnviron(map[string]any{
		KeyRequestMethod: "POST",
		KeyPathInfo:      "/items",
		KeyScriptName:    "/api",
		KeyQueryString:   nil,
		KeyContentType:   "text/plain",
		KeyVersion:       Version10,
		KeyURLScheme:     "http",
		KeyInput:         &stringInput{r: strings.NewReader("payload")},
		KeyErrors:        stdoutErrors{},
		KeyMultithread:   true,
		KeyMultiprocess:  false,
		KeyRunOnce:       false,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	resp := app.Serve(env, func(status string, headers Headers) {
		fmt.Println(status, len(headers))
	})
	for chunk := range resp {
		fmt.Print(string(chunk))
	}
	fmt.Println()
	fmt.Println(env.Path())

	// Output:
	// 201 Created 1
	// POST payload
	// /api/items
}

// ExampleNarrowTo 展示如何把环境转换为下游定义的更宽记录
func ExampleNarrowTo() {
	type tracedEnviron struct {
		RequestID string `key:"HTTP_X_REQUEST_ID,default=none"`
	}

	env := &Environ{
		StandardEnviron: StandardEnviron{RequestMethod: "GET", PathInfo: "/"},
		GatewayEnviron: GatewayEnviron{
			Version: Version10,
			Input:   &stringInput{r: strings.NewReader("")},
			Errors:  stdoutErrors{},
		},
		Extra: map[string]any{"HTTP_X_REQUEST_ID": "req-1"},
	}

	ext, err := NarrowTo[tracedEnviron](env)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ext.RequestMethod, ext.Ext.RequestID)

	// Output:
	// GET req-1
}

// ExampleEnviron_Validate 展示校验失败时的错误
func ExampleEnviron_Validate() {
	env := &Environ{
		GatewayEnviron: GatewayEnviron{
			Input:  &stringInput{r: strings.NewReader("")},
			Errors: stdoutErrors{},
		},
	}
	fmt.Println(env.Validate())

	// Output:
	// invalid environ: REQUEST_METHOD: must not be empty
}
