package tunhong

// Parse 使用给定选项一次性转换 text
//
// 参数:
//   - text: 原始文本
//   - opts: Parser 选项，如 WithTagMarkup(nil)
//
// 返回:
//   - string: Markup 的 Finalize 结果
//   - error: 选项无效或 Markup 不支持出现的 Mode
func Parse(text string, opts ...Option) (string, error) {
	p, err := New(opts...)
	if err != nil {
		return "", err
	}
	return p.Parse(text)
}

// RenderMarkdown 使用给定选项一次性将 Markdown 渲染为 HTML
func RenderMarkdown(source string, opts ...Option) (string, error) {
	p, err := New(opts...)
	if err != nil {
		return "", err
	}
	return p.RenderMarkdown(source)
}
