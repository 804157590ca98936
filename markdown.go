package tunhong

import "github.com/riverfjs/tunhong-go/internal/markdown"

// RenderMarkdown 将 Markdown 渲染为 HTML，正文文本经过 Parser 的 Markup
//
// Each text node is parsed with a fresh Markup; chunk text is HTML-escaped
// before it reaches the Markup, tags added by the Markup are written as is.
// Code spans, code blocks and raw HTML are not marked up.
func (p *Parser) RenderMarkdown(source string) (string, error) {
	out, err := markdown.Render(source, p.classifier.Classify, func() Markup {
		return p.newMarkup()
	})
	if err != nil {
		Logger.Printf("markdown rendering failed: %v", err)
		return "", err
	}
	return out, nil
}
