// Package markdown renders Markdown to HTML with every text node run through
// the segmenter, so script runs inside prose get marked up while code spans,
// code blocks and raw HTML stay untouched.
package markdown

import (
	"bytes"
	"errors"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/tunhong-go/internal/segment"
	"github.com/riverfjs/tunhong-go/internal/types"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
}

// ErrNilMarkup is returned when the markup factory returns nil.
var ErrNilMarkup = errors.New("markdown: markup factory returned nil")

// textRendererPriority must be lower than the html renderer's 1000 so our
// functions for text nodes win.
const textRendererPriority = 100

// Render 解析 Markdown 并渲染为 HTML，文本节点经由 newMarkup 产生的 Markup 输出
//
// opts are applied after StandardOptions; html.WithHardWraps and
// html.WithXHTML are honored for text nodes.
func Render(source string, classify segment.ClassifyFunc, newMarkup func() types.Markup, opts ...goldmark.Option) (string, error) {
	tr := &textRenderer{
		Config:    html.NewConfig(),
		classify:  classify,
		newMarkup: newMarkup,
	}
	all := make([]goldmark.Option, 0, len(StandardOptions)+len(opts)+1)
	all = append(all, StandardOptions...)
	all = append(all, opts...)
	all = append(all, goldmark.WithRendererOptions(
		renderer.WithNodeRenderers(util.Prioritized(tr, textRendererPriority)),
	))
	md := goldmark.New(all...)

	var out bytes.Buffer
	if err := md.Convert([]byte(source), &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

// textRenderer replaces the html renderer's functions for text and string
// nodes. The embedded html.Config receives the renderer options.
type textRenderer struct {
	html.Config
	classify  segment.ClassifyFunc
	newMarkup func() types.Markup
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *textRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindText, r.renderText)
	reg.Register(ast.KindString, r.renderString)
}

func (r *textRenderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	value := n.Segment.Value(source)
	if n.IsRaw() {
		r.Writer.RawWrite(w, value)
		return ast.WalkContinue, nil
	}
	if err := r.markup(w, value); err != nil {
		return ast.WalkStop, err
	}
	if n.HardLineBreak() || (n.SoftLineBreak() && r.HardWraps) {
		if r.XHTML {
			_, _ = w.WriteString("<br />\n")
		} else {
			_, _ = w.WriteString("<br>\n")
		}
	} else if n.SoftLineBreak() {
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (r *textRenderer) renderString(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.String)
	switch {
	case n.IsCode():
		_, _ = w.Write(n.Value)
	case n.IsRaw():
		r.Writer.RawWrite(w, n.Value)
	default:
		if err := r.markup(w, n.Value); err != nil {
			return ast.WalkStop, err
		}
	}
	return ast.WalkContinue, nil
}

// markup decodes value, segments it with a fresh markup and writes the
// result.
func (r *textRenderer) markup(w util.BufWriter, value []byte) error {
	inner := r.newMarkup()
	if inner == nil {
		return ErrNilMarkup
	}
	out, err := segment.Parse(decode(value), r.classify, &escaper{inner: inner})
	if err != nil {
		return err
	}
	_, _ = w.WriteString(out)
	return nil
}

var (
	nul         = []byte{0}
	replacement = []byte("\uFFFD")
)

// decode resolves backslash escapes and character references, so that
// &#x6F22; is classified as 漢.
func decode(value []byte) string {
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	value = util.ResolveEntityNames(value)
	return string(bytes.ReplaceAll(value, nul, replacement))
}

// escaper HTML-escapes each chunk before handing it to the wrapped markup,
// leaving the markup's own tags as they are.
type escaper struct {
	inner types.Markup
}

func escape(chunk string) string {
	return string(util.EscapeHTML([]byte(chunk)))
}

func (e *escaper) Chinese(chunk string) { e.inner.Chinese(escape(chunk)) }
func (e *escaper) Tibetan(chunk string) { e.inner.Tibetan(escape(chunk)) }
func (e *escaper) Other(chunk string)   { e.inner.Other(escape(chunk)) }

// Handle forwards custom modes when the wrapped markup supports them.
func (e *escaper) Handle(mode types.Mode, chunk string) bool {
	mh, ok := e.inner.(types.ModeHandler)
	return ok && mh.Handle(mode, escape(chunk))
}

func (e *escaper) Finalize() string {
	return e.inner.Finalize()
}
