// Package tunhong 在其他语言的文本中标记汉文与藏文片段
//
// 每个码位按区间归入一个 Mode（chinese、tibetan、other），连续的同 Mode
// 码位组成片段（Chunk），按顺序交给可替换的 Markup 处理，最后由 Finalize
// 给出结果。
//
// The name follows the Dunhuang caves, whose manuscripts are written in both
// scripts: 燉煌 in Chinese, ཏུན་ཧོང་ in Tibetan.
//
// 主要 API：
//   - Parse(): 一次性转换
//   - New(): 构造可复用、并发安全的 Parser
//   - (*Parser).Chunks(): 返回片段及其字节/UTF-16 偏移
//   - (*Parser).RenderMarkdown(): Markdown → HTML，正文经过 Markup
//   - (*Parser).ParseAll(): 并发批量转换
//
// 示例：
//
//	out, err := tunhong.Parse("Some 漢字 and བོད་ཡིག་.", tunhong.WithTagMarkup(nil))
//	// Some <span lang="zh">漢字</span> and <span lang="bo">བོད་ཡིག་</span>.
//
//	p, err := tunhong.New(tunhong.WithTagMarkup(tunhong.TagConfig{
//	    tunhong.ModeChinese: {Open: "[c]", Close: "[ↄ]"},
//	    tunhong.ModeTibetan: {Open: "[t]", Close: "[ʇ]"},
//	}))
package tunhong

import (
	"errors"

	"github.com/riverfjs/tunhong-go/internal/classify"
	"github.com/riverfjs/tunhong-go/internal/segment"
	"github.com/riverfjs/tunhong-go/internal/types"
)

// 导出类型别名
type (
	Mode                 = types.Mode
	Chunk                = types.Chunk
	Handler              = types.Handler
	Markup               = types.Markup
	ModeHandler          = types.ModeHandler
	UnsupportedModeError = types.UnsupportedModeError
	Rule                 = classify.Rule
	Classifier           = classify.Classifier
)

const (
	ModeChinese = types.ModeChinese
	ModeTibetan = types.ModeTibetan
	ModeOther   = types.ModeOther
)

var (
	// ErrUnsupportedMode is returned when the markup has no operation for a
	// mode that occurs in the input.
	ErrUnsupportedMode = types.ErrUnsupportedMode
	// ErrInvalidRule is returned by New for unusable classifier rules.
	ErrInvalidRule = classify.ErrInvalidRule

	errNilMarkup = errors.New("tunhong: markup factory returned nil")
)

// Range tables used by the default rules.
var (
	ChineseTable = classify.Chinese
	TibetanTable = classify.Tibetan
)

// DefaultRules returns the chinese and tibetan rules in evaluation order.
// Append to it to add modes that are tested after the built-in ones.
func DefaultRules() []Rule {
	return classify.DefaultRules()
}

// MarkupFactory creates the Markup used by a single Parse call.
type MarkupFactory func() Markup

// Parser 持有分类器和 Markup 工厂，可被多个 goroutine 同时使用
type Parser struct {
	classifier *Classifier
	newMarkup  MarkupFactory
}

// New creates a Parser. Without options it uses the chinese, tibetan, other
// classifier and IdentityMarkup.
func New(opts ...Option) (*Parser, error) {
	options := applyOptions(opts...)
	if options.err != nil {
		return nil, options.err
	}
	return &Parser{
		classifier: options.Classifier,
		newMarkup:  options.Markup,
	}, nil
}

// Parse 将 text 切分为片段并交给新建的 Markup，返回其 Finalize 结果
//
// 空字符串不会触发任何片段，直接返回 Finalize 的结果。
// Markup 不支持某个出现的 Mode 时返回 *UnsupportedModeError，且不调用 Finalize。
func (p *Parser) Parse(text string) (string, error) {
	m := p.newMarkup()
	if m == nil {
		return "", errNilMarkup
	}
	return segment.Parse(text, p.classifier.Classify, m)
}

// Classify returns the mode of a single code point.
func (p *Parser) Classify(r rune) Mode {
	return p.classifier.Classify(r)
}

// Modes returns the classifier's modes in evaluation order.
func (p *Parser) Modes() []Mode {
	return p.classifier.Modes()
}
