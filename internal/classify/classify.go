// Package classify maps single code points to modes using an ordered list of
// range-table rules. The first matching rule wins; code points matched by no
// rule fall back to types.ModeOther.
package classify

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/riverfjs/tunhong-go/internal/types"
)

// ErrInvalidRule is returned by New for rules that cannot be evaluated.
var ErrInvalidRule = errors.New("classify: invalid rule")

var (
	// CJK Radicals Supplement, Kangxi Radicals, Ideographic Description Characters
	cjkRadicals = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x2E80, Hi: 0x2FFF, Stride: 1}}}
	bopomofo    = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x3100, Hi: 0x312F, Stride: 1}}}
	// Kanbun, Bopomofo Extended, CJK Strokes
	kanbunStrokes = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x3190, Hi: 0x31EF, Stride: 1}}}
	cjkExtA       = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}}}
	cjkUnified    = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}}}
	cjkCompat     = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0xF900, Hi: 0xFAFF, Stride: 1}}}
	// Extensions B through D and the Compatibility Ideographs Supplement
	cjkSupplementary = &unicode.RangeTable{R32: []unicode.Range32{{Lo: 0x20000, Hi: 0x2FA1F, Stride: 1}}}
)

// Chinese is the union of the CJK blocks classified as types.ModeChinese.
var Chinese = rangetable.Merge(
	cjkRadicals,
	bopomofo,
	kanbunStrokes,
	cjkExtA,
	cjkUnified,
	cjkCompat,
	cjkSupplementary,
)

// Tibetan covers the Tibetan block U+0F00..U+0FFF.
var Tibetan = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0F00, Hi: 0x0FFF, Stride: 1}}}

// Rule assigns Mode to every code point in Table.
type Rule struct {
	Mode  types.Mode
	Table *unicode.RangeTable
}

// Match reports whether r belongs to the rule's table.
func (rl Rule) Match(r rune) bool {
	return unicode.Is(rl.Table, r)
}

// DefaultRules returns the built-in rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Mode: types.ModeChinese, Table: Chinese},
		{Mode: types.ModeTibetan, Table: Tibetan},
	}
}

// Classifier is immutable after construction and safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// New builds a classifier evaluating rules in the given order, followed by
// the unconditional types.ModeOther fallback.
func New(rules ...Rule) (*Classifier, error) {
	seen := make(map[types.Mode]bool, len(rules))
	for i, rl := range rules {
		switch {
		case rl.Mode == "":
			return nil, fmt.Errorf("%w: rule %d has no mode", ErrInvalidRule, i)
		case rl.Mode == types.ModeOther:
			return nil, fmt.Errorf("%w: %q is reserved for the fallback", ErrInvalidRule, string(rl.Mode))
		case rl.Table == nil:
			return nil, fmt.Errorf("%w: rule %q has no table", ErrInvalidRule, string(rl.Mode))
		case seen[rl.Mode]:
			return nil, fmt.Errorf("%w: duplicate mode %q", ErrInvalidRule, string(rl.Mode))
		}
		seen[rl.Mode] = true
	}
	c := &Classifier{rules: make([]Rule, len(rules))}
	copy(c.rules, rules)
	return c, nil
}

var defaultClassifier = &Classifier{rules: DefaultRules()}

// Default returns the chinese, tibetan, other classifier.
func Default() *Classifier {
	return defaultClassifier
}

// Classify returns the mode of the first rule matching r.
func (c *Classifier) Classify(r rune) types.Mode {
	for _, rl := range c.rules {
		if rl.Match(r) {
			return rl.Mode
		}
	}
	return types.ModeOther
}

// Modes returns the modes in evaluation order, ending with types.ModeOther.
func (c *Classifier) Modes() []types.Mode {
	modes := make([]types.Mode, 0, len(c.rules)+1)
	for _, rl := range c.rules {
		modes = append(modes, rl.Mode)
	}
	return append(modes, types.ModeOther)
}
