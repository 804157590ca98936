// Package segment splits text into maximal runs of code points sharing one
// mode and drives a markup with those runs.
package segment

import (
	"iter"
	"unicode/utf8"

	"github.com/riverfjs/tunhong-go/internal/types"
)

// ClassifyFunc maps a code point to its mode.
type ClassifyFunc func(r rune) types.Mode

// Span is the byte range [Start, End) of one chunk.
type Span struct {
	Mode       types.Mode
	Start, End int
}

// Spans yields the chunks of text left to right. The spans partition text
// and are never empty.
//
// Invalid UTF-8 bytes are classified as utf8.RuneError one byte at a time and
// kept in the span they fall into.
func Spans(text string, classify ClassifyFunc) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		if text == "" {
			return
		}
		first, _ := utf8.DecodeRuneInString(text)
		current := classify(first)
		start := 0
		for i, r := range text {
			mode := classify(r)
			if mode == current {
				continue
			}
			if i > start && !yield(Span{Mode: current, Start: start, End: i}) {
				return
			}
			start, current = i, mode
		}
		// the last span always ends at len(text), so it is never empty
		yield(Span{Mode: current, Start: start, End: len(text)})
	}
}

// Walk calls fn for every span of text. An error returned by fn stops the
// walk and is returned as is.
func Walk(text string, classify ClassifyFunc, fn func(mode types.Mode, start, end int) error) error {
	for s := range Spans(text, classify) {
		if err := fn(s.Mode, s.Start, s.End); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch hands chunk to the markup operation named by mode.
func Dispatch(h types.Handler, mode types.Mode, chunk string) error {
	switch mode {
	case types.ModeChinese:
		h.Chinese(chunk)
	case types.ModeTibetan:
		h.Tibetan(chunk)
	case types.ModeOther:
		h.Other(chunk)
	default:
		if mh, ok := h.(types.ModeHandler); ok && mh.Handle(mode, chunk) {
			return nil
		}
		return &types.UnsupportedModeError{Mode: mode}
	}
	return nil
}

// Parse walks text, dispatches every chunk to m and returns m.Finalize().
// If a chunk cannot be dispatched Parse returns the error without
// finalizing m.
func Parse(text string, classify ClassifyFunc, m types.Markup) (string, error) {
	err := Walk(text, classify, func(mode types.Mode, start, end int) error {
		return Dispatch(m, mode, text[start:end])
	})
	if err != nil {
		return "", err
	}
	return m.Finalize(), nil
}
