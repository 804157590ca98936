package tunhong

import (
	"github.com/riverfjs/tunhong-go/internal/buffer"
	"github.com/riverfjs/tunhong-go/internal/segment"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Characters outside the BMP (codepoint > 0xFFFF), such as the CJK
// extensions from U+20000, take 2 UTF-16 code units; all others take 1.
func UTF16Len(text string) int {
	return buffer.UTF16Len(text)
}

// Chunks returns the chunks of text in order, with byte and UTF-16 offsets.
// Concatenating their Text fields yields text; an empty text yields an empty
// slice.
func (p *Parser) Chunks(text string) []Chunk {
	chunks := make([]Chunk, 0)
	buf := buffer.New()
	for s := range segment.Spans(text, p.classifier.Classify) {
		byteStart, utf16Start := buf.ByteOffset(), buf.UTF16Offset()
		buf.Write(text[s.Start:s.End])
		chunks = append(chunks, Chunk{
			Mode:        s.Mode,
			Text:        text[s.Start:s.End],
			Offset:      byteStart,
			Length:      buf.ByteOffset() - byteStart,
			UTF16Offset: utf16Start,
			UTF16Length: buf.UTF16Offset() - utf16Start,
		})
	}
	return chunks
}
