package tunhong

import "github.com/riverfjs/tunhong-go/internal/buffer"

// IdentityMarkup appends every chunk verbatim, so its result equals the
// parsed text. It accepts every mode.
type IdentityMarkup struct {
	buf *buffer.TextBuffer
}

// NewIdentityMarkup creates an empty IdentityMarkup.
func NewIdentityMarkup() *IdentityMarkup {
	return &IdentityMarkup{buf: buffer.New()}
}

func (m *IdentityMarkup) Chinese(chunk string) { m.buf.Write(chunk) }
func (m *IdentityMarkup) Tibetan(chunk string) { m.buf.Write(chunk) }
func (m *IdentityMarkup) Other(chunk string)   { m.buf.Write(chunk) }

// Handle appends chunks of custom modes verbatim.
func (m *IdentityMarkup) Handle(_ Mode, chunk string) bool {
	m.buf.Write(chunk)
	return true
}

// Finalize returns the accumulated text.
func (m *IdentityMarkup) Finalize() string {
	return m.buf.String()
}

// TagMarkup 用开闭标签包裹已配置 Mode 的片段，未配置的 Mode 原样输出
type TagMarkup struct {
	tags TagConfig
	buf  *buffer.TextBuffer
}

// NewTagMarkup creates a TagMarkup. Modes missing from tags keep the
// DefaultTags entries.
func NewTagMarkup(tags TagConfig) *TagMarkup {
	return newTagMarkup(mergeTags(tags))
}

// newTagMarkup uses tags as is; tags must not be modified afterwards.
func newTagMarkup(tags TagConfig) *TagMarkup {
	return &TagMarkup{tags: tags, buf: buffer.New()}
}

func (m *TagMarkup) write(mode Mode, chunk string) {
	if t, ok := m.tags[mode]; ok {
		m.buf.WriteAll(t.Open, chunk, t.Close)
		return
	}
	m.buf.Write(chunk)
}

func (m *TagMarkup) Chinese(chunk string) { m.write(ModeChinese, chunk) }
func (m *TagMarkup) Tibetan(chunk string) { m.write(ModeTibetan, chunk) }
func (m *TagMarkup) Other(chunk string)   { m.write(ModeOther, chunk) }

// Handle wraps chunks of custom modes that have a tag.
func (m *TagMarkup) Handle(mode Mode, chunk string) bool {
	m.write(mode, chunk)
	return true
}

// Finalize returns the accumulated text.
func (m *TagMarkup) Finalize() string {
	return m.buf.String()
}

// SilentMarkup ignores every chunk; Finalize returns "".
type SilentMarkup struct{}

func (SilentMarkup) Chinese(string)           {}
func (SilentMarkup) Tibetan(string)           {}
func (SilentMarkup) Other(string)             {}
func (SilentMarkup) Handle(Mode, string) bool { return true }
func (SilentMarkup) Finalize() string         { return "" }
