package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Mode 表示一个码位所属的文字类别
type Mode string

const (
	ModeChinese Mode = "chinese"
	ModeTibetan Mode = "tibetan"
	// ModeOther is the catch-all mode; it matches every code point.
	ModeOther Mode = "other"
)

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Chunk 表示同一 Mode 的最大连续片段
type Chunk struct {
	Mode        Mode   `json:"mode"`
	Text        string `json:"text"`
	Offset      int    `json:"offset"`
	Length      int    `json:"length"`
	UTF16Offset int    `json:"utf16_offset"`
	UTF16Length int    `json:"utf16_length"`
}

// Handler receives the chunks of one parse, one call per chunk.
type Handler interface {
	Chinese(chunk string)
	Tibetan(chunk string)
	Other(chunk string)
}

// Markup 累积片段并在 Finalize 时给出结果
type Markup interface {
	Handler
	Finalize() string
}

// ModeHandler is implemented by markups that accept modes beyond the
// built-in ones. Handle reports whether the mode was accepted.
type ModeHandler interface {
	Handle(mode Mode, chunk string) bool
}

// ErrUnsupportedMode is matched by every UnsupportedModeError.
var ErrUnsupportedMode = errors.New("unsupported mode")

// UnsupportedModeError 表示 Markup 缺少某个 Mode 的处理方法
type UnsupportedModeError struct {
	Mode Mode
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("tunhong: markup does not support mode %q", string(e.Mode))
}

// Is reports whether target is ErrUnsupportedMode.
func (e *UnsupportedModeError) Is(target error) bool {
	return target == ErrUnsupportedMode
}

// Tag 定义一对开闭标签
type Tag struct {
	Open  string
	Close string
}

// MarshalJSON encodes the tag as a two-element array.
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{t.Open, t.Close})
}

// UnmarshalJSON decodes a two-element array ["open", "close"].
func (t *Tag) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("tag must have exactly 2 elements, got %d", len(pair))
	}
	t.Open, t.Close = pair[0], pair[1]
	return nil
}

// TagConfig 将 Mode 映射到标签
type TagConfig map[Mode]Tag

// Clone returns an independent copy of the config.
func (c TagConfig) Clone() TagConfig {
	out := make(TagConfig, len(c))
	for m, t := range c {
		out[m] = t
	}
	return out
}

// DefaultTagConfig 返回默认标签配置
func DefaultTagConfig() TagConfig {
	return TagConfig{
		ModeChinese: {Open: `<span lang="zh">`, Close: `</span>`},
		ModeTibetan: {Open: `<span lang="bo">`, Close: `</span>`},
	}
}
