package tunhong

import (
	"errors"
	"io"
	"log"
	"strings"
	"testing"
)

// TestRenderMarkdown_DefaultTags 测试 Markdown 正文加标签
func TestRenderMarkdown_DefaultTags(t *testing.T) {
	got, err := RenderMarkdown("漢字 and བོད་ཡིག་", WithTagMarkup(nil))
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	want := "<p><span lang=\"zh\">漢字</span> and <span lang=\"bo\">བོད་ཡིག་</span></p>\n"
	if got != want {
		t.Errorf("RenderMarkdown() = %q, want %q", got, want)
	}
}

// TestRenderMarkdown_Identity 测试默认 Markup 等同于普通 HTML 渲染
func TestRenderMarkdown_Identity(t *testing.T) {
	got, err := RenderMarkdown("# 標題\n\n**粗** & `code`")
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	for _, part := range []string{"標題</h1>", "<strong>粗</strong> &amp; <code>code</code>"} {
		if !strings.Contains(got, part) {
			t.Errorf("RenderMarkdown() = %q, missing %q", got, part)
		}
	}
	if strings.Contains(got, "<span") {
		t.Errorf("RenderMarkdown() = %q, identity markup should not add tags", got)
	}
}

// TestRenderMarkdown_Silent 测试静默 Markup 只保留结构
func TestRenderMarkdown_Silent(t *testing.T) {
	got, err := RenderMarkdown("I like 香蕉!", WithSilentMarkup())
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if got != "<p></p>\n" {
		t.Errorf("RenderMarkdown() = %q, want %q", got, "<p></p>\n")
	}
}

// TestRenderMarkdown_UnsupportedMode 测试错误传播
func TestRenderMarkdown_UnsupportedMode(t *testing.T) {
	old := Logger
	SetLogger(log.New(io.Discard, "", 0))
	defer SetLogger(old)

	_, err := RenderMarkdown("ខ្មែរ",
		WithRules(khmerRule),
		WithMarkup(func() Markup { return &recordingMarkup{} }),
	)
	if !errors.Is(err, ErrUnsupportedMode) {
		t.Errorf("RenderMarkdown() error = %v, want ErrUnsupportedMode", err)
	}
}

// TestRenderMarkdown_CharacterReference 测试字符引用先解码再分类
func TestRenderMarkdown_CharacterReference(t *testing.T) {
	brackets := TagConfig{ModeChinese: {Open: "[", Close: "]"}}
	tests := []struct {
		src  string
		want string
	}{
		{"&#x6F22;字", "<p>[漢字]</p>\n"},
		{"漢&amp;字", "<p>[漢]&amp;[字]</p>\n"},
	}
	for _, tt := range tests {
		got, err := RenderMarkdown(tt.src, WithTagMarkup(brackets))
		if err != nil {
			t.Fatalf("RenderMarkdown(%q) error = %v", tt.src, err)
		}
		if got != tt.want {
			t.Errorf("RenderMarkdown(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}
