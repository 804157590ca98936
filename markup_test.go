package tunhong

import (
	"strings"
	"testing"
)

type dispatched struct {
	mode  Mode
	chunk string
}

// recordingMarkup 记录收到的片段，只实现内置 Mode
type recordingMarkup struct {
	calls     []dispatched
	finalized int
}

func (m *recordingMarkup) Chinese(chunk string) { m.calls = append(m.calls, dispatched{ModeChinese, chunk}) }
func (m *recordingMarkup) Tibetan(chunk string) { m.calls = append(m.calls, dispatched{ModeTibetan, chunk}) }
func (m *recordingMarkup) Other(chunk string)   { m.calls = append(m.calls, dispatched{ModeOther, chunk}) }

func (m *recordingMarkup) Finalize() string {
	m.finalized++
	var sb strings.Builder
	for _, c := range m.calls {
		sb.WriteString(c.chunk)
	}
	return sb.String()
}

// TestIdentityMarkup 测试原样输出
func TestIdentityMarkup(t *testing.T) {
	m := NewIdentityMarkup()
	m.Other("a ")
	m.Chinese("漢")
	m.Tibetan("བོ")
	if !m.Handle("khmer", "ខ") {
		t.Error("Handle() = false, want true")
	}
	if got, want := m.Finalize(), "a 漢བོខ"; got != want {
		t.Errorf("Finalize() = %q, want %q", got, want)
	}
}

// TestTagMarkup_Defaults 测试默认标签
func TestTagMarkup_Defaults(t *testing.T) {
	m := NewTagMarkup(nil)
	m.Chinese("漢字")
	m.Other(" and ")
	m.Tibetan("བོད་")
	want := `<span lang="zh">漢字</span> and <span lang="bo">བོད་</span>`
	if got := m.Finalize(); got != want {
		t.Errorf("Finalize() = %q, want %q", got, want)
	}
}

// TestTagMarkup_DoesNotShareState 测试多个实例互不影响
func TestTagMarkup_DoesNotShareState(t *testing.T) {
	tags := TagConfig{ModeChinese: {Open: "[", Close: "]"}}
	a := NewTagMarkup(tags)
	b := NewTagMarkup(tags)
	a.Chinese("漢")
	if got := b.Finalize(); got != "" {
		t.Errorf("second markup Finalize() = %q, want empty", got)
	}

	tags[ModeChinese] = Tag{Open: "<", Close: ">"}
	a.Chinese("字")
	if got, want := a.Finalize(), "[漢][字]"; got != want {
		t.Errorf("Finalize() = %q, want %q (config mutated after construction)", got, want)
	}
}

// TestTagMarkup_EmptyTagDisablesDefault 测试空标签相当于原样输出
func TestTagMarkup_EmptyTagDisablesDefault(t *testing.T) {
	m := NewTagMarkup(TagConfig{ModeTibetan: {}})
	m.Tibetan("བོ")
	if got := m.Finalize(); got != "བོ" {
		t.Errorf("Finalize() = %q, want %q", got, "བོ")
	}
}

// TestSilentMarkup 测试静默输出
func TestSilentMarkup(t *testing.T) {
	var m SilentMarkup
	m.Chinese("漢")
	m.Tibetan("བོ")
	m.Other("x")
	if !m.Handle("khmer", "ខ") {
		t.Error("Handle() = false, want true")
	}
	if got := m.Finalize(); got != "" {
		t.Errorf("Finalize() = %q, want empty", got)
	}
}

// TestMarkupKind 测试名称与选项
func TestMarkupKind(t *testing.T) {
	tests := []struct {
		name string
		kind MarkupKind
		want string
	}{
		{"identity", MarkupIdentity, "Some 漢字."},
		{"tag", MarkupTag, `Some <span lang="zh">漢字</span>.`},
		{"silent", MarkupSilent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kind.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.kind.String(), tt.name)
			}
			kind, err := ParseMarkupKind(tt.name)
			if err != nil || kind != tt.kind {
				t.Errorf("ParseMarkupKind(%q) = %v, %v", tt.name, kind, err)
			}
			got, err := Parse("Some 漢字.", kind.Option(nil))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := ParseMarkupKind("html"); err == nil {
		t.Error("ParseMarkupKind(\"html\") should fail")
	}
	if got := MarkupKind(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
