package tunhong

import (
	"strings"
	"testing"
)

func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("漢字 and བོད་ཡིག་")
	f.Add("Some 漢字 and བོད་ཡིག་.")
	f.Add("I like 香蕉!")
	f.Add("𠀀𪘀")
	f.Add("\xff\xfe")
	f.Add("\x00")

	identity := mustNewF(f)
	silent := mustNewF(f, WithSilentMarkup())
	tagged := mustNewF(f, WithTagMarkup(customTags))

	f.Fuzz(func(t *testing.T, s string) {
		// Identity law.
		if got, err := identity.Parse(s); err != nil || got != s {
			t.Errorf("identity Parse(%q) = %q, %v", s, got, err)
		}

		if got, err := silent.Parse(s); err != nil || got != "" {
			t.Errorf("silent Parse(%q) = %q, %v", s, got, err)
		}

		// Removing the tags gives back the input.
		got, err := tagged.Parse(s)
		if err != nil {
			t.Fatalf("tagged Parse(%q) error = %v", s, err)
		}
		if !strings.ContainsAny(s, "[]") {
			stripped := strings.NewReplacer("[c]", "", "[ↄ]", "", "[t]", "", "[ʇ]", "").Replace(got)
			if stripped != s {
				t.Errorf("tagged Parse(%q) = %q, stripped %q", s, got, stripped)
			}
		}
	})
}

func mustNewF(f *testing.F, opts ...Option) *Parser {
	f.Helper()
	p, err := New(opts...)
	if err != nil {
		f.Fatalf("New() error = %v", err)
	}
	return p
}
