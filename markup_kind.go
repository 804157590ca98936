package tunhong

import "fmt"

// MarkupKind names one of the built-in markups.
type MarkupKind int

const (
	// MarkupIdentity selects IdentityMarkup.
	MarkupIdentity MarkupKind = iota
	// MarkupTag selects TagMarkup.
	MarkupTag
	// MarkupSilent selects SilentMarkup.
	MarkupSilent
)

// String returns the string representation of MarkupKind.
func (k MarkupKind) String() string {
	switch k {
	case MarkupIdentity:
		return "identity"
	case MarkupTag:
		return "tag"
	case MarkupSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseMarkupKind is the inverse of MarkupKind.String.
func ParseMarkupKind(s string) (MarkupKind, error) {
	switch s {
	case "identity":
		return MarkupIdentity, nil
	case "tag":
		return MarkupTag, nil
	case "silent":
		return MarkupSilent, nil
	}
	return 0, fmt.Errorf("tunhong: unknown markup %q (want identity, tag or silent)", s)
}

// Option returns the option selecting this markup. tags is only used by
// MarkupTag.
func (k MarkupKind) Option(tags TagConfig) Option {
	switch k {
	case MarkupTag:
		return WithTagMarkup(tags)
	case MarkupSilent:
		return WithSilentMarkup()
	default:
		return WithIdentityMarkup()
	}
}
