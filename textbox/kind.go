package textbox

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/textbox/layout"
)

// Kind is the line model of a text box, fixed when content is bound.
type Kind uint8

const (
	// SingleLine submits on Enter and pastes only the first line.
	SingleLine Kind = iota
	MultiLineUnwrapped
	MultiLineWrapped
)

func (k Kind) Multiline() bool { return k != SingleLine }

func (k Kind) wrapMode() layout.WrapMode {
	if k == MultiLineWrapped {
		return layout.WrapWord
	}
	return layout.WrapNone
}

func (k Kind) String() string {
	switch k {
	case SingleLine:
		return "single"
	case MultiLineUnwrapped:
		return "multi"
	case MultiLineWrapped:
		return "wrapped"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind parses the String form of a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "singleline", "single-line":
		return SingleLine, nil
	case "multi", "multiline", "multi-line":
		return MultiLineUnwrapped, nil
	case "wrapped", "multiline-wrapped", "multi-line-wrapped":
		return MultiLineWrapped, nil
	}
	return SingleLine, fmt.Errorf("textbox: unknown kind %q", s)
}
