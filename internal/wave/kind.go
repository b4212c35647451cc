package wave

import (
	"fmt"
	"strings"
)

// Kind selects the wave formula used for a frame.
type Kind int

const (
	Sine Kind = iota
	Ripple
	Plasma
)

var kindNames = [...]string{"sine", "ripple", "plasma"}

var kindTitles = [...]string{
	"SINE WAVE INTERFERENCE",
	"RIPPLE EFFECT",
	"PLASMA FIELD",
}

// Kinds returns every pattern kind in display cycle order.
func Kinds() []Kind {
	return []Kind{Sine, Ripple, Plasma}
}

func (k Kind) valid() bool { return k >= Sine && k <= Plasma }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Title is the banner shown above frames of this kind.
func (k Kind) Title() string {
	if !k.valid() {
		return strings.ToUpper(k.String())
	}
	return kindTitles[k]
}

// ParseKind resolves a pattern name such as "ripple" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrUnknownKind, s, strings.Join(kindNames[:], ", "))
}
