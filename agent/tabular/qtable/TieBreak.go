package qtable

import "fmt"

// TieBreak determines how the greedy action of a state is chosen when
// action values are equal
type TieBreak int

const (
	// Legacy starts the search for the greedy action at a value of 0.0
	// and only adopts an action whose value is strictly greater than
	// the best so far. Rows that are all zero, or all negative, pick
	// action 0.
	Legacy TieBreak = iota

	// Strict picks the first action holding the maximum value of the
	// row, whatever its sign.
	Strict
)

func (t TieBreak) String() string {
	switch t {
	case Legacy:
		return "legacy"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// Valid returns whether t is a known TieBreak
func (t TieBreak) Valid() bool {
	return t == Legacy || t == Strict
}

// MarshalText implements encoding.TextMarshaler so that TieBreaks are
// stored by name in JSON configurations
func (t TieBreak) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("marshalText: unknown tie break %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TieBreak) UnmarshalText(text []byte) error {
	tb, err := ParseTieBreak(string(text))
	if err != nil {
		return err
	}
	*t = tb
	return nil
}

// ParseTieBreak returns the TieBreak named s. The empty string names
// the Legacy TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "", "legacy":
		return Legacy, nil
	case "strict":
		return Strict, nil
	}
	return Legacy, fmt.Errorf("parseTieBreak: unknown tie break %q", s)
}
