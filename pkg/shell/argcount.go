package shell

import "fmt"

type countKind int

const (
	countExact countKind = iota
	countAtLeast
	countAtMost
	countRange
)

// ArgumentCount constrains how many positional arguments a command accepts.
// Build one with Exact, AtLeast, AtMost or Range.
type ArgumentCount struct {
	kind countKind
	min  int
	max  int
}

func Exact(n int) ArgumentCount {
	return ArgumentCount{kind: countExact, min: n, max: n}
}

func AtLeast(n int) ArgumentCount {
	return ArgumentCount{kind: countAtLeast, min: n}
}

func AtMost(n int) ArgumentCount {
	return ArgumentCount{kind: countAtMost, max: n}
}

// Range accepts any count in [min, max], both ends inclusive.
func Range(min, max int) ArgumentCount {
	return ArgumentCount{kind: countRange, min: min, max: max}
}

// Satisfied reports whether count arguments meet the constraint.
func (c ArgumentCount) Satisfied(count int) bool {
	switch c.kind {
	case countExact:
		return count == c.min
	case countAtLeast:
		return count >= c.min
	case countAtMost:
		return count <= c.max
	case countRange:
		return count >= c.min && count <= c.max
	}

	return false
}

func (c ArgumentCount) String() string {
	switch c.kind {
	case countExact:
		return fmt.Sprintf("exactly %d", c.min)
	case countAtLeast:
		return fmt.Sprintf("at least %d", c.min)
	case countAtMost:
		return fmt.Sprintf("up to %d", c.max)
	case countRange:
		return fmt.Sprintf("%d-%d", c.min, c.max)
	}

	return "unknown"
}
