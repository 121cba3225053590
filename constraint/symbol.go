package constraint

import "strconv"

// Symbol identifies the comparison kind of a constraint. The set is closed;
// per-kind behavior is dispatched with exhaustive switches rather than
// interfaces.
type Symbol uint8

const (
	LessThan       Symbol = iota // <
	GreaterThan                  // >
	LessOrEqual                  // <=
	GreaterOrEqual               // >=
)

func (s Symbol) String() string {
	switch s {
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	default:
		return "symbol(" + strconv.Itoa(int(s)) + ")"
	}
}

// IsStrict reports whether the comparison excludes the boundary value.
func (s Symbol) IsStrict() bool {
	return s == LessThan || s == GreaterThan
}

// flip reverses the comparison direction, preserving strictness.
func (s Symbol) flip() Symbol {
	switch s {
	case LessThan:
		return GreaterThan
	case GreaterThan:
		return LessThan
	case LessOrEqual:
		return GreaterOrEqual
	case GreaterOrEqual:
		return LessOrEqual
	default:
		panic("unknown comparison symbol")
	}
}

// invert returns the symbol of the logical complement; ¬(<) is ≥ and
// symmetric.
func (s Symbol) invert() Symbol {
	switch s {
	case LessThan:
		return GreaterOrEqual
	case GreaterThan:
		return LessOrEqual
	case LessOrEqual:
		return GreaterThan
	case GreaterOrEqual:
		return LessThan
	default:
		panic("unknown comparison symbol")
	}
}
