package libdiff

// Op is the kind of edit a Change makes.
type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Symbol is the one character prefix used when formatting o.
func (o Op) Symbol() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}
