package jigsaw

// Relation is the side on which a source tile sits relative to a target tile.
// (i, j, Left) places i immediately to the left of j; (i, j, Up) places i
// immediately above j.
type Relation int

const (
	Left Relation = iota
	Right
	Up
	Down
)

// Basic lists the relations stored in a WeightMatrix. The other two are
// answered by swapping operands and mapping through Symmetric.
var Basic = [...]Relation{Left, Up}

// Relations lists all four relations in table order.
var Relations = [...]Relation{Left, Right, Up, Down}

// Symmetric maps Left<->Right and Up<->Down.
func (r Relation) Symmetric() Relation {
	switch r {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// IsBasic reports whether r is stored canonically.
func (r Relation) IsBasic() bool {
	return r == Left || r == Up
}

// Offset is the position of the target relative to the source.
func (r Relation) Offset() Position {
	switch r {
	case Left:
		return Position{Row: 0, Col: 1}
	case Right:
		return Position{Row: 0, Col: -1}
	case Up:
		return Position{Row: 1, Col: 0}
	default:
		return Position{Row: -1, Col: 0}
	}
}

func (r Relation) String() string {
	switch r {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// canonical rewrites (a, b, r) so that r is Basic.
func canonical[T any](a, b T, r Relation) (T, T, Relation) {
	if r.IsBasic() {
		return a, b, r
	}
	return b, a, r.Symmetric()
}
