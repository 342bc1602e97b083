package types

type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Undefined"
	}
}

// Opposite returns the reversed scan direction.
func (d Direction) Opposite() Direction {
	if d == Up {
		return Down
	}
	return Up
}

// Toward returns the direction pointing from floor `from` to floor `to`.
// Equal floors yield Up.
func Toward(from, to int) Direction {
	if to < from {
		return Down
	}
	return Up
}
