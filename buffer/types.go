package buffer

// Dir is a cursor step direction.
type Dir int

const (
	DirLeft  Dir = -1
	DirRight Dir = 1
)

// Step returns the signed index delta for d.
func (d Dir) Step() int {
	if d == DirLeft {
		return -1
	}
	return 1
}

func (d Dir) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
