package datastructure

const (
	EPS = 1e-6
)

// less than or equal operator
func Le(a, b float64) bool {
	return a <= b+EPS
}

// greater than or equal than operator
func Ge(a, b float64) bool {
	return Le(b, a)
}
