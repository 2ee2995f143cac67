package fu

// Fnzi returns the first non-zero value or zero if all are zero
func Fnzi(a ...int) int {
	for _, x := range a {
		if x != 0 {
			return x
		}
	}
	return 0
}

// Seqi returns the sequence [0,n)
func Seqi(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}
