package loader_test

import (
	"sort"
	"strconv"
)

func padInt(i int) string {
	s := strconv.Itoa(i)
	for len(s) < 5 {
		s = "0" + s
	}

	return s
}

func sortFloats(xs []float64) { sort.Float64s(xs) }
