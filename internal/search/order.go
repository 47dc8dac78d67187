package search

import "sort"

// columnOrder is the middle-outward column permutation: columns nearer the
// centre are explored first since they tend to take part in more winning
// lines. Computed once per Engine, following the same recurrence the
// original solver uses (W/2 offset by +-(i+1)/2, alternating sign).
func columnOrder(width int) []int {
	order := make([]int, width)
	for i := 0; i < width; i++ {
		sign := 1 - 2*(i%2)
		order[i] = width/2 + sign*(i+1)/2
	}
	return order
}

// candidateMove pairs a column with its move bit and the number of new
// threats it creates, for move ordering.
type candidateMove struct {
	column        int
	bit           uint64
	opportunities int
}

// orderMoves sorts candidates in place by opportunities descending, stable
// so that ties preserve the middle-outward column order they were gathered
// in (earlier column-order index stays earlier).
func orderMoves(candidates []candidateMove) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].opportunities > candidates[j].opportunities
	})
}
