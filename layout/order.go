package layout

import "sort"

// ReadingOrder returns the runs sorted into reading sequence: column
// first, then top coordinate, then left. The sort is stable, so runs
// that tie on all three keys keep their input order. The input slice is
// left untouched.
func ReadingOrder(runs []ColumnRun) []ColumnRun {
	ordered := make([]ColumnRun, len(runs))
	copy(ordered, runs)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		return a.Left < b.Left
	})
	return ordered
}
