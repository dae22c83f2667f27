package graph

import (
	"cmp"
	"slices"
)

// sortOrdered sorts s ascending in place. It exists only to give the
// package a single, grep-able place to change the tie-break rule.
func sortOrdered[T cmp.Ordered](s []T) {
	slices.Sort(s)
}
