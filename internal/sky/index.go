package sky

import (
	"cmp"
	"slices"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// normEntry pairs an object index with the plane norm of its position.
type normEntry struct {
	norm  float64
	index int
}

// normIndex is sorted by norm, then index. Objects whose norm lies outside
// [‖p‖−r, ‖p‖+r] cannot be within r of p, so a band of the index is a
// superset of the objects near p.
type normIndex []normEntry

func newNormIndex(points []r2.Vec) normIndex {
	idx := make(normIndex, len(points))
	for i, p := range points {
		idx[i] = normEntry{norm: r2.Norm(p), index: i}
	}
	slices.SortFunc(idx, func(a, b normEntry) int {
		if c := cmp.Compare(a.norm, b.norm); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})
	return idx
}

// band returns the entries with lo <= norm <= hi.
func (n normIndex) band(lo, hi float64) normIndex {
	i := sort.Search(len(n), func(i int) bool { return n[i].norm >= lo })
	j := sort.Search(len(n), func(j int) bool { return n[j].norm > hi })
	if i >= j {
		return nil
	}
	return n[i:j]
}
