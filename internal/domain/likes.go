package domain

import "slices"

// LikeSet is the ordered set of artwork ids an account has liked.
type LikeSet []string

func (s LikeSet) Has(id string) bool {
	return slices.Contains(s, id)
}

// Toggle returns the set with id flipped and whether id is now present.
func (s LikeSet) Toggle(id string) (LikeSet, bool) {
	if i := slices.Index(s, id); i >= 0 {
		return slices.Delete(slices.Clone(s), i, i+1), false
	}
	return append(slices.Clone(s), id), true
}
