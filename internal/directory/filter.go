package directory

import (
	"strings"

	"elaundry/internal/entities"
)

// FilterBranches keeps the branches whose name and address contain query,
// ignoring case, in their original order. An empty query keeps everything.
// The result never aliases the input.
func FilterBranches(branches []entities.Branch, query string) []entities.Branch {
	needle := strings.ToLower(query)
	out := make([]entities.Branch, 0, len(branches))
	for _, b := range branches {
		if strings.Contains(strings.ToLower(b.SearchText()), needle) {
			out = append(out, b)
		}
	}
	return out
}

func sameBranches(a, b []entities.Branch) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
