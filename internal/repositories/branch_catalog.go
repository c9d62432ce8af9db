package repositories

import (
	"sort"
	"strings"

	"github.com/aarondl/null/v8"

	"elaundry/internal/directory"
	"elaundry/internal/entities"
	"elaundry/pkg/types"
)

// DefaultBranches is the built-in catalog used by the static source and the
// seeder.
func DefaultBranches() []entities.Branch {
	return []entities.Branch{
		{
			ID:      "1",
			Name:    "Dhanmondi Branch",
			Address: null.StringFrom("House 42, Road 11, Dhanmondi"),
			Lat:     23.746465,
			Lng:     90.376015,
			Phone:   null.StringFrom("+8801712345678"),
			Hours:   null.StringFrom("9am - 9pm"),
		},
		{
			ID:      "2",
			Name:    "Gulshan Branch",
			Address: null.StringFrom("House 12, Gulshan 2"),
			Lat:     23.7925,
			Lng:     90.4075,
			Phone:   null.StringFrom("+8801711111111"),
			Hours:   null.StringFrom("8am - 8pm"),
		},
	}
}

// applyListParams runs search, sort and pagination over an in-memory list the
// same way the SQL builder does for the database.
func applyListParams(all []entities.Branch, filter types.Filter) ([]entities.Branch, uint64) {
	out := directory.FilterBranches(all, filter.Search)
	total := uint64(len(out))

	if field, dir, ok := firstSort(filter.Sort); ok {
		desc := strings.EqualFold(dir, "desc")
		less := func(a, b entities.Branch) bool { return a.ID < b.ID }
		switch field {
		case "name":
			less = func(a, b entities.Branch) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
		case "address":
			less = func(a, b entities.Branch) bool { return a.Address.String < b.Address.String }
		}
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return less(out[j], out[i])
			}
			return less(out[i], out[j])
		})
	}

	if filter.WithPagination {
		start := filter.Offset
		if start > len(out) {
			start = len(out)
		}
		end := len(out)
		if filter.Limit > 0 && start+filter.Limit < end {
			end = start + filter.Limit
		}
		out = out[start:end]
	}
	return out, total
}

// firstSort picks the sort key in a stable order so map iteration does not
// change results.
func firstSort(sortMap map[string]string) (string, string, bool) {
	for _, key := range []string{"name", "address", "id"} {
		if dir, ok := sortMap[key]; ok {
			return key, dir, true
		}
	}
	return "", "", false
}

func findIn(all []entities.Branch, id entities.BranchID) (*entities.Branch, bool) {
	for i := range all {
		if all[i].ID == id {
			b := all[i]
			return &b, true
		}
	}
	return nil, false
}
