// Package query is the pure filter/sort/paginate engine. It never mutates its
// inputs and has no side effects, so callers may run it on every keystroke.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/linhao/promptmaster/internal/domain/prompt"
)

type Sort string

const (
	SortLatest    Sort = "latest"
	SortOldest    Sort = "oldest"
	SortTitleAsc  Sort = "title-asc"
	SortTitleDesc Sort = "title-desc"
	SortPopular   Sort = "popular"
)

// Criteria is one view over the collection. Page is 1-based.
type Criteria struct {
	Category   prompt.Category
	Complexity prompt.Complexity // "" or "all" means any
	Search     string
	Sort       Sort
	Page       int
}

// Result is a filtered, sorted, paged view plus the sidebar counts.
type Result struct {
	Items      []prompt.Record
	Total      int
	TotalPages int
	Page       int
	Window     []PageToken
	Counts     map[prompt.Category]int
}

// titles sort with a real collator rather than byte order, so accented and
// mixed-case titles land where a reader expects them.
var collator = collate.New(language.Und, collate.IgnoreCase)

// Filter returns the records matching the criteria.
//
// When the category filter is the sentinel "custom" the generic predicates are
// ignored entirely and the result is the records whose id is in the supplied
// favorites set ("my favorites"). This repurposing of the category slot comes
// straight from the source UI and is intentional; an empty or nil favorites
// set yields an empty result.
func Filter(records []prompt.Record, c Criteria, favorites map[prompt.ID]struct{}) []prompt.Record {
	needle := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]prompt.Record, 0, len(records))
	for _, r := range records {
		if c.Category == prompt.CategoryCustom {
			if len(favorites) == 0 {
				continue
			}
			if _, ok := favorites[prompt.NormalizeID(r.ID)]; ok {
				out = append(out, r)
			}
			continue
		}

		if c.Category != "" && c.Category != prompt.CategoryAll && r.Category != c.Category {
			continue
		}
		if c.Complexity != "" && c.Complexity != "all" && r.EffectiveComplexity() != c.Complexity {
			continue
		}
		if needle != "" && !matchesSearch(r, needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r prompt.Record, needle string) bool {
	return strings.Contains(strings.ToLower(r.Title), needle) ||
		strings.Contains(strings.ToLower(r.Prompt), needle) ||
		strings.Contains(strings.ToLower(r.Desc), needle)
}

// SortRecords orders records in place. The sort is stable: records with equal
// keys keep their relative input order.
func SortRecords(records []prompt.Record, by Sort) {
	switch by {
	case SortOldest:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CreatedAt < records[j].CreatedAt
		})
	case SortTitleAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return collator.CompareString(records[i].Title, records[j].Title) < 0
		})
	case SortTitleDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return collator.CompareString(records[i].Title, records[j].Title) > 0
		})
	case SortLatest, SortPopular, "":
		// Popularity signals are not tracked; popular falls back to latest.
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CreatedAt > records[j].CreatedAt
		})
	}
}

// CategoryCounts counts records per storable category over the unfiltered
// collection, so sidebar totals never move when search or complexity filters
// change. Every category is present in the map, zero or not.
func CategoryCounts(records []prompt.Record) map[prompt.Category]int {
	counts := make(map[prompt.Category]int, len(prompt.Categories))
	for _, c := range prompt.Categories {
		counts[c] = 0
	}
	for _, r := range records {
		if r.Category != prompt.CategoryAll {
			counts[r.Category]++
		}
	}
	return counts
}

// Apply runs the full pipeline: filter, sort, paginate, counts.
func Apply(records []prompt.Record, c Criteria, favorites map[prompt.ID]struct{}) Result {
	filtered := Filter(records, c, favorites)
	SortRecords(filtered, c.Sort)

	page := Paginate(filtered, c.Page)
	return Result{
		Items:      page.Items,
		Total:      len(filtered),
		TotalPages: page.TotalPages,
		Page:       page.Page,
		Window:     Window(page.Page, page.TotalPages),
		Counts:     CategoryCounts(records),
	}
}
