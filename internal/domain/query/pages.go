package query

import "github.com/linhao/promptmaster/internal/domain/prompt"

// PageSize is the fixed number of records per page.
const PageSize = 15

// Page is one slice of a filtered collection. TotalPages is zero when the
// filtered collection is empty; a minimum of one page is deliberately not
// enforced.
type Page struct {
	Items      []prompt.Record
	TotalPages int
	Page       int
}

// Paginate slices the filtered records for the requested 1-based page. A page
// past the end is clamped to the last page, so a view whose filtered count
// just shrank auto-corrects instead of going blank; anything below 1 becomes
// page 1.
func Paginate(filtered []prompt.Record, page int) Page {
	totalPages := (len(filtered) + PageSize - 1) / PageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if totalPages == 0 {
		return Page{Items: []prompt.Record{}, TotalPages: 0, Page: 1}
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return Page{Items: filtered[start:end], TotalPages: totalPages, Page: page}
}

// PageToken is one entry of the pagination control: either a page number or
// an ellipsis.
type PageToken struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

func pageTok(n int) PageToken { return PageToken{Page: n} }

var ellipsis = PageToken{Ellipsis: true}

// Window computes the page-control labels. Up to ten pages are shown in full;
// beyond that the first and last pages stay visible and the middle collapses:
//
//	near start:  1 2 3 4 5 6 7 … last
//	near end:    1 … last-6 … last
//	middle:      1 … cur-2 cur-1 cur cur+1 cur+2 … last
func Window(current, totalPages int) []PageToken {
	if totalPages <= 0 {
		return nil
	}

	if totalPages <= 10 {
		tokens := make([]PageToken, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			tokens = append(tokens, pageTok(i))
		}
		return tokens
	}

	tokens := []PageToken{pageTok(1)}
	switch {
	case current <= 5:
		for i := 2; i <= 7; i++ {
			tokens = append(tokens, pageTok(i))
		}
		tokens = append(tokens, ellipsis, pageTok(totalPages))
	case current >= totalPages-4:
		tokens = append(tokens, ellipsis)
		for i := totalPages - 6; i <= totalPages; i++ {
			tokens = append(tokens, pageTok(i))
		}
	default:
		tokens = append(tokens, ellipsis)
		for i := current - 2; i <= current+2; i++ {
			tokens = append(tokens, pageTok(i))
		}
		tokens = append(tokens, ellipsis, pageTok(totalPages))
	}
	return tokens
}
