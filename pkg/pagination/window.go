// Package pagination computes the numeric window of pages a pagination
// control displays and rebuilds target URLs with updated query parameters.
package pagination

import (
	"errors"
	"fmt"
)

// ErrInvalidPagesToShow is returned when the requested window size is not a
// positive integer.
var ErrInvalidPagesToShow = errors.New("pagination: pages_to_show should be a positive integer")

// Spec is the input to ComputeWindow. CurrentPage is expected to already be
// clamped into [1, TotalPages] by the caller; the planner bounds the window,
// not the current page.
type Spec struct {
	CurrentPage int
	TotalPages  int
	PagesToShow int
}

// Plan is the computed window. PagesBack and PagesForward are the jump
// targets for the back/forward indicators; zero means the indicator is
// absent (valid page numbers start at 1).
type Plan struct {
	PagesShown   []int
	FirstPage    int
	LastPage     int
	CurrentPage  int
	TotalPages   int
	PagesBack    int
	PagesForward int
}

// ComputeWindow returns the window of page numbers to display, centered on
// the current page with edge compression: slots that would be spent on an
// absent back or forward indicator are traded for extra visible pages, so
// the control keeps a near-constant width at either end of the range.
//
// When the window already covers the whole range the plan may show one page
// more than PagesToShow requests; this matches the historical control layout
// and is relied upon by existing templates.
func ComputeWindow(spec Spec) (Plan, error) {
	if spec.PagesToShow < 1 {
		return Plan{}, fmt.Errorf("%w, you specified %d", ErrInvalidPagesToShow, spec.PagesToShow)
	}

	delta := spec.PagesToShow / 2

	firstPage := spec.CurrentPage - delta
	if firstPage < 1 {
		firstPage = 1
	}

	pagesBack := 0
	if firstPage > 1 {
		pagesBack = firstPage - delta
		if pagesBack < 1 {
			pagesBack = 1
		}
	}

	lastPage := firstPage + spec.PagesToShow - 1
	if pagesBack == 0 {
		// No back indicator; reclaim its slot for one more page.
		lastPage++
	}
	if lastPage > spec.TotalPages {
		lastPage = spec.TotalPages
	}

	pagesForward := 0
	if lastPage < spec.TotalPages {
		pagesForward = lastPage + delta
		if pagesForward > spec.TotalPages {
			pagesForward = spec.TotalPages
		}
	} else {
		// Window reaches the end: the forward slot is unused, so shift the
		// window one page left and pull the back target along with it.
		if firstPage > 1 {
			firstPage--
		}
		if pagesBack > 1 {
			pagesBack--
		} else {
			pagesBack = 0
		}
	}

	var pagesShown []int
	if lastPage >= firstPage {
		pagesShown = make([]int, 0, lastPage-firstPage+1)
		for page := firstPage; page <= lastPage; page++ {
			pagesShown = append(pagesShown, page)
		}
	}

	return Plan{
		PagesShown:   pagesShown,
		FirstPage:    firstPage,
		LastPage:     lastPage,
		CurrentPage:  spec.CurrentPage,
		TotalPages:   spec.TotalPages,
		PagesBack:    pagesBack,
		PagesForward: pagesForward,
	}, nil
}
