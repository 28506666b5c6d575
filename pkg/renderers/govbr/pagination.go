package govbr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goliatone/go-govbrds/pkg/pagination"
	"github.com/goliatone/go-govbrds/pkg/render"
)

// PaginationContext is the fully resolved input of the pagination renderer:
// the computed window plus the link base URL and the CSS chrome.
type PaginationContext struct {
	Plan pagination.Plan
	// URL is the target URL with any extra query parameters already merged.
	URL string
	// Classes is the class attribute of the pagination list element.
	Classes string
	// ParameterName is the query parameter carrying the page number.
	ParameterName string
}

// PageURL returns the link for one page number, replacing the page parameter
// in the base URL.
func (pc PaginationContext) PageURL(page int) string {
	return pagination.ReplaceParam(pc.URL, pc.ParameterName, strconv.Itoa(page))
}

// PaginationRenderer renders the pagination control for a computed window.
type PaginationRenderer struct {
	base
}

// NewPaginationRenderer constructs the pagination renderer.
func NewPaginationRenderer(opts ...Option) (*PaginationRenderer, error) {
	b, err := newBase(opts...)
	if err != nil {
		return nil, err
	}
	return &PaginationRenderer{base: b}, nil
}

// Name reports the renderer identifier.
func (r *PaginationRenderer) Name() string { return "govbr-pagination" }

// Render produces the pagination markup. The subject is a PaginationContext.
func (r *PaginationRenderer) Render(_ context.Context, rc render.Context) (string, error) {
	pc, ok := rc.Subject.(PaginationContext)
	if !ok {
		return "", fmt.Errorf("govbr: pagination renderer needs a PaginationContext subject, got %T", rc.Subject)
	}

	pages := make([]map[string]any, 0, len(pc.Plan.PagesShown))
	for _, page := range pc.Plan.PagesShown {
		pages = append(pages, map[string]any{
			"number": page,
			"url":    pc.PageURL(page),
			"active": page == pc.Plan.CurrentPage,
		})
	}

	backURL := ""
	if pc.Plan.PagesBack != 0 {
		backURL = pc.PageURL(pc.Plan.PagesBack)
	}
	forwardURL := ""
	if pc.Plan.PagesForward != 0 {
		forwardURL = pc.PageURL(pc.Plan.PagesForward)
	}

	classes := pc.Classes
	if classes == "" {
		classes = "pagination"
	}

	data := map[string]any{
		"classes":     classes,
		"pages":       pages,
		"back_url":    backURL,
		"forward_url": forwardURL,
	}
	return r.engine.RenderTemplate("templates/pagination", data)
}
