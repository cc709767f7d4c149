package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

// DefaultPageLimit is the page size used when the client sends no limit.
const DefaultPageLimit = 6

// Upper bounds keep page*limit far below the int range.
const (
	MaxPageLimit = 1000
	maxPage      = 1_000_000
)

type pagination struct {
	page  int
	limit int
}

func (p pagination) offset() int {
	return (p.page - 1) * p.limit
}

// parsePagination reads the page and limit query parameters, clamped to
// maxPage and MaxPageLimit.
func parsePagination(r *http.Request) pagination {
	p := pagination{page: 1, limit: DefaultPageLimit}
	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		p.page = min(v, maxPage)
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		p.limit = min(v, MaxPageLimit)
	}
	return p
}

// pageURL returns the absolute URL of the request with the page parameter
// replaced. The first page is linked without a page parameter.
func pageURL(r *http.Request, page int) *string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	q := r.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: q.Encode(),
	}
	s := u.String()
	return &s
}

// newPage wraps one page of results into the paginated envelope.
func newPage[T any](r *http.Request, p pagination, count int, results []T) models.Page[T] {
	if results == nil {
		results = []T{}
	}
	page := models.Page[T]{Count: count, Results: results}
	if p.page*p.limit < count {
		page.Next = pageURL(r, p.page+1)
	}
	if p.page > 1 {
		page.Previous = pageURL(r, p.page-1)
	}
	return page
}
