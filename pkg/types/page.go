package types

// Page is one page of a cursor-paginated list.
type Page[T any] struct {
	// Items are the entities on this page, in server order.
	Items []T
	// Next is the opaque cursor for the following page. Empty means there
	// are no further pages.
	Next string
	// TotalCount is the server's count at query time. It is advisory and
	// may change between pages.
	TotalCount int
}

// HasMore returns true if there are more pages to fetch.
func (p *Page[T]) HasMore() bool {
	return p.Next != ""
}

// Len returns the number of items on the page.
func (p *Page[T]) Len() int {
	return len(p.Items)
}
