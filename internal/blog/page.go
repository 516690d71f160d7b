package blog

// Paginate truncates a collection of total items to its newest limit items (limit < 1
// disables truncation) and then cuts page number out of it at the given size. Limit is
// always applied before pagination.
//
// Page numbers below 1 or past the last page are ErrNotFound; the first page of an empty
// collection is valid.
func Paginate(total, number, size, limit int) (Page, error) {
	if size < 1 {
		size = DefaultPageSize
	}
	if limit > 0 && total > limit {
		total = limit
	}

	numPages := 1
	if total > 0 {
		numPages = (total + size - 1) / size
	}

	if number < 1 || number > numPages {
		return Page{}, ErrNotFound
	}

	return Page{
		Number:   number,
		Size:     size,
		Total:    total,
		NumPages: numPages,
	}, nil
}

// Offset is the index of the first item on the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Len is the number of items on the page.
func (p Page) Len() int {
	n := p.Total - p.Offset()
	if n > p.Size {
		n = p.Size
	}
	if n < 0 {
		return 0
	}

	return n
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}
