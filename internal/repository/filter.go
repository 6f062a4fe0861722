package repository

// ListFilter carries the common list query parameters. Zero values mean
// "no filter"; Active is a pointer so false can be filtered explicitly.
type ListFilter struct {
	Search     string
	CategoryID uint
	ProductID  uint
	Status     string
	Active     *bool
	Page       int
	PerPage    int
}

func (f ListFilter) offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.limit()
}

func (f ListFilter) limit() int {
	if f.PerPage < 1 {
		return 20
	}
	return f.PerPage
}
