package ports

// PageQuery carries pagination and sorting parameters for list endpoints.
// Page is 0-based. Size is capped by the service layer. SortDir is "asc" or
// "desc"; anything else is treated as "asc".
type PageQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// Descending reports whether the query asks for descending order.
func (q PageQuery) Descending() bool {
	return q.SortDir == "desc"
}
