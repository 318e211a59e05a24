package pagination

// PageableResult is the raw wire shape of one page of a paginated query as
// returned by the backend.
type PageableResult[T any] struct {
	// Values is the list of raw records for this page, in backend order
	Values []T `json:"values"`

	// ContinuationToken is the opaque cursor to use to fetch the next page of results. Empty when the backend
	// has no further results. The client stores and replays this verbatim and never inspects its contents.
	ContinuationToken string `json:"continuationToken"`

	// Size is the page size the backend applied to this page
	Size int `json:"size"`
}

// PageableList is the view-ready result produced from one page after
// transformation and enrichment.
type PageableList[T any] struct {
	// Data is the list of view models for this page
	Data []T `json:"data"`

	// CanLoadMore indicates whether a further page may exist. This comes from the token store at the time the
	// page's continuation token was persisted; callers must not infer it from len(Data).
	CanLoadMore bool `json:"canLoadMore"`
}
