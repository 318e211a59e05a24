package models

// QueuePerformance is one dashboard row aggregating decisions for a queue
// over the requested period.
type QueuePerformance struct {
	QueueID   string `json:"queueId"`
	QueueName string `json:"queueName"`
	Reviewed  int    `json:"reviewed"`
	Approved  int    `json:"approved"`
	Rejected  int    `json:"rejected"`
	Escalated int    `json:"escalated"`
}

// AnalystPerformance is one dashboard row aggregating decisions made by an
// analyst over the requested period.
type AnalystPerformance struct {
	AnalystID string `json:"analystId"`
	Reviewed  int    `json:"reviewed"`
	Approved  int    `json:"approved"`
	Rejected  int    `json:"rejected"`

	// Analyst is resolved through the user directory; nil for ids no longer known.
	Analyst *User `json:"analyst,omitempty"`
}

// DictionarySuggestion is one typeahead completion returned for a lookup
// category.
type DictionarySuggestion struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}
