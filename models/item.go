package models

import "time"

// Decision is the review decision applied to an item, when one exists.
type Decision struct {
	AuthorID string    `json:"authorId"`
	Label    string    `json:"label"`
	Applied  time.Time `json:"applied"`
}

// Note is an analyst note attached to an item.
type Note struct {
	Note     string    `json:"note"`
	AuthorID string    `json:"authorId"`
	Created  time.Time `json:"created"`

	// User is the resolved note author. Nil when the author id has no directory entry; that is not an error.
	User *User `json:"user,omitempty"`
}

// Item is a flagged purchase order under review.
type Item struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	Created    time.Time  `json:"created"`
	Amount     float64    `json:"amount"`
	Currency   string     `json:"currency"`
	QueueIDs   []string   `json:"queueIds"`
	LockedByID string     `json:"lockedById,omitempty"`
	LockedOn   *time.Time `json:"lockedOn,omitempty"`
	Decision   *Decision  `json:"decision,omitempty"`
	Notes      []Note     `json:"notes,omitempty"`

	// Analyst is the resolved user associated with the item: the decision author when a decision exists,
	// otherwise the lock owner. Nil when neither id resolves through the directory.
	Analyst *User `json:"analyst,omitempty"`
}
