package models

import "time"

// Queue is a review queue as shown in the console.
type Queue struct {
	QueueID        string    `json:"queueId"`
	ViewID         string    `json:"viewId"`
	Name           string    `json:"name"`
	Created        time.Time `json:"created"`
	Size           int       `json:"size"`
	ForEscalations bool      `json:"forEscalations"`
	Sealed         bool      `json:"sealed"`
	ReviewerIDs    []string  `json:"reviewerIds"`
	SupervisorIDs  []string  `json:"supervisorIds"`

	// Reviewers and Supervisors are resolved through the user directory; ids without a directory entry are
	// simply absent from these lists.
	Reviewers   []User `json:"reviewers,omitempty"`
	Supervisors []User `json:"supervisors,omitempty"`
}
