package models

// User is an analyst or reviewer known to the review service. The full set
// of users is loaded into the directory near session start and referenced
// from items, notes and dashboards by id.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageUrl string `json:"imageUrl,omitempty"`
}
