package api

// Raw wire shapes as returned by the review service. Timestamps stay as
// strings on this boundary; the domain transformers parse them so that a
// malformed record fails the page at mapping time, after the page's
// continuation token has already been persisted.

type RawUser struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
	ImageUrl    string `json:"imageUrl,omitempty"`
}

type RawNote struct {
	Note    string `json:"note"`
	UserID  string `json:"userId"`
	Created string `json:"created"`
}

type RawDecision struct {
	UserID  string `json:"userId"`
	Label   string `json:"label"`
	Applied string `json:"applied"`
}

type RawItem struct {
	PurchaseID  string       `json:"purchaseId"`
	Status      string       `json:"status"`
	ImportDate  string       `json:"importDate"`
	TotalAmount float64      `json:"totalAmount"`
	Currency    string       `json:"currency"`
	QueueIDs    []string     `json:"queueIds"`
	LockedBy    string       `json:"lockedBy,omitempty"`
	LockedOn    string       `json:"lockedOn,omitempty"`
	Decision    *RawDecision `json:"decision,omitempty"`
	Notes       []RawNote    `json:"notes,omitempty"`
}

type RawQueue struct {
	QueueID        string   `json:"queueId"`
	ViewID         string   `json:"viewId"`
	Name           string   `json:"name"`
	Created        string   `json:"created"`
	Size           int      `json:"size"`
	ForEscalations bool     `json:"forEscalations"`
	Sealed         bool     `json:"sealed"`
	Reviewers      []string `json:"reviewers,omitempty"`
	Supervisors    []string `json:"supervisors,omitempty"`
}

type RawLinkAnalysisItem struct {
	PurchaseID      string  `json:"purchaseId"`
	TransactionDate string  `json:"transactionDate"`
	TotalAmount     float64 `json:"totalAmount"`
	Currency        string  `json:"currency"`
	UserEmail       string  `json:"userEmail"`
	MerchantRuleID  string  `json:"merchantRuleId,omitempty"`
	DecisionUserID  string  `json:"decisionUserId,omitempty"`
}

type RawQueuePerformance struct {
	QueueID   string `json:"queueId"`
	QueueName string `json:"queueName"`
	Reviewed  int    `json:"reviewed"`
	Approved  int    `json:"approved"`
	Rejected  int    `json:"rejected"`
	Escalated int    `json:"escalated"`
}

type RawAnalystPerformance struct {
	UserID   string `json:"userId"`
	Reviewed int    `json:"reviewed"`
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
}

type RawDictionarySuggestion struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}
