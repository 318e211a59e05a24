package models

// LinkAnalysisItem is one order linked to the item under review through a
// shared analysis field (card fingerprint, shipping address, email, ...).
//
// TransactionDate is kept as the raw wire string: link-analysis lists are
// sorted by it at transform time with unparsable dates treated as equal,
// and the console renders the raw value as-is.
type LinkAnalysisItem struct {
	ID               string  `json:"id"`
	TransactionDate  string  `json:"transactionDate"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	UserEmail        string  `json:"userEmail"`
	MerchantRuleID   string  `json:"merchantRuleId,omitempty"`
	DecisionAuthorID string  `json:"decisionAuthorId,omitempty"`

	// Analyst is the resolved decision author, when there is one in the directory.
	Analyst *User `json:"analyst,omitempty"`
}
