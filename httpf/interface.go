package httpf

import (
	"github.com/go-resty/resty/v2"
)

// F builds HTTP clients configured for the review service API. Centralizing
// construction here keeps base URL, auth and timeout handling in one place
// and lets tests intercept the underlying transport.
type F interface {
	// NewClient returns a client configured with the API base URL, auth header and timeout.
	NewClient() (*resty.Client, error)
}
