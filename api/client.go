package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"

	"github.com/frisklabs/frisk/apierr"
	"github.com/frisklabs/frisk/util/pagination"
)

// PageQuery is the request shape for one page of a paginated query.
type PageQuery struct {
	Size              int
	ContinuationToken string
	SortingField      string
	SortingOrder      pagination.OrderBy
}

// Encode builds the query string by hand. The continuation token is
// percent-encoded manually and concatenated rather than run through the
// standard query serialization; some backend proxies mis-handle token
// characters otherwise.
func (q PageQuery) Encode() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "size=%d", q.Size)

	if q.ContinuationToken != "" {
		sb.WriteString("&continuationToken=")
		sb.WriteString(url.QueryEscape(q.ContinuationToken))
	}
	if q.SortingField != "" {
		sb.WriteString("&sortingField=")
		sb.WriteString(url.QueryEscape(q.SortingField))
	}
	if q.SortingOrder != "" {
		sb.WriteString("&sortingOrder=")
		sb.WriteString(string(q.SortingOrder))
	}

	return sb.String()
}

// GetPaged fetches one page of T from the path. Transport failures and
// non-2xx statuses come back as transport errors (with a user-facing
// message when the status is mapped); a 2xx body that does not decode comes
// back as a parse error for op.
func GetPaged[T any](ctx context.Context, client *resty.Client, op string, path string, q PageQuery) (pagination.PageableResult[T], error) {
	return GetPagedRaw[T](ctx, client, op, path+"?"+q.Encode())
}

// GetPagedRaw is GetPaged for callers that build the query string
// themselves, e.g. to append extra filter parameters after the
// hand-encoded pagination ones.
func GetPagedRaw[T any](ctx context.Context, client *resty.Client, op string, pathAndQuery string) (pagination.PageableResult[T], error) {
	var page pagination.PageableResult[T]

	resp, err := client.R().
		SetContext(ctx).
		Get(pathAndQuery)
	if err != nil {
		return page, errors.Wrapf(err, "failed to call api while %s", op)
	}

	if resp.IsError() {
		return page, statusError(resp)
	}

	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return page, apierr.NewParseError(op, err)
	}

	return page, nil
}

// GetJSON fetches a non-paged JSON payload from the path with ordinary
// query parameters.
func GetJSON[T any](ctx context.Context, client *resty.Client, op string, path string, params map[string]string) (T, error) {
	var out T

	resp, err := client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return out, errors.Wrapf(err, "failed to call api while %s", op)
	}

	if resp.IsError() {
		return out, statusError(resp)
	}

	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, apierr.NewParseError(op, err)
	}

	return out, nil
}

func statusError(resp *resty.Response) error {
	var apiErr apierr.ErrorResponse
	_ = json.Unmarshal(resp.Body(), &apiErr)

	msg := apiErr.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	return apierr.NewTransportError(
		resp.StatusCode(),
		errors.Errorf("api responded with status %d: %s", resp.StatusCode(), msg),
	)
}
