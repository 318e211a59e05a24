package mockapi

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"github.com/frisklabs/frisk/util/pagination"
)

// Cursors are opaque to clients: base64 of "o:<offset>". The console never
// inspects them, it only replays them.

func encodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("o:%d", offset)))
}

func decodeCursor(token string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, errors.Wrap(err, "invalid continuation token")
	}

	offsetStr, ok := strings.CutPrefix(string(raw), "o:")
	if !ok {
		return 0, errors.New("invalid continuation token")
	}

	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0, errors.New("invalid continuation token")
	}

	return offset, nil
}

// paginate slices one page out of values, issuing a continuation token when
// more remain.
func paginate[T any](values []T, size int, token string) (pagination.PageableResult[T], error) {
	offset := 0
	if token != "" {
		var err error
		offset, err = decodeCursor(token)
		if err != nil {
			return pagination.PageableResult[T]{}, err
		}
	}

	if size <= 0 {
		size = 25
	}
	if offset > len(values) {
		offset = len(values)
	}

	end := offset + size
	if end > len(values) {
		end = len(values)
	}

	page := pagination.PageableResult[T]{
		Values: values[offset:end],
		Size:   end - offset,
	}
	if end < len(values) {
		page.ContinuationToken = encodeCursor(end)
	}

	return page, nil
}
