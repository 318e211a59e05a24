package items

import (
	"context"

	"github.com/frisklabs/frisk/models"
	"github.com/frisklabs/frisk/util/pagination"
)

// Request describes one logical fetch of queue items. ShouldLoadMore must
// be false on the first call of a new logical query; when true the service
// sends the continuation token stored by the previous call for the same
// queue.
type Request struct {
	QueueID        string
	Size           int
	ShouldLoadMore bool
	SortingField   string
	SortingOrder   pagination.OrderBy
}

// S fetches and transforms pages of queue items.
type S interface {
	// GetQueueItems fetches one page of items for the queue and returns the enriched view list. The page's
	// continuation token is persisted before transformation, so a parse failure on this page does not prevent
	// loading the next page.
	GetQueueItems(ctx context.Context, req Request) (pagination.PageableList[models.Item], error)
}
