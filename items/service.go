package items

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"github.com/frisklabs/frisk/api"
	"github.com/frisklabs/frisk/apierr"
	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/directory"
	"github.com/frisklabs/frisk/httpf"
	"github.com/frisklabs/frisk/models"
	"github.com/frisklabs/frisk/util/pagination"
)

// chainQueueItems is the chain continuation identifier for queue item
// pagination. Other screens paginating items (search, link analysis) use
// their own identifiers so cursors for the same entity do not collide.
const chainQueueItems = "queue-items"

const opGettingQueueItems = "getting queue items"

type service struct {
	client *resty.Client
	tokens pagination.TokenStore
	dir    directory.D
	logger *slog.Logger
}

// NewService builds the queue items service. The token store is injected so
// its lifetime and visibility are explicit; it should be scoped to this
// service instance.
func NewService(f httpf.F, tokens pagination.TokenStore, dir directory.D, logBuilder aplog.Builder) (S, error) {
	client, err := f.NewClient()
	if err != nil {
		return nil, err
	}

	return &service{
		client: client,
		tokens: tokens,
		dir:    dir,
		logger: logBuilder.WithService("items").Build(),
	}, nil
}

func (s *service) GetQueueItems(ctx context.Context, req Request) (pagination.PageableList[models.Item], error) {
	key := pagination.NewChainKey(chainQueueItems, req.QueueID)

	q := api.PageQuery{
		Size:         req.Size,
		SortingField: req.SortingField,
		SortingOrder: req.SortingOrder,
	}
	if req.ShouldLoadMore {
		if token, ok := s.tokens.Get(key); ok {
			q.ContinuationToken = token
		}
	}

	page, err := api.GetPaged[api.RawItem](ctx, s.client, opGettingQueueItems, fmt.Sprintf("/api/v1/queues/%s/items", req.QueueID), q)
	if err != nil {
		s.logger.Error("failed to fetch queue items", "queue_id", req.QueueID, "error", err)
		return pagination.PageableList[models.Item]{}, err
	}

	// The token is persisted before mapping. If mapping fails below, the
	// next load-more call still resumes from this page's token.
	canLoadMore := s.tokens.Store(key, page.ContinuationToken)

	data, err := TransformItems(page.Values, s.dir)
	if err != nil {
		err = apierr.NewParseError(opGettingQueueItems, err)
		s.logger.Error("failed to transform queue items", "queue_id", req.QueueID, "error", err)
		return pagination.PageableList[models.Item]{}, err
	}

	return pagination.PageableList[models.Item]{
		Data:        data,
		CanLoadMore: canLoadMore,
	}, nil
}

var _ S = &service{}
