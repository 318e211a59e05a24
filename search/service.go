package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/frisklabs/frisk/api"
	"github.com/frisklabs/frisk/apierr"
	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/directory"
	"github.com/frisklabs/frisk/httpf"
	"github.com/frisklabs/frisk/items"
	"github.com/frisklabs/frisk/models"
	"github.com/frisklabs/frisk/util/pagination"
)

// chainItemSearch keeps search pagination separate from queue-view
// pagination, so searching a queue's items does not clobber the cursor of
// the queue screen showing the same queue id.
const (
	chainItemSearch   = "item-search"
	opSearchingItems  = "searching items"
	itemsSearchPath   = "/api/v1/items/search"
	searchAllSentinel = "all"
)

// Request describes one logical item search. The combination of queue and
// analyst filters identifies the chain; repeated load-more calls must pass
// the same filters.
type Request struct {
	QueueID        string
	AnalystID      string
	Size           int
	ShouldLoadMore bool
	SortingField   string
	SortingOrder   pagination.OrderBy
}

// entityID derives the chain entity id from the filters so that distinct
// searches page independently.
func (r Request) entityID() string {
	queue := r.QueueID
	if queue == "" {
		queue = searchAllSentinel
	}
	analyst := r.AnalystID
	if analyst == "" {
		analyst = searchAllSentinel
	}

	return strings.Join([]string{queue, analyst}, ":")
}

// S runs paged item searches.
type S interface {
	SearchItems(ctx context.Context, req Request) (pagination.PageableList[models.Item], error)
}

type service struct {
	client *resty.Client
	tokens pagination.TokenStore
	dir    directory.D
	logger *slog.Logger
}

func NewService(f httpf.F, tokens pagination.TokenStore, dir directory.D, logBuilder aplog.Builder) (S, error) {
	client, err := f.NewClient()
	if err != nil {
		return nil, err
	}

	return &service{
		client: client,
		tokens: tokens,
		dir:    dir,
		logger: logBuilder.WithService("search").Build(),
	}, nil
}

func (s *service) SearchItems(ctx context.Context, req Request) (pagination.PageableList[models.Item], error) {
	key := pagination.NewChainKey(chainItemSearch, req.entityID())

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

	path := itemsSearchPath + "?" + q.Encode()
	if req.QueueID != "" {
		path += "&queueId=" + req.QueueID
	}
	if req.AnalystID != "" {
		path += "&analystId=" + req.AnalystID
	}

	page, err := api.GetPagedRaw[api.RawItem](ctx, s.client, opSearchingItems, path)
	if err != nil {
		s.logger.Error("failed to search items", "queue_id", req.QueueID, "analyst_id", req.AnalystID, "error", err)
		return pagination.PageableList[models.Item]{}, err
	}

	canLoadMore := s.tokens.Store(key, page.ContinuationToken)

	data, err := items.TransformItems(page.Values, s.dir)
	if err != nil {
		err = apierr.NewParseError(opSearchingItems, err)
		s.logger.Error("failed to transform search results", "error", err)
		return pagination.PageableList[models.Item]{}, err
	}

	return pagination.PageableList[models.Item]{
		Data:        data,
		CanLoadMore: canLoadMore,
	}, nil
}

var _ S = &service{}
