package queues

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"

	"github.com/frisklabs/frisk/api"
	"github.com/frisklabs/frisk/apierr"
	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/directory"
	"github.com/frisklabs/frisk/httpf"
	"github.com/frisklabs/frisk/models"
	"github.com/frisklabs/frisk/util/pagination"
)

// chainQueues is the chain continuation identifier for the queue list. The
// list is one logical query, so a fixed entity id is used under it.
const (
	chainQueues      = "queues"
	queueListEntity  = "all"
	opGettingQueues  = "getting queues"
	opGettingQueue   = "getting queue"
	queuesPath       = "/api/v1/queues"
	queuePathPattern = "/api/v1/queues/%s"
)

// Request describes one logical fetch of the queue list.
type Request struct {
	Size           int
	ShouldLoadMore bool
}

// S fetches and transforms review queues.
type S interface {
	// GetQueues fetches one page of the queue list. The page's continuation token is persisted before
	// transformation.
	GetQueues(ctx context.Context, req Request) (pagination.PageableList[models.Queue], error)

	// GetQueue fetches a single queue by id.
	GetQueue(ctx context.Context, queueID string) (models.Queue, error)
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
		logger: logBuilder.WithService("queues").Build(),
	}, nil
}

func (s *service) GetQueues(ctx context.Context, req Request) (pagination.PageableList[models.Queue], error) {
	key := pagination.NewChainKey(chainQueues, queueListEntity)

	q := api.PageQuery{Size: req.Size}
	if req.ShouldLoadMore {
		if token, ok := s.tokens.Get(key); ok {
			q.ContinuationToken = token
		}
	}

	page, err := api.GetPaged[api.RawQueue](ctx, s.client, opGettingQueues, queuesPath, q)
	if err != nil {
		s.logger.Error("failed to fetch queues", "error", err)
		return pagination.PageableList[models.Queue]{}, err
	}

	canLoadMore := s.tokens.Store(key, page.ContinuationToken)

	data := make([]models.Queue, 0, len(page.Values))
	for _, r := range page.Values {
		queue, err := transformQueue(r, s.dir)
		if err != nil {
			err = apierr.NewParseError(opGettingQueues, err)
			s.logger.Error("failed to transform queues", "error", err)
			return pagination.PageableList[models.Queue]{}, err
		}
		data = append(data, queue)
	}

	return pagination.PageableList[models.Queue]{
		Data:        data,
		CanLoadMore: canLoadMore,
	}, nil
}

func (s *service) GetQueue(ctx context.Context, queueID string) (models.Queue, error) {
	raw, err := api.GetJSON[api.RawQueue](ctx, s.client, opGettingQueue, fmt.Sprintf(queuePathPattern, queueID), nil)
	if err != nil {
		s.logger.Error("failed to fetch queue", "queue_id", queueID, "error", err)
		return models.Queue{}, err
	}

	queue, err := transformQueue(raw, s.dir)
	if err != nil {
		err = apierr.NewParseError(opGettingQueue, err)
		s.logger.Error("failed to transform queue", "queue_id", queueID, "error", err)
		return models.Queue{}, err
	}

	return queue, nil
}

func transformQueue(r api.RawQueue, dir directory.D) (models.Queue, error) {
	created, err := time.Parse(time.RFC3339, r.Created)
	if err != nil {
		return models.Queue{}, errors.Wrapf(err, "invalid created date '%s' for queue '%s'", r.Created, r.QueueID)
	}

	queue := models.Queue{
		QueueID:        r.QueueID,
		ViewID:         r.ViewID,
		Name:           r.Name,
		Created:        created,
		Size:           r.Size,
		ForEscalations: r.ForEscalations,
		Sealed:         r.Sealed,
		ReviewerIDs:    r.Reviewers,
		SupervisorIDs:  r.Supervisors,
	}

	// Ids without a directory entry are skipped, not errors.
	for _, id := range r.Reviewers {
		if u, ok := dir.Get(id); ok {
			queue.Reviewers = append(queue.Reviewers, u)
		}
	}
	for _, id := range r.Supervisors {
		if u, ok := dir.Get(id); ok {
			queue.Supervisors = append(queue.Supervisors, u)
		}
	}

	return queue, nil
}

var _ S = &service{}
