package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/frisklabs/frisk/api"
	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/directory"
	"github.com/frisklabs/frisk/httpf"
	"github.com/frisklabs/frisk/models"
)

const (
	opGettingQueuePerformance   = "getting queue performance"
	opGettingAnalystPerformance = "getting analyst performance"
	queuePerformancePath        = "/api/v1/dashboard/queues"
	analystPerformancePath      = "/api/v1/dashboard/analysts"
	dateParamLayout             = "2006-01-02"
)

// Period bounds a dashboard aggregation window.
type Period struct {
	From time.Time
	To   time.Time
}

func (p Period) params() map[string]string {
	params := map[string]string{}
	if !p.From.IsZero() {
		params["from"] = p.From.Format(dateParamLayout)
	}
	if !p.To.IsZero() {
		params["to"] = p.To.Format(dateParamLayout)
	}

	return params
}

// S fetches the performance dashboards. These are small aggregate payloads,
// not paged.
type S interface {
	GetQueuePerformance(ctx context.Context, period Period) ([]models.QueuePerformance, error)
	GetAnalystPerformance(ctx context.Context, period Period) ([]models.AnalystPerformance, error)
}

type service struct {
	client *resty.Client
	dir    directory.D
	logger *slog.Logger
}

func NewService(f httpf.F, dir directory.D, logBuilder aplog.Builder) (S, error) {
	client, err := f.NewClient()
	if err != nil {
		return nil, err
	}

	return &service{
		client: client,
		dir:    dir,
		logger: logBuilder.WithService("dashboard").Build(),
	}, nil
}

func (s *service) GetQueuePerformance(ctx context.Context, period Period) ([]models.QueuePerformance, error) {
	raw, err := api.GetJSON[[]api.RawQueuePerformance](ctx, s.client, opGettingQueuePerformance, queuePerformancePath, period.params())
	if err != nil {
		s.logger.Error("failed to fetch queue performance", "error", err)
		return nil, err
	}

	out := make([]models.QueuePerformance, 0, len(raw))
	for _, r := range raw {
		out = append(out, models.QueuePerformance{
			QueueID:   r.QueueID,
			QueueName: r.QueueName,
			Reviewed:  r.Reviewed,
			Approved:  r.Approved,
			Rejected:  r.Rejected,
			Escalated: r.Escalated,
		})
	}

	return out, nil
}

func (s *service) GetAnalystPerformance(ctx context.Context, period Period) ([]models.AnalystPerformance, error) {
	raw, err := api.GetJSON[[]api.RawAnalystPerformance](ctx, s.client, opGettingAnalystPerformance, analystPerformancePath, period.params())
	if err != nil {
		s.logger.Error("failed to fetch analyst performance", "error", err)
		return nil, err
	}

	out := make([]models.AnalystPerformance, 0, len(raw))
	for _, r := range raw {
		row := models.AnalystPerformance{
			AnalystID: r.UserID,
			Reviewed:  r.Reviewed,
			Approved:  r.Approved,
			Rejected:  r.Rejected,
		}
		if u, ok := s.dir.Get(r.UserID); ok {
			row.Analyst = &u
		}
		out = append(out, row)
	}

	return out, nil
}

var _ S = &service{}
