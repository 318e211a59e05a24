package linkanalysis

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/frisklabs/frisk/api"
	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/directory"
	"github.com/frisklabs/frisk/httpf"
	"github.com/frisklabs/frisk/models"
	"github.com/frisklabs/frisk/util/pagination"
)

// AnalysisField is the shared attribute used to link orders to the item
// under review.
type AnalysisField string

const (
	FieldCreditCard      AnalysisField = "creditCard"
	FieldEmail           AnalysisField = "email"
	FieldBillingAddress  AnalysisField = "billingAddress"
	FieldShippingAddress AnalysisField = "shippingAddress"
	FieldDeviceID        AnalysisField = "deviceId"
)

const (
	opGettingLinkedItems = "getting linked items"
	linkAnalysisPath     = "/api/v1/items/%s/link-analysis/%s"
)

// Request describes one logical link-analysis fetch for an item and field.
type Request struct {
	ItemID         string
	Field          AnalysisField
	Size           int
	ShouldLoadMore bool
}

// S fetches orders linked to an item through a shared analysis field. Its
// transformer differs from the generic one: results are sorted by
// descending transaction date before being returned.
type S interface {
	GetLinkedItems(ctx context.Context, req Request) (pagination.PageableList[models.LinkAnalysisItem], error)
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
		logger: logBuilder.WithService("linkanalysis").Build(),
	}, nil
}

// chainKey scopes the cursor per analysis field, so flipping between fields
// for the same item keeps independent cursors.
func chainKey(req Request) pagination.ChainKey {
	return pagination.NewChainKey(fmt.Sprintf("link-analysis-%s", req.Field), req.ItemID)
}

func (s *service) GetLinkedItems(ctx context.Context, req Request) (pagination.PageableList[models.LinkAnalysisItem], error) {
	key := chainKey(req)

	q := api.PageQuery{Size: req.Size}
	if req.ShouldLoadMore {
		if token, ok := s.tokens.Get(key); ok {
			q.ContinuationToken = token
		}
	}

	page, err := api.GetPaged[api.RawLinkAnalysisItem](ctx, s.client, opGettingLinkedItems, fmt.Sprintf(linkAnalysisPath, req.ItemID, req.Field), q)
	if err != nil {
		s.logger.Error("failed to fetch linked items", "item_id", req.ItemID, "field", string(req.Field), "error", err)
		return pagination.PageableList[models.LinkAnalysisItem]{}, err
	}

	canLoadMore := s.tokens.Store(key, page.ContinuationToken)

	data := Transform(page.Values, s.dir)

	return pagination.PageableList[models.LinkAnalysisItem]{
		Data:        data,
		CanLoadMore: canLoadMore,
	}, nil
}

// Transform maps raw linked orders into view models and sorts them by
// descending transaction date. The comparator treats a pair with an
// unparsable date as equal, so the stable sort keeps such records in their
// relative positions. Link-analysis mapping has no required fields, so it
// cannot fail.
func Transform(raw []api.RawLinkAnalysisItem, dir directory.D) []models.LinkAnalysisItem {
	out := make([]models.LinkAnalysisItem, 0, len(raw))
	for _, r := range raw {
		item := models.LinkAnalysisItem{
			ID:               r.PurchaseID,
			TransactionDate:  r.TransactionDate,
			Amount:           r.TotalAmount,
			Currency:         r.Currency,
			UserEmail:        r.UserEmail,
			MerchantRuleID:   r.MerchantRuleID,
			DecisionAuthorID: r.DecisionUserID,
		}
		if r.DecisionUserID != "" {
			if u, ok := dir.Get(r.DecisionUserID); ok {
				item.Analyst = &u
			}
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, erri := time.Parse(time.RFC3339, out[i].TransactionDate)
		tj, errj := time.Parse(time.RFC3339, out[j].TransactionDate)
		if erri != nil || errj != nil {
			return false
		}
		return ti.After(tj)
	})

	return out
}

var _ S = &service{}
