package linkanalysis

import (
	"context"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"

	"github.com/frisklabs/frisk/api"
	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/config"
	"github.com/frisklabs/frisk/directory"
	"github.com/frisklabs/frisk/httpf"
	"github.com/frisklabs/frisk/models"
	"github.com/frisklabs/frisk/util/pagination"
)

const testBase = "http://frisk.test"

func TestTransform(t *testing.T) {
	dir := directory.NewForTest(models.User{ID: "u1", Name: "Dana Reyes"})

	t.Run("it sorts by descending transaction date", func(t *testing.T) {
		raw := []api.RawLinkAnalysisItem{
			{PurchaseID: "old", TransactionDate: "2024-01-01T00:00:00Z"},
			{PurchaseID: "new", TransactionDate: "2024-03-01T00:00:00Z"},
			{PurchaseID: "mid", TransactionDate: "2024-02-01T00:00:00Z"},
		}

		out := Transform(raw, dir)
		require.Len(t, out, 3)
		assert.Equal(t, "new", out[0].ID)
		assert.Equal(t, "mid", out[1].ID)
		assert.Equal(t, "old", out[2].ID)
	})

	t.Run("unparsable dates compare equal and keep their relative position", func(t *testing.T) {
		raw := []api.RawLinkAnalysisItem{
			{PurchaseID: "blank", TransactionDate: ""},
			{PurchaseID: "second", TransactionDate: "2024-01-02T00:00:00Z"},
			{PurchaseID: "first", TransactionDate: "2024-01-01T00:00:00Z"},
		}

		out := Transform(raw, dir)
		require.Len(t, out, 3)

		// The two parseable dates end up strictly descending.
		secondIdx, firstIdx := -1, -1
		for i, item := range out {
			switch item.ID {
			case "second":
				secondIdx = i
			case "first":
				firstIdx = i
			}
		}
		assert.Less(t, secondIdx, firstIdx)

		// The stable sort keeps the unparsable record where it was.
		assert.Equal(t, "blank", out[0].ID)
	})

	t.Run("it resolves the decision author when known", func(t *testing.T) {
		raw := []api.RawLinkAnalysisItem{
			{PurchaseID: "p1", TransactionDate: "2024-01-01T00:00:00Z", DecisionUserID: "u1"},
			{PurchaseID: "p2", TransactionDate: "2024-01-02T00:00:00Z", DecisionUserID: "ghost"},
		}

		out := Transform(raw, dir)
		require.Len(t, out, 2)

		// p2 sorts first.
		assert.Nil(t, out[0].Analyst)
		require.NotNil(t, out[1].Analyst)
		assert.Equal(t, "Dana Reyes", out[1].Analyst.Name)
	})
}

func TestGetLinkedItems(t *testing.T) {
	t.Run("it pages per item and field with independent cursors", func(t *testing.T) {
		defer gock.Off()

		gock.New(testBase).
			Get("/api/v1/items/p1/link-analysis/creditCard").
			Reply(200).
			JSON(map[string]interface{}{
				"values": []map[string]interface{}{
					{"purchaseId": "l1", "transactionDate": "2024-01-01T00:00:00Z", "totalAmount": 12.5, "currency": "USD"},
				},
				"continuationToken": "ltok",
				"size":              1,
			})

		client := resty.New().SetBaseURL(testBase)
		gock.InterceptClient(client.GetClient())

		tokens := pagination.NewTokenStore()
		dir := directory.NewForTest()
		logBuilder := aplog.NewBuilder((&config.LoggingConfigNone{}).GetRootLogger())

		s, err := NewService(httpf.Static(client), tokens, dir, logBuilder)
		require.NoError(t, err)

		out, err := s.GetLinkedItems(context.Background(), Request{ItemID: "p1", Field: FieldCreditCard, Size: 1})
		require.NoError(t, err)
		assert.True(t, out.CanLoadMore)
		require.Len(t, out.Data, 1)
		assert.Equal(t, "l1", out.Data[0].ID)

		token, ok := tokens.Get(pagination.NewChainKey("link-analysis-creditCard", "p1"))
		assert.True(t, ok)
		assert.Equal(t, "ltok", token)

		_, ok = tokens.Get(pagination.NewChainKey("link-analysis-email", "p1"))
		assert.False(t, ok)
	})
}
