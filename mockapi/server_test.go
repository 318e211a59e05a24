package mockapi

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/config"
	"github.com/frisklabs/frisk/directory"
	"github.com/frisklabs/frisk/httpf"
	"github.com/frisklabs/frisk/items"
	"github.com/frisklabs/frisk/linkanalysis"
	"github.com/frisklabs/frisk/queues"
	"github.com/frisklabs/frisk/util/pagination"
)

func TestCursor(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		offset, err := decodeCursor(encodeCursor(75))
		require.NoError(t, err)
		assert.Equal(t, 75, offset)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := decodeCursor("not base64!!")
		assert.Error(t, err)

		_, err = decodeCursor(encodeCursor(-1))
		assert.Error(t, err)
	})
}

func TestPaginate(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}

	t.Run("first page issues a token when more remain", func(t *testing.T) {
		page, err := paginate(values, 2, "")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, page.Values)
		assert.NotEmpty(t, page.ContinuationToken)
	})

	t.Run("the last page has an empty token", func(t *testing.T) {
		page, err := paginate(values, 2, encodeCursor(4))
		require.NoError(t, err)
		assert.Equal(t, []int{5}, page.Values)
		assert.Empty(t, page.ContinuationToken)
	})
}

// TestConsoleAgainstMockServer drives the real domain services against the
// mock server end to end.
func TestConsoleAgainstMockServer(t *testing.T) {
	logBuilder := aplog.NewBuilder((&config.LoggingConfigNone{}).GetRootLogger())
	cfg := config.FromRoot(&config.Root{})
	server := NewServer(cfg, logBuilder)

	srv := httptest.NewServer(server.Engine())
	defer srv.Close()

	clientCfg := config.FromRoot(&config.Root{
		Api: config.ApiService{BaseUrl: srv.URL},
	})
	factory := httpf.CreateFactory(clientCfg)

	dir, err := directory.New(factory, logBuilder)
	require.NoError(t, err)
	require.NoError(t, dir.Load(context.Background()))
	assert.Len(t, dir.All(), len(analystNames))

	t.Run("queues page end to end", func(t *testing.T) {
		s, err := queues.NewService(factory, pagination.NewTokenStore(), dir, logBuilder)
		require.NoError(t, err)

		out, err := s.GetQueues(context.Background(), queues.Request{Size: 3})
		require.NoError(t, err)
		assert.True(t, out.CanLoadMore)
		assert.Len(t, out.Data, 3)
		require.NotEmpty(t, out.Data[0].Reviewers)

		out, err = s.GetQueues(context.Background(), queues.Request{Size: 3, ShouldLoadMore: true})
		require.NoError(t, err)
		assert.False(t, out.CanLoadMore)
		assert.Len(t, out.Data, 1)
	})

	t.Run("queue items chain walks every page exactly once", func(t *testing.T) {
		s, err := items.NewService(factory, pagination.NewTokenStore(), dir, logBuilder)
		require.NoError(t, err)

		seen := map[string]bool{}
		req := items.Request{QueueID: "queue-1", Size: 25}

		out, err := s.GetQueueItems(context.Background(), req)
		require.NoError(t, err)
		for out.CanLoadMore {
			for _, item := range out.Data {
				assert.False(t, seen[item.ID])
				seen[item.ID] = true
			}
			req.ShouldLoadMore = true
			out, err = s.GetQueueItems(context.Background(), req)
			require.NoError(t, err)
		}
		for _, item := range out.Data {
			assert.False(t, seen[item.ID])
			seen[item.ID] = true
		}

		assert.Len(t, seen, 60)
	})

	t.Run("link analysis returns sorted linked orders", func(t *testing.T) {
		itemsSvc, err := items.NewService(factory, pagination.NewTokenStore(), dir, logBuilder)
		require.NoError(t, err)

		first, err := itemsSvc.GetQueueItems(context.Background(), items.Request{QueueID: "queue-1", Size: 1})
		require.NoError(t, err)
		require.Len(t, first.Data, 1)

		la, err := linkanalysis.NewService(factory, pagination.NewTokenStore(), dir, logBuilder)
		require.NoError(t, err)

		out, err := la.GetLinkedItems(context.Background(), linkanalysis.Request{
			ItemID: first.Data[0].ID,
			Field:  linkanalysis.FieldCreditCard,
			Size:   5,
		})
		require.NoError(t, err)
		assert.True(t, out.CanLoadMore)
		require.Len(t, out.Data, 5)
		assert.True(t, out.Data[0].TransactionDate >= out.Data[1].TransactionDate)
	})
}
