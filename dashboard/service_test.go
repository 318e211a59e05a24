package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"

	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/config"
	"github.com/frisklabs/frisk/directory"
	"github.com/frisklabs/frisk/httpf"
	"github.com/frisklabs/frisk/models"
)

const testBase = "http://frisk.test"

func newTestService(t *testing.T) S {
	t.Helper()

	client := resty.New().SetBaseURL(testBase)
	gock.InterceptClient(client.GetClient())

	dir := directory.NewForTest(models.User{ID: "u1", Name: "Dana Reyes"})
	logBuilder := aplog.NewBuilder((&config.LoggingConfigNone{}).GetRootLogger())

	s, err := NewService(httpf.Static(client), dir, logBuilder)
	require.NoError(t, err)

	return s
}

func TestGetQueuePerformance(t *testing.T) {
	t.Run("it fetches rows for the period", func(t *testing.T) {
		defer gock.Off()

		gock.New(testBase).
			Get("/api/v1/dashboard/queues").
			MatchParam("from", "2024-03-01").
			MatchParam("to", "2024-03-31").
			Reply(200).
			JSON([]map[string]interface{}{
				{"queueId": "q1", "queueName": "High value", "reviewed": 120, "approved": 80, "rejected": 30, "escalated": 10},
			})

		s := newTestService(t)

		rows, err := s.GetQueuePerformance(context.Background(), Period{
			From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "High value", rows[0].QueueName)
		assert.Equal(t, 120, rows[0].Reviewed)
	})
}

func TestGetAnalystPerformance(t *testing.T) {
	t.Run("it resolves analysts and tolerates unknown ids", func(t *testing.T) {
		defer gock.Off()

		gock.New(testBase).
			Get("/api/v1/dashboard/analysts").
			Reply(200).
			JSON([]map[string]interface{}{
				{"userId": "u1", "reviewed": 40, "approved": 30, "rejected": 10},
				{"userId": "departed", "reviewed": 5, "approved": 5, "rejected": 0},
			})

		s := newTestService(t)

		rows, err := s.GetAnalystPerformance(context.Background(), Period{})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		require.NotNil(t, rows[0].Analyst)
		assert.Equal(t, "Dana Reyes", rows[0].Analyst.Name)
		assert.Nil(t, rows[1].Analyst)
		assert.Equal(t, "departed", rows[1].AnalystID)
	})
}
