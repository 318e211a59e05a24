package directory

import (
	"context"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"

	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/config"
	"github.com/frisklabs/frisk/httpf"
	"github.com/frisklabs/frisk/models"
)

func testLogBuilder() aplog.Builder {
	return aplog.NewBuilder((&config.LoggingConfigNone{}).GetRootLogger())
}

func TestDirectory(t *testing.T) {
	t.Run("load populates the directory from the api", func(t *testing.T) {
		defer gock.Off()

		gock.New("http://frisk.test").
			Get("/api/v1/users").
			Reply(200).
			JSON([]map[string]interface{}{
				{"userId": "u1", "displayName": "Dana Reyes", "mail": "dana@example.com"},
				{"userId": "u2", "displayName": "Kim Osei", "mail": "kim@example.com"},
			})

		client := resty.New().SetBaseURL("http://frisk.test")
		gock.InterceptClient(client.GetClient())

		d, err := New(httpf.Static(client), testLogBuilder())
		require.NoError(t, err)
		require.NoError(t, d.Load(context.Background()))

		u, ok := d.Get("u1")
		assert.True(t, ok)
		assert.Equal(t, "Dana Reyes", u.Name)
		assert.Equal(t, "dana@example.com", u.Email)

		assert.Len(t, d.All(), 2)
	})

	t.Run("misses are not errors", func(t *testing.T) {
		d := NewForTest(models.User{ID: "u1", Name: "Dana Reyes"})

		_, ok := d.Get("nope")
		assert.False(t, ok)
	})

	t.Run("load failure surfaces the error", func(t *testing.T) {
		defer gock.Off()

		gock.New("http://frisk.test").
			Get("/api/v1/users").
			Reply(500)

		client := resty.New().SetBaseURL("http://frisk.test")
		gock.InterceptClient(client.GetClient())

		d, err := New(httpf.Static(client), testLogBuilder())
		require.NoError(t, err)
		assert.Error(t, d.Load(context.Background()))
	})
}
