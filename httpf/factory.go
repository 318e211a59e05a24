package httpf

import (
	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"

	"github.com/frisklabs/frisk/config"
)

const apiKeyHeader = "X-Api-Key"

type clientFactory struct {
	cfg config.Config
}

func CreateFactory(cfg config.Config) F {
	return &clientFactory{
		cfg: cfg,
	}
}

func (f *clientFactory) NewClient() (*resty.Client, error) {
	root := f.cfg.GetRoot()

	client := resty.New().
		SetBaseURL(root.Api.BaseUrl).
		SetTimeout(root.Api.TimeoutOrDefault()).
		SetHeader("Accept", "application/json")

	if root.Api.ApiKey.HasValue() {
		key, err := root.Api.ApiKey.GetValue()
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve api key")
		}
		client.SetHeader(apiKeyHeader, key)
	}

	return client, nil
}

var _ F = &clientFactory{}

type staticFactory struct {
	client *resty.Client
}

// Static returns a factory that always hands back the passed client. Used
// by tests that intercept the client's transport.
func Static(client *resty.Client) F {
	return &staticFactory{client: client}
}

func (f *staticFactory) NewClient() (*resty.Client, error) {
	return f.client, nil
}

var _ F = &staticFactory{}
