package devserver_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/url-shortener/internal/devserver"
	"github.com/ytget/url-shortener/internal/form"
	"github.com/ytget/url-shortener/internal/model"
	"github.com/ytget/url-shortener/internal/shorten"
)

func TestClientAgainstDevServer(t *testing.T) {
	tests := []struct {
		name string
		opts func(baseURL string) shorten.Options
	}{
		{
			name: "id contract",
			opts: func(baseURL string) shorten.Options {
				return shorten.Options{BaseURL: baseURL, Contract: shorten.ContractID}
			},
		},
		{
			name: "full contract",
			opts: func(baseURL string) shorten.Options {
				return shorten.Options{BaseURL: baseURL, EndpointPath: devserver.RouteShortenFull, Contract: shorten.ContractFull}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)

			srv := httptest.NewUnstartedServer(nil)
			srv.Config.Handler = devserver.New("http://"+srv.Listener.Addr().String(), logger)
			srv.Start()
			t.Cleanup(srv.Close)

			client, err := shorten.NewClient(tt.opts(srv.URL), shorten.WithLogger(logger))
			require.NoError(t, err)

			c := form.NewController(client, form.WithLogger(logger))

			c.SetInput("https://example.com/some/long/path?q=1")
			require.NoError(t, c.Submit(context.Background()))

			first := c.State()
			assert.Equal(t, model.StateSuccess, first.State)
			assert.True(t, strings.HasPrefix(first.ShortenedURL, srv.URL+"/"), first.ShortenedURL)

			// bad input is rejected by the service; short url stays
			c.SetInput("not a url")
			require.Error(t, c.Submit(context.Background()))

			second := c.State()
			assert.Equal(t, model.StateFailed, second.State)
			assert.Equal(t, "Invalid URL", second.ErrorMessage)
			assert.Equal(t, first.ShortenedURL, second.ShortenedURL)
		})
	}
}
