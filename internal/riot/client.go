// Package riot is a typed client for the Riot League of Legends API.
// Each endpoint method issues one authenticated GET, then classifies
// the (status, body) pair through the envelope package into either a
// decoded record or a failure value.
package riot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"go.uber.org/fx"

	"league-client/internal/config"
	"league-client/internal/constants"
	"league-client/internal/envelope"
)

// baseURL is filled with a host selector (platform region such as
// "euw1", or a v5 routing value such as "europe") and an endpoint path.
const defaultBaseURL = "https://%s.api.riotgames.com%s"

type Client struct {
	apiKey  string
	region  string
	routing string
	baseURL string
	client  *fasthttp.Client
	log     zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		apiKey:  cfg.RiotAPIKey,
		region:  cfg.Region,
		routing: cfg.RoutingV5,
		baseURL: defaultBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     constants.HTTPMaxConnsPerHost,
			ReadTimeout:         constants.HTTPReadTimeout,
			WriteTimeout:        constants.HTTPWriteTimeout,
			MaxIdleConnDuration: constants.HTTPMaxIdleConnDuration,
		},
		log: logger,
	}
}

// get issues one GET against the host selected by host (platform
// region or routing value) and returns the raw status and body. Only
// transport-level problems surface as an error; non-2xx statuses are
// data for the classify step.
func (c *Client) get(ctx context.Context, host, path string) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	url := fmt.Sprintf(c.baseURL, host, path)
	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", c.apiKey)

	requestID := uuid.New().String()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(constants.ExternalAPITimeout)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return 0, nil, err
	}

	c.log.Debug().
		Str("request_id", requestID).
		Str("url", url).
		Int("status", resp.StatusCode()).
		Msg("riot api request")

	body := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), body, nil
}

// object / list / set / raw pair one GET with the matching classify
// operation. Package-level functions because methods cannot carry
// their own type parameters.
func object[T any](ctx context.Context, c *Client, host, path string) envelope.Result[*T] {
	status, body, err := c.get(ctx, host, path)
	if err != nil {
		return envelope.Failure[*T](err)
	}
	return envelope.Object[T](status, body)
}

func list[T any](ctx context.Context, c *Client, host, path string) envelope.Result[[]*T] {
	status, body, err := c.get(ctx, host, path)
	if err != nil {
		return envelope.Failure[[]*T](err)
	}
	return envelope.List[T](status, body)
}

func set[T any](ctx context.Context, c *Client, host, path string) envelope.Result[[]*T] {
	status, body, err := c.get(ctx, host, path)
	if err != nil {
		return envelope.Failure[[]*T](err)
	}
	return envelope.Set[T](status, body)
}

func raw[T any](ctx context.Context, c *Client, host, path string) envelope.Result[T] {
	status, body, err := c.get(ctx, host, path)
	if err != nil {
		return envelope.Failure[T](err)
	}
	return envelope.Raw[T](status, body)
}

var Module = fx.Provide(NewClient)
