package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"valorant-analytics/internal/config"

	"github.com/valyala/fasthttp"
)

// ValAPIClient reads static game reference data (agents, maps) from a
// valorant-api.com compatible endpoint.
type ValAPIClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewValAPIClient(cfg *config.Config) *ValAPIClient {
	return &ValAPIClient{
		baseURL: strings.TrimRight(cfg.ReferenceAPIURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     10,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *ValAPIClient) GetAgents(ctx context.Context) ([]Agent, error) {
	resp, err := doRequest[AgentsResponse](ctx, c, c.baseURL+"/v1/agents?isPlayableCharacter=true")
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *ValAPIClient) GetMaps(ctx context.Context) ([]Map, error) {
	resp, err := doRequest[MapsResponse](ctx, c, c.baseURL+"/v1/maps")
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func doRequest[T any](ctx context.Context, client *ValAPIClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type AgentsResponse struct {
	Status int     `json:"status"`
	Data   []Agent `json:"data"`
}

type Agent struct {
	UUID                string `json:"uuid"`
	DisplayName         string `json:"displayName"`
	IsPlayableCharacter bool   `json:"isPlayableCharacter"`
}

type MapsResponse struct {
	Status int   `json:"status"`
	Data   []Map `json:"data"`
}

// Map.MapURL is the engine path that match dumps carry as mapId.
type Map struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
	MapURL      string `json:"mapUrl"`
}
