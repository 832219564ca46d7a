package swapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultEndpoint is the public Star Wars GraphQL API.
const DefaultEndpoint = "https://swapi-graphql.netlify.app/.netlify/functions/index"

// FilmFetcher fetches one page of the film catalog.
type FilmFetcher interface {
	GetAllFilms(ctx context.Context, vars Variables) (FilmsConnection, error)
}

// Client is a GraphQL client for the Star Wars API.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new client. An empty endpoint uses DefaultEndpoint and a
// nil httpClient uses http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "swapi").Logger(),
	}
}

// graphqlRequest is the JSON body sent to the GraphQL endpoint.
type graphqlRequest struct {
	Query     string `json:"query"`
	Variables any    `json:"variables,omitempty"`
}

// graphqlError is a single entry of the errors array.
type graphqlError struct {
	Message string `json:"message"`
}

// graphqlResponse wraps the raw JSON response.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// QueryError is returned when the server answers with a GraphQL errors array.
type QueryError struct {
	Messages []string
}

func (e *QueryError) Error() string {
	return "swapi: " + strings.Join(e.Messages, "; ")
}

// doQuery executes a GraphQL query and unmarshals the data field into target.
func (c *Client) doQuery(ctx context.Context, query string, vars any, target any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", c.endpoint).Msg("graphql request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("graphql response")

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("swapi API error (status %d): %s", resp.StatusCode, respBody)
	}

	var gqlResp graphqlResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		qe := &QueryError{Messages: make([]string, len(gqlResp.Errors))}
		for i, e := range gqlResp.Errors {
			qe.Messages[i] = e.Message
		}
		return qe
	}

	if target != nil {
		if err := json.Unmarshal(gqlResp.Data, target); err != nil {
			return fmt.Errorf("unmarshal data: %w", err)
		}
	}

	return nil
}

// GetAllFilms fetches one page of the allFilms connection.
func (c *Client) GetAllFilms(ctx context.Context, vars Variables) (FilmsConnection, error) {
	var result struct {
		AllFilms *FilmsConnection `json:"allFilms"`
	}

	c.logger.Debug().Stringer("vars", vars).Msg("fetching films")

	if err := c.doQuery(ctx, getAllFilmsQuery, vars, &result); err != nil {
		return FilmsConnection{}, err
	}
	if result.AllFilms == nil {
		return FilmsConnection{}, fmt.Errorf("swapi: response has no allFilms field")
	}

	return *result.AllFilms, nil
}
