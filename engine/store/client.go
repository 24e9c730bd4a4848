// Package store talks to the external data service that owns profiles and
// domain resources. The contract is deliberately narrow: projection/filter
// reads and keyed writes. The client never interprets business fields and
// never enforces authorization; gating happens before any call lands here.
package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/pkg/config"
)

// Row is a single record as returned by the data service.
type Row = map[string]any

// Query describes a projection/filter read or the target of a keyed write.
type Query struct {
	// Select is the field projection, including embedded resources
	// (e.g. "id,title,modules(id,lessons(id))"). Empty means all columns.
	Select string
	// Filters are equality filters by column.
	Filters map[string]string
	// Order is an order clause such as "created_at.desc".
	Order string
	// Limit caps the number of returned rows; zero means no cap.
	Limit int
}

// Eq returns a copy of the query with an added equality filter.
func (q Query) Eq(column, value string) Query {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[column] = value
	q.Filters = filters
	return q
}

// Service is the data-service contract consumed by the gateway. It is safe
// for concurrent use: calls are stateless request/response exchanges.
type Service interface {
	Select(ctx context.Context, table string, q Query) ([]Row, error)
	Get(ctx context.Context, table string, q Query) (Row, error)
	Insert(ctx context.Context, table string, row Row) (Row, error)
	Update(ctx context.Context, table string, q Query, fields Row) (Row, error)
	Delete(ctx context.Context, table string, q Query) error
}

// Client implements Service over the data service's REST interface.
type Client struct {
	http *resty.Client
}

// NewClient builds a data service client from configuration.
func NewClient(cfg *config.DataConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("apikey", cfg.ServiceKey.Value()).
		SetAuthToken(cfg.ServiceKey.Value())
	return &Client{http: client}
}

func (c *Client) request(ctx context.Context, q Query) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if q.Select != "" {
		req.SetQueryParam("select", q.Select)
	}
	for column, value := range q.Filters {
		req.SetQueryParam(column, "eq."+value)
	}
	if q.Order != "" {
		req.SetQueryParam("order", q.Order)
	}
	if q.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(q.Limit))
	}
	return req
}

// Select returns every row matching the query.
func (c *Client) Select(ctx context.Context, table string, q Query) ([]Row, error) {
	var rows []Row
	resp, err := c.request(ctx, q).SetResult(&rows).Get("/rest/v1/" + table)
	if err != nil {
		return nil, core.Upstreamf(err, "data service unreachable")
	}
	if resp.IsError() {
		return nil, upstreamStatus(table, resp)
	}
	return rows, nil
}

// Get returns the single row matching the query, or NotFound.
func (c *Client) Get(ctx context.Context, table string, q Query) (Row, error) {
	q.Limit = 1
	rows, err := c.Select(ctx, table, q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, core.NotFoundf("no matching record in %s", table)
	}
	return rows[0], nil
}

// Insert writes a new row and returns the stored representation.
func (c *Client) Insert(ctx context.Context, table string, row Row) (Row, error) {
	var rows []Row
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(row).
		SetResult(&rows).
		Post("/rest/v1/" + table)
	if err != nil {
		return nil, core.Upstreamf(err, "data service unreachable")
	}
	if resp.IsError() {
		return nil, upstreamStatus(table, resp)
	}
	if len(rows) == 0 {
		return nil, core.Upstreamf(nil, "insert into %s returned no representation", table)
	}
	return rows[0], nil
}

// Update patches the rows matching the query and returns the first updated
// representation. Matching no rows is NotFound.
func (c *Client) Update(ctx context.Context, table string, q Query, fields Row) (Row, error) {
	var rows []Row
	resp, err := c.request(ctx, q).
		SetHeader("Prefer", "return=representation").
		SetBody(fields).
		SetResult(&rows).
		Patch("/rest/v1/" + table)
	if err != nil {
		return nil, core.Upstreamf(err, "data service unreachable")
	}
	if resp.IsError() {
		return nil, upstreamStatus(table, resp)
	}
	if len(rows) == 0 {
		return nil, core.NotFoundf("no matching record in %s", table)
	}
	return rows[0], nil
}

// Delete removes the rows matching the query. Matching no rows is NotFound.
func (c *Client) Delete(ctx context.Context, table string, q Query) error {
	var rows []Row
	resp, err := c.request(ctx, q).
		SetHeader("Prefer", "return=representation").
		SetResult(&rows).
		Delete("/rest/v1/" + table)
	if err != nil {
		return core.Upstreamf(err, "data service unreachable")
	}
	if resp.IsError() {
		return upstreamStatus(table, resp)
	}
	if len(rows) == 0 {
		return core.NotFoundf("no matching record in %s", table)
	}
	return nil
}

func upstreamStatus(table string, resp *resty.Response) error {
	return core.Upstreamf(
		fmt.Errorf("data service returned %d for %s: %s", resp.StatusCode(), table, resp.String()),
		"data service call failed",
	)
}
