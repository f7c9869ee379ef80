// Package client is the HTTP consumer of the booking API, used by the
// wizard to fetch reference data, schedules and seat schemas and to
// submit the final ticket sale.  Every call is a single fire-and-await
// round trip: there are no retries and no client-side cancellation
// beyond the caller's context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/adiguzelburak/bus-ticket/internal/model"
)

// ErrNotFound is returned when the backend has no data for the request:
// a missing trip, or a seat-schema query answered with an empty array.
// The wizard renders its not-found view on this error instead of
// continuing with undefined data.
var ErrNotFound = errors.New("not found")

// StatusError reports a non-2xx response.  It is the client's
// NetworkFailure case: callers surface it at the step that issued the
// call and never fold it into the booking session.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Body)
}

// Client talks to one booking API base URL, e.g.
// "http://localhost:3001".
type Client struct {
	base string
	hc   *http.Client
}

// New returns a Client.  A nil http.Client falls back to the default
// client; callers wanting timeouts configure their own.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: baseURL, hc: hc}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &StatusError{Code: resp.StatusCode, Body: body.Error}
}

// GetAgencies fetches the agency reference list.
func (c *Client) GetAgencies(ctx context.Context) ([]model.Agency, error) {
	var out []model.Agency
	if err := c.getJSON(ctx, "/api/reference/agencies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSchedules searches trips between two agencies on a departure day
// (YYYY-MM-DD).
func (c *Client) GetSchedules(ctx context.Context, from, to, date string) ([]model.Trip, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("date", date)
	var out []model.Trip
	if err := c.getJSON(ctx, "/api/schedules", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTrip fetches one trip by id.
func (c *Client) GetTrip(ctx context.Context, id string) (model.Trip, error) {
	var out model.Trip
	if err := c.getJSON(ctx, "/api/schedules/"+url.PathEscape(id), nil, &out); err != nil {
		return model.Trip{}, err
	}
	return out, nil
}

// GetSeatSchema fetches the seat schema for a trip.  The endpoint
// answers with an array; the first element is the schema and an empty
// array means the trip has none, reported as ErrNotFound.
func (c *Client) GetSeatSchema(ctx context.Context, tripID string) (model.SeatSchema, error) {
	q := url.Values{}
	q.Set("tripId", tripID)
	var out []model.SeatSchema
	if err := c.getJSON(ctx, "/api/seatSchemas", q, &out); err != nil {
		return model.SeatSchema{}, err
	}
	if len(out) == 0 {
		return model.SeatSchema{}, ErrNotFound
	}
	return out[0], nil
}

// CreateTicketSale submits the sale.  The backend holds the response for
// its artificial payment delay, so this blocks for at least that long.
// A declined payment is not an error here: it comes back as ok=false
// and the caller decides to stay on the payment step.
func (c *Client) CreateTicketSale(ctx context.Context, sale model.TicketSaleRequest) (model.TicketSaleResponse, error) {
	body, err := json.Marshal(sale)
	if err != nil {
		return model.TicketSaleResponse{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/tickets/sell", bytes.NewReader(body))
	if err != nil {
		return model.TicketSaleResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return model.TicketSaleResponse{}, err
	}
	defer resp.Body.Close()

	var out model.TicketSaleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.TicketSaleResponse{}, err
	}
	// 4xx/5xx sale answers still carry the ok/message envelope; pass
	// them through as declines rather than transport errors.
	return out, nil
}
