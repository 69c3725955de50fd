// Package apiclient provides a typed Go client for the shipment tracking
// REST API. It unwraps the {success, data} response envelope and converts
// error bodies into ApiError values using the server's message conventions.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client calls the shipment tracking API. Create it with New.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the API served at baseURL, e.g.
// "http://localhost:8080/api/v1". Each request is a single attempt; callers
// re-trigger failed operations themselves.
func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// ApiError is a non-2xx response converted to an error. Message carries the
// human-readable text extracted from the response body.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// envelope mirrors the server's success wrapper. Data is kept raw so the
// caller can decode it into the right type.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// extractErrorMessage pulls the most specific human-readable message out of
// an error body, in priority order: a string "message", the first element
// of a "message" array, a string "error", then a generic fallback.
func extractErrorMessage(body []byte, statusCode int) string {
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch message := parsed["message"].(type) {
		case string:
			if message != "" {
				return message
			}
		case []any:
			if len(message) > 0 {
				if first, ok := message[0].(string); ok && first != "" {
					return first
				}
			}
		}
		if errText, ok := parsed["error"].(string); ok && errText != "" {
			return errText
		}
	}
	return fmt.Sprintf("request failed with status %d", statusCode)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &ApiError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(raw, resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}

	// Successful payloads may be wrapped as {success, data}; fall back to
	// the bare body when no wrapper is present.
	var wrapped envelope
	if err = json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return json.Unmarshal(wrapped.Data, out)
	}
	return json.Unmarshal(raw, out)
}

// Shipment is the wire representation of a shipment.
type Shipment struct {
	ID                  string              `json:"id"`
	TrackingID          string              `json:"trackingId"`
	CustomerID          string              `json:"customerId"`
	ServiceType         string              `json:"serviceType"`
	Status              string              `json:"status"`
	PickupLocation      string              `json:"pickupLocation"`
	DestinationLocation string              `json:"destinationLocation"`
	PackageType         string              `json:"packageType"`
	Weight              string              `json:"weight"`
	Dimensions          string              `json:"dimensions"`
	Phone               string              `json:"phone"`
	ReceiverPhone       string              `json:"receiverPhone,omitempty"`
	Amount              int64               `json:"amount"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
	Customer            *Customer           `json:"customer,omitempty"`
	StatusHistory       []StatusHistoryItem `json:"statusHistory,omitempty"`
	Checkpoints         []Checkpoint        `json:"checkpoints,omitempty"`
	Notes               []Note              `json:"notes,omitempty"`
	NextStatuses        []string            `json:"nextStatuses,omitempty"`
}

// Customer is the read-only snapshot attached to a shipment.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// StatusHistoryItem is one audit-trail entry.
type StatusHistoryItem struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	AdminName string    `json:"adminName,omitempty"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Checkpoint is one transit checkpoint.
type Checkpoint struct {
	ID          string    `json:"id"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	AdminName   string    `json:"adminName,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Note is one internal note.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	AdminName string    `json:"adminName,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// CustomerRollup is one customer group of the rollup summary.
type CustomerRollup struct {
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail,omitempty"`
	TotalCount     int    `json:"totalCount"`
	ActiveCount    int    `json:"activeCount"`
	LatestShipment struct {
		ID         string    `json:"id"`
		TrackingID string    `json:"trackingId"`
		Status     string    `json:"status"`
		CreatedAt  time.Time `json:"createdAt"`
	} `json:"latestShipment"`
}

// DashboardCounters carries the dashboard numbers.
type DashboardCounters struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// CreateShipmentRequest is the body of CreateShipment.
type CreateShipmentRequest struct {
	TrackingID          string `json:"trackingId"`
	CustomerID          string `json:"customerId"`
	ServiceType         string `json:"serviceType"`
	PickupLocation      string `json:"pickupLocation"`
	DestinationLocation string `json:"destinationLocation"`
	PackageType         string `json:"packageType"`
	Weight              string `json:"weight"`
	Dimensions          string `json:"dimensions"`
	Phone               string `json:"phone"`
	ReceiverPhone       string `json:"receiverPhone,omitempty"`
}

// ListShipmentsOptions narrows ListShipments. Zero values mean no filter.
type ListShipmentsOptions struct {
	CustomerID string
	Status     string
}

// CreateShipment registers a new shipment; it starts in PENDING.
func (c *Client) CreateShipment(ctx context.Context, request CreateShipmentRequest) (*Shipment, error) {
	var created Shipment
	if err := c.do(ctx, http.MethodPost, "/shipments", request, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListShipments retrieves shipment summaries, newest first.
func (c *Client) ListShipments(ctx context.Context, opts ListShipmentsOptions) ([]Shipment, error) {
	query := url.Values{}
	if opts.CustomerID != "" {
		query.Set("customerId", opts.CustomerID)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	path := "/shipments"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var shipments []Shipment
	if err := c.do(ctx, http.MethodGet, path, nil, &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

// GetShipment retrieves one shipment with its full audit trail.
func (c *Client) GetShipment(ctx context.Context, id string) (*Shipment, error) {
	var found Shipment
	if err := c.do(ctx, http.MethodGet, "/shipments/"+url.PathEscape(id), nil, &found); err != nil {
		return nil, err
	}
	return &found, nil
}

// TrackShipment retrieves a shipment by its public tracking identifier.
func (c *Client) TrackShipment(ctx context.Context, trackingID string) (*Shipment, error) {
	var found Shipment
	if err := c.do(ctx, http.MethodGet, "/tracking/"+url.PathEscape(trackingID), nil, &found); err != nil {
		return nil, err
	}
	return &found, nil
}

// UpdateStatus moves a shipment to a new lifecycle status and returns the
// updated shipment including the appended history entry.
func (c *Client) UpdateStatus(ctx context.Context, id, status, note, adminName string) (*Shipment, error) {
	body := map[string]string{"status": status}
	if note != "" {
		body["note"] = note
	}
	if adminName != "" {
		body["adminName"] = adminName
	}

	var updated Shipment
	err := c.do(ctx, http.MethodPatch, "/shipments/"+url.PathEscape(id)+"/status", body, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddCheckpoint appends a transit checkpoint to a shipment.
func (c *Client) AddCheckpoint(ctx context.Context, id, location, description, adminName string) (*Checkpoint, error) {
	body := map[string]string{"location": location, "description": description}
	if adminName != "" {
		body["adminName"] = adminName
	}

	var checkpoint Checkpoint
	err := c.do(ctx, http.MethodPost, "/shipments/"+url.PathEscape(id)+"/checkpoints", body, &checkpoint)
	if err != nil {
		return nil, err
	}
	return &checkpoint, nil
}

// AddNote appends an internal note to a shipment.
func (c *Client) AddNote(ctx context.Context, id, text, adminName string) (*Note, error) {
	body := map[string]string{"text": text}
	if adminName != "" {
		body["adminName"] = adminName
	}

	var note Note
	err := c.do(ctx, http.MethodPost, "/shipments/"+url.PathEscape(id)+"/notes", body, &note)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateAmount sets the quoted amount of a shipment.
func (c *Client) UpdateAmount(ctx context.Context, id string, amount int64) (*Shipment, error) {
	var updated Shipment
	err := c.do(ctx, http.MethodPatch, "/shipments/"+url.PathEscape(id)+"/amount",
		map[string]int64{"amount": amount}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteShipment removes a shipment and its audit trail.
func (c *Client) DeleteShipment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/shipments/"+url.PathEscape(id), nil, nil)
}

// CustomerRollups retrieves the per-customer shipment summary.
func (c *Client) CustomerRollups(ctx context.Context) ([]CustomerRollup, error) {
	var rollups []CustomerRollup
	if err := c.do(ctx, http.MethodGet, "/shipments/summary/customers", nil, &rollups); err != nil {
		return nil, err
	}
	return rollups, nil
}

// GetDashboardCounters retrieves the dashboard counters.
func (c *Client) GetDashboardCounters(ctx context.Context) (*DashboardCounters, error) {
	var counters DashboardCounters
	if err := c.do(ctx, http.MethodGet, "/shipments/summary/dashboard", nil, &counters); err != nil {
		return nil, err
	}
	return &counters, nil
}
