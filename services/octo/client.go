package octo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"octobridge/models"
	"octobridge/utils"

	"go.uber.org/zap"
)

// Capabilities advertises the optional supplier feature sets this adapter
// understands. It must be sent verbatim on every call or the supplier omits
// fields the translation layer expects.
const Capabilities = "octo/pricing,octo/pickups,octo/cart,octo/offers"

// API is the supplier surface consumed by the orchestrators. Tests swap in
// fakes; Client is the production implementation.
type API interface {
	Whoami(ctx context.Context, conn models.Connection) (string, error)
	GetProducts(ctx context.Context, conn models.Connection) ([]Product, error)
	GetProduct(ctx context.Context, conn models.Connection, productID string) (*Product, error)
	CheckAvailability(ctx context.Context, conn models.Connection, req AvailabilityRequest) ([]Availability, error)
	AvailabilityCalendar(ctx context.Context, conn models.Connection, req AvailabilityRequest) ([]Availability, error)
	CreateBooking(ctx context.Context, conn models.Connection, req CreateBookingRequest) (*Booking, error)
	PatchBooking(ctx context.Context, conn models.Connection, bookingID string, req CreateBookingRequest) (*Booking, error)
	ConfirmBooking(ctx context.Context, conn models.Connection, bookingID string, req ConfirmBookingRequest) (*Booking, error)
	CancelBooking(ctx context.Context, conn models.Connection, bookingID, reason string) (*Booking, error)
	GetBooking(ctx context.Context, conn models.Connection, bookingID string) (*Booking, error)
	ListBookings(ctx context.Context, conn models.Connection, q BookingsQuery) ([]Booking, error)
}

// APIError is a non-2xx supplier response with the supplier's own message
// extracted where available.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("supplier error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("supplier error (%d): %s", e.Status, http.StatusText(e.Status))
}

// Client talks to the supplier's REST API.
type Client struct {
	endpoint       string
	octoEnv        string
	acceptLanguage string
	httpClient     *http.Client
	logger         *zap.Logger
	metrics        *utils.Metrics
}

func NewClient(endpoint, octoEnv, acceptLanguage string, timeout time.Duration, logger *zap.Logger, metrics *utils.Metrics) *Client {
	return &Client{
		endpoint:       endpoint,
		octoEnv:        octoEnv,
		acceptLanguage: acceptLanguage,
		httpClient:     &http.Client{Timeout: timeout},
		logger:         logger,
		metrics:        metrics,
	}
}

func (c *Client) baseURL(conn models.Connection) string {
	if conn.Endpoint != "" {
		return conn.Endpoint
	}
	return c.endpoint
}

func (c *Client) setHeaders(req *http.Request, conn models.Connection) {
	req.Header.Set("Authorization", "Bearer "+conn.APIKey)
	octoEnv := conn.OctoEnv
	if octoEnv == "" {
		octoEnv = c.octoEnv
	}
	if octoEnv != "" {
		req.Header.Set("Octo-Env", octoEnv)
	}
	lang := conn.AcceptLanguage
	if lang == "" {
		lang = c.acceptLanguage
	}
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Octo-Capabilities", Capabilities)
}

// extractErrorMessage pulls the supplier's message out of an error body.
func extractErrorMessage(data []byte) string {
	var body struct {
		ErrorMessage string `json:"errorMessage"`
		Error        string `json:"error"`
		Message      string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	switch {
	case body.ErrorMessage != "":
		return body.ErrorMessage
	case body.Error != "":
		return body.Error
	default:
		return body.Message
	}
}

func (c *Client) do(ctx context.Context, conn models.Connection, operation, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL(conn) + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", operation, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", operation, err)
	}
	c.setHeaders(req, conn)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		c.metrics.ObserveSupplierCall(operation, elapsed, true)
		c.logger.Warn("supplier request failed",
			zap.String("operation", operation), zap.Error(err))
		return fmt.Errorf("supplier %s request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	c.metrics.ObserveSupplierCall(operation, elapsed, !ok)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", operation, err)
	}

	if !ok {
		apiErr := &APIError{Status: resp.StatusCode, Message: extractErrorMessage(data)}
		c.logger.Warn("supplier returned error",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", operation, err)
		}
	}
	return nil
}

// Whoami validates credentials and returns the supplier connection id.
func (c *Client) Whoami(ctx context.Context, conn models.Connection) (string, error) {
	var out struct {
		Connection struct {
			ID string `json:"id"`
		} `json:"connection"`
	}
	q := url.Values{"token": {conn.APIKey}}
	if err := c.do(ctx, conn, "whoami", http.MethodGet, "/whoami", q, nil, &out); err != nil {
		return "", err
	}
	return out.Connection.ID, nil
}

func (c *Client) GetProducts(ctx context.Context, conn models.Connection) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, conn, "get_products", http.MethodGet, "/products", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, conn models.Connection, productID string) (*Product, error) {
	var out Product
	if err := c.do(ctx, conn, "get_product", http.MethodGet, "/products/"+productID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CheckAvailability(ctx context.Context, conn models.Connection, req AvailabilityRequest) ([]Availability, error) {
	var out []Availability
	if err := c.do(ctx, conn, "availability", http.MethodPost, "/availability", nil, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AvailabilityCalendar(ctx context.Context, conn models.Connection, req AvailabilityRequest) ([]Availability, error) {
	var out []Availability
	if err := c.do(ctx, conn, "availability_calendar", http.MethodPost, "/availability/calendar", nil, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, conn models.Connection, req CreateBookingRequest) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, conn, "create_booking", http.MethodPost, "/bookings", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PatchBooking(ctx context.Context, conn models.Connection, bookingID string, req CreateBookingRequest) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, conn, "patch_booking", http.MethodPatch, "/bookings/"+bookingID, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ConfirmBooking(ctx context.Context, conn models.Connection, bookingID string, req ConfirmBookingRequest) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, conn, "confirm_booking", http.MethodPost, "/bookings/"+bookingID+"/confirm", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelBooking(ctx context.Context, conn models.Connection, bookingID, reason string) (*Booking, error) {
	var out Booking
	body := map[string]string{"reason": reason}
	if err := c.do(ctx, conn, "cancel_booking", http.MethodDelete, "/bookings/"+bookingID, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetBooking(ctx context.Context, conn models.Connection, bookingID string) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, conn, "get_booking", http.MethodGet, "/bookings/"+bookingID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListBookings(ctx context.Context, conn models.Connection, q BookingsQuery) ([]Booking, error) {
	query := url.Values{}
	if q.ResellerReference != "" {
		query.Set("resellerReference", q.ResellerReference)
	}
	if q.SupplierReference != "" {
		query.Set("supplierReference", q.SupplierReference)
	}
	if q.LocalDateStart != "" {
		query.Set("localDateStart", q.LocalDateStart)
	}
	if q.LocalDateEnd != "" {
		query.Set("localDateEnd", q.LocalDateEnd)
	}
	var out []Booking
	if err := c.do(ctx, conn, "list_bookings", http.MethodGet, "/bookings", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
