package fieldsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/catalinarubies/field-booking/booking"
	"github.com/patrickmn/go-cache"
)

// ErrUnreadableConfirmation is returned when the server accepted a booking
// but its response body could not be decoded.
var ErrUnreadableConfirmation = errors.New("booking accepted but the confirmation could not be read")

var errTruncatedBody = errors.New("failed to read body")

// ResponseError is a non-2xx answer from the bookings API.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if len(e.Message) == 0 {
		return fmt.Sprintf("request failed with status '%v'", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status '%v': %v", e.StatusCode, e.Message)
}

// Confirmation is the body of a successful POST /bookings.
type Confirmation struct {
	ConfirmationID string `json:"confirmationId"`
	booking.Echo
}

type fieldBody struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Sport        string  `json:"sport"`
	Location     string  `json:"location"`
	PricePerHour float64 `json:"price_per_hour"`
	Description  string  `json:"description"`
	Available    bool    `json:"available"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type Client struct {
	baseURL string
	client  *http.Client
	cache   *cache.Cache
}

func NewClient(baseURL string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		cache:   cache.New(1*time.Minute, 5*time.Minute),
	}
}

// CreateBooking performs exactly one POST /bookings. It never retries.
func (c *Client) CreateBooking(ctx context.Context, token string, req booking.Request) (Confirmation, error) {
	bookingURL, err := c.getURL("bookings")

	if err != nil {
		return Confirmation{}, err
	}

	body, err := json.Marshal(req)

	if err != nil {
		return Confirmation{}, fmt.Errorf("failed to marshal body: %w", err)
	}

	bodyBytes, err := c.send(ctx, http.MethodPost, bookingURL, token, bytes.NewReader(body))

	// the status line already said 2xx, so the booking exists
	if errors.Is(err, errTruncatedBody) {
		return Confirmation{}, fmt.Errorf("%w: %w", ErrUnreadableConfirmation, err)
	}

	if err != nil {
		return Confirmation{}, err
	}

	var confirmation Confirmation
	err = json.Unmarshal(bodyBytes, &confirmation)

	if err != nil {
		return Confirmation{}, fmt.Errorf("%w: %w", ErrUnreadableConfirmation, err)
	}

	return confirmation, nil
}

func (c *Client) GetField(ctx context.Context, token string, id string) (booking.Field, error) {
	cachedField, found := c.cache.Get(id)

	if found {
		return cachedField.(booking.Field), nil
	}

	fieldURL, err := c.getURL("fields", id)

	if err != nil {
		return booking.Field{}, err
	}

	bodyBytes, err := c.send(ctx, http.MethodGet, fieldURL, token, http.NoBody)

	if err != nil {
		return booking.Field{}, err
	}

	var body fieldBody
	err = json.Unmarshal(bodyBytes, &body)

	if err != nil {
		return booking.Field{}, fmt.Errorf("failed reading body: %w", err)
	}

	field := booking.Field{
		ID:           body.ID,
		Name:         body.Name,
		Sport:        body.Sport,
		Location:     body.Location,
		PricePerHour: int64(math.Round(body.PricePerHour)),
		Description:  body.Description,
		Available:    body.Available,
	}

	c.cache.Set(id, field, cache.DefaultExpiration)

	return field, nil
}

func (c *Client) GetBooking(ctx context.Context, token string, id string) (booking.Record, error) {
	bookingURL, err := c.getURL("bookings", id)

	if err != nil {
		return booking.Record{}, err
	}

	bodyBytes, err := c.send(ctx, http.MethodGet, bookingURL, token, http.NoBody)

	if err != nil {
		return booking.Record{}, err
	}

	var record booking.Record
	err = json.Unmarshal(bodyBytes, &record)

	if err != nil {
		return booking.Record{}, fmt.Errorf("failed reading body: %w", err)
	}

	return record, nil
}

func (c *Client) ListUserBookings(ctx context.Context, token string, userID string) ([]booking.Record, error) {
	listURL, err := c.getURL("bookings", "user", userID)

	if err != nil {
		return nil, err
	}

	bodyBytes, err := c.send(ctx, http.MethodGet, listURL, token, http.NoBody)

	if err != nil {
		return nil, err
	}

	var records = []booking.Record{}
	err = json.Unmarshal(bodyBytes, &records)

	if err != nil {
		return nil, fmt.Errorf("failed reading body: %w", err)
	}

	return records, nil
}

// send returns the response body of a 2xx answer, a *ResponseError for any
// other status and a wrapped transport error otherwise. A 2xx whose body
// breaks off returns an error wrapping errTruncatedBody.
func (c *Client) send(ctx context.Context, method, target, token string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req, token)

	res, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &ResponseError{StatusCode: res.StatusCode, Message: errorMessage(bodyBytes)}
	}

	if readErr != nil {
		return bodyBytes, fmt.Errorf("%w: %w", errTruncatedBody, readErr)
	}

	return bodyBytes, nil
}

func errorMessage(bodyBytes []byte) string {
	var body errorBody

	if err := json.Unmarshal(bodyBytes, &body); err == nil {
		if len(body.Message) != 0 {
			return body.Message
		}
		return body.Error
	}

	return strings.TrimSpace(string(bodyBytes))
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if len(token) != 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
