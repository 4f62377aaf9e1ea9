package gateway_http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/piresc/taxe/internal/pkg/decoder"
	httpclient "github.com/piresc/taxe/internal/pkg/http"
	"github.com/piresc/taxe/internal/pkg/models"
)

// HTTPGateway implements bookings.BookingGW against the taxe REST API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a booking gateway on top of an API client
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// GetBooking fetches one booking; customer and driver come back populated
func (g *HTTPGateway) GetBooking(ctx context.Context, token, id string) (models.Booking, error) {
	body, err := g.client.Get(ctx, "bookings/"+url.PathEscape(id), httpclient.WithBearer(token))
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to get booking %s: %w", id, err)
	}
	return decoder.DecodeBooking(body)
}

// ListUserBookings lists a user's bookings, newest first
func (g *HTTPGateway) ListUserBookings(ctx context.Context, token, userID string, query models.BookingQuery) ([]models.Booking, error) {
	params := url.Values{}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Active {
		params.Set("active", "true")
	}

	endpoint := fmt.Sprintf("users/%s/bookings", url.PathEscape(userID))
	body, err := g.client.Get(ctx, endpoint, httpclient.WithBearer(token), httpclient.WithQuery(params))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings of user %s: %w", userID, err)
	}
	return decoder.DecodeBookings(body)
}

func (g *HTTPGateway) CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.APIResponse, error) {
	body, err := g.client.Post(ctx, "bookings", req, httpclient.WithBearer(token))
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return decodeAPIResponse(body)
}

func (g *HTTPGateway) EditBooking(ctx context.Context, token, id string, req models.BookingRequest) (*models.APIResponse, error) {
	body, err := g.client.Put(ctx, "bookings/"+url.PathEscape(id), req, httpclient.WithBearer(token))
	if err != nil {
		return nil, fmt.Errorf("failed to edit booking %s: %w", id, err)
	}
	return decodeAPIResponse(body)
}

func decodeAPIResponse(body []byte) (*models.APIResponse, error) {
	var resp models.APIResponse
	if len(body) == 0 {
		return &resp, nil
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &decoder.DecodeError{Reason: fmt.Sprintf("malformed response: %v", err)}
	}
	return &resp, nil
}
