package gateway_http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/piresc/taxe/internal/pkg/decoder"
	httpclient "github.com/piresc/taxe/internal/pkg/http"
	"github.com/piresc/taxe/internal/pkg/models"
)

// HTTPGateway implements users.UserGW against the taxe REST API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a user gateway on top of an API client
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// Login exchanges Basic credentials for a session token
func (g *HTTPGateway) Login(ctx context.Context, creds models.LoginRequest) (*models.LoginResponse, error) {
	body, err := g.client.Post(ctx, "users/login", nil, httpclient.WithBasicAuth(creds.Email, creds.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	resp, err := decoder.DecodeLogin(body)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *HTTPGateway) Register(ctx context.Context, user models.NewUser) (*models.APIResponse, error) {
	body, err := g.client.Post(ctx, "users", user)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return decodeAPIResponse(body)
}

// GetUser fetches a full profile
func (g *HTTPGateway) GetUser(ctx context.Context, token, id string) (models.UserProfile, error) {
	body, err := g.client.Get(ctx, "users/"+url.PathEscape(id), httpclient.WithBearer(token))
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return decoder.DecodeUserProfile(body)
}

func (g *HTTPGateway) EditUser(ctx context.Context, token, id string, update models.UserUpdate) (*models.APIResponse, error) {
	body, err := g.client.Put(ctx, "users/"+url.PathEscape(id), update, httpclient.WithBearer(token))
	if err != nil {
		return nil, fmt.Errorf("failed to edit user %s: %w", id, err)
	}
	return decodeAPIResponse(body)
}

// RemoveDriver takes a driver off a company's roster
func (g *HTTPGateway) RemoveDriver(ctx context.Context, token, companyID, userID string) (*models.APIResponse, error) {
	endpoint := fmt.Sprintf("companies/%s/drivers/%s", url.PathEscape(companyID), url.PathEscape(userID))
	body, err := g.client.Delete(ctx, endpoint, httpclient.WithBearer(token))
	if err != nil {
		return nil, fmt.Errorf("failed to remove driver %s from company %s: %w", userID, companyID, err)
	}
	return decodeAPIResponse(body)
}

// decodeAPIResponse reads the acknowledgement body; an empty body is a bare success
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
