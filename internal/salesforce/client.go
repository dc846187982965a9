package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/srinipusuluri/sfdc-adminX/internal/types/domain"
	"github.com/srinipusuluri/sfdc-adminX/pkg/errutils"
)

// Client talks to the Salesforce REST API using the OAuth 2.0 client
// credentials flow. The access token is obtained lazily on first use and
// reused for the lifetime of the client.
type Client struct {
	instanceURL  string
	clientID     string
	clientSecret string
	apiVersion   string
	httpCli      *http.Client

	mu          sync.Mutex
	accessToken string
	apiBase     string
}

func NewClient(instanceURL, clientID, clientSecret, apiVersion string, timeout time.Duration) *Client {
	return &Client{
		instanceURL:  strings.TrimRight(instanceURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		apiVersion:   apiVersion,
		httpCli:      &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	InstanceURL string `json:"instance_url"`
}

// Connect performs the client-credentials token exchange. Calling it
// explicitly at startup surfaces credential problems early; otherwise it
// runs implicitly before the first API call.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticateLocked(ctx)
}

func (c *Client) authenticateLocked(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	tokenURL := c.instanceURL + "/services/oauth2/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errutils.Wrap("failed to build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return errutils.Wrap("token request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errutils.Wrap("failed to read token response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", domain.ErrUnauthorized, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var tok tokenResponse
	if err := json.Unmarshal(raw, &tok); err != nil {
		return errutils.Wrap("failed to decode token response", err)
	}
	if tok.AccessToken == "" {
		return domain.ErrUnauthorized
	}

	c.accessToken = tok.AccessToken
	c.apiBase = strings.TrimRight(tok.InstanceURL, "/")
	if c.apiBase == "" {
		c.apiBase = c.instanceURL
	}
	return nil
}

func (c *Client) ensureToken(ctx context.Context) (string, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accessToken == "" {
		if err := c.authenticateLocked(ctx); err != nil {
			return "", "", err
		}
	}
	return c.accessToken, c.apiBase, nil
}

// do issues an authenticated request against a /services/data path and
// decodes the JSON response into out when out is non-nil and the body is
// non-empty.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	token, apiBase, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errutils.Wrap("failed to marshal request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiBase+path, reader)
	if err != nil {
		return errutils.Wrap("failed to build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return errutils.Wrap("request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errutils.Wrap("failed to read response", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, strings.TrimSpace(string(raw)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("salesforce returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return errutils.Wrap("failed to decode response", err)
		}
	}
	return nil
}

type userQueryResult struct {
	TotalSize int                     `json:"totalSize"`
	Records   []domain.SalesforceUser `json:"records"`
}

func (c *Client) queryUsers(ctx context.Context, soql string) (userQueryResult, error) {
	var result userQueryResult
	path := fmt.Sprintf("/services/data/%s/query?q=%s", c.apiVersion, url.QueryEscape(soql))
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return userQueryResult{}, err
	}
	return result, nil
}

type createResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// CreateUser inserts a new active User record and returns its Salesforce ID.
func (c *Client) CreateUser(ctx context.Context, cmd domain.Command) (string, error) {
	payload := map[string]any{
		"FirstName": cmd.FirstName,
		"LastName":  cmd.LastName,
		"Email":     cmd.Email,
		"Username":  cmd.Username,
		"IsActive":  true,
	}

	var result createResult
	path := fmt.Sprintf("/services/data/%s/sobjects/User", c.apiVersion)
	if err := c.do(ctx, http.MethodPost, path, payload, &result); err != nil {
		return "", errutils.Wrap("failed to create user", err)
	}
	if !result.Success {
		if len(result.Errors) > 0 {
			return "", fmt.Errorf("failed to create user: %s", result.Errors[0].Message)
		}
		return "", fmt.Errorf("failed to create user")
	}
	return result.ID, nil
}

// UpdateUser patches the given User record with the field/value pairs from
// an update command.
func (c *Client) UpdateUser(ctx context.Context, id string, updates map[string]string) error {
	payload := make(map[string]any, len(updates))
	for field, value := range updates {
		payload[field] = value
	}

	path := fmt.Sprintf("/services/data/%s/sobjects/User/%s", c.apiVersion, url.PathEscape(id))
	if err := c.do(ctx, http.MethodPatch, path, payload, nil); err != nil {
		return errutils.Wrap("failed to update user", err)
	}
	return nil
}

// DeactivateUser flips IsActive off. Salesforce has no user delete; this is
// the closest administrative equivalent.
func (c *Client) DeactivateUser(ctx context.Context, id string) error {
	path := fmt.Sprintf("/services/data/%s/sobjects/User/%s", c.apiVersion, url.PathEscape(id))
	if err := c.do(ctx, http.MethodPatch, path, map[string]any{"IsActive": false}, nil); err != nil {
		return errutils.Wrap("failed to deactivate user", err)
	}
	return nil
}

// ResolveUserID turns an email address or opaque identifier into the actual
// Salesforce record ID.
func (c *Client) ResolveUserID(ctx context.Context, identifier string) (string, error) {
	result, err := c.queryUsers(ctx, lookupSOQL(identifier))
	if err != nil {
		return "", err
	}
	if result.TotalSize == 0 || len(result.Records) == 0 {
		return "", domain.ErrUserNotFound
	}
	return result.Records[0].ID, nil
}

// GetUserDetails fetches the display fields for a user, addressed by email
// or record ID.
func (c *Client) GetUserDetails(ctx context.Context, identifier string) (domain.SalesforceUser, error) {
	result, err := c.queryUsers(ctx, detailSOQL(identifier))
	if err != nil {
		return domain.SalesforceUser{}, err
	}
	if result.TotalSize == 0 || len(result.Records) == 0 {
		return domain.SalesforceUser{}, domain.ErrUserNotFound
	}
	return result.Records[0], nil
}

// Health runs a trivial query to verify the connection works end to end.
// It returns the matched user count so callers can report it.
func (c *Client) Health(ctx context.Context) (int, error) {
	result, err := c.queryUsers(ctx, "SELECT Id FROM User LIMIT 1")
	if err != nil {
		return 0, err
	}
	return result.TotalSize, nil
}
