package salesforce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/srinipusuluri/sfdc-adminX/internal/types/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSalesforce serves the token endpoint plus a configurable handler for
// the data API.
func fakeSalesforce(t *testing.T, api http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/services/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		assert.Equal(t, "test-id", r.Form.Get("client_id"))
		assert.Equal(t, "test-secret", r.Form.Get("client_secret"))

		// instance_url echoes back the test server itself.
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok-123",
			"instance_url": "http://" + r.Host,
		})
	})
	mux.HandleFunc("/services/data/", api)

	return httptest.NewServer(mux)
}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(server.URL, "test-id", "test-secret", "v58.0", 5*time.Second)
}

func TestConnectExchangesToken(t *testing.T) {
	server := fakeSalesforce(t, func(w http.ResponseWriter, _ *http.Request) {})
	defer server.Close()

	client := newTestClient(server)
	require.NoError(t, client.Connect(context.Background()))
}

func TestConnectBadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_client_id"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	err := client.Connect(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateUser(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	server := fakeSalesforce(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"005Aj000001abcd","success":true,"errors":[]}`))
	})
	defer server.Close()

	client := newTestClient(server)
	id, err := client.CreateUser(context.Background(), domain.Command{
		Operation: domain.OperationCreateUser,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Username:  "john@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "005Aj000001abcd", id)
	assert.Equal(t, "/services/data/v58.0/sobjects/User", gotPath)
	assert.Equal(t, "John", gotBody["FirstName"])
	assert.Equal(t, true, gotBody["IsActive"])
}

func TestUpdateUser(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any

	server := fakeSalesforce(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	client := newTestClient(server)
	err := client.UpdateUser(context.Background(), "005Aj000001abcd", map[string]string{"Phone": "555-1234"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/services/data/v58.0/sobjects/User/005Aj000001abcd", gotPath)
	assert.Equal(t, "555-1234", gotBody["Phone"])
}

func TestDeactivateUserSetsIsActiveFalse(t *testing.T) {
	var gotBody map[string]any

	server := fakeSalesforce(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	client := newTestClient(server)
	require.NoError(t, client.DeactivateUser(context.Background(), "005Aj000001abcd"))
	assert.Equal(t, false, gotBody["IsActive"])
}

func TestResolveUserIDByEmail(t *testing.T) {
	var gotSOQL string

	server := fakeSalesforce(t, func(w http.ResponseWriter, r *http.Request) {
		gotSOQL = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`{"totalSize":1,"records":[{"Id":"005Aj000001abcd","Email":"john@example.com"}]}`))
	})
	defer server.Close()

	client := newTestClient(server)
	id, err := client.ResolveUserID(context.Background(), "john@example.com")

	require.NoError(t, err)
	assert.Equal(t, "005Aj000001abcd", id)
	assert.Equal(t, "SELECT Id, Email FROM User WHERE Email = 'john@example.com'", gotSOQL)
}

func TestResolveUserIDNotFound(t *testing.T) {
	server := fakeSalesforce(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"totalSize":0,"records":[]}`))
	})
	defer server.Close()

	client := newTestClient(server)
	_, err := client.ResolveUserID(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUserDetails(t *testing.T) {
	var gotRawQuery string

	server := fakeSalesforce(t, func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"totalSize":1,"records":[
			{"Id":"005Aj000001abcd","FirstName":"John","LastName":"Doe","Email":"john@example.com",
			 "Username":"john@example.com","IsActive":true,"Title":"Engineer","Department":"R&D"}
		]}`))
	})
	defer server.Close()

	client := newTestClient(server)
	user, err := client.GetUserDetails(context.Background(), "john@example.com")

	require.NoError(t, err)
	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.True(t, user.IsActive)
	assert.Equal(t, "R&D", user.Department)

	q, err := url.ParseQuery(gotRawQuery)
	require.NoError(t, err)
	assert.Contains(t, q.Get("q"), "WHERE Email = 'john@example.com'")
}

func TestHealth(t *testing.T) {
	server := fakeSalesforce(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "SELECT Id FROM User LIMIT 1", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"totalSize":1,"records":[{"Id":"005Aj000001abcd"}]}`))
	})
	defer server.Close()

	client := newTestClient(server)
	count, err := client.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExpiredTokenSurfacesUnauthorized(t *testing.T) {
	server := fakeSalesforce(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`[{"errorCode":"INVALID_SESSION_ID"}]`))
	})
	defer server.Close()

	client := newTestClient(server)
	_, err := client.Health(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
