package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmsplatform/rms/internal/client/authstore"
)

// staticTokens is a TokenSource with a fixed value.
type staticTokens struct {
	token string
}

func (s staticTokens) Token(ctx context.Context) string { return s.token }

func TestHTTPClient_AttachesBearerTokenOnEveryRequest(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"companyName": "Acme"}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, staticTokens{token: "tok-123"})
	_, err := c.FetchBranding(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestHTTPClient_NoTokenMeansNoAuthHeader(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, staticTokens{})
	require.NoError(t, c.Ping(context.Background()))

	assert.False(t, hasAuth)
}

func TestFetchBranding_UnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/cms/public/branding", r.URL.Path)
		w.Write([]byte(`{"data":{"companyName":"Acme Realty"}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, staticTokens{})
	rec, err := c.FetchBranding(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Acme Realty", rec.CompanyName)
}

func TestFetchBranding_AcceptsBareRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"companyName":"Acme Realty"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, staticTokens{})
	rec, err := c.FetchBranding(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Acme Realty", rec.CompanyName)
}

func TestFetchBranding_MalformedPayloadIsBadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[not branding]`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, staticTokens{})
	_, err := c.FetchBranding(context.Background())
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, ErrUnavailable},
		{"unexpected client error", http.StatusTeapot, ErrBadResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewHTTPClient(srv.URL, staticTokens{})
			err := c.Ping(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestErrorMapping_ConnectionRefusedIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := NewHTTPClient(srv.URL, staticTokens{})
	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLogin_ReturnsTokenAndUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])

		w.Write([]byte(`{"data":{"token":"tok","user":{"id":"1","firstName":"A","lastName":"B","email":"a@b.com","role":"agent"}}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, staticTokens{})
	res, err := c.Login(context.Background(), "a@b.com", []byte("pw"))
	require.NoError(t, err)

	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "1", res.User.ID)
	assert.Equal(t, "agent", res.User.Role)
}

func TestLogin_MissingTokenIsBadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"user":{"id":"1"}}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, staticTokens{})
	_, err := c.Login(context.Background(), "a@b.com", []byte("pw"))
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestUpdateProfile_SendsOnlyPatchedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"firstName": "C"}, body)

		w.Write([]byte(`{"data":{"id":"1","firstName":"C","lastName":"B","email":"a@b.com","role":"agent"}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, staticTokens{token: "tok"})
	firstName := "C"
	u, err := c.UpdateProfile(context.Background(), authstore.UserPatch{FirstName: &firstName})
	require.NoError(t, err)
	assert.Equal(t, "C", u.FirstName)
}
