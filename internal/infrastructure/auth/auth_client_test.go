package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/auth/validate", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body["token"] != "valid-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"email": "ops@movify.dev", "role": "ADMIN"})
	}))
	defer server.Close()

	client := NewHTTPAuthClient(server.URL)

	claims, err := client.ValidateToken(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.Equal(t, "ops@movify.dev", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)

	_, err = client.ValidateToken(context.Background(), "expired-token")
	assert.ErrorContains(t, err, "status 401")
}
