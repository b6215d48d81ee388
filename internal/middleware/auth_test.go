package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func apiKeyTestRouter(hashedKeys []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuth(hashedKeys))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-key"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name           string
		hashedKeys     []string
		header         string
		query          string
		expectedStatus int
	}{
		{
			name:           "no hashes disables auth",
			hashedKeys:     nil,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing key rejected",
			hashedKeys:     []string{string(hash)},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong key rejected",
			hashedKeys:     []string{string(hash)},
			header:         "wrong-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "matching header key accepted",
			hashedKeys:     []string{string(hash)},
			header:         "secret-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "matching query key accepted",
			hashedKeys:     []string{string(hash)},
			query:          "secret-key",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := apiKeyTestRouter(tt.hashedKeys)

			url := "/protected"
			if tt.query != "" {
				url += "?api_key=" + tt.query
			}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAPIKeyAuth_MultipleHashes(t *testing.T) {
	hashA, err := bcrypt.GenerateFromPassword([]byte("key-a"), bcrypt.MinCost)
	require.NoError(t, err)
	hashB, err := bcrypt.GenerateFromPassword([]byte("key-b"), bcrypt.MinCost)
	require.NoError(t, err)
	router := apiKeyTestRouter([]string{string(hashA), string(hashB)})

	for _, key := range []string{"key-a", "key-b"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(APIKeyHeader, key)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, key)
	}
}
