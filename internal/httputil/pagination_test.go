package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/sealedfields/internal/httputil"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		expectedOffset int
		expectedLimit  int
		errorContains  string
	}{
		{name: "defaults", url: "/", expectedOffset: 0, expectedLimit: httputil.DefaultPageLimit},
		{name: "custom values", url: "/?offset=10&limit=20", expectedOffset: 10, expectedLimit: 20},
		{name: "max limit", url: "/?limit=100", expectedOffset: 0, expectedLimit: httputil.MaxPageLimit},
		{name: "negative offset", url: "/?offset=-1", errorContains: "offset"},
		{name: "offset not an integer", url: "/?offset=abc", errorContains: "must be integers"},
		{name: "zero limit", url: "/?limit=0", errorContains: "limit"},
		{name: "negative limit", url: "/?limit=-5", errorContains: "limit"},
		{name: "limit over max", url: "/?limit=101", errorContains: "limit"},
		{name: "limit not an integer", url: "/?limit=xyz", errorContains: "must be integers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)

			offset, limit, err := httputil.ParsePagination(c)

			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Zero(t, offset)
				assert.Zero(t, limit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}
