package helpers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/akademik/internal/pkg/apperrors"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/students?"+query, nil)
	return c
}

func TestParseSkipLimit(t *testing.T) {
	tests := []struct {
		query     string
		skip      int
		limit     int
		wantError bool
	}{
		{"", 0, DefaultLimit, false},
		{"skip=20&limit=5", 20, 5, false},
		{"limit=500", 0, MaxLimit, false},
		{"limit=0", 0, 0, true},
		{"skip=-1", 0, 0, true},
		{"skip=abc", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			skip, limit, err := ParseSkipLimit(contextWithQuery(tt.query))
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.skip, skip)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestQueryIntPtr(t *testing.T) {
	v, err := QueryIntPtr(contextWithQuery("semester=3"), "semester")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 3, *v)

	v, err = QueryIntPtr(contextWithQuery(""), "semester")
	require.NoError(t, err)
	assert.Nil(t, v)
}
