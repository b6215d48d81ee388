package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warelane/shipment-service/internal/domain/apperr"
	"github.com/warelane/shipment-service/internal/domain/dto"
	"github.com/warelane/shipment-service/internal/domain/model"
	"github.com/warelane/shipment-service/internal/i18n"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		data       interface{}
	}{
		{
			name:       "SuccessOK with assignment result",
			statusCode: http.StatusOK,
			data:       dto.AssignBoxesResponse{RequestedCount: 3, AssignedCount: 3, ShipmentStatus: model.ShipmentStatusInStorage},
		},
		{
			name:       "SuccessCreated with rack",
			statusCode: http.StatusCreated,
			data:       dto.RackResponse{Rack: &model.Rack{Code: "A-01", CapacityTotal: 40}, Available: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()
			builder := NewResponseBuilder(c)

			builder.Success(tt.statusCode, tt.data)

			assert.Equal(t, tt.statusCode, w.Code)

			var resp dto.SuccessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotNil(t, resp.Data)
			assert.False(t, resp.Timestamp.IsZero())
		})
	}
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := newTestContext()
	builder := NewResponseBuilder(c)

	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, errors.New("bad body"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.NotEmpty(t, resp.Message)
}

func TestResponseBuilder_Failure(t *testing.T) {
	t.Run("capacity exceeded carries details and 409", func(t *testing.T) {
		c, w := newTestContext()
		builder := NewResponseBuilder(c)

		builder.Failure(apperr.CapacityExceeded("A-01", 4, 2))

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "capacity_exceeded", resp.Error)
		assert.EqualValues(t, 4, resp.Details["requested"])
		assert.EqualValues(t, 2, resp.Details["available"])
	})

	t.Run("validation failure names the requirement", func(t *testing.T) {
		c, w := newTestContext()
		builder := NewResponseBuilder(c)

		builder.Failure(apperr.ValidationFailed("collector id required", "collector_id"))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation_failed", resp.Error)
		assert.Equal(t, "collector_id", resp.Details["requirement"])
	})

	t.Run("message comes from the catalog in the default locale", func(t *testing.T) {
		c, w := newTestContext()
		builder := NewResponseBuilder(c)

		builder.Failure(apperr.CapacityExceeded("A-01", 4, 2))

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "The rack does not have enough free capacity", resp.Message)
	})

	t.Run("message is translated for the request locale", func(t *testing.T) {
		c, w := newTestContext()
		c.Request.Header.Set("Accept-Language", "pt")
		builder := NewResponseBuilder(c)

		builder.Failure(apperr.CapacityExceeded("A-01", 4, 2))

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "A estante não tem capacidade livre suficiente", resp.Message)
		assert.EqualValues(t, 2, resp.Details["available"])
	})

	t.Run("no boxes eligible translates in dutch", func(t *testing.T) {
		c, w := newTestContext()
		c.Request.Header.Set("Accept-Language", "nl")
		builder := NewResponseBuilder(c)

		builder.Failure(apperr.NoBoxesEligible())

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "no_boxes_eligible", resp.Error)
		assert.Equal(t, "Geen dozen komen in aanmerking voor vrijgave", resp.Message)
	})

	t.Run("unrecognized error maps to 500", func(t *testing.T) {
		c, w := newTestContext()
		builder := NewResponseBuilder(c)

		builder.Failure(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeInternal, resp.Error)
	})
}

func TestErrCodeFromStatus(t *testing.T) {
	assert.Equal(t, dto.ErrCodeInvalidRequest, dto.ErrCodeFromStatus(http.StatusBadRequest))
	assert.Equal(t, dto.ErrCodeNotFound, dto.ErrCodeFromStatus(http.StatusNotFound))
	assert.Equal(t, dto.ErrCodeConflict, dto.ErrCodeFromStatus(http.StatusConflict))
	assert.Equal(t, dto.ErrCodeRateLimit, dto.ErrCodeFromStatus(http.StatusTooManyRequests))
	assert.Equal(t, dto.ErrCodeInternal, dto.ErrCodeFromStatus(http.StatusTeapot))
}
