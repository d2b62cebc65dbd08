package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fireflysocial/events-service/internal/domain"
)

func TestErr(t *testing.T) {
	t.Run("maps_domain_error_to_correct_status", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{
				name:       "not_found",
				err:        domain.ErrNoSuchEvent(),
				wantStatus: http.StatusNotFound,
				wantCode:   "NO_SUCH_EVENT",
			},
			{
				name:       "validation",
				err:        domain.ErrEndsAtNotInFuture(),
				wantStatus: http.StatusBadRequest,
				wantCode:   "ENDS_AT_SHOULD_BE_IN_FUTURE",
			},
			{
				name:       "forbidden",
				err:        domain.ErrAccessDenied(),
				wantStatus: http.StatusForbidden,
				wantCode:   "ACCESS_DENIED",
			},
			{
				name:       "conflict",
				err:        domain.ErrAlreadyParticipating(),
				wantStatus: http.StatusConflict,
				wantCode:   "ALREADY_PARTICIPATING",
			},
			{
				name:       "generic_error_is_opaque",
				err:        errors.New("db crash"),
				wantStatus: http.StatusInternalServerError,
				wantCode:   "INTERNAL_ERROR",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rr := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
				Err(rr, req, tt.err)

				assert.Equal(t, tt.wantStatus, rr.Code)

				var body ErrorBody
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Error.Code)
			})
		}
	})

	t.Run("generic_error_hides_message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		Err(rr, req, errors.New("connection refused to 10.0.0.3"))

		assert.NotContains(t, rr.Body.String(), "connection refused")
	})

	t.Run("meta_is_forwarded", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		Err(rr, req, domain.ErrValidationMeta("INVALID_PARAM", "invalid query param", map[string]string{
			"since_id": "must be uuid",
		}))

		var body ErrorBody
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "must be uuid", body.Error.Meta["since_id"])
	})
}

func TestData(t *testing.T) {
	rr := httptest.NewRecorder()
	Data(rr, http.StatusCreated, map[string]string{"id": "evt-1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"evt-1"}}`, rr.Body.String())
}
