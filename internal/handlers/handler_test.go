package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
	"eventPlanner/internal/validators"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{validators.ValidationErrors{errs.ErrEventName}, http.StatusBadRequest},
		{errs.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("find event: %w", errs.ErrNotFound), http.StatusNotFound},
		{errs.ErrInvalidToken, http.StatusUnauthorized},
		{errs.ErrWrongPassword, http.StatusUnauthorized},
		{errs.ErrUserAlreadyExists, http.StatusConflict},
		{errs.ErrBoothAlreadyUsed, http.StatusConflict},
		{errs.ErrBoothOccupied, http.StatusConflict},
		{errs.ErrSeatTaken, http.StatusConflict},
		{errs.ErrNotSeated, http.StatusNotFound},
		{errs.ErrNoVendor, http.StatusNotFound},
		{errs.ErrInvalidParams, http.StatusBadRequest},
		{errs.ErrInvalidDomain, http.StatusBadRequest},
		{errs.ErrUpdateKind, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func performError(t *testing.T, err error) (int, models.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(ctx, err)

	var body models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestRespondErrorListsValidationErrors(t *testing.T) {
	code, body := performError(t, validators.ValidationErrors{errs.ErrBoothLabel, errs.ErrBoothSize})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Success)
	assert.Equal(t, []string{errs.ErrBoothLabel.Error(), errs.ErrBoothSize.Error()}, body.Errors)
}

func TestRespondErrorHidesInternalErrors(t *testing.T) {
	code, body := performError(t, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Empty(t, body.Errors)
}

func TestParamIDsRejectsNonNumeric(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Params = gin.Params{{Key: "eventId", Value: "3"}, {Key: "guestId", Value: "abc"}}

	_, ok := paramIDs(ctx, "eventId", "guestId")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
