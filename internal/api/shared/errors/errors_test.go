package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/proptoken/proptoken-backend/internal/api/shared/errors"
	"github.com/proptoken/proptoken-backend/internal/domain"
)

func TestFromError(t *testing.T) {
	upstream := domain.NewUpstreamError("hedera", "transfer", errors.New("BUSY"))

	tests := []struct {
		name   string
		err    error
		status int
		code   apierrors.ErrorCode
	}{
		{"validation", domain.NewValidationError("quantity", "must be positive"), http.StatusBadRequest, apierrors.ErrCodeValidationFailed},
		{"wrapped not found", fmt.Errorf("lookup: %w", domain.NewNotFoundError("sale", "S1")), http.StatusNotFound, apierrors.ErrCodeNotFound},
		{"conflict", &domain.ConflictError{Message: "property P1 is not tokenized"}, http.StatusConflict, apierrors.ErrCodeConflict},
		{"upstream", upstream, http.StatusInternalServerError, apierrors.ErrCodeUpstreamError},
		{"indeterminate", &domain.IndeterminateStateError{SaleID: "S1", Cause: upstream, StatusErr: errors.New("db down")}, http.StatusInternalServerError, apierrors.ErrCodeIndeterminate},
		{"treasury credential", fmt.Errorf("mint: %w", domain.ErrTreasuryCredentialMissing), http.StatusInternalServerError, apierrors.ErrCodeInternalError},
		{"api error", apierrors.NewUnauthorizedError("no"), http.StatusUnauthorized, apierrors.ErrCodeUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, apierrors.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := apierrors.FromError(tt.err, false)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Empty(t, apiErr.Stack)
		})
	}
}

func TestFromError_IndeterminateDetails(t *testing.T) {
	err := &domain.IndeterminateStateError{SaleID: "S1", Cause: errors.New("transfer failed"), StatusErr: errors.New("db down")}

	_, apiErr := apierrors.FromError(err, false)
	assert.Equal(t, map[string]string{
		"saleId":       "S1",
		"cause":        "transfer failed",
		"statusUpdate": "db down",
	}, apiErr.Details)
}

func TestFromError_StackOnlyForServerErrors(t *testing.T) {
	_, apiErr := apierrors.FromError(errors.New("boom"), true)
	assert.NotEmpty(t, apiErr.Stack)

	_, apiErr = apierrors.FromError(domain.NewNotFoundError("sale", "S1"), true)
	assert.Empty(t, apiErr.Stack)
}

func TestEnvelope(t *testing.T) {
	ok := apierrors.Success(map[string]int{"n": 1})
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)
	assert.NotEmpty(t, ok.Timestamp)

	failed := apierrors.Failure(apierrors.NewNotFoundError("missing"))
	assert.False(t, failed.Success)
	assert.Nil(t, failed.Data)
	assert.Equal(t, apierrors.ErrCodeNotFound, failed.Error.Code)
}
