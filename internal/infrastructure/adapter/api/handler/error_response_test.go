package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/relay-race-book/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/relay-race-book/mocks/port/usecase"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		description string
		err         error
		expected    int
	}{
		{"Empty input", domainerr.NewEmptyInputError("time"), http.StatusBadRequest},
		{"Malformed text", domainerr.NewFormatError("duration", "x", ""), http.StatusBadRequest},
		{"Out of range", domainerr.NewRangeError("hours", 24, 0, 23), http.StatusBadRequest},
		{"Invalid name", domainerr.ErrInvalidName, http.StatusBadRequest},
		{"Full race book", fmt.Errorf("%w: full", domainerr.ErrInvalidRequest), http.StatusBadRequest},
		{"Unknown sprinter", domainerr.NewSprinterError("A", "B", "add time", domainerr.ErrSprinterNotFound), http.StatusNotFound},
		{"No sprinters", domainerr.ErrNoSprinters, http.StatusNotFound},
		{"Duplicate", domainerr.NewSprinterError("A", "B", "add sprinter", domainerr.ErrDuplicateSprinter), http.StatusConflict},
		{"Negative result", domainerr.NewNegativeResultError("0:00:01", "0:00:02"), http.StatusUnprocessableEntity},
		{"Unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, statusFor(tc.err))
		})
	}
}

func TestSprinterHandlerHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRaceBook := new(usecasemocks.MockRaceBookUseCase)
	mockRaceBook.On("ListSprinters", mock.Anything).Return(nil, errors.New("store exploded")).Once()

	mockLogger := new(core.MockLogger)
	mockLogger.On("Error", "Error listing sprinters", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "store exploded" && fields["status"] == http.StatusInternalServerError
	})).Return().Once()

	router := gin.New()
	router.GET("/sprinters", NewSprinterHandler(mockRaceBook, mockLogger).ListSprinters)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/sprinters", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, domainerr.CodeInternalServer, body.Code)
	assert.Equal(t, "Internal server error", body.Message)
	mockRaceBook.AssertExpectations(t)
	mockLogger.AssertExpectations(t)
}
