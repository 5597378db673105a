package get_user_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k1rasov/GMP-BookingService/internal/api/middleware"
	"github.com/k1rasov/GMP-BookingService/internal/service/bookings/models"
)

type fakeBookingService struct {
	gotReq *models.GetUserBookingsRequest
	resp   *models.BookingListResponse
	err    error
}

func (f *fakeBookingService) GetUserBookings(_ context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, userIDVar string, authedAs *int64) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userIDVar+"/bookings", nil)
	r = mux.SetURLVars(r, map[string]string{"userId": userIDVar})
	if authedAs != nil {
		r = r.WithContext(middleware.WithUserID(r.Context(), *authedAs))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_OwnHistory(t *testing.T) {
	svc := &fakeBookingService{
		resp: &models.BookingListResponse{Bookings: []models.BookingResponse{}},
	}
	h := NewHandler(svc, nopLogger{})

	customerID := int64(42)
	w := doRequest(h, "42", &customerID)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotReq)
	assert.Equal(t, customerID, svc.gotReq.CustomerID)

	var body models.BookingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Bookings)
}

func TestHandle_ForeignUserForbidden(t *testing.T) {
	svc := &fakeBookingService{}
	h := NewHandler(svc, nopLogger{})

	customerID := int64(42)
	w := doRequest(h, "7", &customerID)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Nil(t, svc.gotReq, "сервис не должен вызываться при чужом userId")
}

func TestHandle_InvalidUserID(t *testing.T) {
	h := NewHandler(&fakeBookingService{}, nopLogger{})

	customerID := int64(42)
	w := doRequest(h, "abc", &customerID)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_NoSession(t *testing.T) {
	h := NewHandler(&fakeBookingService{}, nopLogger{})

	w := doRequest(h, "42", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
