package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autocare/models"
	"autocare/services/booking"
	"autocare/utils"

	"github.com/gin-gonic/gin"
)

// fakeBookingService records calls and replies from canned data.
type fakeBookingService struct {
	booked    []booking.BookRequest
	cancelled []string
	bookErr   error
	cancelErr error
}

func (f *fakeBookingService) Book(req booking.BookRequest) (*models.Booking, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	f.booked = append(f.booked, req)
	return &models.Booking{
		ID:          "b1",
		UserID:      req.UserID,
		ServiceID:   req.ServiceID,
		ServiceName: "Oil Change",
		Status:      models.BookingStatusPending,
	}, nil
}

func (f *fakeBookingService) Cancel(bookingID, requesterID string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, bookingID)
	return nil
}

func (f *fakeBookingService) UpdateStatus(string, string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingService) ListForUser(string) ([]models.Booking, error) {
	return []models.Booking{}, nil
}

func (f *fakeBookingService) ListAll() ([]models.AdminBooking, error) {
	return []models.AdminBooking{}, nil
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
	}
}

func bookingRouter(svc booking.BookingService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc)
	r := gin.New()
	grp := r.Group("/api/services")
	if userID != "" {
		grp.Use(asUser(userID))
	}
	grp.POST("/book", h.BookServiceHandler)
	grp.DELETE("/cancel/:id", h.CancelBookingHandler)
	return r
}

func TestBookServiceHandler(t *testing.T) {
	svc := &fakeBookingService{}
	r := bookingRouter(svc, "u1")

	body := `{"serviceId":"svc-oil","licensePlate":"X1","scheduledDate":"2026-09-15T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/services/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool           `json:"success"`
		Service string         `json:"service"`
		Booking models.Booking `json:"booking"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !resp.Success || resp.Service != "Oil Change" || resp.Booking.ID != "b1" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if len(svc.booked) != 1 || svc.booked[0].UserID != "u1" || svc.booked[0].ServiceID != "svc-oil" {
		t.Fatalf("unexpected book request: %+v", svc.booked)
	}
}

func TestBookServiceHandlerRejectsBadBody(t *testing.T) {
	r := bookingRouter(&fakeBookingService{}, "u1")

	req := httptest.NewRequest(http.MethodPost, "/api/services/book", strings.NewReader(`{"serviceId":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestBookServiceHandlerWithoutPrincipal(t *testing.T) {
	r := bookingRouter(&fakeBookingService{}, "")

	body := `{"serviceId":"svc-oil","licensePlate":"X1","scheduledDate":"2026-09-15T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/services/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a principal, got %d", w.Code)
	}
}

func TestCancelBookingHandler(t *testing.T) {
	svc := &fakeBookingService{}
	r := bookingRouter(svc, "u1")

	req := httptest.NewRequest(http.MethodDelete, "/api/services/cancel/b1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(svc.cancelled) != 1 || svc.cancelled[0] != "b1" {
		t.Fatalf("unexpected cancel calls: %+v", svc.cancelled)
	}
}

func TestCancelBookingHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: booking b1", utils.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: booking b1 belongs to another user", utils.ErrForbidden), http.StatusForbidden},
		{utils.ValidationErrorf("a Completed booking cannot be cancelled"), http.StatusBadRequest},
	}

	for _, tc := range cases {
		r := bookingRouter(&fakeBookingService{cancelErr: tc.err}, "u1")
		req := httptest.NewRequest(http.MethodDelete, "/api/services/cancel/b1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.code {
			t.Fatalf("expected %d for %v, got %d", tc.code, tc.err, w.Code)
		}
	}
}
