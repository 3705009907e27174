package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"motovasiya/internal/bookings/service"
	"motovasiya/pkg/config"
	apperrors "motovasiya/pkg/errors"
	"motovasiya/pkg/logger"
	"motovasiya/pkg/middleware"
	"motovasiya/pkg/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const testSecret = "test-secret"

type mockBookingService struct {
	createFunc       func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	getByIDFunc      func(ctx context.Context, id string) (*model.Booking, error)
	getAllFunc       func(ctx context.Context) ([]*model.Booking, error)
	updateStatusFunc func(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockBookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &model.Booking{ID: "bk-1", Status: model.StatusPending}, nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, apperrors.NotFoundWithID("Booking", id)
}

func (m *mockBookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockBookingService) UpdateStatus(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, updates)
	}
	return &model.Booking{ID: id, Status: updates.Status}, nil
}

func (m *mockBookingService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

var _ service.BookingService = (*mockBookingService)(nil)

func newTestRouter(svc service.BookingService) *httprouter.Router {
	cfg := &config.Config{
		AuthSecret: testSecret,
		Log:        logger.New(logger.Config{Level: logger.ERROR, Service: "test"}),
	}
	router := httprouter.New()
	NewBookingHandler(svc, cfg).RegisterRoutes(router)
	return router
}

func bearerToken(t *testing.T) string {
	t.Helper()
	claims := middleware.SessionClaims{
		InstructorID: "inst-1",
		Email:        "inst@motovasiya.az",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return token
}

func TestCreateBookingHandler(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(_ context.Context, req *model.BookingRequest) (*model.Booking, error) {
			return &model.Booking{
				ID:           "bk-1",
				MotorcycleID: req.MotorcycleID,
				InstructorID: req.InstructorID,
				Date:         req.Date,
				TimeSlot:     req.TimeSlot,
				Customer:     req.Customer,
				Status:       model.StatusPending,
			}, nil
		},
	}
	router := newTestRouter(svc)

	body := `{
		"motorcycleId": "moto-1",
		"instructorId": "inst-1",
		"date": "2026-09-01",
		"timeSlot": "10:00",
		"customer": {
			"name": "Ali", "surname": "Vali", "gender": "Male",
			"age": 25, "heightCm": 180, "phone": "+994501234567"
		}
	}`

	// No token: booking creation is public.
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.Booking `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.ID != "bk-1" || resp.Data.Status != model.StatusPending {
		t.Errorf("response booking = %+v", resp.Data)
	}
}

func TestCreateBookingHandler_BadBody(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateBookingHandler_Conflict(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(context.Context, *model.BookingRequest) (*model.Booking, error) {
			return nil, apperrors.Conflict("This time slot is already booked for the selected instructor")
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"motorcycleId":"m"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already booked") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestListBookingsHandler_RequiresToken(t *testing.T) {
	svc := &mockBookingService{
		getAllFunc: func(context.Context) ([]*model.Booking, error) {
			return []*model.Booking{{ID: "bk-1"}}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+bearerToken(t))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token status = %d, want 401", rec.Code)
	}
}

func TestUpdateBookingStatusHandler(t *testing.T) {
	var gotID string
	var gotStatus string
	svc := &mockBookingService{
		updateStatusFunc: func(_ context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
			gotID = id
			gotStatus = updates.Status
			return &model.Booking{ID: id, Status: updates.Status}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/bk-7", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Authorization", "Bearer "+bearerToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if gotID != "bk-7" || gotStatus != model.StatusConfirmed {
		t.Errorf("service called with (%q, %q)", gotID, gotStatus)
	}
}

func TestDeleteBookingHandler(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/bk-7", nil)
	req.Header.Set("Authorization", "Bearer "+bearerToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}
