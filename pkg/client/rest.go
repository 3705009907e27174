package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	apperrors "motovasiya/pkg/errors"
	"motovasiya/pkg/model"
)

// RestAPI is the REST JSON implementation of the collaborator API. Login
// stores the issued bearer token on the underlying HTTP client so admin
// calls authenticate for the rest of the session.
type RestAPI struct {
	httpClient *HttpClient
}

func NewRestAPI(baseURL string) *RestAPI {
	return &RestAPI{
		httpClient: NewHttpClient(baseURL),
	}
}

var _ API = (*RestAPI)(nil)

func (c *RestAPI) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	return decodeList[model.Instructor](c.httpClient.GET(ctx, "/api/instructors"))("list instructors")
}

func (c *RestAPI) ListAllInstructors(ctx context.Context) ([]model.Instructor, error) {
	// Same endpoint; the bearer token widens visibility to inactive entries.
	return decodeList[model.Instructor](c.httpClient.GET(ctx, "/api/instructors"))("list instructors")
}

func (c *RestAPI) ListMotorcycles(ctx context.Context) ([]model.Motorcycle, error) {
	return decodeList[model.Motorcycle](c.httpClient.GET(ctx, "/api/motorcycles"))("list motorcycles")
}

func (c *RestAPI) ListAllMotorcycles(ctx context.Context) ([]model.Motorcycle, error) {
	return decodeList[model.Motorcycle](c.httpClient.GET(ctx, "/api/motorcycles"))("list motorcycles")
}

func (c *RestAPI) ListBookings(ctx context.Context) ([]model.Booking, error) {
	return decodeList[model.Booking](c.httpClient.GET(ctx, "/api/bookings"))("list bookings")
}

func (c *RestAPI) CreateBooking(ctx context.Context, req model.BookingRequest) (model.Booking, error) {
	return decodeOne[model.Booking](c.httpClient.POST(ctx, "/api/bookings", req))("create booking")
}

func (c *RestAPI) UpdateBookingStatus(ctx context.Context, id string, status string) (model.Booking, error) {
	path := "/api/bookings/" + url.PathEscape(id)
	return decodeOne[model.Booking](c.httpClient.PATCH(ctx, path, model.BookingUpdate{Status: status}))("update booking")
}

func (c *RestAPI) DeleteBooking(ctx context.Context, id string) error {
	return expectNoContent(c.httpClient.DELETE(ctx, "/api/bookings/"+url.PathEscape(id)))("delete booking")
}

func (c *RestAPI) CreateInstructor(ctx context.Context, instructor model.Instructor) (model.Instructor, error) {
	return decodeOne[model.Instructor](c.httpClient.POST(ctx, "/api/instructors", instructor))("create instructor")
}

func (c *RestAPI) UpdateInstructor(ctx context.Context, id string, updates model.InstructorUpdate) (model.Instructor, error) {
	path := "/api/instructors/" + url.PathEscape(id)
	return decodeOne[model.Instructor](c.httpClient.PATCH(ctx, path, updates))("update instructor")
}

func (c *RestAPI) ToggleInstructorStatus(ctx context.Context, id string) (model.Instructor, error) {
	path := "/api/instructors/" + url.PathEscape(id) + "/toggle-status"
	return decodeOne[model.Instructor](c.httpClient.POST(ctx, path, nil))("toggle instructor status")
}

func (c *RestAPI) DeleteInstructor(ctx context.Context, id string) error {
	return expectNoContent(c.httpClient.DELETE(ctx, "/api/instructors/"+url.PathEscape(id)))("delete instructor")
}

func (c *RestAPI) CreateMotorcycle(ctx context.Context, motorcycle model.Motorcycle) (model.Motorcycle, error) {
	return decodeOne[model.Motorcycle](c.httpClient.POST(ctx, "/api/motorcycles", motorcycle))("create motorcycle")
}

func (c *RestAPI) DeleteMotorcycle(ctx context.Context, id string) error {
	return expectNoContent(c.httpClient.DELETE(ctx, "/api/motorcycles/"+url.PathEscape(id)))("delete motorcycle")
}

func (c *RestAPI) Login(ctx context.Context, email string) (Session, error) {
	resp, err := c.httpClient.POST(ctx, "/api/auth/login", map[string]string{"email": email})
	if err != nil {
		return Session{}, apperrors.Internal("login request failed", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return Session{}, apperrors.NotFound("Instructor")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Session{}, apperrors.RequestFailed("login", resp.StatusCode)
	}

	var wrapper struct {
		Data Session `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return Session{}, apperrors.Internal("could not decode login response", err)
	}

	c.httpClient.SetToken(wrapper.Data.Token)
	return wrapper.Data, nil
}

// Logout drops the stored bearer token.
func (c *RestAPI) Logout() {
	c.httpClient.SetToken("")
}

func decodeList[T any](resp *Response, err error) func(operation string) ([]T, error) {
	return func(operation string) ([]T, error) {
		wrapper, err := checkAndRead(resp, err, operation)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := json.Unmarshal(wrapper, &items); err != nil {
			return nil, apperrors.Internal(fmt.Sprintf("could not decode %s response", operation), err)
		}
		return items, nil
	}
}

func decodeOne[T any](resp *Response, err error) func(operation string) (T, error) {
	return func(operation string) (T, error) {
		var item T
		wrapper, err := checkAndRead(resp, err, operation)
		if err != nil {
			return item, err
		}
		if err := json.Unmarshal(wrapper, &item); err != nil {
			return item, apperrors.Internal(fmt.Sprintf("could not decode %s response", operation), err)
		}
		return item, nil
	}
}

func expectNoContent(resp *Response, err error) func(operation string) error {
	return func(operation string) error {
		if err != nil {
			return apperrors.Internal(fmt.Sprintf("%s request failed", operation), err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return apperrors.RequestFailed(operation, resp.StatusCode)
		}
		return nil
	}
}

func checkAndRead(resp *Response, err error, operation string) (json.RawMessage, error) {
	if err != nil {
		return nil, apperrors.Internal(fmt.Sprintf("%s request failed", operation), err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.RequestFailed(operation, resp.StatusCode)
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, apperrors.Internal(fmt.Sprintf("could not decode %s response", operation), err)
	}
	return wrapper.Data, nil
}
