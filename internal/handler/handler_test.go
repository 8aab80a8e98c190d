package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/hotel"
	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

// memGateway is an always-succeeding in-memory gateway so handler
// tests can run against a real desk without a database.
type memGateway struct{}

func (memGateway) LoadAll(ctx context.Context) ([]*model.Room, []*model.Customer, []*model.Reservation, error) {
	return nil, nil, nil, nil
}
func (memGateway) InsertRoom(ctx context.Context, room *model.Room) error             { return nil }
func (memGateway) InsertCustomer(ctx context.Context, customer *model.Customer) error { return nil }
func (memGateway) InsertReservation(ctx context.Context, res *model.Reservation) error {
	return nil
}
func (memGateway) UpdateRoomAvailability(ctx context.Context, roomNumber int, available bool) error {
	return nil
}
func (memGateway) UpdateReservationFlags(ctx context.Context, customerName string, roomNumber int, startDate time.Time, checkedIn, checkedOut bool) error {
	return nil
}

func newTestDesk(t *testing.T) *hotel.Desk {
	t.Helper()
	desk := hotel.NewDesk(memGateway{})
	ctx := context.Background()
	if _, err := desk.AddRoom(ctx, 101, "Single", 100); err != nil {
		t.Fatalf("AddRoom: %v", err)
	}
	if _, err := desk.AddCustomer(ctx, "Alice", "alice@example.com", "visa"); err != nil {
		t.Fatalf("AddCustomer: %v", err)
	}
	return desk
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newTestServer(t *testing.T) (*echo.Echo, *hotel.Desk) {
	t.Helper()
	desk := newTestDesk(t)
	e := echo.New()
	rooms := NewRoomHandler(desk)
	reservations := NewReservationHandler(desk)
	e.POST("/v1/rooms", rooms.CreateRoom)
	e.PUT("/v1/rooms/:number/availability", rooms.SetAvailability)
	e.POST("/v1/reservations", reservations.Book)
	e.POST("/v1/reservations/check-in", reservations.CheckIn)
	e.POST("/v1/reservations/check-out", reservations.CheckOut)
	return e, desk
}

func TestCreateRoomValidation(t *testing.T) {
	e, _ := newTestServer(t)

	if rec := doJSON(e, http.MethodPost, "/v1/rooms", `{"number":-1,"type":"Single","price":10}`); rec.Code != http.StatusBadRequest {
		t.Errorf("negative room number: got %d, want 400", rec.Code)
	}
	if rec := doJSON(e, http.MethodPost, "/v1/rooms", `{"number":102,"type":"Double","price":150}`); rec.Code != http.StatusCreated {
		t.Errorf("valid room: got %d, want 201", rec.Code)
	}
	if rec := doJSON(e, http.MethodPost, "/v1/rooms", `{"number":101,"type":"Single","price":100}`); rec.Code != http.StatusConflict {
		t.Errorf("duplicate room: got %d, want 409", rec.Code)
	}
}

func TestBookStatusCodes(t *testing.T) {
	e, _ := newTestServer(t)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"ok", `{"customer_name":"Alice","room_number":101,"start_date":"2024-01-01","end_date":"2024-01-04"}`, http.StatusCreated},
		{"room now unavailable", `{"customer_name":"Alice","room_number":101,"start_date":"2024-02-01","end_date":"2024-02-02"}`, http.StatusConflict},
		{"unknown customer", `{"customer_name":"Bob","room_number":101,"start_date":"2024-01-01","end_date":"2024-01-02"}`, http.StatusNotFound},
		{"bad date", `{"customer_name":"Alice","room_number":101,"start_date":"01/01/2024","end_date":"2024-01-02"}`, http.StatusBadRequest},
		{"end before start", `{"customer_name":"Alice","room_number":102,"start_date":"2024-01-04","end_date":"2024-01-01"}`, http.StatusBadRequest},
	}
	// Room 102 exists for the date-range case.
	doJSON(e, http.MethodPost, "/v1/rooms", `{"number":102,"type":"Double","price":150}`)
	for _, tc := range cases {
		if rec := doJSON(e, http.MethodPost, "/v1/reservations", tc.body); rec.Code != tc.want {
			t.Errorf("%s: got %d, want %d (%s)", tc.name, rec.Code, tc.want, rec.Body.String())
		}
	}
}

func TestCheckOutReturnsRoundedBill(t *testing.T) {
	e, _ := newTestServer(t)

	doJSON(e, http.MethodPost, "/v1/rooms", `{"number":201,"type":"Suite","price":33.335}`)
	doJSON(e, http.MethodPost, "/v1/reservations", `{"customer_name":"Alice","room_number":201,"start_date":"2024-01-01","end_date":"2024-01-04"}`)
	doJSON(e, http.MethodPost, "/v1/reservations/check-in", `{"customer_name":"Alice","room_number":201}`)

	rec := doJSON(e, http.MethodPost, "/v1/reservations/check-out", `{"customer_name":"Alice","room_number":201}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("check-out: got %d (%s)", rec.Code, rec.Body.String())
	}
	var body struct {
		Bill float64 `json:"bill"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Bill != 100.01 {
		t.Errorf("bill = %v, want 100.01 (3 nights at 33.335, rounded for display)", body.Bill)
	}
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	e, _ := newTestServer(t)

	doJSON(e, http.MethodPost, "/v1/reservations", `{"customer_name":"Alice","room_number":101,"start_date":"2024-01-01","end_date":"2024-01-04"}`)
	rec := doJSON(e, http.MethodPost, "/v1/reservations/check-out", `{"customer_name":"Alice","room_number":101}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("check-out before check-in: got %d, want 400", rec.Code)
	}
}

func TestSetAvailability(t *testing.T) {
	e, desk := newTestServer(t)

	rec := doJSON(e, http.MethodPut, "/v1/rooms/101/availability", `{"available":false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set availability: got %d (%s)", rec.Code, rec.Body.String())
	}
	if rooms := desk.Rooms(); rooms[0].Available {
		t.Error("room should be unavailable after the update")
	}
	if rec := doJSON(e, http.MethodPut, "/v1/rooms/404/availability", `{"available":true}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown room: got %d, want 404", rec.Code)
	}
}
