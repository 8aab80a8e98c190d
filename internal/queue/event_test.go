package queue

import (
	"testing"
	"time"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

func TestNewStayEvent(t *testing.T) {
	start, _ := time.Parse(model.DateLayout, "2024-01-01")
	end, _ := time.Parse(model.DateLayout, "2024-01-04")
	res := &model.Reservation{
		Customer:  &model.Customer{Name: "Alice"},
		Room:      &model.Room{Number: 101, Type: "Single", Price: 100},
		StartDate: start,
		EndDate:   end,
	}

	ev := NewStayEvent(StayCheckedOut, res, 300)
	if ev.EventID == "" {
		t.Error("event ID must be set")
	}
	if ev.Kind != StayCheckedOut {
		t.Errorf("Kind = %q, want %q", ev.Kind, StayCheckedOut)
	}
	if ev.CustomerName != "Alice" || ev.RoomNumber != 101 || ev.RoomType != "Single" {
		t.Errorf("unexpected identity fields: %+v", ev)
	}
	if ev.StartDate != "2024-01-01" || ev.EndDate != "2024-01-04" {
		t.Errorf("dates must use the wire layout, got %q..%q", ev.StartDate, ev.EndDate)
	}
	if ev.Bill != 300 {
		t.Errorf("Bill = %v, want 300", ev.Bill)
	}
	if _, err := time.Parse(time.RFC3339, ev.OccurredAt); err != nil {
		t.Errorf("OccurredAt must be RFC3339, got %q", ev.OccurredAt)
	}

	other := NewStayEvent(StayBooked, res, 0)
	if other.EventID == ev.EventID {
		t.Error("event IDs must be unique per event")
	}
}
