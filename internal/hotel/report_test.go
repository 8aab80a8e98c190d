package hotel

import (
	"testing"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

func TestBuildReport(t *testing.T) {
	single := &model.Room{Number: 101, Type: "Single", Price: 100, Available: false}
	double := &model.Room{Number: 102, Type: "Double", Price: 150, Available: false}
	suite := &model.Room{Number: 103, Type: "Suite", Price: 400, Available: true}
	alice := &model.Customer{Name: "Alice"}
	bob := &model.Customer{Name: "Bob"}

	reservations := []*model.Reservation{
		// Alice is in room 101 right now: 3 nights counted as revenue.
		{Customer: alice, Room: single, StartDate: day("2024-01-01"), EndDate: day("2024-01-04"), CheckedIn: true},
		// Bob has booked 102 but not arrived: no revenue yet.
		{Customer: bob, Room: double, StartDate: day("2024-01-02"), EndDate: day("2024-01-03")},
		// A finished stay in 103: 2 nights of revenue, room released.
		{Customer: bob, Room: suite, StartDate: day("2023-12-20"), EndDate: day("2023-12-22"), CheckedOut: true},
	}

	report := BuildReport([]*model.Room{single, double, suite}, reservations)

	if report.TotalRooms != 3 {
		t.Errorf("TotalRooms = %d, want 3", report.TotalRooms)
	}
	if report.OccupiedRooms != 2 {
		t.Errorf("OccupiedRooms = %d, want 2", report.OccupiedRooms)
	}
	if want := 3*100.0 + 2*400.0; report.TotalRevenue != want {
		t.Errorf("TotalRevenue = %v, want %v", report.TotalRevenue, want)
	}

	want := []model.RoomStatus{
		{RoomNumber: 101, RoomType: "Single", Status: model.RoomStatusCheckedIn, CustomerName: "Alice"},
		{RoomNumber: 102, RoomType: "Double", Status: model.RoomStatusReserved, CustomerName: "Bob"},
		// The checked-out stay no longer marks the suite as reserved.
		{RoomNumber: 103, RoomType: "Suite", Status: model.RoomStatusAvailable},
	}
	if len(report.Rooms) != len(want) {
		t.Fatalf("expected %d room statuses, got %+v", len(want), report.Rooms)
	}
	for i := range want {
		if report.Rooms[i] != want[i] {
			t.Errorf("room status %d: want %+v, got %+v", i, want[i], report.Rooms[i])
		}
	}
}

func TestReportOccupiedMatchesAvailability(t *testing.T) {
	// The occupancy count derives from the rooms alone, regardless of
	// what the reservation history looks like.
	rooms := []*model.Room{
		{Number: 1, Available: true},
		{Number: 2, Available: false},
		{Number: 3, Available: false},
	}
	report := BuildReport(rooms, nil)
	if report.OccupiedRooms != 2 {
		t.Errorf("OccupiedRooms = %d, want 2", report.OccupiedRooms)
	}
}

func TestReportCheckedInWinsOverReserved(t *testing.T) {
	room := &model.Room{Number: 1, Type: "Single", Price: 10, Available: false}
	alice := &model.Customer{Name: "Alice"}
	bob := &model.Customer{Name: "Bob"}
	// A booked-only reservation comes first in collection order, but a
	// later checked-in one must determine the label.
	reservations := []*model.Reservation{
		{Customer: bob, Room: room, StartDate: day("2024-02-01"), EndDate: day("2024-02-02")},
		{Customer: alice, Room: room, StartDate: day("2024-01-01"), EndDate: day("2024-01-02"), CheckedIn: true},
	}
	report := BuildReport([]*model.Room{room}, reservations)
	got := report.Rooms[0]
	if got.Status != model.RoomStatusCheckedIn || got.CustomerName != "Alice" {
		t.Errorf("want CheckedIn/Alice, got %+v", got)
	}
}
