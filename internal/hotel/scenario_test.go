package hotel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

// StayScenarioSuite walks one room and one guest through the whole
// lifecycle: room and customer creation, booking, check-in, check-out
// with billing, and the report after each step.
type StayScenarioSuite struct {
	suite.Suite
	desk *Desk
	gw   *fakeGateway
	ctx  context.Context
}

func (s *StayScenarioSuite) SetupTest() {
	s.gw = &fakeGateway{}
	s.desk = NewDesk(s.gw)
	s.ctx = context.Background()
}

func (s *StayScenarioSuite) TestFullStay() {
	room, err := s.desk.AddRoom(s.ctx, 101, "Single", 100)
	s.NoError(err)
	s.True(room.Available)

	_, err = s.desk.AddCustomer(s.ctx, "Alice", "alice@example.com", "visa")
	s.NoError(err)

	res, err := s.desk.Book(s.ctx, "Alice", 101, day("2024-01-01"), day("2024-01-04"))
	s.NoError(err)
	s.False(res.CheckedIn)
	s.Equal(3, res.Nights())
	s.False(s.desk.Rooms()[0].Available, "room 101 must be unavailable once booked")

	// Booking the same room again before check-out must fail.
	_, err = s.desk.AddCustomer(s.ctx, "Bob", "bob@example.com", "cash")
	s.NoError(err)
	_, err = s.desk.Book(s.ctx, "Bob", 101, day("2024-01-02"), day("2024-01-03"))
	s.ErrorIs(err, ErrRoomUnavailable)

	// Bob never booked anything he could check in to.
	_, err = s.desk.CheckIn(s.ctx, "Bob", 101)
	s.ErrorIs(err, ErrReservationNotFound)

	res, err = s.desk.CheckIn(s.ctx, "Alice", 101)
	s.NoError(err)
	s.True(res.CheckedIn)

	report := s.desk.Report()
	s.Equal(1, report.OccupiedRooms)
	s.Equal(300.0, report.TotalRevenue, "revenue counts the stay once it begins")

	res, bill, err := s.desk.CheckOut(s.ctx, "Alice", 101)
	s.NoError(err)
	s.Equal(300.0, bill)
	s.True(res.CheckedOut)
	s.False(res.CheckedIn)
	s.True(s.desk.Rooms()[0].Available, "room 101 must be released at check-out")

	report = s.desk.Report()
	s.Equal(0, report.OccupiedRooms)
	s.Equal(300.0, report.TotalRevenue, "revenue keeps counting the finished stay")

	// Every transition was persisted before the in-memory mutation.
	s.Equal(1, s.gw.insertedReservations)
	s.Len(s.gw.flagUpdates, 2)
}

func TestStayScenarioSuite(t *testing.T) {
	suite.Run(t, new(StayScenarioSuite))
}
