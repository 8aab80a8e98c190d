package handler

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/hotel"
	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/queue"
	queue_publisher "github.com/AbdelrahmanAmrSobh/HotelSystem/internal/service"
)

// ReservationHandler drives the reservation lifecycle over HTTP:
// booking, check-in and check-out.  Each successful transition also
// publishes a stay event to the broker; publishing is best-effort and
// never fails the request.
type ReservationHandler struct {
	Desk *hotel.Desk
}

// NewReservationHandler constructs a ReservationHandler bound to the given desk.
func NewReservationHandler(desk *hotel.Desk) *ReservationHandler {
	if desk == nil {
		panic("nil desk passed to NewReservationHandler")
	}
	return &ReservationHandler{Desk: desk}
}

// stayIdentity is the request body shared by check-in and check-out:
// the business key the desk uses to locate the reservation.
type stayIdentity struct {
	CustomerName string `json:"customer_name"`
	RoomNumber   int    `json:"room_number"`
}

// Book handles POST /v1/reservations.  Dates must be YYYY-MM-DD with
// the end date strictly after the start date.  Booking an unavailable
// room yields 409, unknown customer or room 404.
func (h *ReservationHandler) Book(c echo.Context) error {
	var body struct {
		CustomerName string `json:"customer_name"`
		RoomNumber   int    `json:"room_number"`
		StartDate    string `json:"start_date"`
		EndDate      string `json:"end_date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.CustomerName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_name is required"})
	}
	start, err := time.Parse(model.DateLayout, body.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_date, expected YYYY-MM-DD"})
	}
	end, err := time.Parse(model.DateLayout, body.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end_date, expected YYYY-MM-DD"})
	}
	res, err := h.Desk.Book(c.Request().Context(), body.CustomerName, body.RoomNumber, start, end)
	if err != nil {
		return fail(c, err)
	}
	publishStay(queue.StayBooked, res, 0)
	return c.JSON(http.StatusCreated, res)
}

// ListReservations handles GET /v1/reservations and returns all
// reservations with their room and customer details.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"reservations": h.Desk.Reservations()})
}

// CheckIn handles POST /v1/reservations/check-in.  It transitions a
// booked reservation to checked-in; when none matches the customer
// and room it yields 404.
func (h *ReservationHandler) CheckIn(c echo.Context) error {
	var body stayIdentity
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res, err := h.Desk.CheckIn(c.Request().Context(), body.CustomerName, body.RoomNumber)
	if err != nil {
		return fail(c, err)
	}
	publishStay(queue.StayCheckedIn, res, 0)
	return c.JSON(http.StatusOK, res)
}

// CheckOut handles POST /v1/reservations/check-out.  It ends a
// checked-in stay and returns the reservation together with the bill,
// rounded to two decimal places for display.  Checking out without a
// prior check-in yields 400.
func (h *ReservationHandler) CheckOut(c echo.Context) error {
	var body stayIdentity
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res, bill, err := h.Desk.CheckOut(c.Request().Context(), body.CustomerName, body.RoomNumber)
	if err != nil {
		return fail(c, err)
	}
	publishStay(queue.StayCheckedOut, res, bill)
	return c.JSON(http.StatusOK, echo.Map{
		"reservation": res,
		"bill":        math.Round(bill*100) / 100,
	})
}

// publishStay emits a stay event in the background.  The request has
// already been committed by the time this runs, so a broker outage
// only costs the audit line, not the transition.
func publishStay(kind string, res *model.Reservation, bill float64) {
	ev := queue.NewStayEvent(kind, res, bill)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishStayEvent(ctx, ev)
	}()
}
