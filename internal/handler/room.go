package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/hotel"
)

// RoomHandler exposes room management over HTTP.  All state and
// validation live in the front-desk core; the handler only parses
// requests and translates errors.
type RoomHandler struct {
	Desk *hotel.Desk
}

// NewRoomHandler constructs a RoomHandler bound to the given desk.
func NewRoomHandler(desk *hotel.Desk) *RoomHandler {
	if desk == nil {
		panic("nil desk passed to NewRoomHandler")
	}
	return &RoomHandler{Desk: desk}
}

// CreateRoom handles POST /v1/rooms.  The body must contain a
// non-negative room number, a type and a non-negative nightly price.
// A room number that already exists yields 409.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var body struct {
		Number int     `json:"number"`
		Type   string  `json:"type"`
		Price  float64 `json:"price"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Number < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room number must be non-negative"})
	}
	if body.Type == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room type is required"})
	}
	if body.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be non-negative"})
	}
	room, err := h.Desk.AddRoom(c.Request().Context(), body.Number, body.Type, body.Price)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}

// ListRooms handles GET /v1/rooms and returns all rooms.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"rooms": h.Desk.Rooms()})
}

// SetAvailability handles PUT /v1/rooms/:number/availability.  It
// flips the availability flag directly, bypassing the reservation
// lifecycle; intended for taking rooms out of service and bringing
// them back.  The operation is idempotent.
func (h *RoomHandler) SetAvailability(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
	}
	var body struct {
		Available bool `json:"available"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	room, err := h.Desk.SetAvailability(c.Request().Context(), number, body.Available)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, room)
}
