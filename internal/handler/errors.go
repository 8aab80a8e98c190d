package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/hotel"
)

// fail translates a core error into the appropriate JSON error
// response.  Lookup misses map to 404, precondition violations to
// 400 or 409, and anything else (persistence failures included) to
// 500 with a generic message so storage details never leak to
// clients.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, hotel.ErrRoomNotFound),
		errors.Is(err, hotel.ErrCustomerNotFound),
		errors.Is(err, hotel.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, hotel.ErrInvalidDateRange),
		errors.Is(err, hotel.ErrNotCheckedIn):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, hotel.ErrRoomUnavailable),
		errors.Is(err, hotel.ErrDuplicateKey):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
