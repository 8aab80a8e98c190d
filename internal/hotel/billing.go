package hotel

import "github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"

// Bill computes the charge for a stay: whole nights multiplied by the
// room's nightly rate.  There is no proration, tax or discounting,
// and the result is not rounded; rounding to two decimal places
// happens only when the amount is displayed.  Pure function.
func Bill(res *model.Reservation) float64 {
	return float64(res.Nights()) * res.Room.Price
}
