package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/config"
	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/handler"
	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/hotel"
	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/middleware"
)

// Register wires all application routes on the provided Echo
// instance.  The health check stays outside the /v1 group so load
// balancers can probe it without hitting the rate limiter.  The
// report endpoint additionally goes through the Redis response cache;
// rdb may be nil, in which case caching and rate limiting are
// disabled and every route serves directly.
func Register(e *echo.Echo, desk *hotel.Desk, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	rooms := handler.NewRoomHandler(desk)
	customers := handler.NewCustomerHandler(desk)
	reservations := handler.NewReservationHandler(desk)
	report := handler.NewReportHandler(desk)

	v1 := e.Group("/v1")
	v1.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	v1.POST("/rooms", rooms.CreateRoom)
	v1.GET("/rooms", rooms.ListRooms)
	v1.PUT("/rooms/:number/availability", rooms.SetAvailability)

	v1.POST("/customers", customers.CreateCustomer)
	v1.GET("/customers", customers.ListCustomers)

	v1.POST("/reservations", reservations.Book)
	v1.GET("/reservations", reservations.ListReservations)
	v1.POST("/reservations/check-in", reservations.CheckIn)
	v1.POST("/reservations/check-out", reservations.CheckOut)

	v1.GET("/report", report.GetReport, middleware.NewReportCache(config.LoadCacheConfig(), rdb))
}
