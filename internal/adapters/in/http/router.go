package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter mounts the server behind request validation against doc.
// Paths doc does not describe, /health and /swagger/*, skip validation.
func NewRouter(server *Server, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err := RegisterSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger.With("component", "http")))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/handling/reports", server.SubmitHandlingReport)
	e.POST("/booking/cargos", server.BookCargo)
	e.GET("/booking/cargos/:trackingId/routes", server.GetPossibleRoutes)
	e.PUT("/booking/cargos/:trackingId/itinerary", server.AssignItinerary)
	e.PUT("/booking/cargos/:trackingId/destination", server.ChangeDestination)
	e.PUT("/booking/cargos/:trackingId/deadline", server.ChangeDeadline)
	e.GET("/booking/locations", server.ListLocations)
	e.GET("/cargo", server.ListCargos)
	e.POST("/cargo/:trackingId/inspection", server.InspectCargo)
	e.GET("/tracking/:trackingId", server.TrackCargo)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
