package handler

import (
	"net/http"
	"time"

	"roombooking/internal/handler/api"
	"roombooking/internal/handler/middleware"
	"roombooking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	roomHandler *api.RoomHandler,
	weatherHandler *api.WeatherHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, roomHandler, weatherHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.RateLimiter(cfg.RateLimit))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	roomHandler *api.RoomHandler,
	weatherHandler *api.WeatherHandler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	roomListCache := gocache.New(30*time.Second, time.Minute)

	apiGroup := engine.Group("/api")
	{
		booking := apiGroup.Group("/booking")
		{
			addRoutes(booking, []route{
				{Method: http.MethodPost, Path: "/check-availability", Handler: bookingHandler.CheckAvailability},
				{Method: http.MethodPost, Path: "/confirm", Handler: bookingHandler.Confirm},
				{Method: http.MethodGet, Path: "/my-bookings", Handler: bookingHandler.MyBookings},
				{Method: http.MethodGet, Path: "/all", Handler: bookingHandler.All},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodDelete, Path: "/cancel/:id", Handler: bookingHandler.Cancel},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			listCache := middleware.Cache(roomListCache, 30*time.Second)
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.List, Mw: []gin.HandlerFunc{listCache}},
				{Method: http.MethodGet, Path: "/filter/capacity", Handler: roomHandler.FilterByCapacity, Mw: []gin.HandlerFunc{listCache}},
				{Method: http.MethodGet, Path: "/filter/location", Handler: roomHandler.FilterByLocation, Mw: []gin.HandlerFunc{listCache}},
				{Method: http.MethodGet, Path: "/filter/price", Handler: roomHandler.FilterByPrice, Mw: []gin.HandlerFunc{listCache}},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.Get},
				{Method: http.MethodPost, Path: "/seed", Handler: roomHandler.Seed},
			})
		}

		weather := apiGroup.Group("/weather")
		{
			addRoutes(weather, []route{
				{Method: http.MethodPost, Path: "/forecast", Handler: weatherHandler.Forecast},
				{Method: http.MethodGet, Path: "/forecast/:location", Handler: weatherHandler.ListByLocation},
				{Method: http.MethodGet, Path: "/forecasts", Handler: weatherHandler.ListAll},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
