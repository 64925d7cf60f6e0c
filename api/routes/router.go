package routes

import (
	"context"
	"net/http"
	"time"

	"cinebox/internal/auth"
	"cinebox/internal/bookings"
	"cinebox/internal/customers"
	"cinebox/internal/halls"
	"cinebox/internal/movies"
	"cinebox/internal/notifications"
	"cinebox/internal/pricing"
	"cinebox/internal/seating"
	"cinebox/internal/shared/config"
	"cinebox/internal/shared/database"
	"cinebox/internal/shared/middleware"
	"cinebox/internal/shows"
	"cinebox/internal/staff"
	"cinebox/pkg/cache"
	"cinebox/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// hallLayoutAdapter resolves a show to its hall's per-class capacities
type hallLayoutAdapter struct {
	shows shows.Repository
	halls halls.Repository
}

func (a *hallLayoutAdapter) LayoutForShow(ctx context.Context, showID int64) (*seating.HallLayout, error) {
	show, err := a.shows.FindByID(ctx, showID)
	if err != nil {
		return nil, err
	}
	hall, err := a.halls.FindByID(ctx, show.HallID)
	if err != nil {
		return nil, err
	}
	return &seating.HallLayout{
		GoldCapacity:     hall.CapacityForClass(seating.ClassGold),
		StandardCapacity: hall.CapacityForClass(seating.ClassStandard),
	}, nil
}

// showPricingAdapter exposes show data to the pricing service
type showPricingAdapter struct {
	shows shows.Repository
}

func (a *showPricingAdapter) PricingInfo(ctx context.Context, showID int64) (*pricing.ShowInfo, error) {
	show, err := a.shows.FindByID(ctx, showID)
	if err != nil {
		return nil, err
	}
	return &pricing.ShowInfo{PriceID: show.PriceID, Type: show.Type, Date: show.Date}, nil
}

// movieNameAdapter exposes movie names to the booking views
type movieNameAdapter struct {
	movies movies.Repository
}

func (a *movieNameAdapter) MovieName(ctx context.Context, movieID int64) (string, error) {
	movie, err := a.movies.FindByID(ctx, movieID)
	if err != nil {
		return "", err
	}
	return movie.Name, nil
}

// SetupRouter wires every slice together and mounts the API
func SetupRouter(cfg *config.Config, conns *database.Connections, producer *notifications.Producer, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	cacheSvc := cache.NewService(conns.Redis)

	// Repositories
	staffRepo := staff.NewRepository(conns.DB)
	movieRepo := movies.NewRepository(conns.DB)
	hallRepo := halls.NewRepository(conns.DB)
	showRepo := shows.NewRepository(conns.DB)
	priceRepo := pricing.NewRepository(conns.DB)
	customerRepo := customers.NewRepository(conns.DB)
	bookingRepo := bookings.NewRepository(conns.DB, customerRepo)

	// Services
	authSvc := auth.NewService(staffRepo, cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	movieSvc := movies.NewService(movieRepo, cacheSvc, log)
	hallSvc := halls.NewService(hallRepo)
	showSvc := shows.NewService(showRepo, movieRepo, hallRepo, cacheSvc, log)
	priceSvc := pricing.NewService(priceRepo, &showPricingAdapter{shows: showRepo}, cacheSvc)
	seatSvc := seating.NewService(
		&hallLayoutAdapter{shows: showRepo, halls: hallRepo},
		bookingRepo,
		cacheSvc,
	)
	bookingSvc := bookings.NewService(
		bookingRepo,
		showSvc,
		&movieNameAdapter{movies: movieRepo},
		priceSvc,
		seatSvc,
		producer,
		cacheSvc,
		log,
	)

	// Controllers
	authCtrl := auth.NewController(authSvc)
	movieCtrl := movies.NewController(movieSvc)
	hallCtrl := halls.NewController(hallSvc)
	showCtrl := shows.NewController(showSvc)
	priceCtrl := pricing.NewController(priceSvc)
	seatCtrl := seating.NewController(seatSvc)
	bookingCtrl := bookings.NewController(bookingSvc)

	registerHealthRoutes(router, conns)

	api := router.Group(cfg.GetAPIBasePath())
	auth.RegisterRoutes(api, authCtrl)
	movies.RegisterRoutes(api, movieCtrl, cfg.JWT.Secret)
	halls.RegisterRoutes(api, hallCtrl, showCtrl, cfg.JWT.Secret)
	shows.RegisterRoutes(api, showCtrl, seatCtrl.SeatMap, bookingCtrl.TicketsForShow, cfg.JWT.Secret)
	pricing.RegisterRoutes(api, priceCtrl, cfg.JWT.Secret)
	bookings.RegisterRoutes(api, bookingCtrl, cfg.JWT.Secret)

	return router
}

func registerHealthRoutes(router *gin.Engine, conns *database.Connections) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := conns.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "cinebox",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
}
