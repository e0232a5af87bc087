package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wildoats/tapechart-backend/internal/availability"
	availabilityHttp "github.com/wildoats/tapechart-backend/internal/availability/http"
	"github.com/wildoats/tapechart-backend/internal/block"
	blockHttp "github.com/wildoats/tapechart-backend/internal/block/http"
	"github.com/wildoats/tapechart-backend/internal/booking"
	bookingHttp "github.com/wildoats/tapechart-backend/internal/booking/http"
	"github.com/wildoats/tapechart-backend/internal/organization"
	orgHttp "github.com/wildoats/tapechart-backend/internal/organization/http"
	"github.com/wildoats/tapechart-backend/internal/space"
	spaceHttp "github.com/wildoats/tapechart-backend/internal/space/http"
	"github.com/wildoats/tapechart-backend/internal/spacetype"
	spacetypeHttp "github.com/wildoats/tapechart-backend/internal/spacetype/http"
)

// Config carries the services the router exposes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	OrgService          organization.Service
	SpaceTypeService    spacetype.Service
	SpaceService        space.Service
	BlockService        block.Service
	BookingService      booking.Service
	AvailabilityService availability.Service
}

// NewRouter initializes the HTTP router engine: middleware (CORS, logging,
// recovery) plus the per-module routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:8081"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	orgHandler := orgHttp.NewHandler(cfg.OrgService)
	spacetypeHandler := spacetypeHttp.NewHandler(cfg.SpaceTypeService)
	spaceHandler := spaceHttp.NewHandler(cfg.SpaceService)
	blockHandler := blockHttp.NewHandler(cfg.BlockService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilityService)

	v1 := r.Group("/v1")
	{
		orgHttp.RegisterRoutes(v1, orgHandler)
		spacetypeHttp.RegisterRoutes(v1, spacetypeHandler)
		spaceHttp.RegisterRoutes(v1, spaceHandler)
		blockHttp.RegisterRoutes(v1, blockHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		availabilityHttp.RegisterRoutes(v1, availabilityHandler)
	}

	return r
}
