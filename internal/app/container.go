package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wildoats/tapechart-backend/internal/api"
	"github.com/wildoats/tapechart-backend/internal/availability"
	"github.com/wildoats/tapechart-backend/internal/block"
	"github.com/wildoats/tapechart-backend/internal/booking"
	"github.com/wildoats/tapechart-backend/internal/organization"
	"github.com/wildoats/tapechart-backend/internal/space"
	"github.com/wildoats/tapechart-backend/internal/spacetype"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	DBPool           *pgxpool.Pool
	NoShowBlocksSlot bool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
	Engine *availability.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Availability engine with the configured no-show policy
	engine := availability.NewEngine()
	if !cfg.NoShowBlocksSlot {
		engine.Blocking = availability.ReleaseNoShow
	}

	// Organization module
	orgRepo := organization.NewPgxRepository(cfg.DBPool)
	orgService := organization.NewService(orgRepo)

	// SpaceType module
	stRepo := spacetype.NewPgxRepository(cfg.DBPool)
	stService := spacetype.NewService(stRepo)

	// Space module
	spaceRepo := space.NewPgxRepository(cfg.DBPool)
	spaceService := space.NewService(spaceRepo, stService)

	// Block module
	blockRepo := block.NewPgxRepository(cfg.DBPool)
	blockService := block.NewService(blockRepo, spaceService)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, spaceService, blockService, engine)

	// Availability module (window/occupancy reads go straight to the repositories)
	availService := availability.NewService(spaceRepo, bookingRepo, blockRepo)

	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		OrgService:          orgService,
		SpaceTypeService:    stService,
		SpaceService:        spaceService,
		BlockService:        blockService,
		BookingService:      bookingService,
		AvailabilityService: availService,
	})

	return &Container{
		Router: router,
		Engine: engine,
	}
}
