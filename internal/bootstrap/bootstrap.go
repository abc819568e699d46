package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/hostelhive/hostelhive/internal/app/controllers"
	appRoutes "github.com/hostelhive/hostelhive/internal/app/routes"
	appServices "github.com/hostelhive/hostelhive/internal/app/services"
	"github.com/hostelhive/hostelhive/internal/app/state"
	"github.com/hostelhive/hostelhive/internal/config"
	appMiddleware "github.com/hostelhive/hostelhive/internal/middleware"
	"github.com/hostelhive/hostelhive/internal/pkg/logger"
	"github.com/hostelhive/hostelhive/internal/pkg/metrics"
	"github.com/hostelhive/hostelhive/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Container           *state.Container
	Recorder            *metrics.Recorder
	Services            *appServices.Services
	StudentController   *appControllers.StudentController
	RoomController      *appControllers.RoomController
	DashboardController *appControllers.DashboardController
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "pretty"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the state container, services and controllers.
// The container starts from the seed dataset; there is no external storage.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Container = state.NewContainer(seed.Students(), seed.Rooms())
	lgr.Info().
		Int("students", len(deps.Container.Students())).
		Int("rooms", len(deps.Container.Rooms())).
		Msg("State container seeded")

	if cfg.Metrics.Enabled {
		deps.Recorder = metrics.NewRecorder("hostel_api_metrics")
	}

	deps.Services = appServices.NewServices(deps.Container, deps.Recorder, lgr)

	deps.StudentController = appControllers.NewStudentController(deps.Services.Students, deps.Services.Fees)
	deps.RoomController = appControllers.NewRoomController(deps.Services.Rooms)
	deps.DashboardController = appControllers.NewDashboardController(deps.Services.Dashboard)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.RoomController,
		deps.DashboardController,
	)

	return router
}
