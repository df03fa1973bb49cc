package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-system/internal/controllers"
	"hr-system/internal/repositories"
	"hr-system/internal/services"
	"hr-system/pkg/config"
	"hr-system/pkg/middleware"
	"hr-system/pkg/service"
)

type Loggers struct {
	Main   *zap.Logger
	Auth   *zap.Logger
	Zahtev *zap.Logger
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: registracija ruta je počela")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)

	// --- repozitorijumi ---
	korisnikRepo := repositories.NewKorisnikRepository(dbConn, loggers.Auth)
	zaposleniRepo := repositories.NewZaposleniRepository(dbConn, loggers.Main)
	plataRepo := repositories.NewPlataRepository(dbConn, loggers.Main)
	zahtevRepo := repositories.NewZahtevZaOdmorRepository(dbConn, loggers.Zahtev)
	odsekRepo := repositories.NewOdsekRepository(dbConn, loggers.Main)
	pozicijaRepo := repositories.NewPozicijaRepository(dbConn, loggers.Main)
	inventarRepo := repositories.NewInventarRepository(dbConn, loggers.Main)
	vestRepo := repositories.NewVestRepository(dbConn, loggers.Main)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, loggers.Main)
	reportRepo := repositories.NewReportRepository(dbConn, loggers.Main)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- servisi ---
	authService := services.NewAuthService(korisnikRepo, cacheRepo, jwtSvc, &cfg.Auth, loggers.Auth)
	profileService := services.NewProfileService(korisnikRepo, zaposleniRepo, plataRepo, zahtevRepo, inventarRepo, loggers.Main)
	zaposleniService := services.NewZaposleniService(zaposleniRepo, odsekRepo, pozicijaRepo, loggers.Main)
	plataService := services.NewPlataService(plataRepo, zaposleniRepo, loggers.Main)
	zahtevService := services.NewZahtevZaOdmorService(zahtevRepo, zaposleniRepo, loggers.Zahtev)
	odsekService := services.NewOdsekService(odsekRepo, zaposleniRepo, loggers.Main)
	strukturaService := services.NewStrukturaService(zaposleniRepo, pozicijaRepo, loggers.Main)
	inventarService := services.NewInventarService(inventarRepo, zaposleniRepo, loggers.Main)
	vestService := services.NewVestService(vestRepo, loggers.Main)
	dashboardService := services.NewDashboardService(dashboardRepo, loggers.Main)
	reportService := services.NewReportService(reportRepo, loggers.Main)

	// --- kontroleri ---
	authController := controllers.NewAuthController(authService, loggers.Auth)
	profileController := controllers.NewProfileController(profileService, loggers.Main)
	zaposleniController := controllers.NewZaposleniController(zaposleniService, loggers.Main)
	plataController := controllers.NewPlataController(plataService, loggers.Main)
	zahtevController := controllers.NewZahtevZaOdmorController(zahtevService, loggers.Zahtev)
	odsekController := controllers.NewOdsekController(odsekService, loggers.Main)
	strukturaController := controllers.NewStrukturaController(strukturaService, loggers.Main)
	inventarController := controllers.NewInventarController(inventarService, loggers.Main)
	vestController := controllers.NewVestController(vestService, loggers.Main)
	dashboardController := controllers.NewDashboardController(dashboardService, loggers.Main)
	reportController := controllers.NewReportController(reportService, loggers.Main)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authController, authMW)
	runProfileRouter(secureGroup, profileController)
	runZaposleniRouter(secureGroup, zaposleniController, authMW)
	runPlataRouter(secureGroup, plataController, authMW)
	runZahtevZaOdmorRouter(secureGroup, zahtevController, authMW)
	runOdsekRouter(secureGroup, odsekController, authMW)
	runStrukturaRouter(secureGroup, strukturaController, authMW)
	runInventarRouter(secureGroup, inventarController, authMW)
	runVestRouter(secureGroup, vestController, authMW)
	runDashboardRouter(secureGroup, dashboardController, authMW)
	runReportRouter(secureGroup, reportController, authMW)

	loggers.Main.Info("InitRouter: registracija ruta je završena")
}
