package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"kamehameha/cmd/fx/account_fx"
	"kamehameha/cmd/fx/award_fx"
	"kamehameha/cmd/fx/checkin_fx"
	"kamehameha/cmd/fx/coach_fx"
	"kamehameha/cmd/fx/controllers_fx"
	"kamehameha/cmd/fx/db_fx"
	"kamehameha/cmd/fx/journey_fx"
	"kamehameha/cmd/fx/memcache_fx"
	"kamehameha/cmd/fx/settings_fx"
	"kamehameha/internal/api/controllers"
	"kamehameha/internal/services"
	"kamehameha/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		journey_fx.Module,
		award_fx.Module,
		checkin_fx.Module,
		settings_fx.Module,
		coach_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(StartSweepScheduler),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

// StartSweepScheduler runs the milestone sweep on a fixed period. A failed
// run is only logged; the next tick retries from scratch, which is all the
// sweep needs since it keeps no state between runs.
func StartSweepScheduler(lc fx.Lifecycle, sweep services.SweepServiceInterface) {
	interval := time.Minute
	if v := os.Getenv("SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			interval = d
		}
	}

	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				log.Printf("Milestone sweep scheduled every %s", interval)
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						sweepCtx, cancel := context.WithTimeout(context.Background(), interval)
						if _, err := sweep.RunOnce(sweepCtx); err != nil {
							log.Printf("Scheduled sweep failed (will retry next tick): %v", err)
						}
						cancel()
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			log.Println("Stopping sweep scheduler")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	journeyController *controllers.JourneyController,
	awardController *controllers.AwardController,
	checkInController *controllers.CheckInController,
	settingsController *controllers.SettingsController,
	coachController *controllers.CoachController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		journeyController,
		awardController,
		checkInController,
		settingsController,
		coachController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	journeyController *controllers.JourneyController,
	awardController *controllers.AwardController,
	checkInController *controllers.CheckInController,
	settingsController *controllers.SettingsController,
	coachController *controllers.CoachController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	journeys := authed.Group("/journeys")
	journeys.POST("/start", journeyController.StartJourney)
	journeys.GET("", journeyController.ListJourneys)
	journeys.GET("/current", journeyController.GetCurrentJourney)
	journeys.POST("/relapse", journeyController.ReportRelapse)
	journeys.GET("/:journeyId", journeyController.GetJourneyDetail)
	journeys.GET("/:journeyId/badges", awardController.ListBadges)
	journeys.GET("/:journeyId/checkins", checkInController.ListCheckIns)

	awards := authed.Group("/awards")
	awards.POST("/sweep", awardController.RunSweep)

	live := authed.Group("/live")
	live.POST("/open", awardController.OpenLiveSession)
	live.POST("/close", awardController.CloseLiveSession)

	checkins := authed.Group("/checkins")
	checkins.POST("", checkInController.CreateCheckIn)
	checkins.GET("/similar", checkInController.FindSimilar)

	settings := authed.Group("/settings")
	settings.GET("/timer", settingsController.GetTimerSettings)
	settings.PUT("/timer", settingsController.UpdateTimerSettings)

	coach := authed.Group("/coach")
	coach.POST("/message", coachController.Message)
}
