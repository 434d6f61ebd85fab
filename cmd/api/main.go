package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httpadp "peerlend-gateway/internal/adapter/http"
	mw "peerlend-gateway/internal/adapter/middleware"
	"peerlend-gateway/internal/adapter/repository/gormdb"
	"peerlend-gateway/internal/adapter/upstream"
	"peerlend-gateway/internal/config"
	"peerlend-gateway/internal/domain/user"
	"peerlend-gateway/internal/infrastructure/cache"
	"peerlend-gateway/internal/infrastructure/db"
	"peerlend-gateway/internal/infrastructure/logging"
	dashboarduc "peerlend-gateway/internal/usecase/dashboard"
	sessionuc "peerlend-gateway/internal/usecase/session"
	settingsuc "peerlend-gateway/internal/usecase/settings"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	lg := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer lg.Sync()

	var (
		gdb *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "mysql":
		gdb, err = db.OpenMySQL(cfg.MySQLDSN())
	default:
		gdb, err = db.OpenSQLite(cfg.SQLitePath)
	}
	if err != nil {
		lg.Fatal("open session store", zap.Error(err))
	}

	sessionRepo, err := gormdb.NewSessionRepository(gdb)
	if err != nil {
		lg.Fatal("migrate session store", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		lg.Fatal("open redis", zap.Error(err))
	}

	api := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, lg)

	sessions := sessionuc.NewUsecase(sessionRepo, api, lg, cfg.DemoLoginEnabled)
	dashboards := dashboarduc.NewUsecase(api, api, lg)
	adminSettings := settingsuc.NewUsecase(api)

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(sessions)
	loanH := httpadp.NewLoanHandler(api)
	dashH := httpadp.NewDashboardHandler(dashboards, api)
	settingsH := httpadp.NewSettingsHandler(adminSettings)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()

	requireSession := mw.SessionMiddleware(sessions)
	lock := mw.InFlightLock(rdb)

	e.GET("/health", h.Health)

	auth := e.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/register", authH.Register)
	auth.POST("/demo", authH.LoginDemo)
	auth.POST("/logout", authH.Logout)
	auth.GET("/session", authH.Restore)
	auth.POST("/refresh", authH.Refresh, requireSession)

	borrower := e.Group("/dashboard", requireSession, mw.RequireRole(user.RoleBorrower))
	borrower.GET("/borrower", dashH.Borrower)

	loans := e.Group("/loans", requireSession, lock)
	loans.POST("", dashH.CreateRequest)
	loans.GET("/:loan_id", loanH.GetLoan)
	loans.POST("/:loan_id/accept", loanH.Accept)
	loans.POST("/:loan_id/fulfillment", loanH.MarkFulfilled)
	loans.POST("/:loan_id/repayments", loanH.RecordRepayment)
	loans.POST("/:loan_id/rating", loanH.SubmitRating)

	admin := e.Group("/admin/settings", requireSession, mw.RequireRole(user.RoleAdmin))
	admin.GET("", settingsH.GetSettings)
	admin.PUT("", settingsH.UpdateSettings)
	admin.POST("/reset", settingsH.ResetSettings)

	addr := ":" + cfg.AppPort
	lg.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}
