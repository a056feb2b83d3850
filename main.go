package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"laundrypro/internal/catalog"
	"laundrypro/internal/services"
	"laundrypro/internal/store"
	"laundrypro/internal/validation"
	"laundrypro/internal/views"
)

func main() {
	// --- Configuration ---
	// A .env file is optional; environment variables always win.
	_ = godotenv.Load()
	viper.SetDefault("STORE_DRIVER", "sqlite")
	viper.SetDefault("STORE_DSN", "laundrypro.db")
	viper.SetDefault("APP_ENV", "production")
	viper.AutomaticEnv()

	logger := newLogger(viper.GetString("APP_ENV"))
	defer logger.Sync()

	// --- Local store ---
	st, err := store.Open(viper.GetString("STORE_DRIVER"), viper.GetString("STORE_DSN"))
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}

	// --- Core services ---
	validate := validation.New()
	cat := catalog.Default()
	accountService := services.NewAccountService(st, validate, logger)
	orderService := services.NewOrderService(st, cat, validate, logger)
	guard := services.NewSessionGuard(st)

	// --- Views ---
	ui := views.NewUI(os.Stdin, os.Stdout)
	authViews := views.NewAuthViews(accountService, ui)
	orderViews := views.NewOrderViews(orderService, ui, os.Getenv("PRESELECT_SERVICE"))
	profileViews := views.NewProfileViews(accountService, orderService, guard, st, ui)

	router := views.NewRouter(guard, ui, logger, "login")
	router.Handle("welcome", authViews.Welcome)
	router.Handle("login", authViews.Login)
	router.Handle("signup", authViews.Signup)
	router.Handle("forgot-password", authViews.ForgotPassword)
	router.HandleProtected("dashboard", orderViews.Dashboard)
	router.HandleProtected("services", orderViews.ServiceSelection)
	router.HandleProtected("order-details", orderViews.OrderDetails)
	router.HandleProtected("payment", orderViews.Payment)
	router.HandleProtected("my-orders", orderViews.MyOrders)
	router.HandleProtected("track", orderViews.TrackOrders)
	router.HandleProtected("profile", profileViews.Profile)
	router.Handle("logout", profileViews.Logout)

	// Land on the dashboard when a session survived the last run.
	start := "welcome"
	if guard.IsAuthenticated() {
		start = "dashboard"
	}
	router.Run(start)
}

// newLogger builds the zap logger: human-readable in development, JSON
// otherwise.
func newLogger(env string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		os.Exit(1)
	}
	return logger
}
