package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cafeBooker/internal/auth"
	"cafeBooker/internal/booking"
	"cafeBooker/internal/config"
	"cafeBooker/internal/http-server/handlers/admin/adminLogin"
	"cafeBooker/internal/http-server/handlers/admin/adminStatus"
	"cafeBooker/internal/http-server/handlers/booking/cancelBooking"
	"cafeBooker/internal/http-server/handlers/booking/createBooking"
	"cafeBooker/internal/http-server/handlers/booking/listBookings"
	"cafeBooker/internal/http-server/handlers/table/createTable"
	"cafeBooker/internal/http-server/handlers/table/deleteTable"
	"cafeBooker/internal/http-server/handlers/table/listTables"
	"cafeBooker/internal/http-server/middleware/mwauth"
	"cafeBooker/internal/http-server/middleware/mwlogger"
	"cafeBooker/internal/lib/logger/handlers/slogpretty"
	"cafeBooker/internal/lib/logger/sl"
	"cafeBooker/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting cafe booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	svc := booking.New(log, storage)
	authorizer := auth.New(cfg.Auth)

	router := newRouter(log, svc, authorizer)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err = svc.Sweep(); err != nil {
					log.Error("failed to sweep expired bookings", sl.Err(err))
				}
			case <-stop:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func newRouter(log *slog.Logger, svc *booking.Service, authorizer *auth.Auth) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwauth.New(authorizer))

	router.Post("/bookings", createBooking.New(log, svc))
	router.Get("/bookings", listBookings.New(log, svc))
	router.Get("/tables", listTables.New(log, svc))

	router.Post("/admin/login", adminLogin.New(log, authorizer))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.RequireAdmin())

		r.Get("/admin/status", adminStatus.New(log))
		r.Delete("/bookings/{id}", cancelBooking.New(log, svc))
		r.Post("/tables", createTable.New(log, svc))
		r.Delete("/tables/{id}", deleteTable.New(log, svc))
	})

	return router
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
