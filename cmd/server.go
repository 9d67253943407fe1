package cmd

import (
	"bucketlist/internal/config"
	"bucketlist/internal/core"
	"bucketlist/internal/db"
	"bucketlist/internal/http/handler"
	appmw "bucketlist/internal/http/handler/middleware"
	"bucketlist/internal/http/payload"
	"bucketlist/internal/http/server"
	"bucketlist/internal/repository"
	"bucketlist/internal/session"
	"bucketlist/pkg/jwt"
	"bucketlist/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("bucketlist", zapcore.InfoLevel)

	// optional .env for local runs
	if err := godotenv.Load(); err != nil {
		logger.Infow("no .env file loaded", "error", err)
	}

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// token revocation list
	rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	revocations := session.NewRevocationStore(rdb)

	// repository
	repo := repository.NewBucketRepository(dbConn)

	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// tracker
	tracker := core.NewTracker(
		logger,
		repo,
		jwtService,
		revocations)

	// handler
	bucketHlr := handler.NewBucketHandler(
		logger,
		payload.DecodeValidator{},
		tracker)

	// guards
	guard := appmw.NewGuard(logger, tracker)

	// register routes
	r := chi.NewRouter()
	r.Use(appmw.NewRequestIDMiddleware().RequestID)
	r.Use(appmw.NewLoggingMiddleware(logger).Logging)
	r.Use(chimw.StripSlashes)
	r.Use(chimw.Recoverer)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", bucketHlr.HandleRegister)
		r.Post("/login", bucketHlr.HandleLogin)
		r.Group(func(r chi.Router) {
			r.Use(guard.RequireAuth)
			r.Get("/logout", bucketHlr.HandleLogout)
		})
	})

	r.Route("/bucketlists", func(r chi.Router) {
		r.Use(guard.RequireAuth)
		r.Get("/", bucketHlr.HandleListBucketlists)
		r.Post("/", bucketHlr.HandleCreateBucketlist)

		r.Route("/{id}", func(r chi.Router) {
			r.Use(guard.BucketlistOwner)
			r.Get("/", bucketHlr.HandleGetBucketlist)
			r.Put("/", bucketHlr.HandleUpdateBucketlist)
			r.Delete("/", bucketHlr.HandleDeleteBucketlist)

			r.Route("/items", func(r chi.Router) {
				r.Get("/", bucketHlr.HandleListItems)
				r.Post("/", bucketHlr.HandleCreateItem)

				r.Route("/{item_id}", func(r chi.Router) {
					r.Use(guard.ItemInBucketlist)
					r.Get("/", bucketHlr.HandleGetItem)
					r.Put("/", bucketHlr.HandleUpdateItem)
					r.Delete("/", bucketHlr.HandleDeleteItem)
				})
			})
		})
	})

	srv := server.NewHTTP(logger, r, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
