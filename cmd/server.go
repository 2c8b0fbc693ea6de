package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"goalapp/internal/config"
	"goalapp/internal/credentials"
	"goalapp/internal/db"
	"goalapp/internal/http/handler"
	"goalapp/internal/http/handler/middleware"
	"goalapp/internal/http/payload"
	"goalapp/internal/http/server"
	"goalapp/internal/repository"
	"goalapp/pkg/log"
	"goalapp/pkg/token"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("goalapp", zapcore.InfoLevel)
	defer func() { _ = logger.Sync() }()

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger = log.NewZapLogger("goalapp", log.ParseLevel(config.LogLevel))

	ctx := context.Background()

	dbConn, err := db.NewGormDB(ctx, config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	if err = dbConn.Migrate(ctx); err != nil {
		logger.Errorw("failed to migrate database", "error", err)
		return err
	}

	// repository
	repo := repository.NewUserRepository(dbConn)

	tokens, err := token.NewGenerator(config.SessionTokenBytes)
	if err != nil {
		logger.Errorw("failed to create token generator", "error", err)
		return err
	}

	// credentials
	manager, err := credentials.NewManager(
		logger,
		repo,
		tokens,
		credentials.Config{
			PasswordMinLength: config.PasswordMinLength,
			HashCost:          config.BcryptCost,
			MaxTokenAttempts:  config.SessionTokenAttempts,
		})
	if err != nil {
		logger.Errorw("failed to create credential manager", "error", err)
		return err
	}

	// handler
	userHdlr := handler.NewUserHandler(
		logger,
		payload.DecodeValidator{},
		manager)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.CreateUser, userHdlr.HandleCreateUser)
	mux.HandleFunc(handler.CurrentUser, userHdlr.HandleCurrentUser)
	mux.HandleFunc(handler.Login, userHdlr.HandleLogin)
	mux.HandleFunc(handler.Logout, userHdlr.HandleLogout)

	srv := server.NewHTTP(logger, hdlr, config.Port)
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
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
