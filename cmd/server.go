package cmd

import (
	"fmt"
	"net/http"
	"newsroom/internal/config"
	"newsroom/internal/core"
	"newsroom/internal/db"
	"newsroom/internal/http/handler"
	"newsroom/internal/http/handler/middleware"
	"newsroom/internal/http/payload"
	"newsroom/internal/http/server"
	"newsroom/internal/http/view"
	"newsroom/internal/repository"
	"newsroom/internal/session"
	"newsroom/pkg/jwt"
	"newsroom/pkg/log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("newsroom", zapcore.InfoLevel)

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

	// repository
	repo := repository.NewNewsRepository(dbConn)

	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// session manager
	jwtService := jwt.NewJWTService([]byte(config.SessionSecret))
	sessions := session.NewManager(jwtService)

	// newsroom
	newsroom := core.NewNewsroom(logger, repo)

	views, err := view.New()
	if err != nil {
		logger.Errorw("failed to parse views", "error", err)
		return err
	}

	// handler
	newsHandler := handler.NewNewsHandler(
		logger,
		payload.DecodeValidator{},
		newsroom,
		sessions,
		views)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Index, newsHandler.HandleIndex)
	mux.HandleFunc(handler.LoginView, newsHandler.HandleLoginView)
	mux.HandleFunc(handler.Login, newsHandler.HandleLogin)
	mux.HandleFunc(handler.RegisterView, newsHandler.HandleRegisterView)
	mux.HandleFunc(handler.Register, newsHandler.HandleRegister)
	mux.HandleFunc(handler.Dashboard, newsHandler.HandleDashboard)
	mux.HandleFunc(handler.AddNewsView, newsHandler.HandleAddNewsView)
	mux.HandleFunc(handler.AddNews, newsHandler.HandleAddNews)
	mux.HandleFunc(handler.DeleteNews, newsHandler.HandleDeleteNews)
	mux.HandleFunc(handler.EditNewsView, newsHandler.HandleEditNewsView)
	mux.HandleFunc(handler.EditNews, newsHandler.HandleEditNews)
	mux.HandleFunc(handler.Logout, newsHandler.HandleLogout)

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
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
