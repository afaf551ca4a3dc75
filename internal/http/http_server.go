package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	authsvc "gitlab.com/codebench-2025.net/internal/core/services/auth"
	"gitlab.com/codebench-2025.net/internal/core/services/execute"
	runsvc "gitlab.com/codebench-2025.net/internal/core/services/runs"
	"gitlab.com/codebench-2025.net/internal/handlers"
	"gitlab.com/codebench-2025.net/internal/handlers/auth"
	"gitlab.com/codebench-2025.net/internal/handlers/runs"
)

type ServiceProvider struct {
	pythonExecutor execute.Executor
	cExecutor      execute.Executor
	comparator     execute.IComparisonService
	runService     runsvc.IRunService
	translator     secondary.Translator

	ggAuth    authsvc.IAuthService
	localAuth authsvc.IAuthService
}

func NewServiceProvider(
	pythonExecutor execute.Executor,
	cExecutor execute.Executor,
	comparator execute.IComparisonService,
	runService runsvc.IRunService,
	translator secondary.Translator,
	ggAuth authsvc.IAuthService,
	localAuth authsvc.IAuthService,
) *ServiceProvider {
	return &ServiceProvider{
		pythonExecutor: pythonExecutor,
		cExecutor:      cExecutor,
		comparator:     comparator,
		runService:     runService,
		translator:     translator,
		ggAuth:         ggAuth,
		localAuth:      localAuth,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	JwtSecret       string
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, jwtSecret string, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		JwtSecret:       jwtSecret,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()

	auth.NewHandler().RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
	})

	api := r.PathPrefix("/api").Subrouter()
	api.Use(handlers.NewMiddlewareProvider(s.JwtSecret).JWTMiddleware)
	runs.NewRunHandler(
		s.ServiceProvider.pythonExecutor,
		s.ServiceProvider.cExecutor,
		s.ServiceProvider.comparator,
		s.ServiceProvider.runService,
		s.ServiceProvider.translator,
		s.logger,
	).RegisterRoutes(api)

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
