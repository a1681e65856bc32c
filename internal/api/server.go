package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/internal/api/handler"
	"github.com/vfg2006/publimais-api/internal/api/handler/router"
	"github.com/vfg2006/publimais-api/internal/config"
	"github.com/vfg2006/publimais-api/internal/usecases/authenticating"
	"github.com/vfg2006/publimais-api/internal/usecases/benchmarking"
	"github.com/vfg2006/publimais-api/internal/usecases/importing"
	"github.com/vfg2006/publimais-api/internal/usecases/insighting"
	"github.com/vfg2006/publimais-api/internal/usecases/packaging"
	"github.com/vfg2006/publimais-api/internal/usecases/reporting"
	"github.com/vfg2006/publimais-api/internal/usecases/testprofiles"
	"github.com/vfg2006/publimais-api/pkg/middleware"
)

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Insighter     insighting.Insighter
	Importer      importing.Importer
	Packages      packaging.PackageService
	Reporter      reporting.Reporter
	Benchmarker   benchmarking.Benchmarker
	TestProfiles  testprofiles.TestProfileService
	CronJobs      handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("autenticador é obrigatório")
	}

	publicLimiter := middleware.NewIPRateLimiter(
		config.PublicRateLimit.RequestsPerSecond,
		config.PublicRateLimit.Burst,
		middleware.WithIdleTTL(config.PublicRateLimit.IdleTTL),
		middleware.WithTrustedProxies(config.PublicRateLimit.TrustedProxies...),
	)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           newHandler(services, publicLimiter),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func newHandler(services Services, publicLimiter *middleware.IPRateLimiter) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Analytics()...),
		router.WithRoutes(handler.Dashboard(services.Insighter)...),
		router.WithRoutes(handler.Imports(services.Importer)...),
		router.WithRoutes(handler.Packages(services.Packages)...),
		router.WithRoutes(handler.Reports(services.Reporter, publicLimiter)...),
		router.WithRoutes(handler.Benchmarks(services.Benchmarker)...),
		router.WithRoutes(handler.Admin(services.TestProfiles)...),
		router.WithRoutes(handler.Cron(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
