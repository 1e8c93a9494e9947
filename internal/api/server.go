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
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/nps-dashboard-api/internal/api/handler"
	"github.com/vfg2006/nps-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/nps-dashboard-api/internal/config"
	"github.com/vfg2006/nps-dashboard-api/internal/scheduler"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/authorizing"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/commenting"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/dailyseries"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/nps-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	metricService metrics.MetricStore,
	dailyService dailyseries.DailyStore,
	commentService commenting.CommentStore,
	dashboardService dashboard.Refresher,
	authenticator authenticating.Authenticator,
	preferenceRepo repository.PreferenceRepository,
	cardRollupService *scheduler.CardRollupService,
) (*Server, error) {
	gate := authorizing.NewGate(config.Access.StaffPolicy)

	cronServices := handler.CronJobServices{
		CardRollupService: cardRollupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator, gate)...),
		router.WithRoutes(handler.MetricCards(metricService, gate)...),
		router.WithRoutes(handler.DailySeries(dailyService, gate)...),
		router.WithRoutes(handler.Comments(commentService, gate)...),
		router.WithRoutes(handler.Dashboard(dashboardService, gate)...),
		router.WithRoutes(handler.Preferences(preferenceRepo)...),
		router.WithRoutes(handler.CronJobs(cronServices, gate)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
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

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
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
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
