package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/internal/config"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/commenting"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/dailyseries"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/metrics"
)

// RefreshResult carrega o resultado de cada loja separadamente: uma falha em
// uma não invalida o que as outras trouxeram. O chamador mantém a visão
// anterior da parte que falhou.
type RefreshResult struct {
	Cards    domain.CardMap
	CardsErr error

	DayGrid  []domain.DayPoint
	DailyErr error

	Comments    []*domain.Comment
	CommentsErr error
}

// Partial indica se alguma das lojas falhou
func (r *RefreshResult) Partial() bool {
	return r.CardsErr != nil || r.DailyErr != nil || r.CommentsErr != nil
}

// Failed indica se todas as lojas falharam
func (r *RefreshResult) Failed() bool {
	return r.CardsErr != nil && r.DailyErr != nil && r.CommentsErr != nil
}

// Refresher recarrega as três lojas do dashboard para uma janela mensal
type Refresher interface {
	RefreshAll(ctx context.Context, month, year int, filter domain.CommentFilter) *RefreshResult
}

type Service struct {
	metricStore  metrics.MetricStore
	dailyStore   dailyseries.DailyStore
	commentStore commenting.CommentStore
	cfg          *config.Config
}

func NewService(
	metricStore metrics.MetricStore,
	dailyStore dailyseries.DailyStore,
	commentStore commenting.CommentStore,
	cfg *config.Config,
) Refresher {
	return &Service{
		metricStore:  metricStore,
		dailyStore:   dailyStore,
		commentStore: commentStore,
		cfg:          cfg,
	}
}

// RefreshAll dispara as três buscas em paralelo e espera todas terminarem.
// As lojas são domínios de falha independentes, por isso WaitGroup em vez de
// cancelamento cruzado: a primeira falha não derruba as demais. O teto de
// tempo vem da configuração e vale para o lote inteiro.
func (s *Service) RefreshAll(ctx context.Context, month, year int, filter domain.CommentFilter) *RefreshResult {
	timeout := time.Duration(s.cfg.Dashboard.RefreshTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := &RefreshResult{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		result.Cards, result.CardsErr = s.metricStore.Fetch(ctx, month, year)
	}()

	go func() {
		defer wg.Done()
		raw, err := s.dailyStore.Fetch(ctx, month, year)
		if err != nil {
			result.DailyErr = err
			return
		}
		result.DayGrid = dailyseries.BuildDayGrid(raw, month, year)
	}()

	go func() {
		defer wg.Done()
		result.Comments, result.CommentsErr = s.commentStore.Fetch(ctx, filter)
	}()

	wg.Wait()

	if result.Partial() {
		logrus.WithFields(logrus.Fields{
			"month":        month,
			"year":         year,
			"cards_err":    result.CardsErr,
			"daily_err":    result.DailyErr,
			"comments_err": result.CommentsErr,
		}).Warn("Atualização do dashboard concluída com falhas parciais")
	}

	return result
}
