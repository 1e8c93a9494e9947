// Package scheduler contém os serviços de agendamento do dashboard
package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/internal/config"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/commenting"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/metrics"
)

type CardRollupConfig struct {
	CronSchedule string
	Enabled      bool
}

// CardRollupService recalcula os cartões de contagem do mês corrente a partir
// das notas dos comentários: promotores 9-10, neutros 7-8, detratores 0-6 e
// NPS = %promotores - %detratores. Cartões editoriais (meta, comparação,
// tendência) nunca são tocados pelo rollup.
type CardRollupService struct {
	scheduler           *gocron.Scheduler
	metricStore         metrics.MetricStore
	commentStore        commenting.CommentStore
	config              CardRollupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	now                 func() time.Time
}

func NewCardRollupService(
	metricStore metrics.MetricStore,
	commentStore commenting.CommentStore,
	cfg *config.Config,
) *CardRollupService {
	rollupConfig := CardRollupConfig{
		CronSchedule: cfg.CardRollup.CronSchedule, // Default: 2h da manhã todos os dias
		Enabled:      cfg.CardRollup.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rollupConfig.CronSchedule,
	}).Info("Configuração do agendador de rollup de cartões carregada")

	return &CardRollupService{
		scheduler:    scheduler,
		metricStore:  metricStore,
		commentStore: commentStore,
		config:       rollupConfig,
		now:          time.Now,
	}
}

func (s *CardRollupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de rollup de cartões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de rollup de cartões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateCards(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no rollup de cartões")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rollup de cartões: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de rollup de cartões")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateCards executa um rollup do mês corrente
func (s *CardRollupService) UpdateCards(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Rollup de cartões já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
	}()

	now := s.now()
	month := int(now.Month())
	year := now.Year()

	logrus.WithFields(logrus.Fields{
		"month": month,
		"year":  year,
	}).Info("Iniciando rollup de cartões")

	comments, err := s.commentStore.Fetch(ctx, domain.CommentFilter{Month: month, Year: year})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar comentários para o rollup de cartões")
		return err
	}

	rollup := RollupFromComments(comments)

	for cardKey, value := range rollup {
		if _, err := s.metricStore.Upsert(ctx, cardKey, value, month, year); err != nil {
			logrus.WithError(err).WithField("card_key", cardKey).Error("Erro ao gravar cartão do rollup")
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"month":    month,
		"year":     year,
		"comments": len(comments),
	}).Info("Rollup de cartões concluído")

	return nil
}

// RollupFromComments classifica as notas e monta os valores dos cartões de
// contagem. Sem comentários, tudo zera — inclusive o NPS.
func RollupFromComments(comments []*domain.Comment) map[domain.CardKey]string {
	var promoters, neutrals, detractors int

	for _, comment := range comments {
		switch {
		case comment.NpsScore >= 9:
			promoters++
		case comment.NpsScore >= 7:
			neutrals++
		default:
			detractors++
		}
	}

	total := len(comments)
	nps := 0
	if total > 0 {
		nps = (promoters*100)/total - (detractors*100)/total
	}

	return map[domain.CardKey]string{
		domain.CardPromoters:      strconv.Itoa(promoters),
		domain.CardNeutrals:       strconv.Itoa(neutrals),
		domain.CardDetractors:     strconv.Itoa(detractors),
		domain.CardTotalResponses: strconv.Itoa(total),
		domain.CardNpsPercentage:  strconv.Itoa(nps),
	}
}

// TriggerManualSync inicia manualmente um rollup de cartões
func (s *CardRollupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rollup de cartões já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando rollup manual de cartões")
	go func() {
		if err := s.UpdateCards(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no rollup manual de cartões")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *CardRollupService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
