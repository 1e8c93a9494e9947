package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/commenting"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/metrics"
	"go.uber.org/mock/gomock"
)

func TestRollupFromComments(t *testing.T) {
	tests := []struct {
		name     string
		comments []*domain.Comment
		want     map[domain.CardKey]string
	}{
		{
			name: "Notas são classificadas nas três faixas",
			comments: []*domain.Comment{
				{NpsScore: 10},
				{NpsScore: 9},
				{NpsScore: 8},
				{NpsScore: 7},
				{NpsScore: 6},
				{NpsScore: 0},
			},
			want: map[domain.CardKey]string{
				domain.CardPromoters:      "2",
				domain.CardNeutrals:       "2",
				domain.CardDetractors:     "2",
				domain.CardTotalResponses: "6",
				domain.CardNpsPercentage:  "0", // 33% - 33%
			},
		},
		{
			name: "Só promotores dá NPS 100",
			comments: []*domain.Comment{
				{NpsScore: 9},
				{NpsScore: 10},
			},
			want: map[domain.CardKey]string{
				domain.CardPromoters:      "2",
				domain.CardNeutrals:       "0",
				domain.CardDetractors:     "0",
				domain.CardTotalResponses: "2",
				domain.CardNpsPercentage:  "100",
			},
		},
		{
			name: "Só detratores dá NPS -100",
			comments: []*domain.Comment{
				{NpsScore: 3},
			},
			want: map[domain.CardKey]string{
				domain.CardPromoters:      "0",
				domain.CardNeutrals:       "0",
				domain.CardDetractors:     "1",
				domain.CardTotalResponses: "1",
				domain.CardNpsPercentage:  "-100",
			},
		},
		{
			name:     "Sem comentários tudo zera",
			comments: nil,
			want: map[domain.CardKey]string{
				domain.CardPromoters:      "0",
				domain.CardNeutrals:       "0",
				domain.CardDetractors:     "0",
				domain.CardTotalResponses: "0",
				domain.CardNpsPercentage:  "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RollupFromComments(tt.comments))
		})
	}
}

func TestCardRollupService_UpdateCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockMetricRecordRepository(ctrl)
	mockCommentRepo := mocks.NewMockCommentRepository(ctrl)

	// Data de referência fixa para o mês corrente do rollup
	referenceDate := time.Date(2025, 3, 16, 2, 0, 0, 0, time.UTC)

	service := &CardRollupService{
		metricStore:  metrics.NewService(mockMetricRepo),
		commentStore: commenting.NewService(mockCommentRepo),
		now:          func() time.Time { return referenceDate },
	}

	t.Run("Rollup grava os cinco cartões de contagem do mês corrente", func(t *testing.T) {
		mockCommentRepo.EXPECT().
			List(gomock.Any(), domain.CommentFilter{Month: 3, Year: 2025}).
			Return([]*domain.Comment{
				{NpsScore: 10},
				{NpsScore: 7},
				{NpsScore: 2},
			}, nil)

		// Cada cartão passa pelo fluxo de upsert: busca pela chave natural,
		// insere e relê o snapshot
		mockMetricRepo.EXPECT().
			GetByCardKeyAndPeriod(gomock.Any(), gomock.Any(), 3, 2025).
			Return(nil, nil).
			Times(5)
		mockMetricRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *domain.MetricRecord) (*domain.MetricRecord, error) {
				assert.Equal(t, 3, record.Month)
				assert.Equal(t, 2025, record.Year)
				return record, nil
			}).
			Times(5)
		mockMetricRepo.EXPECT().
			ListByPeriod(gomock.Any(), 3, 2025).
			Return([]*domain.MetricRecord{}, nil).
			Times(5)

		err := service.UpdateCards(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, referenceDate, service.lastSyncStartedAt)
	})

	t.Run("Falha ao buscar comentários aborta o rollup sem tocar nos cartões", func(t *testing.T) {
		mockCommentRepo.EXPECT().
			List(gomock.Any(), domain.CommentFilter{Month: 3, Year: 2025}).
			Return(nil, errors.New("connection refused"))

		err := service.UpdateCards(context.Background())
		assert.Error(t, err)
	})
}
