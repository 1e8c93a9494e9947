package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricRecordRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, cards domain.CardMap, err error)
	}{
		{
			name: "Snapshot tem formato fixo mesmo sem registros no período",
			setup: func() {
				mockRepo.EXPECT().
					ListByPeriod(gomock.Any(), 3, 2025).
					Return([]*domain.MetricRecord{}, nil)
			},
			validate: func(t *testing.T, cards domain.CardMap, err error) {
				assert.NoError(t, err)
				assert.Len(t, cards, 8)
				for _, key := range domain.CardKeys {
					record, ok := cards[key]
					assert.True(t, ok)
					assert.Nil(t, record)
				}
			},
		},
		{
			name: "Chaves desconhecidas do banco são descartadas em silêncio",
			setup: func() {
				mockRepo.EXPECT().
					ListByPeriod(gomock.Any(), 3, 2025).
					Return([]*domain.MetricRecord{
						{ID: 1, CardKey: domain.CardPromoters, Value: "42", Month: 3, Year: 2025},
						{ID: 2, CardKey: "csat_score", Value: "99", Month: 3, Year: 2025},
					}, nil)
			},
			validate: func(t *testing.T, cards domain.CardMap, err error) {
				assert.NoError(t, err)
				assert.Len(t, cards, 8)
				assert.Equal(t, "42", cards[domain.CardPromoters].Value)
				_, leaked := cards["csat_score"]
				assert.False(t, leaked)
			},
		},
		{
			name: "Falha do banco é propagada sem snapshot",
			setup: func() {
				mockRepo.EXPECT().
					ListByPeriod(gomock.Any(), 3, 2025).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, cards domain.CardMap, err error) {
				assert.Error(t, err)
				assert.Nil(t, cards)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			cards, err := service.Fetch(ctx, 3, 2025)
			tt.validate(t, cards, err)
		})
	}
}

func TestService_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetricRecordRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("Cartão existente é atualizado pelo id, nunca inserido", func(t *testing.T) {
		existing := &domain.MetricRecord{ID: 7, CardKey: domain.CardNpsGoal, Value: "70", Month: 3, Year: 2025}

		mockRepo.EXPECT().
			GetByCardKeyAndPeriod(gomock.Any(), domain.CardNpsGoal, 3, 2025).
			Return(existing, nil)
		mockRepo.EXPECT().
			UpdateValue(gomock.Any(), int64(7), "75").
			Return(nil)
		mockRepo.EXPECT().
			ListByPeriod(gomock.Any(), 3, 2025).
			Return([]*domain.MetricRecord{
				{ID: 7, CardKey: domain.CardNpsGoal, Value: "75", Month: 3, Year: 2025},
			}, nil)

		cards, err := service.Upsert(ctx, domain.CardNpsGoal, "75", 3, 2025)
		assert.NoError(t, err)
		assert.Equal(t, "75", cards[domain.CardNpsGoal].Value)
	})

	t.Run("Cartão ausente é inserido com a chave natural completa", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByCardKeyAndPeriod(gomock.Any(), domain.CardTrend, 3, 2025).
			Return(nil, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Cond(func(r *domain.MetricRecord) bool {
				return r.CardKey == domain.CardTrend && r.Value == "up" && r.Month == 3 && r.Year == 2025
			})).
			Return(&domain.MetricRecord{ID: 11, CardKey: domain.CardTrend, Value: "up", Month: 3, Year: 2025}, nil)
		mockRepo.EXPECT().
			ListByPeriod(gomock.Any(), 3, 2025).
			Return([]*domain.MetricRecord{
				{ID: 11, CardKey: domain.CardTrend, Value: "up", Month: 3, Year: 2025},
			}, nil)

		cards, err := service.Upsert(ctx, domain.CardTrend, "up", 3, 2025)
		assert.NoError(t, err)
		assert.Equal(t, "up", cards[domain.CardTrend].Value)
	})

	t.Run("Falha no update não dispara releitura e reporta erro", func(t *testing.T) {
		existing := &domain.MetricRecord{ID: 3, CardKey: domain.CardPromoters, Value: "40", Month: 3, Year: 2025}

		mockRepo.EXPECT().
			GetByCardKeyAndPeriod(gomock.Any(), domain.CardPromoters, 3, 2025).
			Return(existing, nil)
		mockRepo.EXPECT().
			UpdateValue(gomock.Any(), int64(3), "50").
			Return(errors.New("deadlock detected"))

		cards, err := service.Upsert(ctx, domain.CardPromoters, "50", 3, 2025)
		assert.Error(t, err)
		assert.Nil(t, cards)
		// o registro consultado antes da falha permanece intacto
		assert.Equal(t, "40", existing.Value)
	})

	t.Run("Chave desconhecida é rejeitada antes de qualquer ida ao banco", func(t *testing.T) {
		cards, err := service.Upsert(ctx, "conversion_rate", "10", 3, 2025)
		assert.ErrorIs(t, err, ErrUnknownCardKey)
		assert.Nil(t, cards)
	})

	t.Run("Período inválido é rejeitado antes de qualquer ida ao banco", func(t *testing.T) {
		cards, err := service.Upsert(ctx, domain.CardPromoters, "10", 13, 2025)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
		assert.Nil(t, cards)
	})
}
