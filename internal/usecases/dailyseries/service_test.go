package dailyseries

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_UpsertDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDailyValueRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("Dia existente é atualizado pelo id — repetir o upsert nunca duplica a linha", func(t *testing.T) {
		existing := &domain.DailyValue{ID: 21, Day: 5, NpsValue: 60, Month: 3, Year: 2025}
		refreshed := []*domain.DailyValue{
			{ID: 21, Day: 5, NpsValue: 70, Month: 3, Year: 2025},
		}

		// duas chamadas seguidas com o mesmo par (dia, valor): ambas caem no
		// caminho de update, nenhuma insere
		gomock.InOrder(
			mockRepo.EXPECT().GetByDayAndPeriod(gomock.Any(), 5, 3, 2025).Return(existing, nil),
			mockRepo.EXPECT().UpdateValue(gomock.Any(), int64(21), 70).Return(nil),
			mockRepo.EXPECT().ListByPeriod(gomock.Any(), 3, 2025).Return(refreshed, nil),
			mockRepo.EXPECT().GetByDayAndPeriod(gomock.Any(), 5, 3, 2025).Return(refreshed[0], nil),
			mockRepo.EXPECT().UpdateValue(gomock.Any(), int64(21), 70).Return(nil),
			mockRepo.EXPECT().ListByPeriod(gomock.Any(), 3, 2025).Return(refreshed, nil),
		)

		values, err := service.UpsertDay(ctx, 5, 70, 3, 2025)
		assert.NoError(t, err)
		assert.Len(t, values, 1)

		values, err = service.UpsertDay(ctx, 5, 70, 3, 2025)
		assert.NoError(t, err)
		assert.Len(t, values, 1)
		assert.Equal(t, 70, values[0].NpsValue)
	})

	t.Run("Dia ausente é inserido com valor grampeado na escrita", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByDayAndPeriod(gomock.Any(), 10, 3, 2025).
			Return(nil, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Cond(func(v *domain.DailyValue) bool {
				return v.Day == 10 && v.NpsValue == 100 && v.Month == 3 && v.Year == 2025
			})).
			Return(&domain.DailyValue{ID: 30, Day: 10, NpsValue: 100, Month: 3, Year: 2025}, nil)
		mockRepo.EXPECT().
			ListByPeriod(gomock.Any(), 3, 2025).
			Return([]*domain.DailyValue{{ID: 30, Day: 10, NpsValue: 100, Month: 3, Year: 2025}}, nil)

		// 150 entra grampeado como 100
		values, err := service.UpsertDay(ctx, 10, 150, 3, 2025)
		assert.NoError(t, err)
		assert.Equal(t, 100, values[0].NpsValue)
	})

	t.Run("Falha no insert não dispara releitura", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByDayAndPeriod(gomock.Any(), 8, 3, 2025).
			Return(nil, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("permission denied"))

		values, err := service.UpsertDay(ctx, 8, 40, 3, 2025)
		assert.Error(t, err)
		assert.Nil(t, values)
	})

	t.Run("Dia 31 em mês de 30 dias é rejeitado sem ida ao banco", func(t *testing.T) {
		values, err := service.UpsertDay(ctx, 31, 50, 4, 2025)
		assert.ErrorIs(t, err, ErrInvalidDay)
		assert.Nil(t, values)
	})

	t.Run("Dia 29 de fevereiro só é aceito em ano bissexto", func(t *testing.T) {
		values, err := service.UpsertDay(ctx, 29, 50, 2, 2025)
		assert.ErrorIs(t, err, ErrInvalidDay)
		assert.Nil(t, values)

		mockRepo.EXPECT().GetByDayAndPeriod(gomock.Any(), 29, 2, 2024).Return(nil, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(&domain.DailyValue{ID: 40, Day: 29, NpsValue: 50, Month: 2, Year: 2024}, nil)
		mockRepo.EXPECT().ListByPeriod(gomock.Any(), 2, 2024).
			Return([]*domain.DailyValue{{ID: 40, Day: 29, NpsValue: 50, Month: 2, Year: 2024}}, nil)

		values, err = service.UpsertDay(ctx, 29, 50, 2, 2024)
		assert.NoError(t, err)
		assert.Len(t, values, 1)
	})
}
