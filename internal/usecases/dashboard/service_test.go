package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/nps-dashboard-api/internal/config"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/commenting"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/dailyseries"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/metrics"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Dashboard: config.Dashboard{RefreshTimeoutSeconds: 5},
	}
}

func TestService_RefreshAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockMetricRecordRepository(ctrl)
	mockDailyRepo := mocks.NewMockDailyValueRepository(ctrl)
	mockCommentRepo := mocks.NewMockCommentRepository(ctrl)

	service := NewService(
		metrics.NewService(mockMetricRepo),
		dailyseries.NewService(mockDailyRepo),
		commenting.NewService(mockCommentRepo),
		testConfig(),
	)

	ctx := context.Background()
	filter := domain.CommentFilter{Month: 3, Year: 2025}

	t.Run("Todas as lojas respondem e o resultado é completo", func(t *testing.T) {
		mockMetricRepo.EXPECT().
			ListByPeriod(gomock.Any(), 3, 2025).
			Return([]*domain.MetricRecord{
				{ID: 1, CardKey: domain.CardPromoters, Value: "42", Month: 3, Year: 2025},
			}, nil)
		mockDailyRepo.EXPECT().
			ListByPeriod(gomock.Any(), 3, 2025).
			Return([]*domain.DailyValue{{ID: 2, Day: 1, NpsValue: 80, Month: 3, Year: 2025}}, nil)
		mockCommentRepo.EXPECT().
			List(gomock.Any(), filter).
			Return([]*domain.Comment{{ID: 3, ClientName: "Maria"}}, nil)

		result := service.RefreshAll(ctx, 3, 2025, filter)

		assert.False(t, result.Partial())
		assert.Equal(t, "42", result.Cards[domain.CardPromoters].Value)
		assert.Len(t, result.DayGrid, 31)
		assert.Equal(t, 80, result.DayGrid[0].Nps)
		assert.Len(t, result.Comments, 1)
	})

	t.Run("Falha em uma loja não derruba as outras", func(t *testing.T) {
		mockMetricRepo.EXPECT().
			ListByPeriod(gomock.Any(), 3, 2025).
			Return([]*domain.MetricRecord{}, nil)
		mockDailyRepo.EXPECT().
			ListByPeriod(gomock.Any(), 3, 2025).
			Return([]*domain.DailyValue{}, nil)
		mockCommentRepo.EXPECT().
			List(gomock.Any(), filter).
			Return(nil, errors.New("connection refused"))

		result := service.RefreshAll(ctx, 3, 2025, filter)

		assert.True(t, result.Partial())
		assert.False(t, result.Failed())
		assert.NoError(t, result.CardsErr)
		assert.NoError(t, result.DailyErr)
		assert.Error(t, result.CommentsErr)
		assert.Nil(t, result.Comments)
		assert.NotNil(t, result.Cards)
		assert.Len(t, result.DayGrid, 31)
	})

	t.Run("Falha total é sinalizada como tal", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		mockMetricRepo.EXPECT().ListByPeriod(gomock.Any(), 3, 2025).Return(nil, dbErr)
		mockDailyRepo.EXPECT().ListByPeriod(gomock.Any(), 3, 2025).Return(nil, dbErr)
		mockCommentRepo.EXPECT().List(gomock.Any(), filter).Return(nil, dbErr)

		result := service.RefreshAll(ctx, 3, 2025, filter)

		assert.True(t, result.Partial())
		assert.True(t, result.Failed())
	})
}
