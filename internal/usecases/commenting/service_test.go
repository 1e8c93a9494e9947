package commenting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCommentRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("Busca com espaços nas bordas é aparada antes de chegar ao repositório", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), domain.CommentFilter{Month: 3, Year: 2025, Search: "Maria"}).
			Return([]*domain.Comment{{ID: 1, ClientName: "Maria Silva"}}, nil)

		comments, err := service.Fetch(ctx, domain.CommentFilter{Month: 3, Year: 2025, Search: "  Maria  "})
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("Busca só com espaços vira filtro vazio", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), domain.CommentFilter{Month: 3, Year: 2025}).
			Return([]*domain.Comment{}, nil)

		comments, err := service.Fetch(ctx, domain.CommentFilter{Month: 3, Year: 2025, Search: "   "})
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("Categoria desconhecida é rejeitada sem ida ao banco", func(t *testing.T) {
		comments, err := service.Fetch(ctx, domain.CommentFilter{Month: 3, Year: 2025, Category: "spam"})
		assert.ErrorIs(t, err, ErrInvalidCategory)
		assert.Nil(t, comments)
	})

	t.Run("Período inválido é rejeitado sem ida ao banco", func(t *testing.T) {
		comments, err := service.Fetch(ctx, domain.CommentFilter{Month: 13, Year: 2025})
		assert.ErrorIs(t, err, ErrInvalidPeriod)
		assert.Nil(t, comments)
	})
}

func TestService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCommentRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	filter := domain.CommentFilter{Month: 3, Year: 2025}

	t.Run("Comentário novo deriva mês e ano da data de avaliação e relê a lista", func(t *testing.T) {
		evaluationDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
		input := AddCommentInput{
			ClientName:     "João Pereira",
			Comment:        "Atendimento excelente",
			EvaluationDate: evaluationDate,
			NpsScore:       9,
			Category:       domain.CategoryElogio,
			Status:         domain.StatusResolvido,
		}

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Cond(func(c *domain.Comment) bool {
				return c.ClientName == "João Pereira" && c.Month == 3 && c.Year == 2025 && c.NpsScore == 9
			})).
			Return(&domain.Comment{ID: 7}, nil)
		mockRepo.EXPECT().
			List(gomock.Any(), filter).
			Return([]*domain.Comment{{ID: 7, ClientName: "João Pereira"}}, nil)

		comments, err := service.Add(ctx, input, filter)
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
		assert.Equal(t, int64(7), comments[0].ID)
	})

	t.Run("Payload sem nome do cliente falha na validação antes do insert", func(t *testing.T) {
		input := AddCommentInput{
			Comment:        "sem autor",
			EvaluationDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			NpsScore:       5,
			Category:       domain.CategoryBug,
			Status:         domain.StatusPendente,
		}

		comments, err := service.Add(ctx, input, filter)
		assert.Error(t, err)
		assert.Nil(t, comments)

		var validationErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs)
	})

	t.Run("Nota acima de 10 falha na validação antes do insert", func(t *testing.T) {
		input := AddCommentInput{
			ClientName:     "Ana",
			Comment:        "nota impossível",
			EvaluationDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			NpsScore:       11,
			Category:       domain.CategorySugestao,
			Status:         domain.StatusPendente,
		}

		comments, err := service.Add(ctx, input, filter)
		assert.Error(t, err)
		assert.Nil(t, comments)
	})

	t.Run("Falha no insert não dispara releitura", func(t *testing.T) {
		input := AddCommentInput{
			ClientName:     "Carlos",
			Comment:        "qualquer",
			EvaluationDate: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			NpsScore:       3,
			Category:       domain.CategorySuporte,
			Status:         domain.StatusEmAnalise,
		}

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		comments, err := service.Add(ctx, input, filter)
		assert.Error(t, err)
		assert.Nil(t, comments)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCommentRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	filter := domain.CommentFilter{Month: 3, Year: 2025, Category: domain.CategoryBug}

	t.Run("Atualização parcial relê a lista com os filtros ativos", func(t *testing.T) {
		newStatus := domain.StatusResolvido
		update := domain.CommentUpdate{Status: &newStatus}

		mockRepo.EXPECT().
			Update(gomock.Any(), int64(4), update).
			Return(nil)
		mockRepo.EXPECT().
			List(gomock.Any(), filter).
			Return([]*domain.Comment{{ID: 4, Status: domain.StatusResolvido}}, nil)

		comments, err := service.Update(ctx, 4, update, filter)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusResolvido, comments[0].Status)
	})

	t.Run("Nota fora da faixa é rejeitada sem ida ao banco", func(t *testing.T) {
		badScore := 12
		comments, err := service.Update(ctx, 4, domain.CommentUpdate{NpsScore: &badScore}, filter)
		assert.ErrorIs(t, err, ErrScoreOutOfRange)
		assert.Nil(t, comments)
	})

	t.Run("Id inexistente devolve erro do repositório e nenhuma lista", func(t *testing.T) {
		newStatus := domain.StatusEmAnalise
		mockRepo.EXPECT().
			Update(gomock.Any(), int64(99), gomock.Any()).
			Return(repository.ErrNotFound)

		comments, err := service.Update(ctx, 99, domain.CommentUpdate{Status: &newStatus}, filter)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, comments)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCommentRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	filter := domain.CommentFilter{Month: 3, Year: 2025}

	t.Run("Remoção bem-sucedida relê a lista", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)
		mockRepo.EXPECT().List(gomock.Any(), filter).Return([]*domain.Comment{}, nil)

		comments, err := service.Delete(ctx, 4, filter)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("Falha na remoção não dispara releitura", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(4)).Return(errors.New("deadlock detected"))

		comments, err := service.Delete(ctx, 4, filter)
		assert.Error(t, err)
		assert.Nil(t, comments)
	})
}
