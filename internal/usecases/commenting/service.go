package commenting

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
)

var (
	ErrInvalidPeriod   = errors.New("período inválido")
	ErrInvalidCategory = errors.New("categoria desconhecida")
	ErrInvalidStatus   = errors.New("status desconhecido")
	ErrScoreOutOfRange = errors.New("nota NPS fora da faixa 0..10")
)

var validate = validator.New()

// AddCommentInput é o payload validado de um novo comentário.
// Month/Year são derivados de EvaluationDate.
type AddCommentInput struct {
	ClientName     string                 `validate:"required"`
	Comment        string                 `validate:"required"`
	EvaluationDate time.Time              `validate:"required"`
	NpsScore       int                    `validate:"min=0,max=10"`
	Category       domain.CommentCategory `validate:"required,oneof=bug elogio sugestao rota suporte"`
	Status         domain.CommentStatus   `validate:"required,oneof=resolvido em_analise pendente"`
}

// CommentStore mantém os comentários de uma janela mensal com filtros
// conjuntivos. Toda mutação bem-sucedida relê a lista com os filtros ativos;
// em falha nenhuma lista é devolvida e a visão do chamador fica como estava.
type CommentStore interface {
	Fetch(ctx context.Context, filter domain.CommentFilter) ([]*domain.Comment, error)
	Add(ctx context.Context, input AddCommentInput, filter domain.CommentFilter) ([]*domain.Comment, error)
	Update(ctx context.Context, id int64, update domain.CommentUpdate, filter domain.CommentFilter) ([]*domain.Comment, error)
	Delete(ctx context.Context, id int64, filter domain.CommentFilter) ([]*domain.Comment, error)
}

type Service struct {
	commentRepo repository.CommentRepository
}

func NewService(commentRepo repository.CommentRepository) CommentStore {
	return &Service{
		commentRepo: commentRepo,
	}
}

func (s *Service) Fetch(ctx context.Context, filter domain.CommentFilter) ([]*domain.Comment, error) {
	normalized, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	return s.commentRepo.List(ctx, normalized)
}

func (s *Service) Add(ctx context.Context, input AddCommentInput, filter domain.CommentFilter) ([]*domain.Comment, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ClientName:     strings.TrimSpace(input.ClientName),
		Comment:        input.Comment,
		EvaluationDate: input.EvaluationDate,
		NpsScore:       input.NpsScore,
		Category:       input.Category,
		Status:         input.Status,
		Month:          int(input.EvaluationDate.Month()),
		Year:           input.EvaluationDate.Year(),
	}

	if _, err := s.commentRepo.Insert(ctx, comment); err != nil {
		return nil, err
	}

	return s.Fetch(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id int64, update domain.CommentUpdate, filter domain.CommentFilter) ([]*domain.Comment, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return s.Fetch(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id int64, filter domain.CommentFilter) ([]*domain.Comment, error) {
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return s.Fetch(ctx, filter)
}

// normalizeFilter apara a busca (vazia vira no-op) e valida a categoria.
// A busca em si roda no banco via ILIKE; aqui só garantimos que espaços nas
// bordas e strings vazias não virem predicado.
func normalizeFilter(filter domain.CommentFilter) (domain.CommentFilter, error) {
	if filter.Month < 1 || filter.Month > 12 || filter.Year < 1 {
		return domain.CommentFilter{}, ErrInvalidPeriod
	}

	if filter.Category != "" && !domain.ValidCommentCategory(filter.Category) {
		return domain.CommentFilter{}, ErrInvalidCategory
	}

	filter.Search = strings.TrimSpace(filter.Search)
	return filter, nil
}

func validateUpdate(update domain.CommentUpdate) error {
	if update.NpsScore != nil && (*update.NpsScore < 0 || *update.NpsScore > 10) {
		return ErrScoreOutOfRange
	}

	if update.Category != nil && !domain.ValidCommentCategory(*update.Category) {
		return ErrInvalidCategory
	}

	if update.Status != nil && !domain.ValidCommentStatus(*update.Status) {
		return ErrInvalidStatus
	}

	return nil
}
