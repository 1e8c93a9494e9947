package dailyseries

import (
	"context"
	"errors"

	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"github.com/vfg2006/nps-dashboard-api/pkg/utils"
)

var (
	ErrInvalidPeriod = errors.New("período inválido")
	ErrInvalidDay    = errors.New("dia fora do calendário do mês")
)

// DailyStore mantém a série diária de NPS de um mês/ano. Fetch devolve as
// linhas esparsas; a grade densa sai de BuildDayGrid.
type DailyStore interface {
	Fetch(ctx context.Context, month, year int) ([]*domain.DailyValue, error)
	UpsertDay(ctx context.Context, day, value, month, year int) ([]*domain.DailyValue, error)
}

type Service struct {
	dailyRepo repository.DailyValueRepository
}

func NewService(dailyRepo repository.DailyValueRepository) DailyStore {
	return &Service{
		dailyRepo: dailyRepo,
	}
}

func (s *Service) Fetch(ctx context.Context, month, year int) ([]*domain.DailyValue, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	return s.dailyRepo.ListByPeriod(ctx, month, year)
}

// UpsertDay grava o NPS de um dia pela chave natural (day, month, year).
// O valor é grampeado em [0, 100] antes da escrita; a grade grampeia de novo
// na leitura, então os dois pontos de proteção do fluxo original se mantêm.
func (s *Service) UpsertDay(ctx context.Context, day, value, month, year int) ([]*domain.DailyValue, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	if day < 1 || day > DaysInMonth(month, year) {
		return nil, ErrInvalidDay
	}

	clamped := utils.ClampNps(value)

	existing, err := s.dailyRepo.GetByDayAndPeriod(ctx, day, month, year)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.dailyRepo.UpdateValue(ctx, existing.ID, clamped); err != nil {
			return nil, err
		}
	} else {
		dailyValue := &domain.DailyValue{
			Day:      day,
			NpsValue: clamped,
			Month:    month,
			Year:     year,
		}
		if _, err := s.dailyRepo.Insert(ctx, dailyValue); err != nil {
			return nil, err
		}
	}

	return s.dailyRepo.ListByPeriod(ctx, month, year)
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 1 {
		return ErrInvalidPeriod
	}
	return nil
}
