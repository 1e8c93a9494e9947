package metrics

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
)

var (
	ErrUnknownCardKey = errors.New("chave de cartão desconhecida")
	ErrInvalidPeriod  = errors.New("período inválido")
)

// MetricStore mantém os cartões de métrica de um mês/ano.
// Toda mutação relê o snapshot completo do banco antes de responder
// (read-after-write); em caso de falha nada é devolvido e o snapshot
// anterior do chamador permanece válido.
type MetricStore interface {
	Fetch(ctx context.Context, month, year int) (domain.CardMap, error)
	Upsert(ctx context.Context, cardKey domain.CardKey, value string, month, year int) (domain.CardMap, error)
}

type Service struct {
	metricRepo repository.MetricRecordRepository
}

func NewService(metricRepo repository.MetricRecordRepository) MetricStore {
	return &Service{
		metricRepo: metricRepo,
	}
}

// Fetch monta o snapshot de formato fixo sobre os 8 cartões conhecidos.
// Chaves desconhecidas vindas do banco são descartadas em silêncio —
// proteção contra drift de schema.
func (s *Service) Fetch(ctx context.Context, month, year int) (domain.CardMap, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	records, err := s.metricRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	cards := domain.NewCardMap()
	for _, record := range records {
		if !domain.ValidCardKey(record.CardKey) {
			logrus.Warnf("Descartando card_key desconhecida %q (%02d/%04d)", record.CardKey, month, year)
			continue
		}
		cards[record.CardKey] = record
	}

	return cards, nil
}

// Upsert grava o valor de um cartão pela chave natural (card_key, month, year):
// atualiza pelo id quando a linha existe, insere quando não existe.
func (s *Service) Upsert(ctx context.Context, cardKey domain.CardKey, value string, month, year int) (domain.CardMap, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	if !domain.ValidCardKey(cardKey) {
		return nil, ErrUnknownCardKey
	}

	existing, err := s.metricRepo.GetByCardKeyAndPeriod(ctx, cardKey, month, year)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.metricRepo.UpdateValue(ctx, existing.ID, value); err != nil {
			return nil, err
		}
	} else {
		record := &domain.MetricRecord{
			CardKey: cardKey,
			Value:   value,
			Month:   month,
			Year:    year,
		}
		if _, err := s.metricRepo.Insert(ctx, record); err != nil {
			return nil, err
		}
	}

	return s.Fetch(ctx, month, year)
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 1 {
		return ErrInvalidPeriod
	}
	return nil
}
