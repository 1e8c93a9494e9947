package domain

import (
	"time"
)

// CardKey identifica um dos cartões de métrica do dashboard
type CardKey string

const (
	CardPromoters      CardKey = "promoters"
	CardNeutrals       CardKey = "neutrals"
	CardDetractors     CardKey = "detractors"
	CardTotalResponses CardKey = "total_responses"
	CardNpsPercentage  CardKey = "nps_percentage"
	CardNpsGoal        CardKey = "nps_goal"
	CardComparison     CardKey = "comparison"
	CardTrend          CardKey = "trend"
)

// CardKeys lista os 8 cartões conhecidos, na ordem de exibição do dashboard
var CardKeys = []CardKey{
	CardPromoters,
	CardNeutrals,
	CardDetractors,
	CardTotalResponses,
	CardNpsPercentage,
	CardNpsGoal,
	CardComparison,
	CardTrend,
}

// ValidCardKey verifica se a chave pertence ao conjunto conhecido de cartões
func ValidCardKey(key CardKey) bool {
	for _, k := range CardKeys {
		if k == key {
			return true
		}
	}
	return false
}

// MetricRecord representa o valor de um cartão em um mês/ano.
// A chave natural é (card_key, month, year); o valor é uma string livre de
// exibição — "trend", por exemplo, guarda "up"/"down"/"stable".
type MetricRecord struct {
	ID        int64     `json:"id"`
	CardKey   CardKey   `json:"card_key"`
	Value     string    `json:"value"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CardMap é o snapshot de formato fixo sobre os 8 cartões conhecidos.
// Chaves sem registro no período ficam nil.
type CardMap map[CardKey]*MetricRecord

// NewCardMap cria um snapshot com todas as chaves conhecidas zeradas
func NewCardMap() CardMap {
	cards := make(CardMap, len(CardKeys))
	for _, key := range CardKeys {
		cards[key] = nil
	}
	return cards
}
