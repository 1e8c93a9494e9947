package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/nps-dashboard-api/pkg/apiErrors"
)

type UpsertCardRequest struct {
	Value string `json:"value"`
}

// GetCards retorna o snapshot dos 8 cartões do período
func GetCards(service metrics.MetricStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year, err := parsePeriod(r)
		if err != nil {
			writePeriodError(w)
			return
		}

		cards, err := service.Fetch(r.Context(), month, year)
		if err != nil {
			handleMetricError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cards)
	}
}

// UpsertCard grava o valor de um cartão e retorna o snapshot relido
func UpsertCard(service metrics.MetricStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year, err := parsePeriod(r)
		if err != nil {
			writePeriodError(w)
			return
		}

		cardKey := httprouter.ParamsFromContext(r.Context()).ByName("card_key")
		if cardKey == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Chave do cartão não fornecida", nil)
			return
		}

		var req UpsertCardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		cards, err := service.Upsert(r.Context(), domain.CardKey(cardKey), req.Value, month, year)
		if err != nil {
			handleMetricError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cards)
	}
}

func handleMetricError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, metrics.ErrUnknownCardKey):
		apiErrors.WriteError(w, apiErrors.ErrUnknownCardKey, "Chave de cartão desconhecida", nil)

	case errors.Is(err, metrics.ErrInvalidPeriod):
		writePeriodError(w)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar os cartões de métrica", nil)
	}
}
