package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/dailyseries"
	"github.com/vfg2006/nps-dashboard-api/pkg/apiErrors"
)

type UpsertDayRequest struct {
	NpsValue int `json:"nps_value"`
}

// GetDailySeries retorna a grade densa do gráfico diário do período
func GetDailySeries(service dailyseries.DailyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year, err := parsePeriod(r)
		if err != nil {
			writePeriodError(w)
			return
		}

		raw, err := service.Fetch(r.Context(), month, year)
		if err != nil {
			handleDailyError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, dailyseries.BuildDayGrid(raw, month, year))
	}
}

// UpsertDay grava o NPS de um dia e retorna a grade relida
func UpsertDay(service dailyseries.DailyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year, err := parsePeriod(r)
		if err != nil {
			writePeriodError(w)
			return
		}

		dayStr := httprouter.ParamsFromContext(r.Context()).ByName("day")
		day, err := strconv.Atoi(dayStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dia inválido", nil)
			return
		}

		var req UpsertDayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		raw, err := service.UpsertDay(r.Context(), day, req.NpsValue, month, year)
		if err != nil {
			handleDailyError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, dailyseries.BuildDayGrid(raw, month, year))
	}
}

func handleDailyError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, dailyseries.ErrInvalidDay):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDay, "Dia fora do calendário do mês", nil)

	case errors.Is(err, dailyseries.ErrInvalidPeriod):
		writePeriodError(w)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar a série diária", nil)
	}
}
