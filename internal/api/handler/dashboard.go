package handler

import (
	"net/http"

	"github.com/vfg2006/nps-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/nps-dashboard-api/pkg/apiErrors"
)

type RefreshResponse struct {
	Cards    any    `json:"cards,omitempty"`
	CardsErr string `json:"cards_error,omitempty"`

	DayGrid  any    `json:"day_grid,omitempty"`
	DailyErr string `json:"daily_error,omitempty"`

	Comments    any    `json:"comments,omitempty"`
	CommentsErr string `json:"comments_error,omitempty"`
}

// RefreshDashboard recarrega as três lojas em paralelo. Falha parcial
// responde 207 com os erros por loja; falha total responde 500.
func RefreshDashboard(service dashboard.Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := commentFilterFromRequest(r)
		if err != nil {
			writePeriodError(w)
			return
		}

		result := service.RefreshAll(r.Context(), filter.Month, filter.Year, filter)

		if result.Failed() {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar o dashboard", nil)
			return
		}

		response := RefreshResponse{}
		if result.CardsErr != nil {
			response.CardsErr = result.CardsErr.Error()
		} else {
			response.Cards = result.Cards
		}
		if result.DailyErr != nil {
			response.DailyErr = result.DailyErr.Error()
		} else {
			response.DayGrid = result.DayGrid
		}
		if result.CommentsErr != nil {
			response.CommentsErr = result.CommentsErr.Error()
		} else {
			response.Comments = result.Comments
		}

		status := http.StatusOK
		if result.Partial() {
			status = http.StatusMultiStatus
		}

		writeJSON(w, status, response)
	}
}
