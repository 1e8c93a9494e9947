package handler

import (
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta de sucesso
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// parsePeriod lê month/year da query string; sem parâmetros, assume o mês
// corrente — a janela padrão do dashboard
func parsePeriod(r *http.Request) (int, int, error) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil {
			return 0, 0, err
		}
		month = parsed
	}

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			return 0, 0, err
		}
		year = parsed
	}

	return month, year, nil
}

// writePeriodError responde o erro padrão de período inválido
func writePeriodError(w http.ResponseWriter) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros month/year inválidos", nil)
}
