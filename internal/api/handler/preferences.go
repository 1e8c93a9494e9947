package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"github.com/vfg2006/nps-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/nps-dashboard-api/pkg/middleware"
)

type SavePreferenceRequest struct {
	RememberEmail bool   `json:"remember_email"`
	SavedEmail    string `json:"saved_email"`
}

// GetPreferences retorna as preferências do usuário logado; sem registro,
// devolve o padrão (lembrar e-mail desligado)
func GetPreferences(repo repository.PreferenceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims := middleware.ClaimsFromContext(r.Context())
		if userClaims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		pref, err := repo.GetByUserID(r.Context(), userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar preferências", nil)
			return
		}

		if pref == nil {
			pref = &domain.Preference{UserID: userClaims.UserID}
		}

		writeJSON(w, http.StatusOK, pref)
	}
}

// SavePreferences grava as preferências do usuário logado. Desligar o
// "lembrar e-mail" também apaga o e-mail salvo.
func SavePreferences(repo repository.PreferenceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims := middleware.ClaimsFromContext(r.Context())
		if userClaims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req SavePreferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		pref := &domain.Preference{
			UserID:        userClaims.UserID,
			RememberEmail: req.RememberEmail,
			SavedEmail:    req.SavedEmail,
		}
		if !pref.RememberEmail {
			pref.SavedEmail = ""
		}

		if err := repo.Save(r.Context(), pref); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar preferências", nil)
			return
		}

		writeJSON(w, http.StatusOK, pref)
	}
}
