package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/nps-dashboard-api/pkg/apiErrors"
)

type ManageRolesRequest struct {
	Roles []domain.Role `json:"roles"`
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários", nil)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), userID)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		var req domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = userID

		if err := service.UpdateUser(r.Context(), &req); err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// ManageUserRoles substitui os papéis do usuário pela lista enviada
func ManageUserRoles(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		var req ManageRolesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.ManageUserRoles(r.Context(), userID, req.Roles); err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func userIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
		return 0, false
	}

	userID, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
		return 0, false
	}

	return userID, true
}
