package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"github.com/vfg2006/nps-dashboard-api/internal/scheduler"
	"github.com/vfg2006/nps-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/nps-dashboard-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCardRollup = "card-rollup"
	CronJobTypeAll        = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CardRollupService *scheduler.CardRollupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificação redundante com o middleware de acesso, mantida como
		// última linha de defesa
		userClaims := middleware.ClaimsFromContext(r.Context())
		if userClaims == nil || !userClaims.HasRole(domain.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCardRollup, CronJobTypeAll:
			if services.CardRollupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de rollup de cartões não disponível", nil)
				return
			}
			services.CardRollupService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: card-rollup, all", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims := middleware.ClaimsFromContext(r.Context())
		if userClaims == nil || !userClaims.HasRole(domain.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"card-rollup": services.CardRollupService.GetStatus(),
		})
	}
}
