package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/authorizing"
	"github.com/vfg2006/nps-dashboard-api/pkg/apiErrors"
)

// AccessMiddleware traduz os vereditos do gate de acesso para respostas HTTP.
// No servidor toda sessão chega resolvida (as claims vêm do AuthMiddleware),
// então o veredito de espera não ocorre aqui — ele existe para clientes que
// ainda estão resolvendo a sessão.
func AccessMiddleware(gate *authorizing.Gate, requirement authorizing.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := authorizing.SessionFromClaims(ClaimsFromContext(r.Context()))

			decision := gate.Evaluate(session, requirement)
			switch decision {
			case authorizing.DecisionAllow:
				next.ServeHTTP(w, r)

			case authorizing.DecisionRedirectToLogin, authorizing.DecisionWait:
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)

			case authorizing.DecisionPendingApproval:
				logrus.Warnf("Acesso negado para usuário ID=%d: aguardando liberação", session.UserID)
				apiErrors.WriteError(w, apiErrors.ErrPendingApproval, "Sua conta aguarda liberação de acesso", map[string]any{
					"email": session.Email,
				})

			case authorizing.DecisionForbidden:
				logrus.Warnf("Acesso negado para usuário ID=%d, papéis=%v", session.UserID, session.Roles)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", map[string]any{
					"email": session.Email,
				})

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Veredito de acesso desconhecido", nil)
			}
		})
	}
}

// StaffOnly permite acesso para staff e administradores
func StaffOnly(gate *authorizing.Gate) func(http.Handler) http.Handler {
	return AccessMiddleware(gate, authorizing.RequireStaff)
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly(gate *authorizing.Gate) func(http.Handler) http.Handler {
	return AccessMiddleware(gate, authorizing.RequireAdmin)
}
