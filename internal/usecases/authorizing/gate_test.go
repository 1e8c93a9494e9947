package authorizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/nps-dashboard-api/internal/config"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
)

func TestGate_Evaluate(t *testing.T) {
	staff := Session{Resolved: true, Authenticated: true, UserID: 1, Roles: []domain.Role{domain.RoleStaff}}
	admin := Session{Resolved: true, Authenticated: true, UserID: 2, Roles: []domain.Role{domain.RoleAdmin}}
	noRole := Session{Resolved: true, Authenticated: true, UserID: 3}
	anonymous := Session{Resolved: true}
	unresolved := Session{}

	tests := []struct {
		name        string
		policy      string
		session     Session
		requirement Requirement
		want        Decision
	}{
		{"Sessão não resolvida espera, nunca redireciona", config.StaffPolicyRequireRole, unresolved, RequireStaff, DecisionWait},
		{"Sessão não resolvida espera também em rota admin", config.StaffPolicyRequireRole, unresolved, RequireAdmin, DecisionWait},
		{"Anônimo resolvido vai para o login", config.StaffPolicyRequireRole, anonymous, RequireStaff, DecisionRedirectToLogin},
		{"Anônimo resolvido vai para o login em rota admin", config.StaffPolicyRequireRole, anonymous, RequireAdmin, DecisionRedirectToLogin},

		{"Staff entra em rota staff", config.StaffPolicyRequireRole, staff, RequireStaff, DecisionAllow},
		{"Admin entra em rota staff", config.StaffPolicyRequireRole, admin, RequireStaff, DecisionAllow},
		{"Sem papel fica aguardando liberação em rota staff", config.StaffPolicyRequireRole, noRole, RequireStaff, DecisionPendingApproval},

		{"Admin entra em rota admin", config.StaffPolicyRequireRole, admin, RequireAdmin, DecisionAllow},
		{"Staff é barrado em rota admin", config.StaffPolicyRequireRole, staff, RequireAdmin, DecisionForbidden},
		{"Sem papel é barrado em rota admin", config.StaffPolicyRequireRole, noRole, RequireAdmin, DecisionForbidden},

		{"Política liberada: autenticado sem papel entra em rota staff", config.StaffPolicyAnyAuthenticated, noRole, RequireStaff, DecisionAllow},
		{"Política liberada não se aplica a rota admin", config.StaffPolicyAnyAuthenticated, noRole, RequireAdmin, DecisionForbidden},
		{"Política liberada ainda manda anônimo para o login", config.StaffPolicyAnyAuthenticated, anonymous, RequireStaff, DecisionRedirectToLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewGate(tt.policy)
			assert.Equal(t, tt.want, gate.Evaluate(tt.session, tt.requirement))
		})
	}
}

func TestSessionFromClaims(t *testing.T) {
	t.Run("Claims válidas viram sessão autenticada com papéis", func(t *testing.T) {
		claims := &domain.Claims{
			UserID:    9,
			UserEmail: "ana@empresa.com.br",
			UserRoles: []domain.Role{domain.RoleStaff},
		}

		session := SessionFromClaims(claims)
		assert.True(t, session.Resolved)
		assert.True(t, session.Authenticated)
		assert.Equal(t, 9, session.UserID)
		assert.True(t, session.HasRole(domain.RoleStaff))
	})

	t.Run("Claims nulas viram sessão anônima resolvida", func(t *testing.T) {
		session := SessionFromClaims(nil)
		assert.True(t, session.Resolved)
		assert.False(t, session.Authenticated)
	})
}
