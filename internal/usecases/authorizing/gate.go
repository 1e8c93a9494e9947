package authorizing

import (
	"github.com/vfg2006/nps-dashboard-api/internal/config"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
)

// Session é o estado de autenticação visto pelo gate. Resolved separa
// "ainda não sei quem é" de "sei que não há ninguém": enquanto a sessão não
// resolve, o gate manda esperar em vez de redirecionar.
type Session struct {
	Resolved      bool
	Authenticated bool
	UserID        int
	Email         string
	Roles         []domain.Role
}

// HasRole verifica se a sessão carrega o papel informado
func (s Session) HasRole(role domain.Role) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Requirement é o nível de acesso exigido por uma rota
type Requirement int

const (
	// RequireStaff libera staff e admin
	RequireStaff Requirement = iota
	// RequireAdmin libera apenas admin
	RequireAdmin
)

// Decision é o veredito do gate para uma sessão frente a um requisito
type Decision int

const (
	// DecisionAllow libera o acesso
	DecisionAllow Decision = iota
	// DecisionWait segura a requisição até a sessão resolver
	DecisionWait
	// DecisionRedirectToLogin manda a sessão anônima para o login
	DecisionRedirectToLogin
	// DecisionPendingApproval bloqueia conta autenticada sem papel atribuído
	DecisionPendingApproval
	// DecisionForbidden bloqueia conta autenticada sem o papel exigido
	DecisionForbidden
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionWait:
		return "wait"
	case DecisionRedirectToLogin:
		return "redirect_to_login"
	case DecisionPendingApproval:
		return "pending_approval"
	case DecisionForbidden:
		return "forbidden"
	}
	return "unknown"
}

// Gate decide o acesso a partir da sessão, do requisito e da política de
// acesso staff vigente. É uma função pura: toda a informação necessária chega
// pelos argumentos, nada é consultado fora deles.
type Gate struct {
	staffPolicy string
}

func NewGate(staffPolicy string) *Gate {
	return &Gate{staffPolicy: staffPolicy}
}

// Evaluate aplica o gate na ordem fixa: sessão não resolvida espera, sessão
// anônima vai para o login e só então os papéis entram em jogo. Admin sempre
// satisfaz o requisito de staff.
func (g *Gate) Evaluate(session Session, requirement Requirement) Decision {
	if !session.Resolved {
		return DecisionWait
	}

	if !session.Authenticated {
		return DecisionRedirectToLogin
	}

	switch requirement {
	case RequireAdmin:
		if session.HasRole(domain.RoleAdmin) {
			return DecisionAllow
		}
		return DecisionForbidden

	case RequireStaff:
		if g.staffPolicy == config.StaffPolicyAnyAuthenticated {
			return DecisionAllow
		}
		if session.HasRole(domain.RoleAdmin) || session.HasRole(domain.RoleStaff) {
			return DecisionAllow
		}
		return DecisionPendingApproval
	}

	return DecisionForbidden
}

// SessionFromClaims converte as claims de um JWT válido em sessão resolvida
// e autenticada. Sessão anônima resolvida é o valor zero com Resolved ligado.
func SessionFromClaims(claims *domain.Claims) Session {
	if claims == nil {
		return Session{Resolved: true}
	}

	return Session{
		Resolved:      true,
		Authenticated: true,
		UserID:        claims.UserID,
		Email:         claims.UserEmail,
		Roles:         claims.UserRoles,
	}
}
