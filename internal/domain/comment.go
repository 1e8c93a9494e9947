package domain

import (
	"time"
)

// CommentCategory classifica um comentário de avaliação
type CommentCategory string

const (
	CategoryBug      CommentCategory = "bug"
	CategoryElogio   CommentCategory = "elogio"
	CategorySugestao CommentCategory = "sugestao"
	CategoryRota     CommentCategory = "rota"
	CategorySuporte  CommentCategory = "suporte"
)

// CommentStatus indica o tratamento dado ao comentário
type CommentStatus string

const (
	StatusResolvido CommentStatus = "resolvido"
	StatusEmAnalise CommentStatus = "em_analise"
	StatusPendente  CommentStatus = "pendente"
)

// ValidCommentCategory verifica se a categoria pertence ao enum conhecido
func ValidCommentCategory(c CommentCategory) bool {
	switch c {
	case CategoryBug, CategoryElogio, CategorySugestao, CategoryRota, CategorySuporte:
		return true
	}
	return false
}

// ValidCommentStatus verifica se o status pertence ao enum conhecido
func ValidCommentStatus(s CommentStatus) bool {
	switch s {
	case StatusResolvido, StatusEmAnalise, StatusPendente:
		return true
	}
	return false
}

// Comment é um feedback de cliente com nota NPS de 0 a 10.
// month/year são desnormalizados de evaluation_date para consultas por janela.
type Comment struct {
	ID             int64           `json:"id"`
	ClientName     string          `json:"client_name"`
	Comment        string          `json:"comment"`
	EvaluationDate time.Time       `json:"evaluation_date"`
	NpsScore       int             `json:"nps_score"`
	Category       CommentCategory `json:"category"`
	Status         CommentStatus   `json:"status"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CommentFilter descreve a janela e os filtros conjuntivos de busca de comentários.
// Category vazio e Search vazio são no-ops.
type CommentFilter struct {
	Month    int
	Year     int
	Category CommentCategory
	Search   string
}

// CommentUpdate carrega os campos mutáveis de um comentário em um update parcial.
// Campos nil são mantidos como estão.
type CommentUpdate struct {
	ClientName     *string          `json:"client_name"`
	Comment        *string          `json:"comment"`
	EvaluationDate *time.Time       `json:"evaluation_date"`
	NpsScore       *int             `json:"nps_score"`
	Category       *CommentCategory `json:"category"`
	Status         *CommentStatus   `json:"status"`
}
