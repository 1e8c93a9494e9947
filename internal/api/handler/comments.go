package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/commenting"
	"github.com/vfg2006/nps-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/nps-dashboard-api/pkg/utils"
)

type AddCommentRequest struct {
	ClientName     string `json:"client_name"`
	Comment        string `json:"comment"`
	EvaluationDate string `json:"evaluation_date"`
	NpsScore       int    `json:"nps_score"`
	Category       string `json:"category"`
	Status         string `json:"status"`
}

type UpdateCommentRequest struct {
	ClientName     *string `json:"client_name"`
	Comment        *string `json:"comment"`
	EvaluationDate *string `json:"evaluation_date"`
	NpsScore       *int    `json:"nps_score"`
	Category       *string `json:"category"`
	Status         *string `json:"status"`
}

// commentFilterFromRequest monta o filtro conjuntivo a partir da query string
func commentFilterFromRequest(r *http.Request) (domain.CommentFilter, error) {
	month, year, err := parsePeriod(r)
	if err != nil {
		return domain.CommentFilter{}, err
	}

	return domain.CommentFilter{
		Month:    month,
		Year:     year,
		Category: domain.CommentCategory(r.URL.Query().Get("category")),
		Search:   r.URL.Query().Get("search"),
	}, nil
}

// ListComments retorna os comentários do período com os filtros ativos
func ListComments(service commenting.CommentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := commentFilterFromRequest(r)
		if err != nil {
			writePeriodError(w)
			return
		}

		comments, err := service.Fetch(r.Context(), filter)
		if err != nil {
			handleCommentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, comments)
	}
}

// AddComment cria um comentário e retorna a lista relida com os filtros ativos
func AddComment(service commenting.CommentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := commentFilterFromRequest(r)
		if err != nil {
			writePeriodError(w)
			return
		}

		var req AddCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		evaluationDate, err := utils.ParseDate(req.EvaluationDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de avaliação inválida, use AAAA-MM-DD", nil)
			return
		}

		input := commenting.AddCommentInput{
			ClientName:     req.ClientName,
			Comment:        req.Comment,
			EvaluationDate: *evaluationDate,
			NpsScore:       req.NpsScore,
			Category:       domain.CommentCategory(req.Category),
			Status:         domain.CommentStatus(req.Status),
		}

		comments, err := service.Add(r.Context(), input, filter)
		if err != nil {
			handleCommentError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, comments)
	}
}

// UpdateComment aplica um update parcial e retorna a lista relida
func UpdateComment(service commenting.CommentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := commentFilterFromRequest(r)
		if err != nil {
			writePeriodError(w)
			return
		}

		id, ok := commentIDFromPath(w, r)
		if !ok {
			return
		}

		var req UpdateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		update := domain.CommentUpdate{
			ClientName: req.ClientName,
			Comment:    req.Comment,
			NpsScore:   req.NpsScore,
		}

		if req.EvaluationDate != nil {
			evaluationDate, err := utils.ParseDate(*req.EvaluationDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de avaliação inválida, use AAAA-MM-DD", nil)
				return
			}
			update.EvaluationDate = evaluationDate
		}

		if req.Category != nil {
			category := domain.CommentCategory(*req.Category)
			update.Category = &category
		}

		if req.Status != nil {
			status := domain.CommentStatus(*req.Status)
			update.Status = &status
		}

		comments, err := service.Update(r.Context(), id, update, filter)
		if err != nil {
			handleCommentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, comments)
	}
}

// DeleteComment remove um comentário e retorna a lista relida
func DeleteComment(service commenting.CommentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := commentFilterFromRequest(r)
		if err != nil {
			writePeriodError(w)
			return
		}

		id, ok := commentIDFromPath(w, r)
		if !ok {
			return
		}

		comments, err := service.Delete(r.Context(), id, filter)
		if err != nil {
			handleCommentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, comments)
	}
}

func commentIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do comentário inválido", nil)
		return 0, false
	}

	return id, true
}

func handleCommentError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados do comentário inválidos", validationErrs.Error())
		return
	}

	switch {
	case errors.Is(err, commenting.ErrInvalidPeriod):
		writePeriodError(w)

	case errors.Is(err, commenting.ErrInvalidCategory):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Categoria desconhecida", nil)

	case errors.Is(err, commenting.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status desconhecido", nil)

	case errors.Is(err, commenting.ErrScoreOutOfRange):
		apiErrors.WriteError(w, apiErrors.ErrOutOfRange, "Nota NPS fora da faixa 0..10", nil)

	case errors.Is(err, repository.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Comentário não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar os comentários", nil)
	}
}
