package handler

import (
	"io"
	"net/http"

	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/cloutjet/admin-dashboard/internal/usecases/dashboard"
	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
	"github.com/cloutjet/admin-dashboard/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ActionRequest é o corpo opcional das ações de revisão
type ActionRequest struct {
	Notes string `json:"notes"`
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
	ID      string `json:"id"`
}

// decodeOptional aceita corpo vazio
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func ReviewAccount(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		id, action := params.ByName("id"), params.ByName("action")

		var req ActionRequest
		if err := decodeOptional(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		sess, _ := middleware.SessionFromContext(r.Context())
		if err := service.ReviewAccount(r.Context(), sess, id, domain.ReviewAction(action), req.Notes); err != nil {
			handleActionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ActionResponse{Success: true, Action: action, ID: id})
	}
}

func RunEscrowAction(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		id, action := params.ByName("id"), params.ByName("action")

		var req ActionRequest
		if err := decodeOptional(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		sess, _ := middleware.SessionFromContext(r.Context())
		if err := service.RunEscrowAction(r.Context(), sess, id, domain.EscrowAction(action), req.Notes); err != nil {
			handleActionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ActionResponse{Success: true, Action: action, ID: id})
	}
}

func ReviewInfluencer(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		id, action := params.ByName("id"), params.ByName("action")

		var req ActionRequest
		if err := decodeOptional(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		sess, _ := middleware.SessionFromContext(r.Context())
		if err := service.ReviewInfluencer(r.Context(), sess, id, domain.ReviewAction(action), req.Notes); err != nil {
			handleActionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ActionResponse{Success: true, Action: action, ID: id})
	}
}

func AssignOrder(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.AssignOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		sess, _ := middleware.SessionFromContext(r.Context())
		if err := service.AssignOrder(r.Context(), sess, id, req); err != nil {
			handleActionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ActionResponse{Success: true, Action: "assign", ID: id})
	}
}

// handleActionError devolve a mensagem exibida no alerta do diálogo
func handleActionError(w http.ResponseWriter, err error) {
	var actionErr *dashboard.ActionError
	if errors.As(err, &actionErr) {
		apiErrors.WriteError(w, actionErr.Code, actionErr.Message, map[string]string{
			"action":    actionErr.Action,
			"entity":    actionErr.Entity,
			"entity_id": actionErr.EntityID,
		})
		return
	}

	logrus.WithError(err).Error("Erro inesperado ao executar ação")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao executar ação", nil)
}
