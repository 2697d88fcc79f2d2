package handler

import (
	"net/http"

	"github.com/cloutjet/admin-dashboard/internal/usecases/dashboard"
	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
	"github.com/cloutjet/admin-dashboard/pkg/middleware"
)

// GetOverview exige sessão; sem ela o cliente recebe o destino do login
func GetOverview(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.SessionFromContext(r.Context())

		view, err := service.Overview(r.Context(), sess)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão ausente, faça login novamente", map[string]string{
				"redirect": dashboard.LoginRedirect,
			})
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func GetAccounts(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.SessionFromContext(r.Context())
		writeJSON(w, http.StatusOK, service.Accounts(r.Context(), sess))
	}
}

func GetEscrow(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.SessionFromContext(r.Context())
		writeJSON(w, http.StatusOK, service.Escrow(r.Context(), sess))
	}
}

func GetInfluencers(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.SessionFromContext(r.Context())
		writeJSON(w, http.StatusOK, service.Influencers(r.Context(), sess))
	}
}

func GetOrders(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.SessionFromContext(r.Context())
		writeJSON(w, http.StatusOK, service.Orders(r.Context(), sess))
	}
}

func GetAssignableInfluencers(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.SessionFromContext(r.Context())
		writeJSON(w, http.StatusOK, service.AssignableInfluencers(r.Context(), sess))
	}
}
