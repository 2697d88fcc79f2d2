package handler

import (
	"net/http"
	"strconv"

	"github.com/cloutjet/admin-dashboard/internal/usecases/dashboard"
	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetAuditLog lista as últimas ações administrativas registradas
func GetAuditLog(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número", nil)
				return
			}
			limit = parsed
		}

		actions, err := service.AuditLog(r.Context(), limit)
		if err != nil {
			if errors.Is(err, dashboard.ErrAuditDisabled) {
				apiErrors.WriteError(w, apiErrors.ErrFeatureDisabled, "Auditoria desligada", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao listar auditoria")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar auditoria", nil)
			return
		}

		writeJSON(w, http.StatusOK, actions)
	}
}
