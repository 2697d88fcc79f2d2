package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// Job é um agendador que pode ser disparado manualmente
type Job interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// JobServices associa o tipo usado na URL ao agendador
type JobServices map[string]Job

// RunJob executa manualmente um job específico
func RunJob(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if jobType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de job não especificado", nil)
			return
		}

		job, ok := services[jobType]
		if !ok || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
			return
		}

		logrus.WithField("job", jobType).Info("Execução manual de job solicitada")
		job.TriggerManualSync()

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Job iniciado com sucesso",
			"type":    jobType,
		})
	}
}

// GetJobsStatus retorna o status de todos os jobs
func GetJobsStatus(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for jobType, job := range services {
			if job != nil {
				status[jobType] = job.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func (s JobServices) types() []string {
	types := make([]string, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
