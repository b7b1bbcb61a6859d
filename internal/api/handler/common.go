package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DateRangeRequest é o corpo comum dos endpoints de métricas: um intervalo
// inclusivo em YYYY-MM-DD
type DateRangeRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// decodeDateRange decodifica e valida o corpo da requisição. Em caso de erro a
// resposta já foi escrita e o handler deve retornar.
func decodeDateRange(w http.ResponseWriter, r *http.Request) (DateRangeRequest, bool) {
	var req DateRangeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return req, false
	}

	if err := utils.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
		return req, false
	}

	return req, true
}

// writeJSON serializa a resposta de sucesso
func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("handler: erro ao serializar resposta")
	}
}
