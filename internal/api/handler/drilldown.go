package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
)

func GetDrilldown(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeDateRange(w, r)
		if !ok {
			return
		}

		result, err := service.Drilldown(r.Context(), req.StartDate, req.EndDate)
		if err != nil {
			logrus.WithError(err).Error("handler: erro ao montar drilldown por conta")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao consultar drilldown", nil)
			return
		}

		writeJSON(w, result)
	}
}
