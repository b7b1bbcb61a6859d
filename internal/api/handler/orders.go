package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
)

func GetOrders(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeDateRange(w, r)
		if !ok {
			return
		}

		totals, err := service.Orders(r.Context(), req.StartDate, req.EndDate)
		if err != nil {
			logrus.WithError(err).Error("handler: erro ao contar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao consultar pedidos", nil)
			return
		}

		writeJSON(w, totals)
	}
}

func GetNetRevenue(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeDateRange(w, r)
		if !ok {
			return
		}

		revenue, err := service.NetRevenue(r.Context(), req.StartDate, req.EndDate)
		if err != nil {
			logrus.WithError(err).Error("handler: erro ao calcular receita líquida")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao consultar receita", nil)
			return
		}

		writeJSON(w, revenue)
	}
}

func GetReturnOrders(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeDateRange(w, r)
		if !ok {
			return
		}

		totals, err := service.ReturnOrders(r.Context(), req.StartDate, req.EndDate)
		if err != nil {
			logrus.WithError(err).Error("handler: erro ao contar devoluções")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao consultar devoluções", nil)
			return
		}

		writeJSON(w, totals)
	}
}

func GetMER(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeDateRange(w, r)
		if !ok {
			return
		}

		breakdown, err := service.MER(r.Context(), req.StartDate, req.EndDate)
		if err != nil {
			logrus.WithError(err).Error("handler: erro ao calcular MER")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao calcular MER", nil)
			return
		}

		writeJSON(w, breakdown)
	}
}

func ExportOrders(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeDateRange(w, r)
		if !ok {
			return
		}

		export, err := service.Export(r.Context(), req.StartDate, req.EndDate)
		if err != nil {
			logrus.WithError(err).Error("handler: erro ao exportar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao exportar pedidos", nil)
			return
		}

		writeJSON(w, export)
	}
}
