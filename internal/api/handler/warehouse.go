package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/warehouse"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
)

// WarehouseHealth testa a conectividade com o BigQuery e devolve o diagnóstico
// sempre com 200: o status vai no corpo, não no código HTTP
func WarehouseHealth(source warehouse.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := source.TestConnection(r.Context())
		writeJSON(w, status)
	}
}

// WarehouseTables lista as tabelas do dataset configurado
func WarehouseTables(source warehouse.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables, err := source.ListTables(r.Context())
		if err != nil {
			logrus.WithError(err).Error("handler: erro ao listar tabelas do warehouse")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseUnavailable, "Erro ao listar tabelas", nil)
			return
		}

		writeJSON(w, map[string]any{
			"success": true,
			"tables":  tables,
		})
	}
}

// WarehouseTableSchema devolve o schema de uma tabela do dataset
func WarehouseTableSchema(source warehouse.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := httprouter.ParamsFromContext(r.Context()).ByName("table")
		if table == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da tabela não fornecido", nil)
			return
		}

		schema, err := source.TableSchema(r.Context(), table)
		if err != nil {
			logrus.WithError(err).WithField("table", table).Error("handler: erro ao obter schema da tabela")
			apiErrors.WriteError(w, apiErrors.ErrTableNotFound, "Erro ao obter schema da tabela", nil)
			return
		}

		writeJSON(w, map[string]any{
			"success": true,
			"table":   table,
			"schema":  schema,
		})
	}
}

const defaultPreviewLimit = 10

// WarehouseTablePreview devolve as primeiras linhas de uma tabela do dataset
func WarehouseTablePreview(source warehouse.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := httprouter.ParamsFromContext(r.Context()).ByName("table")
		if table == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da tabela não fornecido", nil)
			return
		}

		limit := uint64(defaultPreviewLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		rows, err := source.PreviewTable(r.Context(), table, limit)
		if err != nil {
			logrus.WithError(err).WithField("table", table).Error("handler: erro ao fazer preview da tabela")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao fazer preview da tabela", nil)
			return
		}

		writeJSON(w, map[string]any{
			"success": true,
			"table":   table,
			"rows":    rows,
		})
	}
}
