package warehouse

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
)

// Row é uma linha crua do warehouse: mapeamento coluna -> valor. Valores podem
// chegar como primitivos, civil.Date, ou strings com JSON embutido — a
// normalização acontece na borda dos usecases, nunca aqui.
type Row = map[string]bigquery.Value

// TableInfo descreve uma tabela do dataset
type TableInfo struct {
	ID        string    `json:"table_id"`
	NumRows   uint64    `json:"num_rows"`
	CreatedAt time.Time `json:"created_at"`
}

// ColumnInfo descreve uma coluna do schema de uma tabela
type ColumnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Repeated bool   `json:"repeated"`
}

// ConnectionStatus é o resultado do probe de conectividade com o BigQuery
type ConnectionStatus struct {
	Connected     bool      `json:"connected"`
	ProjectID     string    `json:"project_id"`
	DatasetID     string    `json:"dataset_id"`
	DatasetExists bool      `json:"dataset_exists"`
	Tables        []string  `json:"tables,omitempty"`
	Error         string    `json:"error,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Source é a fronteira de acesso ao warehouse consumida pelos usecases.
// Falha de fetch propaga intacta: os usecases não têm fonte alternativa.
type Source interface {
	// FetchAllRows retorna todas as linhas da tabela, sem garantia de ordem
	FetchAllRows(ctx context.Context, table string) ([]Row, error)
	// PreviewTable retorna as primeiras limit linhas da tabela
	PreviewTable(ctx context.Context, table string, limit uint64) ([]Row, error)
	// RunQuery executa uma consulta analítica parametrizada
	RunQuery(ctx context.Context, sql string, params []bigquery.QueryParameter) ([]Row, error)
	// ListTables lista as tabelas do dataset configurado
	ListTables(ctx context.Context) ([]TableInfo, error)
	// TableSchema retorna o schema de uma tabela
	TableSchema(ctx context.Context, table string) ([]ColumnInfo, error)
	// TestConnection verifica acesso ao projeto/dataset
	TestConnection(ctx context.Context) *ConnectionStatus
}
