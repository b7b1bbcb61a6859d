package warehouse

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Client implementa Source sobre o cliente oficial do BigQuery
type Client struct {
	cfg config.BigQuery
	bq  *bigquery.Client
}

func NewClient(ctx context.Context, cfg config.BigQuery) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("warehouse: GOOGLE_CLOUD_PROJECT_ID é obrigatório")
	}

	opts := []option.ClientOption{}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	bq, err := bigquery.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "warehouse: erro ao criar cliente BigQuery")
	}

	return &Client{cfg: cfg, bq: bq}, nil
}

func (c *Client) Close() error {
	return c.bq.Close()
}

// tableRef monta a referência completa `project.dataset.table` para SQL
func (c *Client) tableRef(table string) string {
	return fmt.Sprintf("`%s.%s.%s`", c.cfg.ProjectID, c.cfg.DatasetID, table)
}

// FetchAllRows lê a tabela inteira via storage read. O filtro por período é
// responsabilidade do chamador (agregação client-side, linha a linha).
func (c *Client) FetchAllRows(ctx context.Context, table string) ([]Row, error) {
	it := c.bq.Dataset(c.cfg.DatasetID).Table(table).Read(ctx)
	return drainRows(it, table)
}

// PreviewTable retorna as primeiras limit linhas da tabela
func (c *Client) PreviewTable(ctx context.Context, table string, limit uint64) ([]Row, error) {
	query, _, err := sq.Select("*").
		From(c.tableRef(table)).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "warehouse: erro ao montar consulta de preview")
	}

	return c.RunQuery(ctx, query, nil)
}

// RunQuery executa uma consulta analítica parametrizada no dataset
func (c *Client) RunQuery(ctx context.Context, sql string, params []bigquery.QueryParameter) ([]Row, error) {
	q := c.bq.Query(sql)
	q.Parameters = params

	it, err := q.Read(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "warehouse: erro ao executar consulta")
	}

	return drainRows(it, "")
}

func drainRows(it *bigquery.RowIterator, table string) ([]Row, error) {
	rows := make([]Row, 0)

	for {
		var row Row
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "warehouse: erro ao ler linhas da tabela %s", table)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ListTables lista as tabelas do dataset configurado
func (c *Client) ListTables(ctx context.Context) ([]TableInfo, error) {
	tables := make([]TableInfo, 0)

	it := c.bq.Dataset(c.cfg.DatasetID).Tables(ctx)
	for {
		t, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "warehouse: erro ao listar tabelas")
		}

		md, err := t.Metadata(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "warehouse: erro ao obter metadados da tabela %s", t.TableID)
		}

		tables = append(tables, TableInfo{
			ID:        t.TableID,
			NumRows:   md.NumRows,
			CreatedAt: md.CreationTime,
		})
	}

	return tables, nil
}

// TableSchema retorna o schema de uma tabela do dataset
func (c *Client) TableSchema(ctx context.Context, table string) ([]ColumnInfo, error) {
	md, err := c.bq.Dataset(c.cfg.DatasetID).Table(table).Metadata(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "warehouse: erro ao obter schema da tabela %s", table)
	}

	columns := make([]ColumnInfo, 0, len(md.Schema))
	for _, field := range md.Schema {
		columns = append(columns, ColumnInfo{
			Name:     field.Name,
			Type:     string(field.Type),
			Repeated: field.Repeated,
		})
	}

	return columns, nil
}

// TestConnection verifica acesso ao projeto e a existência do dataset. Erros
// viram status, não erro: o endpoint de health reporta o estado em vez de falhar.
func (c *Client) TestConnection(ctx context.Context) *ConnectionStatus {
	status := &ConnectionStatus{
		ProjectID: c.cfg.ProjectID,
		DatasetID: c.cfg.DatasetID,
		Timestamp: time.Now().UTC(),
	}

	_, err := c.bq.Dataset(c.cfg.DatasetID).Metadata(ctx)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.DatasetExists = true

	tables, err := c.ListTables(ctx)
	if err != nil {
		status.Error = err.Error()
		return status
	}

	for _, t := range tables {
		status.Tables = append(status.Tables, t.ID)
	}

	status.Connected = true
	return status
}
