package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/warehouse"
	"github.com/vfg2006/marketing-dashboard-api/internal/api"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/trending"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := bqsource(ctx, cfg)
	defer source.Close()

	authenticator := authenticating.NewService(cfg)

	insightService := insighting.NewService(cfg, source)
	orderService := ordering.NewService(cfg, source, insightService)
	trendService := trending.NewService(insightService, orderService)

	server, err := api.New(
		cfg,
		source,
		insightService,
		orderService,
		trendService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// bqsource cria o cliente do BigQuery e valida a conectividade no boot
func bqsource(ctx context.Context, cfg *config.Config) *warehouse.Client {
	client, err := warehouse.NewClient(ctx, cfg.BigQuery)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao BigQuery")
	}

	status := client.TestConnection(ctx)
	if !status.Connected {
		logrus.WithField("error", status.Error).Warn("BigQuery indisponível no boot, seguindo mesmo assim")
	} else {
		logrus.WithFields(logrus.Fields{
			"project": status.ProjectID,
			"dataset": status.DatasetID,
		}).Info("Conexão com BigQuery estabelecida com sucesso")
	}

	return client
}
