package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	BigQuery BigQuery `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// BigQuery aponta para o dataset do warehouse e as três tabelas de origem.
// Cada "serviço" da API é uma leitura agregada sobre uma dessas tabelas.
type BigQuery struct {
	ProjectID       string `mapstructure:"google_cloud_project_id"`
	DatasetID       string `mapstructure:"bigquery_dataset_id"`
	CredentialsFile string `mapstructure:"google_application_credentials"`
	GoogleTable     string `mapstructure:"bigquery_google_table"`
	MetaTable       string `mapstructure:"bigquery_meta_table"`
	OrdersTable     string `mapstructure:"bigquery_orders_table"`
}

// Auth guarda a credencial única do dashboard. Em produção usa-se o hash
// bcrypt; a senha em texto plano existe apenas para desenvolvimento local.
type Auth struct {
	DashboardPassword     string `mapstructure:"dashboard_password"`
	DashboardPasswordHash string `mapstructure:"dashboard_password_hash"`
	SecretKey             string `mapstructure:"jwt_secret"`
	TokenTTLHours         int    `mapstructure:"token_ttl_hours"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GOOGLE_CLOUD_PROJECT_ID", "")
	viper.SetDefault("BIGQUERY_DATASET_ID", "marketing")
	viper.SetDefault("GOOGLE_APPLICATION_CREDENTIALS", "")

	// Nomes das tabelas conforme os conectores que alimentam o dataset
	viper.SetDefault("BIGQUERY_GOOGLE_TABLE", "account_performance_report")
	viper.SetDefault("BIGQUERY_META_TABLE", "ads_insights")
	viper.SetDefault("BIGQUERY_ORDERS_TABLE", "shopify_orders")

	viper.SetDefault("DASHBOARD_PASSWORD", "")
	viper.SetDefault("DASHBOARD_PASSWORD_HASH", "")
	viper.SetDefault("JWT_SECRET", "your_secret_key")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
