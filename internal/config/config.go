package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	OpenAI          OpenAI          `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	InsightSync     InsightSync     `mapstructure:",squash"`
	RiskExpirySweep RiskExpirySweep `mapstructure:",squash"`
	Seeder          Seeder          `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// OpenAI define a configuração do provedor de IA (API compatível com OpenAI)
type OpenAI struct {
	BaseURL        string `mapstructure:"openai_base_url"`
	APIKey         string `mapstructure:"openai_api_key"`
	Model          string `mapstructure:"openai_model"`
	TimeoutSeconds int    `mapstructure:"openai_timeout_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type InsightSync struct {
	CronSchedule string `mapstructure:"insight_sync_cron"`
	Enabled      bool   `mapstructure:"insight_sync_enabled"`
}

type RiskExpirySweep struct {
	CronSchedule string `mapstructure:"risk_expiry_sweep_cron"`
	Enabled      bool   `mapstructure:"risk_expiry_sweep_enabled"`
}

// Seeder define os padrões da carga de dados sintéticos
type Seeder struct {
	Customers    int   `mapstructure:"seeder_customers"`
	Seed         int64 `mapstructure:"seeder_seed"`
	BatchSize    int   `mapstructure:"seeder_batch_size"`
	Transactions int   `mapstructure:"seeder_max_transactions_per_customer"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bankintel")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "") // vazio desabilita as chamadas de IA (fallback por regras)
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para regeneração de insights do portfólio
	viper.SetDefault("INSIGHT_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("INSIGHT_SYNC_ENABLED", false)

	// Defaults para expiração de avaliações de risco
	viper.SetDefault("RISK_EXPIRY_SWEEP_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RISK_EXPIRY_SWEEP_ENABLED", false)

	// Defaults do seeder de dados sintéticos
	viper.SetDefault("SEEDER_CUSTOMERS", 200)
	viper.SetDefault("SEEDER_SEED", 0) // 0 = usar o relógio (não reproduzível)
	viper.SetDefault("SEEDER_BATCH_SIZE", 50)
	viper.SetDefault("SEEDER_MAX_TRANSACTIONS_PER_CUSTOMER", 40)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
