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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Provider     Provider     `mapstructure:",squash"`
	WorkflowSync WorkflowSync `mapstructure:",squash"`
	EventSync    EventSync    `mapstructure:",squash"`
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

// Provider agrupa as configurações dos provedores externos de entrega
type Provider struct {
	EmailURL       string `mapstructure:"provider_email_url"`
	EmailToken     string `mapstructure:"provider_email_token"`
	SMSURL         string `mapstructure:"provider_sms_url"`
	SMSToken       string `mapstructure:"provider_sms_token"`
	SocialURL      string `mapstructure:"provider_social_url"`
	SocialToken    string `mapstructure:"provider_social_token"`
	TimeoutSeconds int    `mapstructure:"provider_timeout_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// WorkflowSync configura o worker de passos de workflow com atraso
type WorkflowSync struct {
	IntervalSeconds int  `mapstructure:"workflow_sync_interval_seconds"`
	BatchSize       int  `mapstructure:"workflow_sync_batch_size"`
	Enabled         bool `mapstructure:"workflow_sync_enabled"`
}

// EventSync configura a varredura periódica de eventos pendentes
type EventSync struct {
	IntervalSeconds int  `mapstructure:"event_sync_interval_seconds"`
	BatchSize       int  `mapstructure:"event_sync_batch_size"`
	Enabled         bool `mapstructure:"event_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/crm_marketing")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PROVIDER_EMAIL_URL", "http://localhost:9101")
	viper.SetDefault("PROVIDER_EMAIL_TOKEN", "your_email_token")
	viper.SetDefault("PROVIDER_SMS_URL", "http://localhost:9102")
	viper.SetDefault("PROVIDER_SMS_TOKEN", "your_sms_token")
	viper.SetDefault("PROVIDER_SOCIAL_URL", "http://localhost:9103")
	viper.SetDefault("PROVIDER_SOCIAL_TOKEN", "your_social_token")
	viper.SetDefault("PROVIDER_TIMEOUT_SECONDS", 10)

	// Defaults do worker de workflows
	viper.SetDefault("WORKFLOW_SYNC_INTERVAL_SECONDS", 60) // Varredura a cada minuto
	viper.SetDefault("WORKFLOW_SYNC_BATCH_SIZE", 100)
	viper.SetDefault("WORKFLOW_SYNC_ENABLED", true)

	// Defaults da varredura de eventos
	viper.SetDefault("EVENT_SYNC_INTERVAL_SECONDS", 60)
	viper.SetDefault("EVENT_SYNC_BATCH_SIZE", 100)
	viper.SetDefault("EVENT_SYNC_ENABLED", true)

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
