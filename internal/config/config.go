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
	App      App      `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Demo     Demo     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Database concentra a conexão e o ajuste do pool. Os valores padrão do pool
// são 10 conexões, 10 ociosas, 60s de timeout de ociosidade e fila
// ilimitada.
type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Host          string `mapstructure:"database_host"`
	User          string `mapstructure:"database_user"`
	Password      string `mapstructure:"database_password"`
	Name          string `mapstructure:"database_name"`
	SSLMode       string `mapstructure:"database_sslmode"`
	MaxOpenConns  int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns  int    `mapstructure:"database_max_idle_conns"`
	IdleTimeoutMs int    `mapstructure:"database_idle_timeout_ms"`
	// QueueLimit 0 significa fila de espera ilimitada quando todas as conexões
	// estão em uso; é o único valor alcançável com database/sql.
	QueueLimit int `mapstructure:"database_queue_limit"`
	// KeepAlive existe por paridade com a configuração de origem; o net.Dialer
	// do Go já envia TCP keep-alive por padrão.
	KeepAlive bool `mapstructure:"database_keepalive"`
}

// Demo controla o atraso artificial usado para demonstrar estados de
// carregamento na UI. Desligado (0/0) por padrão.
type Demo struct {
	SimulateLatencyMinMs int `mapstructure:"simulate_latency_min_ms"`
	SimulateLatencyMaxMs int `mapstructure:"simulate_latency_max_ms"`
}

func SetDefaults() {
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_HOST", "localhost:5432")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_NAME", "dashboard")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 10)
	viper.SetDefault("DATABASE_IDLE_TIMEOUT_MS", 60000)
	viper.SetDefault("DATABASE_QUEUE_LIMIT", 0)
	viper.SetDefault("DATABASE_KEEPALIVE", true)

	viper.SetDefault("SIMULATE_LATENCY_MIN_MS", 0)
	viper.SetDefault("SIMULATE_LATENCY_MAX_MS", 0)

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
		"%s://%s:%s@%s/%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.Host,
		config.Database.Name,
		config.Database.SSLMode,
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

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
