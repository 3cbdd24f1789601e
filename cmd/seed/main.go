package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/seed"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ID de correlação amarra todos os logs desta execução de carga
	ctx, correlationID := log.WithCorrelationID(ctx)
	logrus.Infof("Iniciando carga inicial (correlation_id: %s)", correlationID)

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := seed.New(pgConn).Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar a carga inicial do banco")
	}

	logrus.Info("Banco de dados populado com sucesso")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
