package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/cloutjet/admin-dashboard/infrastructure/database/postgres"
	"github.com/cloutjet/admin-dashboard/infrastructure/repository"
	"github.com/cloutjet/admin-dashboard/internal/config"
)

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return repository.CreateAuditSchema(ctx, tx)
	})
	if err != nil {
		log.Fatalf("ERRO ao criar tabela admin_actions: %v", err)
	}

	log.Printf("Tabela admin_actions pronta em %v", time.Since(startTime))
}
