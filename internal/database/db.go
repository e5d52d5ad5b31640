package database

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"seguranca-backend/internal/config"
	"seguranca-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect abre a conexão com o banco e roda as migrações. O driver é escolhido
// pelo formato do DSN: DSN estilo Postgres usa o driver de Postgres, qualquer
// outra coisa é tratada como caminho de arquivo SQLite (padrão do sistema).
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(openDialector(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Banco de dados inicializado com sucesso")
	return db, nil
}

func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}

	// SQLite em arquivo: garante que o diretório exista antes de abrir
	if dir := filepath.Dir(dsn); dir != "." && dir != "" && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("[WARN] Não foi possível criar o diretório do banco %s: %v", dir, err)
		}
	}
	return sqlite.Open(dsn)
}

// Migrate cria as tabelas que ainda não existem (schema automático no startup).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.Recurso{},
		&models.Incidente{},
		&models.AuditLog{},
	)
}
