package config

import (
	"log"
	"os"
)

// Segredo padrão mantido por compatibilidade com clientes existentes.
// Fraqueza conhecida: o servidor avisa alto quando está em uso.
const DefaultJWTSecret = "wayne_industries_secret_key"

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8000"),
		DatabaseDSN: getEnv("DATABASE_DSN", "./data/wayne_security.db"),
		JWTSecret:   getEnv("SECRET_KEY", DefaultJWTSecret),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}

	if cfg.JWTSecret == DefaultJWTSecret {
		log.Println("[WARN] SECRET_KEY não definido, usando segredo padrão INSEGURO. Defina SECRET_KEY em produção.")
	}
	if cfg.CORSOrigins == "*" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS liberado para qualquer origem, restrinja em produção.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
