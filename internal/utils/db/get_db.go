package db

import (
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetDB abre a conexão a partir do ambiente. DATABASE_URL tem
// precedência; caso contrário a conexão é montada campo a campo,
// com credenciais vindas do ambiente ou do Secrets Manager.
func GetDB() (*gorm.DB, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	dbHost := os.Getenv("DB_HOST")
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432 // Default PostgreSQL port
	}

	dbName := os.Getenv("DB_NAME")
	secretID := os.Getenv("DB_SECRET_ID")
	sslDisable := os.Getenv("DB_SSL_MODE_DISABLE") == "true"
	return ConnectDataBase(uint(port), dbHost, dbName, secretID, sslDisable)
}
