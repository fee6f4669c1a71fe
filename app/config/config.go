package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

type Config struct {
	DB            *sql.DB
	SessionSecret string
	Port          string
}

var AppConfig *Config

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DatabaseDSN builds the lib/pq connection string from the environment,
// defaulting to a local development database.
func DatabaseDSN() string {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "academiq")

	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, dbname)
	if password != "" {
		dsn += " password=" + password
	}
	return dsn
}

func InitDB() {
	db, err := sql.Open("postgres", DatabaseDSN())
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:            db,
		SessionSecret: getEnv("SESSION_SECRET", "academiq_secret"),
		Port:          getEnv("PORT", "5000"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetSessionSecret() []byte {
	if AppConfig != nil && AppConfig.SessionSecret != "" {
		return []byte(AppConfig.SessionSecret)
	}
	return []byte(getEnv("SESSION_SECRET", "academiq_secret"))
}

func GetPort() string {
	if AppConfig != nil && AppConfig.Port != "" {
		return AppConfig.Port
	}
	return getEnv("PORT", "5000")
}
