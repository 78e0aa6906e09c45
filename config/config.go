package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SMTPConfig struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromEmail string
}

type StorageConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
}

type AppConfig struct {
	Port        string
	Database    DatabaseConfig
	SMTP        SMTPConfig
	Storage     StorageConfig
	JWTSecret   string
	Environment string
	InviteBase  string   // base URL embedded in team invite links
	CORSOrigins []string // browser origins allowed to call the API
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	password := getEnv("DB_PASSWORD", "")

	if password == "" {
		fmt.Println("Warning: DB_PASSWORD environment variable is not set.")
	}

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: password,
		DBName:   getEnv("DB_NAME", "talenthub"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func GetSMTPConfig() SMTPConfig {
	return SMTPConfig{
		Host:      getEnv("SMTP_HOST", ""),
		Port:      getEnv("SMTP_PORT", "587"),
		Username:  getEnv("SMTP_USERNAME", ""),
		Password:  getEnv("SMTP_PASSWORD", ""),
		FromEmail: getEnv("FROM_EMAIL", "no-reply@talenthub.local"),
	}
}

func GetStorageConfig() StorageConfig {
	return StorageConfig{
		AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		Region:    getEnv("AWS_REGION", ""),
		Bucket:    getEnv("AWS_S3_BUCKET", ""),
	}
}

func GetAppConfig() AppConfig {
	return AppConfig{
		Port:        getEnv("PORT", "8081"),
		Database:    GetDatabaseConfig(),
		SMTP:        GetSMTPConfig(),
		Storage:     GetStorageConfig(),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		Environment: getEnv("ENVIRONMENT", "development"),
		InviteBase:  getEnv("INVITE_BASE_URL", "http://localhost:3000/invite"),
		CORSOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
