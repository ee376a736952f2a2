package config

import (
	"strings"

	"github.com/jinzhu/configor"
)

type Config struct {
	AppConfig      AppConfig      `env:"APPCONFIG"`
	DBConfig       DBConfig       `env:"DBCONFIG"`
	AuthConfig     AuthConfig     `env:"AUTHCONFIG"`
	GeminiConfig   GeminiConfig   `env:"GEMINICONFIG"`
	FirebaseConfig FirebaseConfig `env:"FIREBASECONFIG"`
}

type AppConfig struct {
	APPName           string `default:"hobbyconnect"`
	Port              int    `default:"8080" env:"APP_PORT"`
	CORSOriginsString string `default:"*" env:"CORS_ORIGINS"`
	CORSOrigins       []string
	LogLevel          string `default:"info" env:"LOG_LEVEL"`
}

type DBConfig struct {
	Host     string `env:"DBHOST"`
	DataBase string `default:"hobbyconnect" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `env:"DBPASSWORD"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
	// SQLitePath is used when Host is empty (local development).
	SQLitePath string `default:"hobbyconnect.db" env:"SQLITE_PATH"`
}

type AuthConfig struct {
	JWTSecret     string `default:"dev-secret-change-me" env:"JWT_SECRET"`
	TokenTTLHours int    `default:"168" env:"TOKEN_TTL_HOURS"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `default:"gemini-2.5-flash" env:"GEMINI_MODEL"`
}

type FirebaseConfig struct {
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE"`
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	config.AppConfig.CORSOrigins = strings.Split(config.AppConfig.CORSOriginsString, ",")

	return config
}
