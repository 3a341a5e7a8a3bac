package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config concentra toda la configuración por entorno.
// Defaults pensados para dev local: store in-memory, zona de Seúl.
type Config struct {
	ListenAddr string

	// Storage: si DBDSN viene, Postgres; si no y DataDir viene,
	// documento JSON en disco; si no, in-memory.
	DBDSN   string
	DataDir string

	PhotoDir string

	// Zona horaria civil para todo el cálculo de fechas.
	Timezone string

	// Secreto HMAC para tokens de sesión. Vacío => se genera uno
	// efímero al arrancar (las sesiones no sobreviven reinicios).
	SessionSecret  string
	SessionTTLDays int

	LogLevel  string
	LogFormat string
	AppName   string
}

func Load() *Config {
	// .env opcional; en prod las vars vienen del entorno real
	_ = godotenv.Load()

	return &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		DBDSN:          getEnv("DB_DSN", ""),
		DataDir:        getEnv("DATA_DIR", ""),
		PhotoDir:       getEnv("PHOTO_DIR", "data/pet_photos"),
		Timezone:       getEnv("APP_TIMEZONE", "Asia/Seoul"),
		SessionSecret:  getEnv("SESSION_SECRET", ""),
		SessionTTLDays: getEnvInt("SESSION_TTL_DAYS", 30),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		AppName:        getEnv("APP_NAME", "petmate"),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
