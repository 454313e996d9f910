package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabasePath string
	EnvFile      string
	LogLevel     string
	LogFile      string

	// HTTP inspection service
	Host         string
	Port         int
	AllowOrigins []string
	MaxBodyMB    int

	// bot identity, shown by admin-status
	AdminTelegramID int64
	BusinessName    string
	ContactPhone    string
	ContactEmail    string
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8084"))
	mb, _ := strconv.Atoi(getenv("MAX_BODY_MB", "16"))
	adminID, _ := strconv.ParseInt(getenv("ADMIN_TELEGRAM_ID", "0"), 10, 64)
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		DatabasePath:    getenv("DATABASE_PATH", "database/bluepharma.db"),
		EnvFile:         getenv("ENV_FILE", ".env"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFile:         getenv("LOG_FILE", "logs/pharmatool.log"),
		Host:            getenv("HOST", "127.0.0.1"),
		Port:            port,
		AllowOrigins:    origins,
		MaxBodyMB:       mb,
		AdminTelegramID: adminID,
		BusinessName:    getenv("BUSINESS_NAME", "Blue Pharma Trading PLC"),
		ContactPhone:    getenv("CONTACT_PHONE", ""),
		ContactEmail:    getenv("CONTACT_EMAIL", ""),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
