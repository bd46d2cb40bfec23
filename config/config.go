package config

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	URL              string
	DatabaseName     string
	BaseURL          string
	Port             string
	ReminderTimezone string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("APP_ENV"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	tz := os.Getenv("REMINDER_TZ")
	if tz == "" {
		tz = "Asia/Kolkata"
	}

	return &Config{
		URL:              os.Getenv("DB_URI"),
		DatabaseName:     os.Getenv("DB_NAME"),
		BaseURL:          os.Getenv("BASE_URL"),
		Port:             os.Getenv("PORT"),
		ReminderTimezone: tz,
	}

}

// setLogger returns the zap logger matching the deployment environment
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	ErrorCode(message, httpStatusCode, "", w, err)
}

// ErrorCode behaves like ErrorStatus and additionally tags the response body
// with a machine-readable error code from the models error taxonomy
func ErrorCode(message string, httpStatusCode int, code string, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	if code == "" {
		w.Write([]byte(fmt.Sprintf(`{"error": "%s"}`, message)))
		return
	}
	w.Write([]byte(fmt.Sprintf(`{"error": "%s", "code": "%s"}`, message, code)))
}
