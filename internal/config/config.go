package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jellydator/validation"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey           = "API_PORT"
	dbConnEnvKey            = "DB_CONNECTION_URL"
	logLevelEnvKey          = "LOG_LEVEL"
	bcryptCostEnvKey        = "BCRYPT_COST"
	passwordMinLenEnvKey    = "PASSWORD_MIN_LENGTH"
	sessionTokenBytesEnvKey = "SESSION_TOKEN_BYTES"
	sessionTokenTriesEnvKey = "SESSION_TOKEN_ATTEMPTS"
)

const (
	defaultLogLevel          = "info"
	defaultPasswordMinLength = 6
	defaultSessionTokenBytes = 16
	defaultSessionTokenTries = 10
)

type App struct {
	Port                 string
	DBConnectionURL      string
	LogLevel             string
	BcryptCost           int
	PasswordMinLength    int
	SessionTokenBytes    int
	SessionTokenAttempts int
}

// NewApp reads the application configuration from the environment. A .env file in the working
// directory is loaded first when present; variables already set in the environment win.
func NewApp() (App, error) {
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	logLevel, ok := os.LookupEnv(logLevelEnvKey)
	if !ok {
		logLevel = defaultLogLevel
	}

	cost, err := intFromEnv(bcryptCostEnvKey, bcrypt.DefaultCost)
	if err != nil {
		return App{}, err
	}

	minLen, err := intFromEnv(passwordMinLenEnvKey, defaultPasswordMinLength)
	if err != nil {
		return App{}, err
	}

	tokenBytes, err := intFromEnv(sessionTokenBytesEnvKey, defaultSessionTokenBytes)
	if err != nil {
		return App{}, err
	}

	tokenTries, err := intFromEnv(sessionTokenTriesEnvKey, defaultSessionTokenTries)
	if err != nil {
		return App{}, err
	}

	app := App{
		Port:                 port,
		DBConnectionURL:      dbConn,
		LogLevel:             logLevel,
		BcryptCost:           cost,
		PasswordMinLength:    minLen,
		SessionTokenBytes:    tokenBytes,
		SessionTokenAttempts: tokenTries,
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.BcryptCost, validation.Min(bcrypt.MinCost), validation.Max(bcrypt.MaxCost)),
		validation.Field(&a.PasswordMinLength, validation.Min(1)),
		validation.Field(&a.SessionTokenBytes, validation.Min(defaultSessionTokenBytes)),
		validation.Field(&a.SessionTokenAttempts, validation.Min(1)),
	)
}

func intFromEnv(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return value, nil
}
