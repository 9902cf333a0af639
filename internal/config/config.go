package config

import (
	"os"
	"strconv"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Identity provider configuration
type AuthConfig struct {
	CredentialsFile string
}

// Payment processor configuration
type StripeConfig struct {
	SecretKey string
}

// Cross-origin configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Config holds all application configuration
type Config struct {
	Server            ServerConfig
	Mongo             MongoConfig
	Auth              AuthConfig
	Stripe            StripeConfig
	CORS              CORSConfig
	RequestTimeoutSec int
}

// Default configuration values
const (
	DefaultServerPort        = "3000"
	DefaultServerHost        = ""
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDB           = "realEstate"
	DefaultRequestTimeoutSec = 15
)

// DefaultAllowedOrigins covers local development and the hosted web client.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://real-estate-client-2025.web.app",
	"https://real-estate-client-2025.firebaseapp.com",
}

// New returns a new Config with values from the environment
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("PAYMENT_GATEWAY_KEY", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("ALLOWED_ORIGINS", DefaultAllowedOrigins),
		},
		RequestTimeoutSec: getEnvInt("REQUEST_TIMEOUT_SEC", DefaultRequestTimeoutSec),
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
