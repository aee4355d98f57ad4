package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Secrets and identifiers are strings; durations
// and costs are ints, reflecting how the values are used in the application.
type Config struct {
	Env            string // application environment ("dev" or "prod")
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host address
	DBPort         string // database port number
	DBName         string // database name
	SessionSecret  string // secret used to sign session tokens
	SessionCookie  string // name of the session cookie
	SessionTTLDays int    // session lifetime in days
	BcryptCost     int    // bcrypt cost for password hashing
	UploadDir      string // root directory for uploaded files
	RabbitURL      string // AMQP broker URL (empty disables events)
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"), // empty allowed
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		SessionSecret:  must("SESSION_SECRET"),
		SessionCookie:  getenvDefault("SESSION_COOKIE", "parroquia_session"),
		SessionTTLDays: intDefault("SESSION_TTL_DAYS", 7),
		BcryptCost:     intDefault("BCRYPT_COST", 10),
		UploadDir:      getenvDefault("UPLOAD_DIR", "uploads"),
		RabbitURL:      os.Getenv("RABBITMQ_URL"), // empty disables the event queue
	}
}

// IsProd reports whether the application runs in production mode.  Cookie
// Secure flags and error detail suppression key off this.
func (c Config) IsProd() bool { return c.Env == "prod" }

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
