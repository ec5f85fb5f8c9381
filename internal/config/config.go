package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"required"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string
	APIKey      string // Optional; when set the API requires X-API-Key

	// Peers whose X-Forwarded-For header is trusted
	TrustedProxies []string

	// Static catalog override; empty uses the embedded default
	CatalogPath string

	// Save persistence
	SaveBackend string `validate:"oneof=memory file sqlite postgres"`
	SaveDir     string `validate:"required_if=SaveBackend file"`
	SQLitePath  string `validate:"required_if=SaveBackend sqlite"`
	SaveSlots   int    `validate:"min=1,max=20"`

	// Postgres save backend
	DatabaseURL string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBMaxConns  int `validate:"min=1"`

	// Auto-save
	AutoSaveEnabled  bool
	AutoSaveInterval time.Duration `validate:"gt=0"`

	// Simulation loop
	TickInterval         time.Duration `validate:"gt=0"`
	MinutesPerTick       int           `validate:"min=1"`
	PatienceTickInterval time.Duration `validate:"gt=0"`
	CustomerSpawnEvery   time.Duration `validate:"gt=0"`

	JournalSize int   `validate:"min=1"`
	RandomSeed  int64 // 0 seeds from the wall clock
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		APIKey:      getEnv("API_KEY", ""),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		CatalogPath: getEnv("CATALOG_PATH", ""),

		SaveBackend: strings.ToLower(getEnv("SAVE_BACKEND", BackendMemory)),
		SaveDir:     getEnv("SAVE_DIR", DefaultSaveDir),
		SQLitePath:  getEnv("SQLITE_PATH", DefaultSQLitePath),
		SaveSlots:   getEnvAsInt("SAVE_SLOTS", DefaultSaveSlots),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "tavernsim"),
		DBMaxConns:  getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),

		AutoSaveEnabled:  getEnvAsBool("AUTO_SAVE_ENABLED", true),
		AutoSaveInterval: getEnvAsDuration("AUTO_SAVE_INTERVAL", DefaultAutoSaveInterval),

		TickInterval:         getEnvAsDuration("TICK_INTERVAL", DefaultTickInterval),
		MinutesPerTick:       getEnvAsInt("MINUTES_PER_TICK", DefaultMinutesPerTick),
		PatienceTickInterval: getEnvAsDuration("PATIENCE_TICK_INTERVAL", DefaultPatienceTickInterval),
		CustomerSpawnEvery:   getEnvAsDuration("CUSTOMER_SPAWN_INTERVAL", DefaultCustomerSpawnInterval),

		JournalSize: getEnvAsInt("JOURNAL_SIZE", DefaultJournalSize),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if seed := getEnv("RANDOM_SEED", ""); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RANDOM_SEED value: %w", err)
		}
		cfg.RandomSeed = v
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping empty items
func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string.
// DATABASE_URL wins over the individual DB_* parts.
func (c *Config) GetDBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
