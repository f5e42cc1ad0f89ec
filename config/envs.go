package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultMazebotURL      = "https://api.noopschallenge.com"
	defaultMazeMinSize     = 20
	defaultMazeMaxSize     = 20
	defaultCacheTTLSeconds = 3600
	defaultMoveLimitFactor = 4
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string   // Host IP for the server
	RESTPort        int      // Port for the REST API
	DBHost          string   // Hostname or IP address for the database
	DBPort          int      // Port number for the database
	DBUser          string   // Username for the database
	DBPassword      string   // Password for the database
	DBName          string   // Name of the database
	RedisAddr       string   // host:port of the redis server backing the solution cache
	RedisPassword   string   // Password for redis, empty when unauthenticated
	RedisDB         int      // Redis logical database
	CacheTTLSeconds int      // Lifetime of cached solutions
	MazebotURL      string   // Base URL of the mazebot API
	MazeMinSize     int      // Default minSize for random mazes
	MazeMaxSize     int      // Default maxSize for random mazes
	MoveLimitFactor int      // Move ceiling per grid cell for a single solve
	GinMode         string   // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret       string   // Secret key for JWT signing
	JWTIssuer       string   // Issuer claim for JWTs
	CORSOrigins     []string // Browser origins allowed to call the API, empty allows any
}

// Load reads the server configuration. It loads a .env file when present and exits
// the process if a required variable is missing.
func Load() Config {
	loadDotEnv()

	return Config{
		HostIP:          mustGetEnv("HOST_IP"),
		RESTPort:        mustGetEnvAsInt("REST_PORT"),
		DBHost:          mustGetEnv("DB_HOST"),
		DBPort:          mustGetEnvAsInt("DB_PORT"),
		DBUser:          mustGetEnv("DB_USER"),
		DBPassword:      mustGetEnv("DB_PASS"),
		DBName:          mustGetEnv("DB_NAME"),
		RedisAddr:       mustGetEnv("REDIS_ADDR"),
		RedisPassword:   getEnvWithDefault("REDIS_PASS", ""),
		RedisDB:         getEnvAsIntWithDefault("REDIS_DB", 0),
		CacheTTLSeconds: getEnvAsIntWithDefault("CACHE_TTL_SECONDS", defaultCacheTTLSeconds),
		MazebotURL:      getEnvWithDefault("MAZEBOT_URL", defaultMazebotURL),
		MazeMinSize:     getEnvAsIntWithDefault("MAZE_MIN_SIZE", defaultMazeMinSize),
		MazeMaxSize:     getEnvAsIntWithDefault("MAZE_MAX_SIZE", defaultMazeMaxSize),
		MoveLimitFactor: getEnvAsIntWithDefault("MOVE_LIMIT_FACTOR", defaultMoveLimitFactor),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		JWTIssuer:       mustGetEnv("JWT_ISSUER"),
		CORSOrigins:     getEnvAsListWithDefault("CORS_ORIGINS", nil),
	}
}

// LoadClient reads the subset of the configuration the command line tool uses. Every
// key has a default, so it never exits.
func LoadClient() Config {
	loadDotEnv()

	return Config{
		MazebotURL:      getEnvWithDefault("MAZEBOT_URL", defaultMazebotURL),
		MazeMinSize:     getEnvAsIntWithDefault("MAZE_MIN_SIZE", defaultMazeMinSize),
		MazeMaxSize:     getEnvAsIntWithDefault("MAZE_MAX_SIZE", defaultMazeMaxSize),
		MoveLimitFactor: getEnvAsIntWithDefault("MOVE_LIMIT_FACTOR", defaultMoveLimitFactor),
	}
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. Unparsable values fall
// back to the default with a warning.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

// getEnvAsListWithDefault splits a comma separated variable, dropping blank items.
func getEnvAsListWithDefault(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
