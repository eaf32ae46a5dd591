package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Server
	ServerPort string
	GinMode    string

	// Database
	DBDriver        string // sqlite(默认, 内存库) 或 mysql
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBDSN           string // 设置后优先于上面的分项配置
	DBMigrationMode string // 数据库迁移模式: "auto"(默认), "drop"(删除重建)

	// Redis
	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// MQTT
	MQTTEnabled     bool
	MQTTBroker      string
	MQTTUsername    string
	MQTTPassword    string
	MQTTTopicPrefix string

	// JWT Authentication
	JWTSecretKey string

	// Accounts
	DefaultAdminPassword string
	DefaultUserPassword  string
	CaptchaTTL           time.Duration

	// Notification gateway (短信/微信)
	NotifyGatewayURL string
	NotifyTimeout    time.Duration

	// Simulation
	SimEnabled       bool
	SimSmokeInterval time.Duration
	SimFlameInterval time.Duration
	SimHistoryLimit  int
	SimSeed          int64

	// Logging
	LogLevel  string
	LogFormat string
	LogDir    string

	// Realtime snapshot cache
	SnapshotTTL time.Duration
}

// defaults 所有配置项的默认值
var defaults = map[string]interface{}{
	"ENV_TYPE":               "LOCAL",
	"SERVER_PORT":            "8080",
	"GIN_MODE":               "debug",
	"DB_DRIVER":              "sqlite",
	"DB_HOST":                "localhost",
	"DB_USER":                "root",
	"DB_PASSWORD":            "",
	"DB_NAME":                "straw_monitor",
	"DB_PORT":                "3306",
	"DB_DSN":                 "",
	"DB_MIGRATION_MODE":      "auto",
	"REDIS_ENABLED":          false,
	"REDIS_HOST":             "localhost",
	"REDIS_PORT":             "6379",
	"REDIS_PASSWORD":         "",
	"REDIS_DB":               0,
	"MQTT_ENABLED":           false,
	"MQTT_BROKER":            "tcp://localhost:1883",
	"MQTT_USERNAME":          "",
	"MQTT_PASSWORD":          "",
	"MQTT_TOPIC_PREFIX":      "straw",
	"JWT_SECRET_KEY":         "straw-monitor-secret-key-change-in-production",
	"DEFAULT_ADMIN_PASSWORD": "admin123",
	"DEFAULT_USER_PASSWORD":  "zc123456",
	"CAPTCHA_TTL":            "5m",
	"NOTIFY_GATEWAY_URL":     "",
	"NOTIFY_TIMEOUT":         "5s",
	"SIM_ENABLED":            true,
	"SIM_SMOKE_INTERVAL":     "5s",
	"SIM_FLAME_INTERVAL":     "10s",
	"SIM_HISTORY_LIMIT":      20,
	"SIM_SEED":               0,
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "console",
	"LOG_DIR":                "logs",
	"SNAPSHOT_TTL":           "1m",
}

// LoadConfig loads config from defaults, an optional CONFIG_FILE and environment variables.
// Environment-specific keys (LOCAL_xxx / SERVER_xxx) win over the plain ones.
func LoadConfig() *Config {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path, ok := os.LookupEnv("CONFIG_FILE"); ok && path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			fmt.Printf("Warning: read config file %s failed: %v\n", path, err)
		}
	}

	// Get environment type (default to LOCAL if not set)
	envType := strings.ToUpper(v.GetString("ENV_TYPE"))
	prefix := ""
	switch envType {
	case "LOCAL":
		prefix = "LOCAL_"
	case "SERVER":
		prefix = "SERVER_"
	default:
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	get := func(key string) string {
		if v.IsSet(prefix + key) {
			return v.GetString(prefix + key)
		}
		return v.GetString(key)
	}

	return &Config{
		EnvType: envType,

		ServerPort: get("SERVER_PORT"),
		GinMode:    v.GetString("GIN_MODE"),

		DBDriver:        strings.ToLower(get("DB_DRIVER")),
		DBHost:          get("DB_HOST"),
		DBUser:          get("DB_USER"),
		DBPassword:      get("DB_PASSWORD"),
		DBName:          get("DB_NAME"),
		DBPort:          get("DB_PORT"),
		DBDSN:           get("DB_DSN"),
		DBMigrationMode: get("DB_MIGRATION_MODE"),

		RedisEnabled:  v.GetBool("REDIS_ENABLED"),
		RedisHost:     get("REDIS_HOST"),
		RedisPort:     get("REDIS_PORT"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		MQTTEnabled:     v.GetBool("MQTT_ENABLED"),
		MQTTBroker:      get("MQTT_BROKER"),
		MQTTUsername:    v.GetString("MQTT_USERNAME"),
		MQTTPassword:    v.GetString("MQTT_PASSWORD"),
		MQTTTopicPrefix: v.GetString("MQTT_TOPIC_PREFIX"),

		JWTSecretKey: v.GetString("JWT_SECRET_KEY"),

		DefaultAdminPassword: v.GetString("DEFAULT_ADMIN_PASSWORD"),
		DefaultUserPassword:  v.GetString("DEFAULT_USER_PASSWORD"),
		CaptchaTTL:           v.GetDuration("CAPTCHA_TTL"),

		NotifyGatewayURL: v.GetString("NOTIFY_GATEWAY_URL"),
		NotifyTimeout:    v.GetDuration("NOTIFY_TIMEOUT"),

		SimEnabled:       v.GetBool("SIM_ENABLED"),
		SimSmokeInterval: v.GetDuration("SIM_SMOKE_INTERVAL"),
		SimFlameInterval: v.GetDuration("SIM_FLAME_INTERVAL"),
		SimHistoryLimit:  v.GetInt("SIM_HISTORY_LIMIT"),
		SimSeed:          v.GetInt64("SIM_SEED"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		LogDir:    v.GetString("LOG_DIR"),

		SnapshotTTL: v.GetDuration("SNAPSHOT_TTL"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	if c.DBDriver == "mysql" {
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
	}
	// 默认使用共享的内存库，进程退出后数据即丢失
	return "file:" + c.DBName + "?mode=memory&cache=shared"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}
