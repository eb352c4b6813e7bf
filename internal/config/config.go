package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DB     DBConfig
	Source SourceConfig
	Rates  RatesConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Server ServerConfig
	Log    LogConfig

	// EnvFileLoaded - был ли прочитан .env; сообщение пишется после настройки логгера
	EnvFileLoaded bool
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite
}

// SourceConfig описывает каталог с исходными csv-файлами и имена файлов по ролям.
// Явно пустые имена всех трёх ролей включают назначение ролей по русской сортировке.
type SourceConfig struct {
	Dir          string
	ClientsFile  string
	CurrencyFile string
	VolumeFile   string
}

type RatesConfig struct {
	APIURL  string
	Timeout time.Duration // 0 - без таймаута
}

// RedisConfig: пустой Host отключает сбор статистики
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// KafkaConfig: пустой список брокеров отключает публикацию событий
type KafkaConfig struct {
	Brokers          []string
	TransactionTopic string
}

type ServerConfig struct {
	ReportPort  int
	RunInterval time.Duration // 0 - запуски только по запросу
}

type LogConfig struct {
	File  string
	Level string
}

// RedisEnabled сообщает, настроен ли Redis
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// KafkaEnabled сообщает, настроены ли брокеры Kafka
func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	envFileLoaded := godotenv.Load() == nil

	return &Config{
		EnvFileLoaded: envFileLoaded,
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/transactions.db"),
		},
		Source: SourceConfig{
			Dir:          getEnv("SOURCE_DIR", "./data/sources"),
			ClientsFile:  lookupEnv("SOURCE_CLIENTS_FILE", "clients.csv"),
			CurrencyFile: lookupEnv("SOURCE_CURRENCY_FILE", "currency.csv"),
			VolumeFile:   lookupEnv("SOURCE_VOLUME_FILE", "volume.csv"),
		},
		Rates: RatesConfig{
			APIURL:  getEnv("RATES_API_URL", "https://www.cbr-xml-daily.ru/daily_json.js"),
			Timeout: getEnvAsDuration("RATES_TIMEOUT", 0),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Brokers:          getEnvAsList("KAFKA_BROKERS"),
			TransactionTopic: getEnv("KAFKA_TRANSACTION_TOPIC", "bank.transactions.converted"),
		},
		Server: ServerConfig{
			ReportPort:  getEnvAsInt("REPORT_SERVICE_PORT", 8080),
			RunInterval: getEnvAsDuration("RUN_INTERVAL", 0),
		},
		Log: LogConfig{
			File:  getEnv("LOG_FILE", "transactions_logs.log"),
			Level: getEnv("LOG_LEVEL", "debug"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// lookupEnv, в отличие от getEnv, сохраняет явно заданное пустое значение
func lookupEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	var result []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
