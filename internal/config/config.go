package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Overpass OverpassConfig
	GenAI    GenAIConfig
	Search   SearchConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SearchCacheTTL time.Duration
	StatsCacheTTL  time.Duration
}

type LogConfig struct {
	Level string
}

// OverpassConfig - настройки структурного источника (Overpass API)
type OverpassConfig struct {
	BaseURL        string
	RadiusMeters   int
	MaxElements    int
	RequestTimeout int // seconds
}

// GenAIConfig - настройки генеративного источника (OpenAI-совместимый LLM)
type GenAIConfig struct {
	Enabled    bool
	BaseURL    string
	APIKey     string
	Model      string
	RPM        int // запросов в минуту для rate limiter
	MinResults int
	MaxResults int
}

// SearchConfig - параметры пайплайна поиска заведений
type SearchConfig struct {
	MaxResults int
	DefaultLat float64
	DefaultLon float64
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
			StatsCacheTTL:  time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Overpass: OverpassConfig{
			BaseURL:        viper.GetString("OVERPASS_BASE_URL"),
			RadiusMeters:   viper.GetInt("OVERPASS_RADIUS_METERS"),
			MaxElements:    viper.GetInt("OVERPASS_MAX_ELEMENTS"),
			RequestTimeout: viper.GetInt("OVERPASS_REQUEST_TIMEOUT"),
		},
		GenAI: GenAIConfig{
			Enabled:    viper.GetBool("GENAI_ENABLED"),
			BaseURL:    viper.GetString("GENAI_BASE_URL"),
			APIKey:     viper.GetString("GENAI_API_KEY"),
			Model:      viper.GetString("GENAI_MODEL"),
			RPM:        viper.GetInt("GENAI_RPM"),
			MinResults: viper.GetInt("GENAI_MIN_RESULTS"),
			MaxResults: viper.GetInt("GENAI_MAX_RESULTS"),
		},
		Search: SearchConfig{
			MaxResults: viper.GetInt("SEARCH_MAX_RESULTS"),
			DefaultLat: viper.GetFloat64("SEARCH_DEFAULT_LAT"),
			DefaultLon: viper.GetFloat64("SEARCH_DEFAULT_LNG"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if cfg.Overpass.BaseURL == "" {
		cfg.Overpass.BaseURL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Overpass.RadiusMeters == 0 {
		cfg.Overpass.RadiusMeters = 10000
	}
	if cfg.Overpass.MaxElements == 0 {
		cfg.Overpass.MaxElements = 50
	}
	if cfg.Overpass.RequestTimeout == 0 {
		cfg.Overpass.RequestTimeout = 30
	}
	if cfg.GenAI.RPM == 0 {
		cfg.GenAI.RPM = 10
	}
	if cfg.GenAI.MinResults == 0 {
		cfg.GenAI.MinResults = 6
	}
	if cfg.GenAI.MaxResults == 0 {
		cfg.GenAI.MaxResults = 10
	}
	if cfg.Search.MaxResults == 0 {
		cfg.Search.MaxResults = 25
	}
	if cfg.Cache.SearchCacheTTL == 0 {
		cfg.Cache.SearchCacheTTL = 120 * time.Second
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 300 * time.Second
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "search-history-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
