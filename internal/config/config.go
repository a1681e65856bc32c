package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Report          Report          `mapstructure:",squash"`
	PublicRateLimit PublicRateLimit `mapstructure:",squash"`
	ReportCleanup   ReportCleanup   `mapstructure:",squash"`
	TestProfileSync TestProfileSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

type Report struct {
	PublicBaseURL         string `mapstructure:"report_public_base_url"`
	DefaultExpirationDays int    `mapstructure:"report_default_expiration_days"`
	MaxExpirationDays     int    `mapstructure:"report_max_expiration_days"`
}

type PublicRateLimit struct {
	RequestsPerSecond float64       `mapstructure:"public_rate_limit_rps"`
	Burst             int           `mapstructure:"public_rate_limit_burst"`
	IdleTTL           time.Duration `mapstructure:"public_rate_limit_idle_ttl"`
	// IPs ou CIDRs separados por vírgula; vazio ignora o X-Forwarded-For
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

type ReportCleanup struct {
	CronSchedule string `mapstructure:"report_cleanup_cron"`
	Enabled      bool   `mapstructure:"report_cleanup_enabled"`
}

type TestProfileSync struct {
	CronSchedule        string `mapstructure:"test_profile_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"test_profile_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"test_profile_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"test_profile_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/publimais?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	viper.SetDefault("REPORT_PUBLIC_BASE_URL", "http://localhost:5173")
	viper.SetDefault("REPORT_DEFAULT_EXPIRATION_DAYS", 7)
	viper.SetDefault("REPORT_MAX_EXPIRATION_DAYS", 90)

	viper.SetDefault("PUBLIC_RATE_LIMIT_RPS", 2)
	viper.SetDefault("PUBLIC_RATE_LIMIT_BURST", 10)
	viper.SetDefault("PUBLIC_RATE_LIMIT_IDLE_TTL", "10m")
	viper.SetDefault("TRUSTED_PROXIES", "")

	viper.SetDefault("REPORT_CLEANUP_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("REPORT_CLEANUP_ENABLED", true)

	viper.SetDefault("TEST_PROFILE_SYNC_CRON", "0 */6 * * *")        // A cada 6 horas
	viper.SetDefault("TEST_PROFILE_SYNC_REQUEST_DELAY_SECONDS", 1)   // 1 segundo entre perfis
	viper.SetDefault("TEST_PROFILE_SYNC_MAX_CONCURRENT_JOBS", 3)     // 3 jobs concorrentes
	viper.SetDefault("TEST_PROFILE_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return Load()
}

// Load decodifica o estado atual do viper, sem tocar no sistema de arquivos
func Load() (*Config, error) {
	config := &Config{}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)
	config.Report.PublicBaseURL = strings.TrimRight(config.Report.PublicBaseURL, "/")

	if config.Report.DefaultExpirationDays <= 0 {
		config.Report.DefaultExpirationDays = 7
	}
	if config.Auth.TokenDuration <= 0 {
		config.Auth.TokenDuration = 24 * time.Hour
	}

	return config, nil
}

// ParseLogLevel converte LOG_LEVEL, caindo para info quando inválido
func (a App) ParseLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
