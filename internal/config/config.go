package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	CloutJet CloutJet `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Session  Session  `mapstructure:",squash"`
	Cache    Cache    `mapstructure:",squash"`
	Display  Display  `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Audit    Audit    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type CloutJet struct {
	URL     string        `mapstructure:"cloutjet_api_url"`
	Timeout time.Duration `mapstructure:"cloutjet_api_timeout"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Session struct {
	TTL          time.Duration `mapstructure:"session_ttl"`
	SweepCron    string        `mapstructure:"session_sweep_cron"`
	SweepEnabled bool          `mapstructure:"session_sweep_enabled"`
}

type Cache struct {
	SingleFlight bool `mapstructure:"cache_single_flight"`
}

type Display struct {
	Timezone       string `mapstructure:"display_timezone"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Audit struct {
	Enabled bool `mapstructure:"audit_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("CLOUTJET_API_URL", "http://localhost:5000/api")
	viper.SetDefault("CLOUTJET_API_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL

	viper.SetDefault("SESSION_TTL", "12h")
	viper.SetDefault("SESSION_SWEEP_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SESSION_SWEEP_ENABLED", true)

	viper.SetDefault("CACHE_SINGLE_FLIGHT", false)

	viper.SetDefault("DISPLAY_TIMEZONE", "Africa/Lagos")
	viper.SetDefault("CURRENCY_SYMBOL", "₦")

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cloutjet_admin")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUDIT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.CloutJet.URL == "" {
		return nil, fmt.Errorf("config: CLOUTJET_API_URL is required")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Location resolve o fuso usado na exibição de datas; cai para UTC quando inválido
func (c *Config) Location() *time.Location {
	if c.Display.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido %q, usando UTC: %v", c.Display.Timezone, err)
		return time.UTC
	}

	return loc
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
