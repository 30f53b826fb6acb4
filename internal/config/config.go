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

const (
	AuthPolicyAPIKey = "api_key"
	AuthPolicyBearer = "bearer"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	Meta   Meta   `mapstructure:",squash"`
	Auth   Auth   `mapstructure:",squash"`
	Render Render `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Meta struct {
	BaseURL       string        `mapstructure:"meta_base_url"`
	Version       string        `mapstructure:"meta_version"`
	AdAccountID   string        `mapstructure:"meta_ad_account_id"`
	AccessToken   string        `mapstructure:"meta_access_token"`
	AppSecret     string        `mapstructure:"meta_app_secret"`
	SpendTimeout  time.Duration `mapstructure:"meta_spend_timeout"`
	ReportTimeout time.Duration `mapstructure:"meta_report_timeout"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth define qual política de autenticação está ativa no deploy
type Auth struct {
	Policy string `mapstructure:"auth_policy"`
	APIKey string `mapstructure:"api_key"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	v.SetDefault("META_VERSION", "v21.0")
	v.SetDefault("META_AD_ACCOUNT_ID", "")
	v.SetDefault("META_ACCESS_TOKEN", "")
	v.SetDefault("META_APP_SECRET", "")
	v.SetDefault("META_SPEND_TIMEOUT", "20s")
	v.SetDefault("META_REPORT_TIMEOUT", "30s")

	v.SetDefault("AUTH_POLICY", AuthPolicyAPIKey) // api_key ou bearer
	v.SetDefault("API_KEY", "")

	v.SetDefault("RENDER_API_KEY", "")
	v.SetDefault("RENDER_SERVICE_ID", "")

	v.SetDefault("LOG_LEVEL", "info")
}

// NewConfig carrega e valida a configuração completa do servidor HTTP
func NewConfig() (*Config, error) {
	config, err := LoadFromEnv()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromEnv carrega .env, variáveis de ambiente e secrets do Render, sem validar
func LoadFromEnv() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config, err := Load(viper.New())
	if err != nil {
		return nil, err
	}

	if config.Render.ServiceID != "" {
		if err := config.ApplySecrets(NewRenderClient(config)); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// Load lê defaults, .env e variáveis de ambiente na instância informada
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Auth.Policy = strings.ToLower(strings.TrimSpace(config.Auth.Policy))
	for i, origin := range config.Server.AllowedOrigins {
		config.Server.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return config, nil
}

// ApplySecrets preenche token da Meta e API key vazios com os secret files do Render
func (c *Config) ApplySecrets(storage SecretStorage) error {
	secretsByCode, err := storage.ListSecrets(c.Render.ServiceID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao obter secrets do Render")
		return err
	}

	if token, ok := secretsByCode["meta_access_token"]; ok && c.Meta.AccessToken == "" {
		c.Meta.AccessToken = strings.TrimSpace(token)
	}

	if apiKey, ok := secretsByCode["api_key"]; ok && c.Auth.APIKey == "" {
		c.Auth.APIKey = strings.TrimSpace(apiKey)
	}

	return nil
}

// Validate confere os valores obrigatórios para a política ativa
func (c *Config) Validate() error {
	if err := c.ValidateMeta(); err != nil {
		return err
	}

	switch c.Auth.Policy {
	case AuthPolicyAPIKey:
		if c.Auth.APIKey == "" {
			return fmt.Errorf("config: API_KEY is required when AUTH_POLICY=%s", AuthPolicyAPIKey)
		}
		if c.Meta.AccessToken == "" {
			return fmt.Errorf("config: META_ACCESS_TOKEN is required when AUTH_POLICY=%s", AuthPolicyAPIKey)
		}
	case AuthPolicyBearer:
	default:
		return fmt.Errorf("config: unknown AUTH_POLICY %q (expected %s or %s)", c.Auth.Policy, AuthPolicyAPIKey, AuthPolicyBearer)
	}

	return nil
}

// ValidateMeta confere apenas o necessário para consultar a Meta
func (c *Config) ValidateMeta() error {
	if strings.TrimSpace(c.Meta.AdAccountID) == "" {
		return fmt.Errorf("config: META_AD_ACCOUNT_ID is required")
	}

	if c.Meta.Version == "" {
		return fmt.Errorf("config: META_VERSION is required")
	}

	if c.Meta.SpendTimeout <= 0 || c.Meta.ReportTimeout <= 0 {
		return fmt.Errorf("config: META_SPEND_TIMEOUT and META_REPORT_TIMEOUT must be positive")
	}

	return nil
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
