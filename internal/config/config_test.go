package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Meta: Meta{
			BaseURL:       "https://graph.facebook.com",
			Version:       "v21.0",
			AdAccountID:   "act_123",
			AccessToken:   "meta-token",
			SpendTimeout:  20 * time.Second,
			ReportTimeout: 30 * time.Second,
		},
		Auth: Auth{Policy: AuthPolicyAPIKey, APIKey: "secret"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "LOG_LEVEL", "AUTH_POLICY", "META_VERSION", "META_BASE_URL", "CORS_ALLOWED_ORIGINS", "META_SPEND_TIMEOUT", "META_REPORT_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://graph.facebook.com", cfg.Meta.BaseURL)
	assert.Equal(t, "v21.0", cfg.Meta.Version)
	assert.Equal(t, 20*time.Second, cfg.Meta.SpendTimeout)
	assert.Equal(t, 30*time.Second, cfg.Meta.ReportTimeout)
	assert.Equal(t, AuthPolicyAPIKey, cfg.Auth.Policy)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("META_AD_ACCOUNT_ID", "act_999")
	t.Setenv("META_VERSION", "v22.0")
	t.Setenv("META_REPORT_TIMEOUT", "45s")
	t.Setenv("AUTH_POLICY", " Bearer ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "act_999", cfg.Meta.AdAccountID)
	assert.Equal(t, "v22.0", cfg.Meta.Version)
	assert.Equal(t, 45*time.Second, cfg.Meta.ReportTimeout)
	assert.Equal(t, AuthPolicyBearer, cfg.Auth.Policy)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "api key policy completa",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "sem conta de anúncios",
			mutate:  func(cfg *Config) { cfg.Meta.AdAccountID = " " },
			wantErr: "META_AD_ACCOUNT_ID",
		},
		{
			name:    "api key policy sem API_KEY",
			mutate:  func(cfg *Config) { cfg.Auth.APIKey = "" },
			wantErr: "API_KEY is required",
		},
		{
			name:    "api key policy sem token da Meta",
			mutate:  func(cfg *Config) { cfg.Meta.AccessToken = "" },
			wantErr: "META_ACCESS_TOKEN",
		},
		{
			name: "bearer policy não exige segredos locais",
			mutate: func(cfg *Config) {
				cfg.Auth = Auth{Policy: AuthPolicyBearer}
				cfg.Meta.AccessToken = ""
			},
		},
		{
			name:    "política desconhecida",
			mutate:  func(cfg *Config) { cfg.Auth.Policy = "jwt" },
			wantErr: "unknown AUTH_POLICY",
		},
		{
			name:    "timeout inválido",
			mutate:  func(cfg *Config) { cfg.Meta.SpendTimeout = 0 },
			wantErr: "must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ApplySecretsFromRender(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/srv-1/secret-files", r.URL.Path)
		assert.Equal(t, "Bearer render-key", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"secretFile":{"name":"meta_access_token","content":"token-from-render\n"}},
			{"secretFile":{"name":"api_key","content":"key-from-render"}}
		]`))
	}))
	defer server.Close()

	cfg := validConfig()
	cfg.Meta.AccessToken = ""
	cfg.Auth.APIKey = "already-set"
	cfg.Render = Render{APIKey: "render-key", ServiceID: "srv-1"}

	client := NewRenderClient(cfg)
	client.BaseURL = server.URL

	require.NoError(t, cfg.ApplySecrets(client))

	assert.Equal(t, "token-from-render", cfg.Meta.AccessToken)
	assert.Equal(t, "already-set", cfg.Auth.APIKey)
}

func TestRenderClient_ListSecretsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
	}))
	defer server.Close()

	client := NewRenderClient(validConfig())
	client.BaseURL = server.URL

	_, err := client.ListSecrets("srv-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
