package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns a config that passes validate once merged with defaults.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PublicURL:      "https://gallery.example.com",
			SessionSignKey: "secret",
		},
		OAuth: OAuth{
			ClientID:     "client",
			ClientSecret: "client-secret",
			AuthURL:      "https://provider.example.com/auth",
			TokenURL:     "https://provider.example.com/token",
		},
		Adapter: Adapter{
			BaseURL: "https://api.example.com/mirror/v1",
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost/gallery"},
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a builder without any
// source cannot produce a usable config.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overridden by later ones, while zero fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	first := validConfig()
	first.App.Version = "1.0.0"
	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{Version: "2.0.0", SessionIssuer: "issuer"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.SessionIssuer)
}

// TestBuild_AppliesDefaults verifies that defaults fill every unset field.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DBDriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, ContentBackendFS, cfg.Storage.ContentBackend)
	assert.Equal(t, UnknownContentTypeSkip, cfg.App.UnknownContentType)
	assert.Equal(t, "bin", cfg.App.GenericExtension)
	assert.Equal(t, time.Minute, cfg.Server.NotificationTimeout)
	assert.Equal(t, 4, cfg.Workers.AttachmentConcurrency)
	assert.Len(t, cfg.OAuth.Scopes, 3)
}

// TestBuild_DerivesRedirectURL verifies that the OAuth redirect URL is built
// from the public URL when not configured explicitly.
func TestBuild_DerivesRedirectURL(t *testing.T) {
	b := newConfigBuilder()
	c := validConfig()
	c.App.PublicURL = "https://gallery.example.com/"
	b.configs = append(b.configs, c)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://gallery.example.com", cfg.App.PublicURL)
	assert.Equal(t, "https://gallery.example.com/auth/provider/callback", cfg.OAuth.RedirectURL)
}

// TestBuild_KeepsExplicitRedirectURL verifies that an explicit redirect URL
// is left untouched.
func TestBuild_KeepsExplicitRedirectURL(t *testing.T) {
	b := newConfigBuilder()
	c := validConfig()
	c.OAuth.RedirectURL = "https://other.example.com/cb"
	b.configs = append(b.configs, c)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://other.example.com/cb", cfg.OAuth.RedirectURL)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that withJSON is a no-op when no source names
// a JSON file.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFile verifies that the JSON file named by an earlier
// source is parsed and appended.
func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": "localhost:9999"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "localhost:9999", b.configs[1].Server.HTTPAddress)
}

// TestWithJSON_MissingFile verifies that a missing file is recorded as a
// builder error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_LoadsExplicitFile verifies that the file named by ENV_FILE
// populates variables picked up by withEnv.
func TestWithDotEnv_LoadsExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=from-dotenv\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	// registered so the variable is restored after the test
	t.Setenv("APP_VERSION", "")
	require.NoError(t, os.Unsetenv("APP_VERSION"))

	b := newConfigBuilder().withDotEnv().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].App.Version)
}

// TestWithDotEnv_DoesNotOverride verifies that variables already present in
// the environment win over the file.
func TestWithDotEnv_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=from-dotenv\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Setenv("APP_VERSION", "from-env")

	b := newConfigBuilder().withDotEnv().withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "from-env", b.configs[0].App.Version)
}

// TestWithDotEnv_MissingExplicitFile verifies that a missing file named via
// ENV_FILE is an error.
func TestWithDotEnv_MissingExplicitFile(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	b := newConfigBuilder().withDotEnv()
	assert.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no public url", mutate: func(c *StructuredConfig) { c.App.PublicURL = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad policy", mutate: func(c *StructuredConfig) { c.App.UnknownContentType = "explode" }, wantErr: ErrInvalidAppConfigs},
		{name: "generic without extension", mutate: func(c *StructuredConfig) {
			c.App.UnknownContentType = UnknownContentTypeGeneric
			c.App.GenericExtension = ""
		}, wantErr: ErrInvalidAppConfigs},
		{name: "no client id", mutate: func(c *StructuredConfig) { c.OAuth.ClientID = "" }, wantErr: ErrInvalidOAuthConfigs},
		{name: "no api url", mutate: func(c *StructuredConfig) { c.Adapter.BaseURL = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "bad driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "s3 without bucket", mutate: func(c *StructuredConfig) { c.Storage.ContentBackend = ContentBackendS3 }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero workers", mutate: func(c *StructuredConfig) { c.Workers.AttachmentConcurrency = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, validConfig())
			b.withDefaults()
			cfg, err := b.build()
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
