package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)

	path := t.TempDir() + "/config.json"
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "10.0.0.1:80"}, Geocoder: Geocoder{BatchSize: 3}},
		&StructuredConfig{Server: Server{HTTPAddress: "10.0.0.2:80", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:80", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3, cfg.Geocoder.BatchSize)
}

func TestBuild_RejectsUnknownPolicy(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Envelope: Envelope{Policy: "rot13"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidEnvelopeConfigs)
}

func TestWithDefaults_FillsOnlyZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:      App{TokenSignKey: "secret", TokenIssuer: "custom"},
		Geocoder: Geocoder{BatchSize: 2},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "custom", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 2, cfg.Geocoder.BatchSize)
	assert.Equal(t, time.Hour, cfg.Geocoder.SuccessTTL)
	assert.Equal(t, 5*time.Minute, cfg.Geocoder.FailureTTL)
	assert.Equal(t, PolicyFixed, cfg.Envelope.Policy)
	assert.Equal(t, DefaultStartMarker, cfg.Envelope.StartMarker)
	assert.Equal(t, DefaultEndMarker, cfg.Envelope.EndMarker)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, 10*time.Minute, cfg.Workers.CacheSweepInterval)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("GEOCODER_SUCCESS_TTL", "2h")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, 2*time.Hour, b.configs[0].Geocoder.SuccessTTL)
}

func TestWithFlags_UnknownFlagIsRecorded(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Envelope.Policy = PolicyRandom
	validPath := writeTempJSONConfig(t, payload)

	brokenPath := t.TempDir() + "/broken.json"
	require.NoError(t, os.WriteFile(brokenPath, []byte("{not valid json"), 0o600))

	tests := []struct {
		name        string
		paths       []string
		wantConfigs int
		wantErr     bool
	}{
		{name: "no path set", paths: []string{""}, wantConfigs: 1},
		{name: "valid file", paths: []string{validPath}, wantConfigs: 2},
		{name: "last non-empty path wins", paths: []string{"/nonexistent/first.json", validPath, ""}, wantConfigs: 4},
		{name: "missing file", paths: []string{"/nonexistent/config.json"}, wantConfigs: 1, wantErr: true},
		{name: "malformed file", paths: []string{brokenPath}, wantConfigs: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			for _, path := range tt.paths {
				b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
			}

			b.withJSON()

			assert.Len(t, b.configs, tt.wantConfigs)
			if tt.wantErr {
				assert.Error(t, b.err)
				return
			}
			require.NoError(t, b.err)
			if tt.wantConfigs > len(tt.paths) {
				last := b.configs[len(b.configs)-1]
				assert.Equal(t, "json-version", last.App.Version)
				assert.Equal(t, PolicyRandom, last.Envelope.Policy)
			}
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.HTTPAddress = "127.0.0.1:7000"
	payload.Geocoder.BatchSize = 9
	payload.App.Version = "from-json"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("APP_VERSION", "from-env")
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")

	cfg, err := loadConfig([]string{"-a", "127.0.0.1:9000", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 9, cfg.Geocoder.BatchSize)
	assert.Equal(t, 5*time.Minute, cfg.Geocoder.FailureTTL)
}
