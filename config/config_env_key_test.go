package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"subscriptionId": "",
			"peerEndpoints":  "",
		},
		"marketplace": map[string]any{
			"storeTimeout": "5s",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_SUBSCRIPTIONID", want: "pubsub.subscriptionId"},
		{envKey: "PUBSUB_PEERENDPOINTS", want: "pubsub.peerEndpoints"},
		{envKey: "MARKETPLACE_STORETIMEOUT", want: "marketplace.storeTimeout"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.Marketplace.StoreTimeout)
	assert.Equal(t, 50, cfg.Marketplace.DefaultNotificationLimit)
	assert.Equal(t, 100, cfg.Marketplace.MaxNotificationLimit)
	assert.Equal(t, 64, cfg.Realtime.SendBuffer)
	assert.Equal(t, 3*time.Second, cfg.Realtime.PublishTimeout)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Marketplace.DefaultNotificationLimit = 20
	cfg.Marketplace.MaxNotificationLimit = 10
	cfg.applyDefaults()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 20, cfg.Marketplace.DefaultNotificationLimit)
	// max never drops below the default page size
	assert.Equal(t, 100, cfg.Marketplace.MaxNotificationLimit)
}
