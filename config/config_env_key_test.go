package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"internal": "",
		},
		"rateLimit": map[string]any{
			"maxAlerts": 3,
			"redis": map[string]any{
				"keyPrefix": "",
			},
		},
		"deviceFeed": map[string]any{
			"dsn": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_INTERNAL", want: "secretKey.internal"},
		{envKey: "RATELIMIT_MAXALERTS", want: "rateLimit.maxAlerts"},
		{envKey: "RATELIMIT_REDIS_KEYPREFIX", want: "rateLimit.redis.keyPrefix"},
		{envKey: "DEVICEFEED_DSN", want: "deviceFeed.dsn"},
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
