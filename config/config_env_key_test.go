package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{
			"tokenLifetimeHours": 24,
			"pbkdf2Iterations":   100000,
		},
		"bible": map[string]any{
			"defaultTranslation": "esv",
		},
		"secretKey": "",
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "AUTH_TOKENLIFETIMEHOURS", want: "auth.tokenLifetimeHours"},
		{envKey: "AUTH_PBKDF2ITERATIONS", want: "auth.pbkdf2Iterations"},
		{envKey: "BIBLE_DEFAULTTRANSLATION", want: "bible.defaultTranslation"},
		{envKey: "SECRETKEY", want: "secretKey"},
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
