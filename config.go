package draftsmith

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for a draftsmith instance.
// Everything comes from environment variables; see Load.
type Config struct {
	SiteName string // Display name in page headers (default "Draftsmith")
	Addr     string // Listen address (default ":3000")

	AirtableAPIKey string // Required: Airtable personal access token
	AirtableBaseID string // Required: Airtable base holding the four tables

	GeminiAPIKey string // Required: Gemini API key
	GeminiModel  string // Model identifier (default "gemini-2.5-flash")

	WordPressURL         string // Required: WordPress site base URL
	WordPressUser        string // Required: WordPress username
	WordPressAppPassword string // Required: WordPress application password

	MaxUploadBytes int64         // Per-request upload cap (default 32 MB)
	MaxImageWidth  int           // Images wider than this are downscaled (default 1600)
	GenTimeout     time.Duration // Per-generation-call timeout (default 90s)
	CookieSecure   bool          // Set true behind HTTPS
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	return Config{
		SiteName:             envOr("SITE_NAME", "Draftsmith"),
		Addr:                 envOr("ADDR", ":3000"),
		AirtableAPIKey:       os.Getenv("AIRTABLE_API_KEY"),
		AirtableBaseID:       os.Getenv("AIRTABLE_BASE_ID"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiModel:          envOr("GEMINI_MODEL", "gemini-2.5-flash"),
		WordPressURL:         strings.TrimSuffix(os.Getenv("WORDPRESS_URL"), "/"),
		WordPressUser:        os.Getenv("WORDPRESS_USER"),
		WordPressAppPassword: os.Getenv("WORDPRESS_APP_PASSWORD"),
		MaxUploadBytes:       int64(envInt("MAX_UPLOAD_MB", 32)) << 20,
		MaxImageWidth:        envInt("MAX_IMAGE_WIDTH", 1600),
		GenTimeout:           envDuration("GENERATION_TIMEOUT", 90*time.Second),
		CookieSecure:         strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true"),
	}
}

// Validate checks that every required credential is present. Failing at
// startup beats failing on the first external call mid-request.
func (c Config) Validate() error {
	required := []struct {
		name, value string
	}{
		{"AIRTABLE_API_KEY", c.AirtableAPIKey},
		{"AIRTABLE_BASE_ID", c.AirtableBaseID},
		{"GEMINI_API_KEY", c.GeminiAPIKey},
		{"WORDPRESS_URL", c.WordPressURL},
		{"WORDPRESS_USER", c.WordPressUser},
		{"WORDPRESS_APP_PASSWORD", c.WordPressAppPassword},
	}
	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
