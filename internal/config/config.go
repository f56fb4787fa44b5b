package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const defaultSecretKey = "dev-secret-key-change-in-production"

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
	Contact   ContactInfo
}

type ServerConfig struct {
	Port        string
	SecretKey   string
	Environment string
	IndexPath   string
}

type StoreConfig struct {
	Path       string
	MaxEntries int
}

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// ContactInfo is the static contact metadata served by /contact-info
// and echoed by /health. Read-only after Load.
type ContactInfo struct {
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	ServiceAreas []string          `json:"service_areas"`
	Availability map[string]string `json:"availability"`
}

func defaultContactInfo() ContactInfo {
	return ContactInfo{
		Phone:        "+254710347138",
		Email:        "rodahkageha21@gmail.com",
		ServiceAreas: []string{"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret"},
		Availability: map[string]string{
			"weekdays": "8:00 AM - 6:00 PM",
			"saturday": "9:00 AM - 4:00 PM",
			"sunday":   "By Appointment",
		},
	}
}

// Load builds the configuration from environment variables, falling back
// to development defaults. CONTACT_INFO_FILE, when set, points to a JSON
// file overriding the built-in contact details.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "5000"),
			SecretKey:   getEnv("SECRET_KEY", defaultSecretKey),
			Environment: getEnv("APP_ENV", "development"),
			IndexPath:   getEnv("INDEX_FILE", filepath.Join("web", "index.html")),
		},
		Store: StoreConfig{
			Path:       getEnv("SUBMISSIONS_FILE", "contact_submissions.json"),
			MaxEntries: getEnvInt("SUBMISSIONS_MAX", 100),
		},
		RateLimit: RateLimitConfig{
			Limit:  getEnvInt("RATE_LIMIT_PER_HOUR", 5),
			Window: time.Hour,
		},
		Contact: defaultContactInfo(),
	}

	if path := os.Getenv("CONTACT_INFO_FILE"); path != "" {
		contact, err := loadContactInfo(path)
		if err != nil {
			return nil, err
		}
		cfg.Contact = contact
	}

	return cfg, nil
}

func loadContactInfo(path string) (ContactInfo, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return ContactInfo{}, err
	}

	info := defaultContactInfo()
	if err := json.Unmarshal(file, &info); err != nil {
		return ContactInfo{}, err
	}

	return info, nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// UsesDefaultSecret reports whether the secret key was left at the
// development placeholder.
func (c *Config) UsesDefaultSecret() bool {
	return c.Server.SecretKey == defaultSecretKey
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
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
