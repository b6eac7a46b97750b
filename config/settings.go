package config

import (
	"os"
	"strings"
)

// Result caps are hard caps, not pagination: callers beyond a cap are not
// served additional records.
const (
	// CustomerTransactionsCap bounds the transactions embedded in a
	// customer lookup/get response.
	CustomerTransactionsCap = 50
	// CustomerListCap bounds the admin customer listing.
	CustomerListCap = 1000
	// TransactionListCap bounds the admin transaction listing.
	TransactionListCap = 500
)

// Settings holds process configuration read from the environment.
type Settings struct {
	Port        string
	DBUrl       string
	AdminPIN    string
	CORSOrigins []string
}

// LoadSettings reads configuration from the environment with development
// defaults. The default admin PIN is for local development only.
func LoadSettings() *Settings {
	s := &Settings{
		Port:     os.Getenv("PORT"),
		DBUrl:    os.Getenv("DB_URL"),
		AdminPIN: os.Getenv("ADMIN_PIN"),
	}
	if s.Port == "" {
		s.Port = "8080"
	}
	if s.AdminPIN == "" {
		s.AdminPIN = "1234"
	}

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			s.CORSOrigins = append(s.CORSOrigins, origin)
		}
	}
	return s
}
