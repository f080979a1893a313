package config

import "time"

// Marker pair of the fixed envelope policy. Rows written by earlier
// deployments carry exactly these values.
const (
	DefaultStartMarker = "$:$2a$12$3KIB5e6BGLf2IZEoWYxtPeTDUN6rgQrHj3gV9qSINNgJdaXXLDaai"
	DefaultEndMarker   = "$$:$2a$12$ORLOi9cxLH/qPAT4FE2MLuBjIz7Nb7H1hTd1QcynsjIyP5j7Z1KHi"
)

// Envelope policies.
const (
	PolicyFixed  = "fixed"
	PolicyRandom = "random"
)

// Database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-waste-tracker",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Envelope: Envelope{
			Policy:      PolicyFixed,
			StartMarker: DefaultStartMarker,
			EndMarker:   DefaultEndMarker,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Geocoder: Geocoder{
			BaseURL:        "https://nominatim.openstreetmap.org",
			ReversePath:    "/reverse",
			UserAgent:      "go-waste-tracker/1.0",
			RequestTimeout: 10 * time.Second,
			SuccessTTL:     time.Hour,
			FailureTTL:     5 * time.Minute,
			BatchSize:      5,
			BatchDelay:     time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			CacheSweepInterval: 10 * time.Minute,
		},
	}
}
