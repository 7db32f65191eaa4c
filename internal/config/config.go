package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	WorkHours WorkHoursConfig
	Offices   []OfficeLocation
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// WorkHoursConfig defines the company-wide work window used for the
// lateness check on clock-in.
type WorkHoursConfig struct {
	Start            string // HH:MM
	End              string // HH:MM
	ToleranceMinutes int
}

// OfficeLocation is a named geofence zone. Loaded once at startup and
// passed into the attendance service, never mutated afterwards.
type OfficeLocation struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
	IsDefault bool    `json:"is_default"`
}

func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "haergo"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
	}

	// Work hours configuration
	tolerance, err := strconv.Atoi(getEnv("WORK_LATE_TOLERANCE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_LATE_TOLERANCE_MINUTES: %w", err)
	}
	config.WorkHours = WorkHoursConfig{
		Start:            getEnv("WORK_HOURS_START", "09:00"),
		End:              getEnv("WORK_HOURS_END", "18:00"),
		ToleranceMinutes: tolerance,
	}

	offices, err := loadOffices()
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LOCATIONS: %w", err)
	}
	config.Offices = offices

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadOffices parses OFFICE_LOCATIONS as a JSON array, falling back to the
// head-office default when unset.
func loadOffices() ([]OfficeLocation, error) {
	raw := getEnv("OFFICE_LOCATIONS", "")
	if raw == "" {
		return []OfficeLocation{
			{
				ID:        "office-main",
				Name:      "Kantor Pusat",
				Latitude:  -6.161777101062483,
				Longitude: 106.87519933469652,
				Radius:    100,
				IsDefault: true,
			},
		}, nil
	}

	var offices []OfficeLocation
	if err := json.Unmarshal([]byte(raw), &offices); err != nil {
		return nil, err
	}
	return offices, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(c.Offices) == 0 {
		return fmt.Errorf("at least one office location is required")
	}
	if c.WorkHours.ToleranceMinutes < 0 {
		return fmt.Errorf("WORK_LATE_TOLERANCE_MINUTES must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
