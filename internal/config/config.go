package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUser     string `yaml:"db_user"`
	DBPass     string `yaml:"db_pass"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	Addr       string `yaml:"addr"`
	GatewayURL string `yaml:"gateway_url"`
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// New reads configuration from the environment with local defaults.
func New() Config {
	return Config{
		DBUser:     getenv("DB_USER", "root"),
		DBPass:     getenv("DB_PASS", ""),
		DBHost:     getenv("DB_HOST", "127.0.0.1"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBName:     getenv("DB_NAME", "sales_voucher"),
		Addr:       getenv("ADDR", ":8010"),
		GatewayURL: getenv("GATEWAY_URL", "http://127.0.0.1:8010"),
	}
}

// Load builds the environment config, then overlays values from a YAML
// file when a path is given. File values win over environment values.
func Load(path string) (Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) MySQLDSN() string {
	if dsn := os.Getenv("READ_DSN"); dsn != "" {
		return dsn
	}
	auth := c.DBUser
	if c.DBPass != "" {
		auth += ":" + c.DBPass
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4,utf8&loc=Local", auth, c.DBHost, c.DBPort, c.DBName)
}
