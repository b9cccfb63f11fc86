// Package config reads the application's configuration from the
// environment. Every setting has a development default; production deploys
// override them with INKWELL_* variables.
package config

import "github.com/spf13/viper"

type Config struct {
	Addr       string
	DSN        string
	SessionDir string
	SecretKey  string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
}

// Load reads configuration from INKWELL_* environment variables.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("inkwell")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("dsn", "data/blog.db")
	v.SetDefault("session_dir", "data/sessions")
	v.SetDefault("secret_key", "development-secret")
	v.SetDefault("smtp_host", "localhost")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("smtp_username", "")
	v.SetDefault("smtp_password", "")

	return &Config{
		Addr:         v.GetString("addr"),
		DSN:          v.GetString("dsn"),
		SessionDir:   v.GetString("session_dir"),
		SecretKey:    v.GetString("secret_key"),
		SMTPHost:     v.GetString("smtp_host"),
		SMTPPort:     v.GetInt("smtp_port"),
		SMTPUsername: v.GetString("smtp_username"),
		SMTPPassword: v.GetString("smtp_password"),
	}
}
