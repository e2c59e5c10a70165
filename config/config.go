// Package config defines the application configuration structures.
//
// Separated from cmd to allow other packages (db, ssh, tui) to
// depend on config without importing Cobra.
package config

import "strconv"

// Config holds the warehouse connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	SSH SSHConfig
}

// SSHConfig holds SSH tunnel settings for reaching the warehouse
// through a bastion host.
type SSHConfig struct {
	Enabled       bool
	Host          string
	Port          int
	User          string
	KeyPath       string
	KeyPassphrase string
}

// DSN builds a pgx-compatible connection string.
// When the SSH tunnel is active, the caller overrides Host/Port
// with the local tunnel endpoint.
func (c Config) DSN() string {
	return "host=" + c.Host +
		" port=" + strconv.Itoa(c.Port) +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Database +
		" sslmode=" + c.SSLMode
}
