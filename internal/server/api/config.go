package api

import "time"

// ServerConfig represents the server subcommand configuration.
type ServerConfig struct {
	Addr               string        `help:"API server listen address" default:":3243" env:"KBDOVERLAY_API_ADDR"`
	ReadTimeout        time.Duration `help:"Time a client has to send its request" default:"5s" env:"KBDOVERLAY_API_READ_TIMEOUT"`
	SessionIdleTimeout time.Duration `help:"Close key sessions that stay idle for longer than this" default:"5m" env:"KBDOVERLAY_API_SESSION_IDLE_TIMEOUT"`
	Password           string        `help:"Require clients to authenticate with this password and encrypt the connection" env:"KBDOVERLAY_API_PASSWORD"`
	Lang               string        `help:"Default language of action descriptions" default:"en" env:"KBDOVERLAY_API_LANG"`
}
