package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Session struct {
		// File holds the serialized session user between runs.
		File string
	}
	Client struct {
		// BaseURL is the API endpoint the client binary talks to.
		BaseURL string
	}
}
