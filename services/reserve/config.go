package reserve

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const DefaultSiteUrl = "https://www.e-license.jp/el31/mSg1DWxRvAI-brGQYS-1OA=="

// Config carries everything a run needs. It is built once at startup
// and handed to the collaborators explicitly instead of each of them
// reaching into the environment on its own.
type Config struct {
	SiteUrl      string
	StudentId    string
	Password     string
	SlackToken   string
	SlackChannel string
}

// SlackConfigured reports whether notifications can actually be sent.
// Missing slack credentials are not fatal, they degrade to a no-op
// notifier with a diagnostic.
func (c Config) SlackConfigured() bool {
	return c.SlackToken != "" && c.SlackChannel != ""
}

func ConfigFromEnv() (Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded configuration from .env")
	}

	cfg := Config{
		SiteUrl:      os.Getenv("ELICENSE_URL"),
		StudentId:    os.Getenv("STUDENT_ID"),
		Password:     os.Getenv("PASSWORD"),
		SlackToken:   os.Getenv("SLACK_TOKEN"),
		SlackChannel: os.Getenv("SLACK_CHANNEL"),
	}
	if cfg.SiteUrl == "" {
		cfg.SiteUrl = DefaultSiteUrl
	}
	if cfg.StudentId == "" || cfg.Password == "" {
		return Config{}, fmt.Errorf("STUDENT_ID and PASSWORD must be set")
	}
	return cfg, nil
}
