package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hangtime-app/hangtime/internal/api"
	"github.com/hangtime-app/hangtime/internal/calendars"
	"github.com/hangtime-app/hangtime/internal/friends"
	"github.com/hangtime-app/hangtime/internal/importer"
	"github.com/hangtime-app/hangtime/internal/notify"
	"github.com/hangtime-app/hangtime/internal/pubsub"
	"github.com/hangtime-app/hangtime/pkg/environment"
	"github.com/hangtime-app/hangtime/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"environment"`

	API       api.Config            `yaml:"api"`
	Calendars calendars.Config      `yaml:"calendars"`
	Friends   friends.Config        `yaml:"friends"`
	Events    pubsub.Config         `yaml:"events"`
	Notify    notify.Config         `yaml:"notify"`
	Telegram  notify.TelegramConfig `yaml:"telegram"`
	Importer  importer.Config       `yaml:"importer"`
}

func loadConfig() (*Config, error) {
	path, err := filepath.Abs("config.yaml")
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFail(err, "read \"config.yaml\"")
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if envFromFlags := getEnvFromFlags(); envFromFlags != nil {
		cfg.Environment = *envFromFlags
	}

	return &cfg, nil
}

func getEnvFromFlags() *environment.Env {
	raw := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()
	if raw == nil {
		return nil
	}

	env := environment.FromString(*raw)
	return &env
}
