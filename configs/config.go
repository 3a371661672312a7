package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type VotingPortalConfig struct {
	App      App
	DB       DB
	Logger   Logger
	HTTP     HTTP
	SMTP     SMTP
	Telegram Telegram
}

func LoadVotingPortalConfig() (VotingPortalConfig, error) {
	var config VotingPortalConfig

	if err := env.Parse(&config); err != nil {
		return VotingPortalConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

type PollStatusServiceConfig struct {
	App       App
	DB        DB
	Logger    Logger
	Scheduler Scheduler
}

func LoadPollStatusServiceConfig() (PollStatusServiceConfig, error) {
	var config PollStatusServiceConfig

	if err := env.Parse(&config); err != nil {
		return PollStatusServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
