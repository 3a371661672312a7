package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"voting_portal"`
	URL     string `env:"LOGGER_URL"`
}
