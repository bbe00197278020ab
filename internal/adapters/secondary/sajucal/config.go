package sajucal

type Config struct {
	BaseURL        string `envconfig:"BASE_URL"`
	APIKey         string `envconfig:"API_KEY"`
	TimeoutSeconds int    `envconfig:"TIMEOUT" default:"30"` // в секундах
}
