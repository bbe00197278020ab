package twitter

type Config struct {
	BaseURL        string `envconfig:"BASE_URL" default:"https://api.twitter.com"`
	BearerToken    string `envconfig:"BEARER_TOKEN"`
	TimeoutSeconds int    `envconfig:"TIMEOUT" default:"30"` // в секундах
}
