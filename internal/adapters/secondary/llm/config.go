package llm

type Config struct {
	BaseURL        string  `envconfig:"BASE_URL" default:"https://api.openai.com"`
	APIKey         string  `envconfig:"API_KEY"`
	Model          string  `envconfig:"MODEL" default:"gpt-4o-mini"`
	Temperature    float64 `envconfig:"TEMPERATURE" default:"0.7"`
	TimeoutSeconds int     `envconfig:"TIMEOUT" default:"60"` // в секундах
}
