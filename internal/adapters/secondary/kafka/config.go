package kafka

import "strings"

type Config struct {
	Enabled          bool   `envconfig:"ENABLED" default:"false"`
	Brokers          string `envconfig:"BROKERS"` // список через запятую
	Topic            string `envconfig:"TOPIC" default:"saju.exchanges"`
	SecurityProtocol string `envconfig:"SECURITY_PROTOCOL"` // SASL_SSL | SASL_PLAINTEXT | пусто
	SASLMechanism    string `envconfig:"SASL_MECHANISM"`
	SASLUsername     string `envconfig:"SASL_USERNAME"`
	SASLPassword     string `envconfig:"SASL_PASSWORD"`
}

// GetBrokers возвращает список брокеров
func (c *Config) GetBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
