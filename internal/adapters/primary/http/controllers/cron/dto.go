package cronController

// CronResponse ответ триггера планировщика
type CronResponse struct {
	Message             string `json:"message"`
	ProcessedCandidates int    `json:"processedCandidates"`
	LoggedIn            bool   `json:"loggedIn"`
}
