package twitter

// searchResponse ответ поиска свежих твитов (GET /2/tweets/search/recent)
type searchResponse struct {
	Data []struct {
		ID               string `json:"id"`
		AuthorID         string `json:"author_id"`
		Text             string `json:"text"`
		ReferencedTweets []struct {
			Type string `json:"type"`
			ID   string `json:"id"`
		} `json:"referenced_tweets,omitempty"`
	} `json:"data"`
	Includes struct {
		Users []struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"users"`
	} `json:"includes"`
}

// createTweetRequest запрос на публикацию твита (POST /2/tweets)
type createTweetRequest struct {
	Text  string `json:"text"`
	Reply *struct {
		InReplyToTweetID string `json:"in_reply_to_tweet_id"`
	} `json:"reply,omitempty"`
}

// createTweetResponse ответ на публикацию твита
type createTweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// meResponse ответ на проверку сессии (GET /2/users/me)
type meResponse struct {
	Data struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"data"`
}
