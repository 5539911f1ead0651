package main

// Dialogflow ES webhook wire shapes. The agent performs all intent
// classification upstream and calls this service with the parsed result.

type WebhookIntent struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName"`
}

type WebhookQueryResult struct {
	QueryText    string         `json:"queryText"`
	Parameters   map[string]any `json:"parameters,omitempty"`
	Intent       *WebhookIntent `json:"intent,omitempty"`
	LanguageCode string         `json:"languageCode"`
}

type WebhookRequest struct {
	ResponseID  string              `json:"responseId"`
	Session     string              `json:"session"`
	QueryResult *WebhookQueryResult `json:"queryResult"`
}

type DebugInfo struct {
	DetectedIntent   string `json:"detectedIntent"`
	DetectedLanguage string `json:"detectedLanguage"`
	Timestamp        int64  `json:"timestamp"`
}

type WebhookResponse struct {
	FulfillmentText string     `json:"fulfillmentText"`
	DebugInfo       *DebugInfo `json:"debugInfo,omitempty"`
}

// ErrorResponse still carries a speakable fulfillment text so the agent has
// something to say when the webhook rejects a request.
type ErrorResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
	Error           string `json:"error"`
}

type TestResponse struct {
	Intent   string `json:"intent"`
	Language string `json:"language"`
	Response string `json:"response"`
}

type HealthResponse struct {
	Status             string   `json:"status"`
	Service            string   `json:"service"`
	SupportedLanguages []string `json:"supportedLanguages"`
	Timestamp          int64    `json:"timestamp"`
}
