package apimodels

type AnalyzeRequest struct {
	// Message is the text message to analyze
	Message string `json:"message"`

	// Context is optional background the sender can provide
	Context string `json:"context,omitempty"`

	// Type is accepted for forward compatibility but currently unused
	Type string `json:"type,omitempty"`
}

type CompareRequest struct {
	// Messages is the ordered conversation excerpt to compare (2-10 entries)
	Messages []string `json:"messages"`

	// Context is optional background the sender can provide
	Context string `json:"context,omitempty"`

	// Type is accepted for forward compatibility but currently unused
	Type string `json:"type,omitempty"`
}

type AnalysisResponse struct {
	// Analysis is the model's free-form answer
	Analysis string `json:"analysis"`

	// ConfidenceLevel is "High", "Medium" or "Low" when one could be
	// extracted from the analysis, omitted otherwise
	ConfidenceLevel string `json:"confidenceLevel,omitempty"`

	// Timestamp is the request completion time in RFC 3339
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
