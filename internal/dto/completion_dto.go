package dto

// CompletionRequest is the payload of the generateAIResponse callable.
// Prompt is a pointer so a missing prompt can be told apart from an empty one
// in logs; both are rejected.
type CompletionRequest struct {
	Prompt      *string  `json:"prompt"`
	Context     string   `json:"context,omitempty"`
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

type CompletionResponse struct {
	Text string `json:"text"`
}
