package models

// TextInput is the request body shared by /simplify, /ask-tutor and /glossary.
type TextInput struct {
	Text string `json:"text"`
}

// SimplifyResponse is returned by POST /simplify.
type SimplifyResponse struct {
	Simplified string `json:"simplified"`
}

// ExplainResponse is returned by POST /ask-tutor.
type ExplainResponse struct {
	Explanation string `json:"explanation"`
}

// GlossaryResponse is returned by POST /glossary.
type GlossaryResponse struct {
	Glossary map[string]string `json:"glossary"`
}

// StatusResponse is the liveness payload served on GET /.
type StatusResponse struct {
	Message string `json:"message"`
}
