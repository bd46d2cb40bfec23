package models

// Machine-readable error codes surfaced to clients, one per failure class:
// authorization, not-found, external-service failure and domain no-ops.
const (
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeUpstreamFailed    = "UPSTREAM_FAILED"
	CodeOutOfStock        = "OUT_OF_STOCK"
	CodeNoAgentAvailable  = "NO_AGENT_AVAILABLE"
	CodeInvalidStatus     = "INVALID_STATUS"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidCredential = "INVALID_CREDENTIALS"
)

// ErrorResponse is the JSON body written for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
