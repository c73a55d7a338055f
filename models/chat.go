package models

// Reply context labels returned to the frontend so it can badge the answer source.
const (
	ContextBooking  = "booking"
	ContextStatus   = "status"
	ContextHospital = "hospital"
	ContextPharmacy = "pharmacy"
	ContextMixed    = "mixed"
)

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Query     string `json:"query" binding:"required"`
	SessionID string `json:"session_id"`
}

// ChatResponse carries the assistant reply plus the session token the client must
// echo back to keep its booking dialog alive.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Context   string `json:"context"`
	Error     string `json:"error,omitempty"`
}
