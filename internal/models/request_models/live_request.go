package request_models

// OpenLiveSessionRequest attaches a client session to its open journey so the
// live award watcher starts ticking for it. SessionID defaults to the
// authenticated account when omitted.
type OpenLiveSessionRequest struct {
	SessionID string `json:"session_id"`
	JourneyID string `json:"journey_id" binding:"required"`
}

type CloseLiveSessionRequest struct {
	SessionID string `json:"session_id"`
}
