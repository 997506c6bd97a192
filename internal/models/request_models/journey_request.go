package request_models

// RelapseRequest reports a relapse event against the current journey.
// Reset ends the journey (ended-by-relapse); otherwise only the violation
// counter moves. Either way an optional journal note can ride along.
type RelapseRequest struct {
	Reset bool     `json:"reset"`
	Mood  string   `json:"mood"`
	Note  string   `json:"note"`
	Tags  []string `json:"tags"`
}
