package response_models

type CheckInResponse struct {
	ID        string   `json:"id"`
	JourneyID string   `json:"journey_id"`
	Mood      string   `json:"mood,omitempty"`
	Note      string   `json:"note"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"created_at"`
}
