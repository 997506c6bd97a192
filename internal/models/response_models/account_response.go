package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type ForgotPasswordResponse struct {
	// ResetToken is returned directly; the deployment has no mail transport.
	ResetToken string `json:"reset_token"`
}
