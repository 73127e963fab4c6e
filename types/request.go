package types

type SendEmailRequest struct {
	Summary    string `json:"summary"`
	Recipients string `json:"recipients"`
}
