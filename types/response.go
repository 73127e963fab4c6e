package types

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type SendEmailResponse struct {
	Success string `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
