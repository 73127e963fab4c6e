package service

import (
	"context"
	"fmt"
)

// AIService produces a meeting summary from a transcript and a user
// instruction.
type AIService interface {
	Summarize(ctx context.Context, transcript, instruction string) (string, error)
}

// BuildPrompt assembles the single user message sent to the completion
// provider. The trailing instruction steers the model towards plain,
// unformatted prose; the front-end renders the summary as raw text.
func BuildPrompt(transcript, instruction string) string {
	return fmt.Sprintf("Based on this meeting transcript: %s\n\n%s. Ensure that the response is relevant and structured. Strictly not include any Markup!", transcript, instruction)
}
