package rewriting

import (
	"context"
	"strings"
	"time"

	"github.com/orozcop9/TailorMyResume-AI/internal/llm"
	"github.com/orozcop9/TailorMyResume-AI/internal/prompts"
)

const promptFile = "optimize.json"

// LLMStrategy delegates the whole rewrite to an external
// text-completion service with a fixed two-part prompt. The returned
// text is used as the optimized resume wholesale; on error or timeout
// the request fails rather than falling back to partial content.
type LLMStrategy struct {
	client  llm.Client
	timeout time.Duration
}

// NewLLMStrategy creates an LLMStrategy around an existing client.
func NewLLMStrategy(client llm.Client, timeout time.Duration) *LLMStrategy {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &LLMStrategy{client: client, timeout: timeout}
}

// Optimize sends the resume and job description to the completion
// service and returns its rewritten text.
func (s *LLMStrategy) Optimize(ctx context.Context, original, jobDescription string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	system, err := prompts.Get(promptFile, "rewrite_system")
	if err != nil {
		return "", err
	}
	template, err := prompts.Get(promptFile, "rewrite_user")
	if err != nil {
		return "", err
	}

	user := prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
		"Resume":         original,
	})

	text, err := s.client.GenerateContent(ctx, system, user, llm.TierAdvanced)
	if err != nil {
		return "", &APICallError{Message: "resume rewrite failed", Cause: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &APICallError{Message: "empty response from completion service"}
	}
	return text, nil
}
