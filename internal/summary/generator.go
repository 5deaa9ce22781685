// Package summary produces book summaries, preferring the live generative
// provider and degrading to a deterministic offline resolver whenever the
// live path is unavailable.
package summary

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"bookfinder/backend/internal/credential"
	"bookfinder/backend/internal/model"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// requestTimeout bounds a single live generation call.
	requestTimeout = 30 * time.Second
	// generationTemperature matches the original summary endpoint.
	generationTemperature = 0.7
	// maxOutputTokens bounds the length of a generated summary.
	maxOutputTokens = 500
)

// ErrTitleRequired is returned when Generate is called without a title.
// It is the only error the generator surfaces; provider trouble degrades
// to the mock resolver instead.
var ErrTitleRequired = errors.New("title is required")

// Generator orchestrates the summarize operation: credential gate, live
// call, and fallback to the mock resolver.
type Generator struct {
	llm      LLMClient
	mock     *MockResolver
	state    credential.State
	modelTag string
}

// NewGenerator creates a Generator. llm may be nil when no plausible
// credential is configured; every request then takes the mock path.
func NewGenerator(llm LLMClient, mock *MockResolver, state credential.State, modelTag string) *Generator {
	return &Generator{
		llm:      llm,
		mock:     mock,
		state:    state,
		modelTag: modelTag,
	}
}

// Generate returns a summary for the given book metadata. The result
// always carries provenance: SourceAPI only when the live call succeeded
// with non-empty text, SourceMock on every other path.
func (g *Generator) Generate(ctx context.Context, title, author, genre string) (model.SummaryResult, error) {
	if strings.TrimSpace(title) == "" {
		return model.SummaryResult{}, ErrTitleRequired
	}

	if g.state != credential.StatePlausible || g.llm == nil {
		log.Printf("[WARN] Using mock summary for %q: credential state is %s", title, g.state)
		return g.mockResult(title, author, genre), nil
	}

	prompt := BuildPrompt(title, author, genre)

	callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	text, err := g.llm.GenerateContent(callCtx, prompt, generationTemperature, maxOutputTokens)
	if err != nil {
		log.Printf("[WARN] Live summary call failed for %q (%s): %v", title, classifyFailure(err), err)
		return g.mockResult(title, author, genre), nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Printf("[WARN] Live summary call returned empty text for %q, falling back to mock", title)
		return g.mockResult(title, author, genre), nil
	}

	log.Printf("[INFO] Summary generated for %q via %s", title, g.modelTag)
	return model.SummaryResult{Summary: text, Source: model.SourceAPI}, nil
}

func (g *Generator) mockResult(title, author, genre string) model.SummaryResult {
	return model.SummaryResult{
		Summary: g.mock.Resolve(title, author, genre),
		Source:  model.SourceMock,
	}
}

// classifyFailure names the failure class of a live call for the logs.
// It never changes the response: every failure degrades the same way.
func classifyFailure(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.ResourceExhausted:
			return "rate-limited"
		case codes.Unauthenticated, codes.PermissionDenied:
			return "auth"
		}
	}
	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "429") || strings.Contains(errStr, "quota") || strings.Contains(errStr, "rate limit"):
		return "rate-limited"
	case strings.Contains(errStr, "401") || strings.Contains(errStr, "403") || strings.Contains(errStr, "API key"):
		return "auth"
	default:
		return "provider-error"
	}
}
