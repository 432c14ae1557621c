// Package assist wraps the optional AI journaling helper. Whatever it
// returns is only ever inserted into a pending draft; nothing here touches
// the store.
package assist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrUnavailable is the single failure surfaced to callers; the underlying
// cause is logged, not shown. The feature degrades, it never blocks.
var ErrUnavailable = errors.New("assist: the journaling helper is unavailable right now")

const systemPrompt = "You are a gentle and supportive journaling assistant for someone in recovery. " +
	"Given a topic or feeling, write a short, reflective first-person journal entry they can start from. " +
	"Start the entry naturally, without greetings like 'Dear Journal'."

const defaultModel = "gemini-2.5-flash"

// Helper produces a journal draft from a free-text prompt.
type Helper interface {
	Suggest(ctx context.Context, prompt string) (string, error)
}

// Gemini is the Google-hosted implementation.
type Gemini struct {
	APIKey string
	Model  string
}

// FromEnv builds a helper from RECOVERY_GEMINI_API_KEY, or reports that the
// feature is not configured.
func FromEnv() (*Gemini, error) {
	key := os.Getenv("RECOVERY_GEMINI_API_KEY")
	if key == "" {
		return nil, errors.New("assist: RECOVERY_GEMINI_API_KEY is not set")
	}
	return &Gemini{APIKey: key}, nil
}

func (g *Gemini) Suggest(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("assist: enter a topic or feeling")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "assist: client: %v\n", err)
		return "", ErrUnavailable
	}
	defer client.Close()

	name := g.Model
	if name == "" {
		name = defaultModel
	}
	model := client.GenerativeModel(name)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		fmt.Fprintf(os.Stderr, "assist: generate: %v\n", err)
		return "", ErrUnavailable
	}

	text := firstText(resp)
	if text == "" {
		return "", ErrUnavailable
	}
	return text, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok && strings.TrimSpace(string(text)) != "" {
				return string(text)
			}
		}
	}
	return ""
}
