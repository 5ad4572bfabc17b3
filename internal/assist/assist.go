// Package assist bundles the conversational helpers that sit beside the
// curriculum pipeline: a Q&A chatbot, a per-course syllabus writer, a
// curriculum-vs-job gap analyst, and a learning-resource curator. All of them
// go through the same chat-completion client.
package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/currhub/curricuforge/internal/extract"
	"github.com/currhub/curricuforge/internal/llm"
)

// ConfigurationMissing is returned as the reply text when no API key is
// configured, matching how the web UI surfaces the condition to users.
const ConfigurationMissing = "Please set your LLM_API_KEY (or OPENROUTER_API_KEY) in the .env file. Get one free at openrouter.ai"

// MOOC is one online course recommendation.
type MOOC struct {
	Title      string `json:"title"`
	Platform   string `json:"platform"`
	URL        string `json:"url"`
	Instructor string `json:"instructor"`
}

// Book is one textbook recommendation.
type Book struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Edition string `json:"edition"`
	ISBN    string `json:"isbn"`
}

// Playlist is one video playlist or channel recommendation.
type Playlist struct {
	Title   string `json:"title"`
	Creator string `json:"creator"`
	URL     string `json:"url"`
	Videos  string `json:"videos"`
}

// ResourceSet is the curated bundle for one course.
type ResourceSet struct {
	Moocs   []MOOC     `json:"moocs"`
	Books   []Book     `json:"books"`
	YouTube []Playlist `json:"youtube"`
}

// Assistant answers chat, syllabus, gap-analysis and resource requests via a
// single chat model.
type Assistant struct {
	Client  llm.Client
	Model   string
	Timeout time.Duration
}

func (a *Assistant) timeout() time.Duration {
	if a.Timeout > 0 {
		return a.Timeout
	}
	return 30 * time.Second
}

func (a *Assistant) configured() bool {
	return a != nil && a.Client != nil
}

func (a *Assistant) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()

	resp, err := a.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("assistant call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("assistant call: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Chat answers a free-form curriculum question.
func (a *Assistant) Chat(ctx context.Context, message string) (string, error) {
	if !a.configured() {
		return ConfigurationMissing, nil
	}
	return a.complete(ctx, chatSystemPrompt, message, 500)
}

// Syllabus writes a detailed markdown syllabus for one course.
func (a *Assistant) Syllabus(ctx context.Context, courseName, program, domain string) (string, error) {
	if !a.configured() {
		return ConfigurationMissing, nil
	}
	user := "Generate a detailed syllabus for the course: " + courseName +
		"\nProgram: " + program +
		"\nDomain: " + domain
	return a.complete(ctx, syllabusSystemPrompt, user, 1500)
}

// AnalyzeGap compares a curriculum summary against a job description.
func (a *Assistant) AnalyzeGap(ctx context.Context, curriculumSummary, jobDescription string) (string, error) {
	if !a.configured() {
		return ConfigurationMissing, nil
	}
	user := "Analyze the following:\n\nCURRICULUM:\n" + curriculumSummary +
		"\n\nJOB DESCRIPTION:\n" + jobDescription +
		"\n\nProvide a detailed gap analysis."
	return a.complete(ctx, gapSystemPrompt, user, 1500)
}

// Resources curates MOOCs, books and playlists for one course. The model is
// asked for strict JSON but replies are decoded leniently, fenced blocks
// included.
func (a *Assistant) Resources(ctx context.Context, courseName, domain string) (ResourceSet, error) {
	if !a.configured() {
		return ResourceSet{}, errors.New("assistant: no model client configured")
	}
	user := "Provide learning resources for the course: " + courseName
	if domain != "" {
		user += " (Domain: " + domain + ")"
	}
	reply, err := a.complete(ctx, resourceSystemPrompt, user, 1200)
	if err != nil {
		return ResourceSet{}, err
	}
	var rs ResourceSet
	if err := extract.Decode(reply, &rs); err != nil {
		return ResourceSet{}, fmt.Errorf("parse resources json: %w", err)
	}
	return rs, nil
}
