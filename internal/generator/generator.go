// Package generator is the generative tier of curriculum resolution: it asks
// an OpenAI-compatible chat model for a complete program and decodes the JSON
// object from whatever surrounds it in the reply.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/currhub/curricuforge/internal/cache"
	"github.com/currhub/curricuforge/internal/extract"
	"github.com/currhub/curricuforge/internal/llm"
	"github.com/currhub/curricuforge/internal/schema"
)

// ErrNotConfigured is returned when no model client is wired in, so the
// pipeline can skip straight to the procedural tier.
var ErrNotConfigured = errors.New("generator: no model client configured")

const systemPrompt = "You are an Elite Academic Curriculum Architect and Industry Strategist. " +
	"You design comprehensive, high-resolution academic programs and respond with a single valid JSON object only."

// Generator calls a chat model to produce a curriculum payload. Responses are
// cached by model+prompt so identical requests do not trigger repeat calls.
type Generator struct {
	Client  llm.Client
	Model   string
	Cache   *cache.ResponseCache
	Timeout time.Duration
}

func (g *Generator) timeout() time.Duration {
	if g.Timeout > 0 {
		return g.Timeout
	}
	return 30 * time.Second
}

// Generate produces a curriculum for the request, or an error when the model
// is unreachable or its reply does not contain a usable JSON object.
func (g *Generator) Generate(ctx context.Context, req schema.CurriculumRequest) (schema.CurriculumPayload, error) {
	if g == nil || g.Client == nil {
		return schema.CurriculumPayload{}, ErrNotConfigured
	}

	prompt := buildPrompt(req)
	key := cache.KeyFrom(g.Model, prompt)
	if g.Cache != nil {
		if b, ok, err := g.Cache.Get(ctx, key); err == nil && ok {
			var p schema.CurriculumPayload
			if err := extract.Decode(string(b), &p); err == nil && payloadComplete(p) {
				return p, nil
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout())
	defer cancel()

	resp, err := g.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return schema.CurriculumPayload{}, fmt.Errorf("generator call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return schema.CurriculumPayload{}, errors.New("generator call: empty response")
	}

	raw, err := extract.Object(resp.Choices[0].Message.Content)
	if err != nil {
		return schema.CurriculumPayload{}, fmt.Errorf("parse curriculum json: %w", err)
	}
	var p schema.CurriculumPayload
	if err := extract.Decode(string(raw), &p); err != nil {
		return schema.CurriculumPayload{}, fmt.Errorf("parse curriculum json: %w", err)
	}
	if !payloadComplete(p) {
		return schema.CurriculumPayload{}, errors.New("parse curriculum json: payload missing semesters")
	}

	if g.Cache != nil {
		_ = g.Cache.Save(ctx, key, raw)
	}
	return p, nil
}

func payloadComplete(p schema.CurriculumPayload) bool {
	return p.TotalSemesters > 0 && len(p.CoursesBySemester) > 0
}

func buildPrompt(req schema.CurriculumRequest) string {
	duration := req.DurationSemesters
	if duration <= 0 {
		duration = 4
	}
	return `Generate a comprehensive, high-resolution academic program based on these parameters:

- Program Type: ` + req.ProgramType + `
- Domain: ` + req.Domain + `
- Academic Level: ` + req.AcademicLevel + `
- Intended Duration: ` + strconv.Itoa(duration) + ` semesters
- Accreditation Standard: ` + req.AccreditationBody + `

### ADVANCED REQUIREMENTS:
1. **Academic Rigor**: The curriculum must reflect state-of-the-art research and 2026-era industry standards. Use high-level academic terminology.
2. **Domain Specificity**: Ensure every course name, description, and topic is hyper-relevant to ` + req.Domain + `. Avoid generic placeholders.
3. **Weekly Resolution**: Provide **6-8 weeks** of detailed, progressive lesson plans per course. Each week must have a specific, measurable learning target.
4. **Professional Rationale**: Write a compelling **program_rationale** (2 paragraphs) that explains how this specific curriculum addresses the current "skills gap" in ` + req.Domain + ` and its impact on the global economy.
5. **Career Trajectories**: Identify 5 high-impact **target_careers** with corresponding seniority levels (e.g., "Principal AI Architect", "Senior Policy Analyst").
6. **Bloom's Taxonomy Alignment**: Ensure learning outcomes are mapped to higher-order thinking (Analyze, Evaluate, Create).
7. **Accreditation Mapping**: Explicitly reference ` + req.AccreditationBody + ` standards (e.g., "PO/CO Mapping") in the outcome codes.

### OUTPUT STRUCTURE:
Output ONLY a single valid JSON object. Do not include markdown code blocks or extra text.
{
  "program_title": "Full Degree Name",
  "program_type": "` + req.ProgramType + `",
  "domain": "` + req.Domain + `",
  "academic_level": "` + req.AcademicLevel + `",
  "total_semesters": number,
  "program_rationale": "Detailed academic vision...",
  "target_careers": ["Career 1", "Career 2", ...],
  "accreditation_aligned": "Formal alignment statement...",
  "courses_by_semester": {
    "Semester 1": [
      {
        "course_code": "CODE101",
        "course_name": "Advanced Course Title",
        "category": "Core/Specialization/Foundational",
        "description": "Rigorous 3-sentence summary...",
        "credits": number,
        "prerequisites": ["CODE000"],
        "weekly_topics": [
          {
            "week": 1,
            "title": "Rigorous Topic",
            "description": "Scientific/Technical focus...",
            "resources": ["Peer-reviewed journal", "Industry Whitepaper"]
          }
        ],
        "outcomes": [
          {
            "outcome": "Measurable high-level outcome...",
            "bloom_level": "Create/Analyze",
            "code": "ACC-CRIT-1"
          }
        ]
      }
    ]
  },
  "recommended_skills": ["Expertise 1", "Expertise 2", ...],
  "industry_alignment_notes": "Critique of how this meets current trends...",
  "optimization_tips": ["Future-proofing suggestion 1", ...]
}`
}
