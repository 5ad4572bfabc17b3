package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/currhub/curricuforge/internal/curated"
	"github.com/currhub/curricuforge/internal/fallback"
	"github.com/currhub/curricuforge/internal/generator"
	"github.com/currhub/curricuforge/internal/schema"
)

type fakeClient struct {
	reply string
	err   error
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.reply}},
		},
	}, nil
}

func TestResolve_CuratedWins(t *testing.T) {
	r := &Resolver{Dataset: curated.Load("")}
	p, src := r.Resolve(context.Background(), schema.CurriculumRequest{
		ProgramType: "B.Tech",
		Domain:      "Data Science",
	})
	if src != SourceCurated {
		t.Fatalf("source = %q, want curated", src)
	}
	if p.ProgramTitle == "" || len(p.CoursesBySemester) == 0 {
		t.Fatalf("incomplete curated payload: %+v", p)
	}
}

func TestResolve_TemplateTier(t *testing.T) {
	// No dataset entry for M.Tech_Computer Science, but the domain has a
	// built-in profile.
	r := &Resolver{Dataset: curated.Load("")}
	p, src := r.Resolve(context.Background(), schema.CurriculumRequest{
		ProgramType:       "M.Tech",
		Domain:            "Computer Science",
		DurationSemesters: 4,
	})
	if src != SourceTemplate {
		t.Fatalf("source = %q, want template", src)
	}
	if p.Domain != "Computer Science" {
		t.Fatalf("domain = %q", p.Domain)
	}
}

func TestResolve_GenerativeTier(t *testing.T) {
	reply := "```json\n" +
		`{"program_title":"B.Sc in Oceanography","program_type":"B.Sc","domain":"Oceanography","academic_level":"Undergraduate","total_semesters":2,"courses_by_semester":{"Semester 1":[{"course_code":"OC101","course_name":"Tides","category":"Core","description":"d","credits":4}]}}` +
		"\n```"
	r := &Resolver{
		Generator: &generator.Generator{Client: &fakeClient{reply: reply}, Model: "m"},
	}
	p, src := r.Resolve(context.Background(), schema.CurriculumRequest{Domain: "Oceanography", DurationSemesters: 2})
	if src != SourceGenerative {
		t.Fatalf("source = %q, want generative", src)
	}
	if p.ProgramTitle != "B.Sc in Oceanography" {
		t.Fatalf("payload: %+v", p)
	}
}

func TestResolve_FallbackGuarantee(t *testing.T) {
	r := &Resolver{
		Dataset:   curated.Load(""),
		Generator: &generator.Generator{Client: &fakeClient{err: errors.New("down")}, Model: "m"},
	}
	p, src := r.Resolve(context.Background(), schema.CurriculumRequest{
		ProgramType:       "B.Tech",
		Domain:            "Quantum Computing",
		DurationSemesters: 2,
	})
	if src != SourceFallback {
		t.Fatalf("source = %q, want fallback", src)
	}
	if p.TotalSemesters != 2 || len(p.CoursesBySemester) != 2 {
		t.Fatalf("fallback shape: semesters=%d map=%d", p.TotalSemesters, len(p.CoursesBySemester))
	}
	if !strings.Contains(p.IndustryAlignmentNotes, fallback.FallbackNotice) {
		t.Fatalf("missing fallback disclosure: %q", p.IndustryAlignmentNotes)
	}
}

func TestResolve_NoTiersConfigured(t *testing.T) {
	r := &Resolver{}
	p, src := r.Resolve(context.Background(), schema.CurriculumRequest{Domain: "Quantum Computing"})
	if src != SourceFallback {
		t.Fatalf("source = %q, want fallback", src)
	}
	if len(p.CoursesBySemester) == 0 {
		t.Fatal("fallback must always produce a payload")
	}
}
