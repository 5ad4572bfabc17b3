package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"

	"github.com/currhub/curricuforge/internal/assist"
	"github.com/currhub/curricuforge/internal/curated"
	"github.com/currhub/curricuforge/internal/generator"
	"github.com/currhub/curricuforge/internal/jobpost"
	"github.com/currhub/curricuforge/internal/pipeline"
	"github.com/currhub/curricuforge/internal/schema"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

func testServer(client *fakeClient) *Server {
	var asst *assist.Assistant
	if client != nil {
		asst = &assist.Assistant{Client: client, Model: "m"}
	} else {
		asst = &assist.Assistant{}
	}
	return &Server{
		Resolver: &pipeline.Resolver{
			Dataset:   curated.Load(""),
			Generator: &generator.Generator{Client: &fakeClient{err: errors.New("offline")}, Model: "m"},
		},
		Assistant: asst,
		JobPosts:  &jobpost.Fetcher{},
	}
}

func doJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router := testServer(nil).Router()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
}

func TestGenerate_CuratedRequest(t *testing.T) {
	router := testServer(nil).Router()
	rec := doJSON(t, router, "/api/generate", schema.CurriculumRequest{
		ProgramType: "B.Tech",
		Domain:      "Data Science",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Curriculum-Source"); got != "curated" {
		t.Fatalf("source header = %q", got)
	}
	var p schema.CurriculumPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.CoursesBySemester) == 0 {
		t.Fatal("empty curriculum")
	}
}

func TestGenerate_FallbackWhenModelDown(t *testing.T) {
	router := testServer(nil).Router()
	rec := doJSON(t, router, "/api/generate", schema.CurriculumRequest{
		Domain:            "Quantum Computing",
		DurationSemesters: 2,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if got := rec.Header().Get("X-Curriculum-Source"); got != "fallback" {
		t.Fatalf("source header = %q", got)
	}
}

func TestGenerate_BadBody(t *testing.T) {
	router := testServer(nil).Router()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	router := testServer(&fakeClient{reply: "hi"}).Router()
	rec := doJSON(t, router, "/api/chat", map[string]string{"message": "  "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestChat_UnconfiguredAdvisory(t *testing.T) {
	router := testServer(nil).Router()
	rec := doJSON(t, router, "/api/chat", map[string]string{"message": "What is in an MBA?"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "OPENROUTER_API_KEY") {
		t.Fatalf("expected configuration advisory, got %s", rec.Body.String())
	}
}

func TestChat_TransportErrorIsFriendly(t *testing.T) {
	router := testServer(&fakeClient{err: errors.New("upstream exploded")}).Router()
	rec := doJSON(t, router, "/api/chat", map[string]string{"message": "hello"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error:") {
		t.Fatalf("body: %s", rec.Body.String())
	}
}

func TestGap_RequiresDescriptionOrURL(t *testing.T) {
	router := testServer(&fakeClient{reply: "## Gap Analysis Report"}).Router()
	rec := doJSON(t, router, "/api/gap", map[string]string{"curriculum_summary": "stuff"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestGap_FetchesJobURL(t *testing.T) {
	posting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body><p>Requires Kubernetes and Go.</p></body></html>"))
	}))
	defer posting.Close()

	router := testServer(&fakeClient{reply: "## Gap Analysis Report"}).Router()
	rec := doJSON(t, router, "/api/gap", map[string]string{
		"curriculum_summary": "B.Tech CS overview",
		"job_url":            posting.URL,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Gap Analysis Report") {
		t.Fatalf("body: %s", rec.Body.String())
	}
}

func TestGap_BadURLIs400(t *testing.T) {
	router := testServer(&fakeClient{reply: "x"}).Router()
	rec := doJSON(t, router, "/api/gap", map[string]string{"job_url": "ftp://nope"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestResources_ErrorKeepsListShape(t *testing.T) {
	router := testServer(&fakeClient{reply: "not json at all"}).Router()
	rec := doJSON(t, router, "/api/resources", map[string]string{"course_name": "Algorithms"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body struct {
		Error   string           `json:"error"`
		Moocs   []assist.MOOC    `json:"moocs"`
		Books   []assist.Book    `json:"books"`
		YouTube []assist.Playlist `json:"youtube"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error == "" {
		t.Fatal("expected error field")
	}
	if body.Moocs == nil || body.Books == nil || body.YouTube == nil {
		t.Fatal("expected empty lists, not null")
	}
}

func TestFriendlyError_TruncatesOnRuneBoundary(t *testing.T) {
	// 100 bytes lands mid-rune for a multi-byte message; the cut must back
	// off to a rune start instead of emitting a broken sequence.
	long := strings.Repeat("詳", 40) // 3 bytes each, 120 bytes total
	got := friendlyError(errors.New(long))
	if !utf8.ValidString(got) {
		t.Fatalf("truncated message is not valid UTF-8: %q", got)
	}
	if strings.ContainsRune(got, utf8.RuneError) {
		t.Fatalf("truncated message contains replacement rune: %q", got)
	}
	if want := "Error: " + strings.Repeat("詳", 33); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	short := friendlyError(errors.New("plain failure"))
	if short != "Error: plain failure" {
		t.Fatalf("short message altered: %q", short)
	}
}

func TestExportPDF(t *testing.T) {
	router := testServer(nil).Router()
	gen := doJSON(t, router, "/api/generate", schema.CurriculumRequest{
		Domain:            "Quantum Computing",
		DurationSemesters: 2,
	})
	var p schema.CurriculumPayload
	if err := json.Unmarshal(gen.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	rec := doJSON(t, router, "/api/export/pdf", p)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatal("body is not a PDF")
	}
}
