package assist

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type fakeClient struct {
	reply   string
	err     error
	lastReq openai.ChatCompletionRequest
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.reply}},
		},
	}, nil
}

func TestChat_UnconfiguredReturnsAdvisory(t *testing.T) {
	a := &Assistant{}
	got, err := a.Chat(context.Background(), "What does an MCA cover?")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got != ConfigurationMissing {
		t.Fatalf("got %q", got)
	}
}

func TestChat_PassesMessageAndTrims(t *testing.T) {
	fc := &fakeClient{reply: "  Here is the breakdown.  \n"}
	a := &Assistant{Client: fc, Model: "m"}
	got, err := a.Chat(context.Background(), "Explain B.Tech AI semester 1")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got != "Here is the breakdown." {
		t.Fatalf("reply not trimmed: %q", got)
	}
	if fc.lastReq.MaxTokens != 500 {
		t.Fatalf("max tokens = %d", fc.lastReq.MaxTokens)
	}
	if fc.lastReq.Messages[1].Content != "Explain B.Tech AI semester 1" {
		t.Fatalf("user message: %q", fc.lastReq.Messages[1].Content)
	}
}

func TestSyllabus_UserMessageShape(t *testing.T) {
	fc := &fakeClient{reply: "## Course: Operating Systems"}
	a := &Assistant{Client: fc, Model: "m"}
	if _, err := a.Syllabus(context.Background(), "Operating Systems", "B.Tech", "Computer Science"); err != nil {
		t.Fatalf("syllabus: %v", err)
	}
	user := fc.lastReq.Messages[1].Content
	for _, want := range []string{"Operating Systems", "Program: B.Tech", "Domain: Computer Science"} {
		if !strings.Contains(user, want) {
			t.Errorf("user message missing %q: %q", want, user)
		}
	}
}

func TestAnalyzeGap_TransportErrorSurfaces(t *testing.T) {
	wantErr := errors.New("gateway timeout")
	a := &Assistant{Client: &fakeClient{err: wantErr}, Model: "m"}
	if _, err := a.AnalyzeGap(context.Background(), "summary", "job"); !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestResources_FencedJSONDecoded(t *testing.T) {
	fc := &fakeClient{reply: "```json\n" + `{
		"moocs": [{"title":"ML Specialization","platform":"Coursera","url":"https://coursera.org/ml","instructor":"A. Ng"}],
		"books": [{"title":"PRML","author":"Bishop","edition":"1st Edition, 2006","isbn":"978-0387310732"}],
		"youtube": [{"title":"ML Course","creator":"StatQuest","url":"https://youtube.com/sq","videos":"80 videos"}]
	}` + "\n```"}
	a := &Assistant{Client: fc, Model: "m"}
	rs, err := a.Resources(context.Background(), "Machine Learning", "Data Science")
	if err != nil {
		t.Fatalf("resources: %v", err)
	}
	if len(rs.Moocs) != 1 || rs.Moocs[0].Platform != "Coursera" {
		t.Fatalf("moocs: %+v", rs.Moocs)
	}
	if len(rs.Books) != 1 || rs.Books[0].Author != "Bishop" {
		t.Fatalf("books: %+v", rs.Books)
	}
	if len(rs.YouTube) != 1 || rs.YouTube[0].Videos != "80 videos" {
		t.Fatalf("youtube: %+v", rs.YouTube)
	}
	if !strings.Contains(fc.lastReq.Messages[1].Content, "(Domain: Data Science)") {
		t.Fatalf("user message: %q", fc.lastReq.Messages[1].Content)
	}
}

func TestResources_NonJSONReplyIsError(t *testing.T) {
	a := &Assistant{Client: &fakeClient{reply: "Sorry, I can only chat."}, Model: "m"}
	if _, err := a.Resources(context.Background(), "Algorithms", ""); err == nil {
		t.Fatal("expected parse error")
	}
}
