package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	calls    int
	prompts  []string
	response string
	err      error
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func TestSummarizeShortTextSkipsClient(t *testing.T) {
	fake := &fakeCompleter{response: "should not be used"}
	g := NewWithCompleter(fake)

	got := g.Summarize(context.Background(), "   too short   ")
	assert.Equal(t, MsgContentTooShort, got)
	assert.Zero(t, fake.calls, "client must not be invoked for short text")
}

func TestSummarizeDisabledGateway(t *testing.T) {
	g := New("", "gemini-2.5-flash")
	assert.False(t, g.Available())
	assert.Equal(t, MsgSummaryUnavailable, g.Summarize(context.Background(), strings.Repeat("x", 200)))
	assert.Equal(t, MsgAnswerUnavailable, g.Answer(context.Background(), "q", "context"))
	assert.Nil(t, g.GenerateQuiz(context.Background(), strings.Repeat("x", 200), 5))
}

func TestSummarizeTruncatesLongInput(t *testing.T) {
	fake := &fakeCompleter{response: "summary"}
	g := NewWithCompleter(fake)

	longText := strings.Repeat("a", maxContextChars+500)
	got := g.Summarize(context.Background(), longText)
	require.Equal(t, "summary", got)
	require.Len(t, fake.prompts, 1)

	prompt := fake.prompts[0]
	assert.Contains(t, prompt, strings.Repeat("a", maxContextChars)+ellipsisMarker)
	assert.NotContains(t, prompt, strings.Repeat("a", maxContextChars+1))
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	fake := &fakeCompleter{response: "summary"}
	g := NewWithCompleter(fake)

	// Place a three-byte rune across the cut point.
	text := strings.Repeat("a", maxContextChars-1) + strings.Repeat("世", 200)
	g.Summarize(context.Background(), text)
	require.Len(t, fake.prompts, 1)

	prompt := fake.prompts[0]
	assert.True(t, utf8.ValidString(prompt), "prompt must stay valid UTF-8")
	assert.Contains(t, prompt, strings.Repeat("a", maxContextChars-1)+ellipsisMarker)
	assert.NotContains(t, prompt, "世")
}

func TestSummarizeEmptyResponse(t *testing.T) {
	fake := &fakeCompleter{response: "   "}
	g := NewWithCompleter(fake)

	got := g.Summarize(context.Background(), strings.Repeat("x", 100))
	assert.Equal(t, MsgEmptySummary, got)
}

func TestSummarizeClassifiesErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "auth",
			err:  errors.New("gemini http status 403: API key not valid (UNAUTHENTICATED)"),
			want: "API authentication failed. Please check your Gemini API key configuration.",
		},
		{
			name: "quota",
			err:  errors.New("gemini http status 429: quota exceeded (RESOURCE_EXHAUSTED)"),
			want: "API quota exceeded. Please try again later or check your API limits.",
		},
		{
			name: "safety",
			err:  errors.New("gemini response blocked for safety"),
			want: "Content was filtered for safety reasons. Please try with different content.",
		},
		{
			name: "unknown",
			err:  errors.New("connection reset by peer"),
			want: "Error generating summary: connection reset by peer",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithCompleter(&fakeCompleter{err: tt.err})
			got := g.Summarize(context.Background(), strings.Repeat("x", 100))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyKinds(t *testing.T) {
	assert.Equal(t, KindAuth, Classify(errors.New("authentication failed")))
	assert.Equal(t, KindRateLimited, Classify(errors.New("rate limit hit")))
	assert.Equal(t, KindContentFiltered, Classify(errors.New("blocked for SAFETY")))
	assert.Equal(t, KindUnknown, Classify(errors.New("boom")))
	assert.Equal(t, KindUnknown, Classify(nil))
}

func TestAnswerRejectsMissingInputs(t *testing.T) {
	fake := &fakeCompleter{response: "answer"}
	g := NewWithCompleter(fake)

	assert.Equal(t, MsgMissingQAInputs, g.Answer(context.Background(), "", "context"))
	assert.Equal(t, MsgMissingQAInputs, g.Answer(context.Background(), "question", ""))
	assert.Zero(t, fake.calls)
}

func TestAnswerTrimsResponse(t *testing.T) {
	fake := &fakeCompleter{response: "  the answer \n"}
	g := NewWithCompleter(fake)

	got := g.Answer(context.Background(), "what?", "some context")
	assert.Equal(t, "the answer", got)
}

func TestGenerateQuizShortTextReturnsNil(t *testing.T) {
	fake := &fakeCompleter{response: "[]"}
	g := NewWithCompleter(fake)

	got := g.GenerateQuiz(context.Background(), strings.Repeat("x", minQuizChars-1), 5)
	assert.Nil(t, got)
	assert.Zero(t, fake.calls)
}

func TestGenerateQuizFiltersInvalidItems(t *testing.T) {
	raw := `Here is your quiz:
[
  {"question":"Good?","options":{"A":"1","B":"2","C":"3","D":"4"},"correct_answer":"A"},
  {"question":"Missing option","options":{"A":"1","B":"2","C":"3"},"correct_answer":"B"},
  {"question":"","options":{"A":"1","B":"2","C":"3","D":"4"},"correct_answer":"C"},
  {"question":"No answer","options":{"A":"1","B":"2","C":"3","D":"4"},"correct_answer":""}
]
Enjoy!`
	g := NewWithCompleter(&fakeCompleter{response: raw})

	got := g.GenerateQuiz(context.Background(), strings.Repeat("x", 200), 5)
	require.Len(t, got, 1)
	assert.Equal(t, "Good?", got[0].Question)
	assert.Len(t, got[0].Options, 4)
	assert.Equal(t, "A", got[0].CorrectAnswer)
}

func TestGenerateQuizMalformedJSONReturnsNil(t *testing.T) {
	g := NewWithCompleter(&fakeCompleter{response: "[ {not json ]"})
	assert.Nil(t, g.GenerateQuiz(context.Background(), strings.Repeat("x", 200), 5))

	g = NewWithCompleter(&fakeCompleter{response: "no array here"})
	assert.Nil(t, g.GenerateQuiz(context.Background(), strings.Repeat("x", 200), 5))
}

func TestGenerateQuizErrorReturnsNil(t *testing.T) {
	g := NewWithCompleter(&fakeCompleter{err: errors.New("quota exceeded")})
	assert.Nil(t, g.GenerateQuiz(context.Background(), strings.Repeat("x", 200), 5))
}

func TestGenerateQuizCountInPrompt(t *testing.T) {
	fake := &fakeCompleter{response: "[]"}
	g := NewWithCompleter(fake)

	g.GenerateQuiz(context.Background(), strings.Repeat("x", 200), 7)
	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "generate 7 multiple choice questions")
}
