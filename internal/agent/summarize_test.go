package agent

import (
	"strings"
	"testing"
)

func TestSummarizeToolResult(t *testing.T) {
	tests := []struct {
		name     string
		toolName string
		payload  string
		want     string
	}{
		{
			name:     "weather",
			toolName: "get_weather",
			payload:  `{"ok":true,"description":"partly cloudy","temperature":21.4}`,
			want:     "The current weather is partly cloudy with a temperature of 21.4°C.",
		},
		{
			name:     "weather missing fields",
			toolName: "get_weather",
			payload:  `{"ok":true}`,
			want:     "The current weather is unknown conditions with a temperature of ??°C.",
		},
		{
			name:     "book",
			toolName: "book_recs",
			payload:  `{"ok":true,"results":[{"title":"The Go Programming Language","author":"Alan Donovan"}]}`,
			want:     "I found a book: 'The Go Programming Language' by Alan Donovan.",
		},
		{
			name:     "book no results",
			toolName: "book_recs",
			payload:  `{"ok":true,"results":[]}`,
			want:     "I found a book: 'a great book' by an author.",
		},
		{
			name:     "joke",
			toolName: "random_joke",
			payload:  `{"ok":true,"joke":"A joke."}`,
			want:     "Here's a joke: A joke.",
		},
		{
			name:     "dog with image",
			toolName: "random_dog",
			payload:  `{"ok":true,"image":"https://images.dog.ceo/x.jpg"}`,
			want:     "I fetched a cute dog picture for you! 🐶 https://images.dog.ceo/x.jpg",
		},
		{
			name:     "trivia",
			toolName: "trivia",
			payload:  `{"ok":true,"question":"What year was Go released?"}`,
			want:     "Trivia question: What year was Go released?",
		},
		{
			name:     "tool error payload",
			toolName: "get_weather",
			payload:  `{"ok":false,"error":"request failed with status 500"}`,
			want:     "The 'get_weather' tool reported an error: request failed with status 500",
		},
		{
			name:     "unknown tool falls back to JSON",
			toolName: "mystery",
			payload:  `{"ok":true,"thing":"stuff"}`,
			want:     `Tool 'mystery' returned: {"ok":true,"thing":"stuff"}`,
		},
		{
			name:     "non-JSON payload passes through",
			toolName: "random_joke",
			payload:  "plain text result",
			want:     "The 'random_joke' tool returned: plain text result",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeToolResult(tt.toolName, tt.payload)
			if got != tt.want {
				t.Errorf("SummarizeToolResult() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarizeToolResultJokeFallback(t *testing.T) {
	got := SummarizeToolResult("random_joke", `{"ok":true}`)
	if !strings.HasPrefix(got, "Here's a joke: ") {
		t.Errorf("expected fallback joke, got %q", got)
	}
}
