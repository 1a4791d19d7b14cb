package tools

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"
)

const openTDBURL = "https://opentdb.com/api.php"

// TriviaTool fetches one multiple-choice question from Open Trivia DB
type TriviaTool struct {
	BaseTool
	baseURL string
	client  *http.Client
}

// NewTriviaTool creates the trivia tool
func NewTriviaTool() *TriviaTool {
	params := map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}

	return &TriviaTool{
		BaseTool: NewBaseTool(
			"trivia",
			"Return one multiple-choice trivia question.",
			params,
		),
		baseURL: openTDBURL,
		client:  newHTTPClient(DefaultTimeout),
	}
}

func (t *TriviaTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	params := url.Values{}
	params.Set("amount", "1")
	params.Set("type", "multiple")

	var triviaResp struct {
		Results []struct {
			Question         string   `json:"question"`
			CorrectAnswer    string   `json:"correct_answer"`
			IncorrectAnswers []string `json:"incorrect_answers"`
		} `json:"results"`
	}

	if err := getJSON(ctx, t.client, t.baseURL, params, &triviaResp); err != nil {
		return errResult(err), nil
	}

	if len(triviaResp.Results) == 0 {
		return errResult(fmt.Errorf("no trivia")), nil
	}

	q := triviaResp.Results[0]

	// OpenTDB delivers HTML-escaped text
	choices := make([]string, 0, len(q.IncorrectAnswers)+1)
	for _, c := range q.IncorrectAnswers {
		choices = append(choices, html.UnescapeString(c))
	}
	choices = append(choices, html.UnescapeString(q.CorrectAnswer))

	return map[string]interface{}{
		"ok":       true,
		"question": html.UnescapeString(q.Question),
		"choices":  choices,
		"answer":   html.UnescapeString(q.CorrectAnswer),
	}, nil
}
