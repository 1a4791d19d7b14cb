package tools

import (
	"context"
	"net/http"
	"net/url"
)

const jokeAPIURL = "https://v2.jokeapi.dev/joke/Any"

// JokeTool fetches a safe single-line joke from JokeAPI
type JokeTool struct {
	BaseTool
	baseURL string
	client  *http.Client
}

// NewJokeTool creates the joke tool
func NewJokeTool() *JokeTool {
	params := map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}

	return &JokeTool{
		BaseTool: NewBaseTool(
			"random_joke",
			"Return a safe, single-line joke.",
			params,
		),
		baseURL: jokeAPIURL,
		client:  newHTTPClient(DefaultTimeout),
	}
}

func (t *JokeTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	params := url.Values{}
	params.Set("type", "single")
	params.Set("safe-mode", "")

	var jokeResp struct {
		Joke string `json:"joke"`
	}

	if err := getJSON(ctx, t.client, t.baseURL, params, &jokeResp); err != nil {
		return errResult(err), nil
	}

	joke := jokeResp.Joke
	if joke == "" {
		joke = "No joke found"
	}

	return map[string]interface{}{
		"ok":   true,
		"joke": joke,
	}, nil
}
