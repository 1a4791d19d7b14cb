package tools

import (
	"context"
	"net/http"
)

const dogCEOURL = "https://dog.ceo/api/breeds/image/random"

// DogTool fetches a random dog picture URL from Dog CEO
type DogTool struct {
	BaseTool
	baseURL string
	client  *http.Client
}

// NewDogTool creates the dog picture tool
func NewDogTool() *DogTool {
	params := map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}

	return &DogTool{
		BaseTool: NewBaseTool(
			"random_dog",
			"Return a random dog image URL.",
			params,
		),
		baseURL: dogCEOURL,
		client:  newHTTPClient(DefaultTimeout),
	}
}

func (t *DogTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	var dogResp struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}

	if err := getJSON(ctx, t.client, t.baseURL, nil, &dogResp); err != nil {
		return errResult(err), nil
	}

	return map[string]interface{}{
		"ok":    true,
		"image": dogResp.Message,
	}, nil
}
