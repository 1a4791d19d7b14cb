package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const openLibraryURL = "https://openlibrary.org/search.json"

// BookRecsTool suggests books for a topic via Open Library search
type BookRecsTool struct {
	BaseTool
	baseURL string
	client  *http.Client
}

// NewBookRecsTool creates the book suggestion tool
func NewBookRecsTool() *BookRecsTool {
	params := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"topic": map[string]interface{}{
				"type":        "string",
				"description": "Topic or genre to search books for",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Number of suggestions (1-10, default 5)",
			},
		},
		"required": []string{"topic"},
	}

	return &BookRecsTool{
		BaseTool: NewBaseTool(
			"book_recs",
			"Simple book suggestions for a topic via Open Library search.",
			params,
		),
		baseURL: openLibraryURL,
		client:  newHTTPClient(DefaultTimeout),
	}
}

func (t *BookRecsTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	topic, ok := args["topic"].(string)
	if !ok || topic == "" {
		return nil, fmt.Errorf("topic parameter is required")
	}

	limit := 5
	if l, ok := toFloat(args["limit"]); ok {
		limit = int(l)
		if limit < 1 {
			limit = 1
		}
		if limit > 10 {
			limit = 10
		}
	}

	params := url.Values{}
	params.Set("q", topic)
	params.Set("limit", strconv.Itoa(limit))

	var searchResp struct {
		Docs []struct {
			Title            string   `json:"title"`
			AuthorName       []string `json:"author_name"`
			FirstPublishYear int      `json:"first_publish_year"`
			Key              string   `json:"key"`
		} `json:"docs"`
	}

	if err := getJSON(ctx, t.client, t.baseURL, params, &searchResp); err != nil {
		return errResult(err), nil
	}

	var picks []map[string]interface{}
	for _, d := range searchResp.Docs {
		author := "Unknown"
		if len(d.AuthorName) > 0 {
			author = d.AuthorName[0]
		}
		picks = append(picks, map[string]interface{}{
			"title":  d.Title,
			"author": author,
			"year":   d.FirstPublishYear,
			"work":   d.Key,
		})
	}

	return map[string]interface{}{
		"ok":      true,
		"topic":   topic,
		"results": picks,
	}, nil
}
