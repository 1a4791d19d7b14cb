package agent

import (
	"encoding/json"
	"fmt"
)

// SummarizeToolResult converts raw tool output into a human-readable
// sentence for the chat history. Tools return JSON payloads; anything
// else passes through verbatim.
func SummarizeToolResult(toolName, payload string) string {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return fmt.Sprintf("The '%s' tool returned: %s", toolName, payload)
	}

	if ok, present := data["ok"].(bool); present && !ok {
		errText := "unknown error"
		if e, ok := data["error"].(string); ok && e != "" {
			errText = e
		}
		return fmt.Sprintf("The '%s' tool reported an error: %s", toolName, errText)
	}

	switch toolName {
	case "get_weather":
		desc, _ := data["description"].(string)
		if desc == "" {
			desc = "unknown conditions"
		}
		temp := data["temperature"]
		if temp == nil {
			temp = "??"
		}
		return fmt.Sprintf("The current weather is %s with a temperature of %v°C.", desc, temp)

	case "book_recs":
		title := "a great book"
		author := "an author"
		if results, ok := data["results"].([]interface{}); ok && len(results) > 0 {
			if first, ok := results[0].(map[string]interface{}); ok {
				if t, ok := first["title"].(string); ok && t != "" {
					title = t
				}
				if a, ok := first["author"].(string); ok && a != "" {
					author = a
				}
			}
		}
		return fmt.Sprintf("I found a book: '%s' by %s.", title, author)

	case "random_joke":
		joke, _ := data["joke"].(string)
		if joke == "" {
			joke = "Why don't skeletons fight each other? They don't have the guts!"
		}
		return fmt.Sprintf("Here's a joke: %s", joke)

	case "random_dog":
		if image, ok := data["image"].(string); ok && image != "" {
			return fmt.Sprintf("I fetched a cute dog picture for you! 🐶 %s", image)
		}
		return "I fetched a cute dog picture for you! 🐶"

	case "trivia":
		question, _ := data["question"].(string)
		if question == "" {
			question = "What is the meaning of life?"
		}
		return fmt.Sprintf("Trivia question: %s", question)

	default:
		raw, _ := json.Marshal(data)
		return fmt.Sprintf("Tool '%s' returned: %s", toolName, string(raw))
	}
}
