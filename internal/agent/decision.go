package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ActionFinal is the action value that ends a turn with a plain-text answer
const ActionFinal = "final"

// Decision is what the model is asked to emit each step: either a tool
// call or a final answer.
type Decision struct {
	Action string                 `json:"action"`
	Args   map[string]interface{} `json:"args,omitempty"`
	Answer interface{}            `json:"answer,omitempty"`
}

// IsFinal reports whether the decision ends the turn
func (d Decision) IsFinal() bool {
	return d.Action == ActionFinal
}

// ParseDecision parses raw model output into a Decision.
// Output that is not valid decision JSON is treated as a final answer,
// so a model that ignores the protocol still produces a reply.
func ParseDecision(raw string) Decision {
	txt := stripFences(strings.TrimSpace(raw))

	var d Decision
	if err := json.Unmarshal([]byte(txt), &d); err != nil || d.Action == "" {
		return Decision{Action: ActionFinal, Answer: txt}
	}
	return d
}

// stripFences removes a surrounding markdown code fence if present.
// Small local models love wrapping the JSON in ```json blocks.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:] // drop the language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// toPlainText coerces a final answer to clean plain text.
// Per the system rules only strings should arrive here; anything else is
// formatted as a fallback.
func toPlainText(answer interface{}) string {
	if s, ok := answer.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprintf("%v", answer))
}
