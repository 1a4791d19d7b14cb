// Package agent runs the conversation loop between the user, the model,
// and the MCP tool server.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/neves/fun-claw/internal/ai"
	"github.com/neves/fun-claw/internal/retry"
)

// ToolCaller abstracts the MCP client so the loop can be tested without
// spawning a server subprocess
type ToolCaller interface {
	HasTool(name string) bool
	CallTool(ctx context.Context, name string, args map[string]interface{}) (string, error)
}

// Agent drives one conversation against a provider and a tool caller
type Agent struct {
	provider    ai.Provider
	caller      ToolCaller
	history     []ai.Message
	maxSteps    int
	model       string
	temperature float64
	retryCfg    retry.Config
}

// Config for creating a new Agent
type Config struct {
	Provider    ai.Provider
	Caller      ToolCaller
	MaxSteps    int
	Model       string
	Temperature float64
	Retry       *retry.Config
}

// NewAgent creates a new agent with the given configuration
func NewAgent(cfg Config) *Agent {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = 8
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.2
	}

	retryCfg := retry.DefaultConfig()
	if cfg.Retry != nil {
		retryCfg = *cfg.Retry
	}

	return &Agent{
		provider:    cfg.Provider,
		caller:      cfg.Caller,
		history:     []ai.Message{{Role: "system", Content: SystemPrompt}},
		maxSteps:    cfg.MaxSteps,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		retryCfg:    retryCfg,
	}
}

// Reset drops the conversation history, keeping only the system prompt
func (a *Agent) Reset() {
	a.history = []ai.Message{{Role: "system", Content: SystemPrompt}}
}

// History returns the current conversation messages
func (a *Agent) History() []ai.Message {
	return a.history
}

// Run executes one user turn: the model decides, tools run, and the
// final plain-text reply comes back. Conversational failures (unknown
// tool, step budget exhausted) are returned as replies, not errors.
func (a *Agent) Run(ctx context.Context, userInput string) string {
	a.history = append(a.history, ai.Message{Role: "user", Content: userInput})

	for step := 0; step < a.maxSteps; step++ {
		log.Printf("[Agent] Step %d/%d", step+1, a.maxSteps)

		decision := a.decide(ctx)

		if decision.IsFinal() {
			plain := toPlainText(decision.Answer)
			a.history = append(a.history, ai.Message{Role: "assistant", Content: plain})
			return plain
		}

		tname := strings.TrimSpace(decision.Action)
		if tname == "" || !a.caller.HasTool(tname) {
			msg := fmt.Sprintf("Unknown tool: %s", tname)
			a.history = append(a.history, ai.Message{Role: "assistant", Content: msg})
			return msg
		}

		log.Printf("[Agent] Calling tool: %s", tname)
		payload, err := a.caller.CallTool(ctx, tname, decision.Args)
		if err != nil {
			// Let the model react to the failure; no retry here
			errMsg := fmt.Sprintf("Tool '%s' failed: %v", tname, err)
			a.history = append(a.history, ai.Message{Role: "user", Content: "[Tool Error] " + errMsg})
			continue
		}

		summary := SummarizeToolResult(tname, payload)
		a.history = append(a.history, ai.Message{Role: "user", Content: "[Tool Result] " + summary})
	}

	msg := "I tried several steps but couldn't finish your request. Could you rephrase?"
	a.history = append(a.history, ai.Message{Role: "assistant", Content: msg})
	return msg
}

// decide asks the model for the next action. Transport failures become a
// final apology so the conversation keeps going.
func (a *Agent) decide(ctx context.Context) Decision {
	content, err := retry.Do(ctx, a.retryCfg, func() (string, error) {
		resp, err := a.provider.Chat(ctx, ai.ChatRequest{
			Messages:    a.history,
			Model:       a.model,
			Temperature: a.temperature,
		})
		if err != nil {
			return "", err
		}
		return resp.Content, nil
	})
	if err != nil {
		return Decision{
			Action: ActionFinal,
			Answer: fmt.Sprintf("Sorry, I had trouble reaching my brain: %v", err),
		}
	}

	return ParseDecision(content)
}

// Trivia calls the trivia tool directly, bypassing the model, and
// returns a printable question block with numbered choices. The result
// lands in history so the conversation can continue.
func (a *Agent) Trivia(ctx context.Context) string {
	payload, err := a.caller.CallTool(ctx, "trivia", map[string]interface{}{})
	if err != nil {
		msg := fmt.Sprintf("Oops! Trivia failed: %v", err)
		a.history = append(a.history, ai.Message{Role: "assistant", Content: msg})
		return msg
	}

	var data struct {
		OK       bool     `json:"ok"`
		Question string   `json:"question"`
		Choices  []string `json:"choices"`
		Error    string   `json:"error"`
	}
	if err := json.Unmarshal([]byte(payload), &data); err != nil || !data.OK {
		reason := data.Error
		if reason == "" {
			reason = "unexpected payload"
		}
		msg := fmt.Sprintf("Oops! Trivia failed: %s", reason)
		a.history = append(a.history, ai.Message{Role: "assistant", Content: msg})
		return msg
	}

	question := data.Question
	if question == "" {
		question = "No question received."
	}

	var b strings.Builder
	b.WriteString("🧠 Trivia Question:\n")
	b.WriteString(question)
	for i, c := range shuffleChoices(data.Choices) {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, c))
	}

	summary := SummarizeToolResult("trivia", payload)
	a.history = append(a.history, ai.Message{Role: "user", Content: "[Tool Result] " + summary})

	return b.String()
}

// shuffleChoices dedupes and shuffles answer choices so the correct one
// doesn't always land last
func shuffleChoices(choices []string) []string {
	seen := make(map[string]bool, len(choices))
	out := make([]string, 0, len(choices))
	for _, c := range choices {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
