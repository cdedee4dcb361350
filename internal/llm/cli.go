package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CLIClient shells out to a local coding-agent CLI (e.g. opencode) for
// completions. The agent is invoked as `<command> run <prompt> --model
// <model> --format json` and its streamed JSON events are flattened
// back into plain text.
type CLIClient struct {
	Command string
	Model   string
	Format  string
	Timeout time.Duration
}

// NewCLIClient builds a subprocess-backed client. timeout bounds each
// invocation; zero means 120s.
func NewCLIClient(command, model string, timeout time.Duration) *CLIClient {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &CLIClient{
		Command: command,
		Model:   model,
		Format:  "json",
		Timeout: timeout,
	}
}

func (c *CLIClient) Provider() string { return "cli" }

func (c *CLIClient) buildArgs(prompt string) []string {
	args := []string{"run", prompt, "--model", c.Model}
	if c.Format != "" {
		args = append(args, "--format", c.Format)
	}
	return args
}

func (c *CLIClient) Invoke(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Command, c.buildArgs(prompt)...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(stdout.String())
		}
		return "", fmt.Errorf("cli invocation failed: %s: %w", detail, err)
	}

	output := strings.TrimSpace(stdout.String())
	if c.Format == "json" {
		return extractTextFromJSON(output), nil
	}
	return output, nil
}

// extractTextFromJSON collects the "text" fields from a stream of JSON
// event lines. Lines that are not valid JSON are skipped.
func extractTextFromJSON(output string) string {
	var chunks []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var payload interface{}
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			continue
		}
		chunks = append(chunks, walkText(payload)...)
	}
	return strings.TrimSpace(strings.Join(chunks, ""))
}

func walkText(value interface{}) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []interface{}:
		var texts []string
		for _, item := range v {
			texts = append(texts, walkText(item)...)
		}
		return texts
	case map[string]interface{}:
		var texts []string
		if s, ok := v["text"].(string); ok {
			texts = append(texts, s)
		}
		for _, key := range []string{"content", "message", "delta"} {
			if nested, ok := v[key]; ok {
				texts = append(texts, walkText(nested)...)
			}
		}
		return texts
	}
	return nil
}
