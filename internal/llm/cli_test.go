package llm

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestCLIClientBuildArgs(t *testing.T) {
	c := NewCLIClient("opencode", "claude-sonnet-4", 0)
	args := c.buildArgs("analyze this")

	want := []string{"run", "analyze this", "--model", "claude-sonnet-4", "--format", "json"}
	if len(args) != len(want) {
		t.Fatalf("args = %v", args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
	if c.Timeout != 120*time.Second {
		t.Errorf("zero timeout should default to 120s, got %v", c.Timeout)
	}
}

func TestExtractTextFromJSON(t *testing.T) {
	output := strings.Join([]string{
		`{"type":"start","session":"abc"}`,
		`{"message":{"content":[{"text":"Hello "},{"text":"world"}]}}`,
		`garbage line that is not json`,
		`{"delta":{"text":"!"}}`,
		``,
	}, "\n")

	if got := extractTextFromJSON(output); got != "Hello world!" {
		t.Errorf("got %q", got)
	}
}

func TestExtractTextFromJSONEmpty(t *testing.T) {
	if got := extractTextFromJSON("no json here"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestCLIClientInvoke(t *testing.T) {
	// use /bin/echo as a stand-in agent: it prints its own args, which
	// are not JSON, so the extracted text is empty but no error occurs
	c := NewCLIClient("echo", "m", time.Second)
	out, err := c.Invoke(context.Background(), "hi")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("non-json output should extract to empty, got %q", out)
	}
}

func TestCLIClientInvokeFailure(t *testing.T) {
	c := NewCLIClient("/nonexistent/agent", "m", time.Second)
	if _, err := c.Invoke(context.Background(), "hi"); err == nil {
		t.Error("expected error for missing binary")
	}
}

func TestCLIClientPlainFormat(t *testing.T) {
	c := NewCLIClient("echo", "m", time.Second)
	c.Format = ""
	out, err := c.Invoke(context.Background(), "hi")
	if err != nil {
		t.Fatal(err)
	}
	// echo prints: run hi --model m
	if !strings.Contains(out, "run hi --model m") {
		t.Errorf("out = %q", out)
	}
}
