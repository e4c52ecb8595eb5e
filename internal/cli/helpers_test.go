package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/aidanlsb/tempio/internal/config"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case out := <-outputCh:
		return out
	case err := <-errCh:
		t.Fatalf("read captured stdout: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out reading captured stdout")
	}
	return ""
}

// useCLIState resets the package globals for one test and restores them
// afterwards. The clock is pinned to 2023-11-14T22:13:20Z in UTC.
func useCLIState(t *testing.T, c *config.Config) {
	t.Helper()

	prevConfigPath := configPath
	prevResolved := resolvedConfigPath
	prevCfg := cfg
	prevNow := nowFlag
	prevTZ := tzFlag
	prevJSON := jsonOutput
	prevYAML := yamlOutput
	prevFormat := resolveFormat
	prevTrace := resolveTrace
	prevSaved := resolveSaved
	prevGrammarList := grammarList
	t.Cleanup(func() {
		configPath = prevConfigPath
		resolvedConfigPath = prevResolved
		cfg = prevCfg
		nowFlag = prevNow
		tzFlag = prevTZ
		jsonOutput = prevJSON
		yamlOutput = prevYAML
		resolveFormat = prevFormat
		resolveTrace = prevTrace
		resolveSaved = prevSaved
		grammarList = prevGrammarList
	})

	if c == nil {
		c = &config.Config{}
	}
	configPath = ""
	resolvedConfigPath = ""
	cfg = c
	nowFlag = timeFlag{raw: "1700000000000"}
	tzFlag = "UTC"
	jsonOutput = true
	yamlOutput = false
	resolveFormat = ""
	resolveTrace = false
	resolveSaved = ""
	grammarList = false
}

type envelope struct {
	OK       bool            `json:"ok"`
	Data     json.RawMessage `json:"data"`
	Error    *ErrorInfo      `json:"error"`
	Warnings []Warning       `json:"warnings"`
	Meta     *Meta           `json:"meta"`
}

func decodeEnvelope(t *testing.T, out string) envelope {
	t.Helper()
	var resp envelope
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	return resp
}

func decodeData(t *testing.T, resp envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Data, v); err != nil {
		t.Fatalf("decode data: %v; data=%s", err, string(resp.Data))
	}
}
