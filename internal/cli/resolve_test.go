package cli

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/tempio/internal/config"
)

const testNowMs = int64(1_700_000_000_000)

func TestResolveCommandJSONOutput(t *testing.T) {
	useCLIState(t, nil)

	out := captureStdout(t, func() {
		if err := resolveCmd.RunE(resolveCmd, []string{"3", "day", "ago"}); err != nil {
			t.Fatalf("resolveCmd.RunE: %v", err)
		}
	})

	resp := decodeEnvelope(t, out)
	if !resp.OK {
		t.Fatalf("expected ok=true; out=%s", out)
	}
	var result ResolveResult
	decodeData(t, resp, &result)

	want := testNowMs - 3*86_400_000
	if result.Ms != want {
		t.Fatalf("Ms = %d, want %d", result.Ms, want)
	}
	if result.Phrase != "3 day ago" {
		t.Fatalf("Phrase = %q, want %q", result.Phrase, "3 day ago")
	}
	if result.Format != "ms" {
		t.Fatalf("Format = %q, want ms", result.Format)
	}
	if result.RFC3339 != "2023-11-11T22:13:20.000Z" {
		t.Fatalf("RFC3339 = %q", result.RFC3339)
	}
	if result.Relative != "3 days ago" {
		t.Fatalf("Relative = %q, want %q", result.Relative, "3 days ago")
	}
	if resp.Meta == nil || resp.Meta.NowMs != testNowMs {
		t.Fatalf("Meta = %+v, want now_ms %d", resp.Meta, testNowMs)
	}
	if len(result.Steps) != 0 {
		t.Fatalf("expected no steps without --trace, got %v", result.Steps)
	}
}

func TestResolveCommandPhrases(t *testing.T) {
	tests := []struct {
		args []string
		want int64
	}{
		{[]string{"now"}, testNowMs},
		{[]string{"yesterday"}, testNowMs - 86_400_000},
		{[]string{"1 week from now"}, testNowMs + 604_800_000},
		{[]string{"2", "day", "from", "yesterday"}, testNowMs + 86_400_000},
		{[]string{"1.5", "hour", "ago"}, testNowMs - 5_400_000},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			useCLIState(t, nil)

			out := captureStdout(t, func() {
				if err := resolveCmd.RunE(resolveCmd, tt.args); err != nil {
					t.Fatalf("resolveCmd.RunE: %v", err)
				}
			})

			var result ResolveResult
			decodeData(t, decodeEnvelope(t, out), &result)
			if result.Ms != tt.want {
				t.Fatalf("Ms = %d, want %d", result.Ms, tt.want)
			}
		})
	}
}

func TestResolveCommandErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
		wantWord string
	}{
		{name: "plural unit", args: []string{"3", "days", "ago"}, wantCode: ErrUnknownWord, wantWord: "days"},
		{name: "capitalised", args: []string{"Now"}, wantCode: ErrUnknownWord, wantWord: "Now"},
		{name: "double space", args: []string{"3  day ago"}, wantCode: ErrUnknownWord, wantWord: ""},
		{name: "wrong order", args: []string{"day", "3", "ago"}, wantCode: ErrGrammar, wantWord: "day"},
		{name: "dangling span", args: []string{"3", "day"}, wantCode: ErrGrammar, wantWord: "3 day"},
		{name: "empty", args: nil, wantCode: ErrEmptyInput},
		{name: "overflow", args: []string{"1e300", "century", "ago"}, wantCode: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCLIState(t, nil)

			out := captureStdout(t, func() {
				if err := resolveCmd.RunE(resolveCmd, tt.args); err != nil {
					t.Fatalf("expected nil error in JSON mode, got %v", err)
				}
			})

			resp := decodeEnvelope(t, out)
			if resp.OK || resp.Error == nil {
				t.Fatalf("expected error envelope; out=%s", out)
			}
			if resp.Error.Code != tt.wantCode {
				t.Fatalf("code = %q, want %q; out=%s", resp.Error.Code, tt.wantCode, out)
			}
			if tt.wantCode == ErrUnknownWord || tt.wantCode == ErrGrammar {
				details, ok := resp.Error.Details.(map[string]interface{})
				if !ok {
					t.Fatalf("expected details map, got %#v", resp.Error.Details)
				}
				if details["word"] != tt.wantWord {
					t.Fatalf("details.word = %#v, want %q", details["word"], tt.wantWord)
				}
			}
		})
	}
}

func TestResolveCommandTextModeReturnsError(t *testing.T) {
	useCLIState(t, nil)
	jsonOutput = false

	var err error
	out := captureStdout(t, func() {
		err = resolveCmd.RunE(resolveCmd, []string{"3", "days", "ago"})
	})
	if err == nil {
		t.Fatal("expected error in text mode")
	}
	if !strings.Contains(err.Error(), `"days"`) {
		t.Fatalf("error = %q, want it to name the word", err.Error())
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
}

func TestResolveCommandTextFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"ms", "1699740800000"},
		{"rfc3339", "2023-11-11T22:13:20.000Z"},
		{"date", "2023-11-11"},
		{"human", "Sat Nov 11 2023 22:13:20 UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			useCLIState(t, nil)
			jsonOutput = false
			resolveFormat = tt.format

			out := captureStdout(t, func() {
				if err := resolveCmd.RunE(resolveCmd, []string{"3", "day", "ago"}); err != nil {
					t.Fatalf("resolveCmd.RunE: %v", err)
				}
			})
			if !strings.Contains(out, tt.want) {
				t.Fatalf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestResolveCommandUsesConfigDefaultFormat(t *testing.T) {
	useCLIState(t, &config.Config{DefaultFormat: "date"})

	out := captureStdout(t, func() {
		if err := resolveCmd.RunE(resolveCmd, []string{"now"}); err != nil {
			t.Fatalf("resolveCmd.RunE: %v", err)
		}
	})

	var result ResolveResult
	decodeData(t, decodeEnvelope(t, out), &result)
	if result.Format != "date" || result.Formatted != "2023-11-14" {
		t.Fatalf("got format %q formatted %q, want date 2023-11-14", result.Format, result.Formatted)
	}
}

func TestResolveCommandInvalidFormat(t *testing.T) {
	useCLIState(t, nil)
	resolveFormat = "iso"

	out := captureStdout(t, func() {
		if err := resolveCmd.RunE(resolveCmd, []string{"now"}); err != nil {
			t.Fatalf("resolveCmd.RunE: %v", err)
		}
	})

	resp := decodeEnvelope(t, out)
	if resp.Error == nil || resp.Error.Code != ErrInvalidInput {
		t.Fatalf("expected %s; out=%s", ErrInvalidInput, out)
	}
}

func TestResolveCommandTrace(t *testing.T) {
	useCLIState(t, nil)
	resolveTrace = true

	out := captureStdout(t, func() {
		if err := resolveCmd.RunE(resolveCmd, []string{"2", "day", "from", "yesterday"}); err != nil {
			t.Fatalf("resolveCmd.RunE: %v", err)
		}
	})

	var result ResolveResult
	decodeData(t, decodeEnvelope(t, out), &result)
	if len(result.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %+v", result.Steps)
	}
	if result.Steps[0].Rule != "span" || result.Steps[1].Rule != "from" {
		t.Fatalf("rules = %s, %s; want span, from", result.Steps[0].Rule, result.Steps[1].Rule)
	}
	if !strings.HasPrefix(result.Steps[0].Before, "scalar(2) unit(day") {
		t.Fatalf("first step before = %q", result.Steps[0].Before)
	}
	if !strings.HasPrefix(result.Steps[1].After, "date(") {
		t.Fatalf("last step after = %q", result.Steps[1].After)
	}
}

func TestResolveCommandSavedPhrase(t *testing.T) {
	useCLIState(t, &config.Config{Phrases: map[string]string{"last-sprint": "2 week ago"}})
	resolveSaved = "Last Sprint"

	out := captureStdout(t, func() {
		if err := resolveCmd.RunE(resolveCmd, []string{"ignored"}); err != nil {
			t.Fatalf("resolveCmd.RunE: %v", err)
		}
	})

	resp := decodeEnvelope(t, out)
	var result ResolveResult
	decodeData(t, resp, &result)
	if result.Phrase != "2 week ago" {
		t.Fatalf("Phrase = %q, want saved phrase", result.Phrase)
	}
	if result.Ms != testNowMs-2*604_800_000 {
		t.Fatalf("Ms = %d", result.Ms)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Code != WarnIgnoredArgs {
		t.Fatalf("expected %s warning, got %+v", WarnIgnoredArgs, resp.Warnings)
	}
}

func TestResolveCommandSavedPhraseMissing(t *testing.T) {
	useCLIState(t, nil)
	resolveSaved = "nope"

	out := captureStdout(t, func() {
		if err := resolveCmd.RunE(resolveCmd, nil); err != nil {
			t.Fatalf("resolveCmd.RunE: %v", err)
		}
	})

	resp := decodeEnvelope(t, out)
	if resp.Error == nil || resp.Error.Code != ErrPhraseNotFound {
		t.Fatalf("expected %s; out=%s", ErrPhraseNotFound, out)
	}
}

func TestResolveCommandTimezone(t *testing.T) {
	useCLIState(t, &config.Config{Timezone: "Asia/Tokyo"})
	tzFlag = ""
	resolveFormat = "rfc3339"

	out := captureStdout(t, func() {
		if err := resolveCmd.RunE(resolveCmd, []string{"now"}); err != nil {
			t.Fatalf("resolveCmd.RunE: %v", err)
		}
	})

	var result ResolveResult
	decodeData(t, decodeEnvelope(t, out), &result)
	if result.Formatted != "2023-11-15T07:13:20.000+09:00" {
		t.Fatalf("Formatted = %q", result.Formatted)
	}
	if result.Ms != testNowMs {
		t.Fatalf("zone must not change the instant: Ms = %d", result.Ms)
	}
}

func TestResolveCommandYAMLOutput(t *testing.T) {
	useCLIState(t, nil)
	jsonOutput = false
	yamlOutput = true

	out := captureStdout(t, func() {
		if err := resolveCmd.RunE(resolveCmd, []string{"now"}); err != nil {
			t.Fatalf("resolveCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK   bool `yaml:"ok"`
		Data struct {
			Ms int64 `yaml:"ms"`
		} `yaml:"data"`
	}
	if err := yaml.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected YAML output, got %v; out=%s", err, out)
	}
	if !resp.OK || resp.Data.Ms != testNowMs {
		t.Fatalf("unexpected YAML response: %+v", resp)
	}
}

func TestResolveCommandGrammarSuggestionQuotesPhrase(t *testing.T) {
	useCLIState(t, nil)

	out := captureStdout(t, func() {
		if err := resolveCmd.RunE(resolveCmd, []string{"day", "3", "ago"}); err != nil {
			t.Fatalf("resolveCmd.RunE: %v", err)
		}
	})

	resp := decodeEnvelope(t, out)
	if resp.Error == nil {
		t.Fatalf("expected error envelope; out=%s", out)
	}
	want := "tempio resolve --trace 'day 3 ago'"
	if !strings.Contains(resp.Error.Suggestion, want) {
		t.Fatalf("suggestion = %q, want it to contain %q", resp.Error.Suggestion, want)
	}
}
