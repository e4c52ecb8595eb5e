package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/tempio/internal/ui"
)

// Global structured output flags
var (
	jsonOutput bool
	yamlOutput bool
)

// Response is the standard envelope for all structured CLI output.
type Response struct {
	OK       bool        `json:"ok" yaml:"ok"`
	Data     interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty" yaml:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Meta     *Meta       `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string      `json:"code" yaml:"code"`
	Message    string      `json:"message" yaml:"message"`
	Details    interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	Suggestion string      `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Warning represents a non-fatal warning.
type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Meta contains metadata about the response.
type Meta struct {
	Count int   `json:"count,omitempty" yaml:"count,omitempty"`
	NowMs int64 `json:"now_ms,omitempty" yaml:"now_ms,omitempty"`
}

// outputResponse writes the envelope to stdout as JSON or YAML.
func outputResponse(resp Response) {
	if yamlOutput {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		_ = enc.Encode(resp)
		_ = enc.Close()
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess outputs a successful structured response.
func outputSuccess(data interface{}, meta *Meta) {
	outputResponse(Response{
		OK:   true,
		Data: data,
		Meta: meta,
	})
}

// outputSuccessWithWarnings outputs a successful structured response with warnings.
func outputSuccessWithWarnings(data interface{}, warnings []Warning, meta *Meta) {
	outputResponse(Response{
		OK:       true,
		Data:     data,
		Warnings: warnings,
		Meta:     meta,
	})
}

// outputError outputs an error structured response.
func outputError(code, message string, details interface{}, suggestion string) {
	outputResponse(Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    message,
			Details:    details,
			Suggestion: suggestion,
		},
	})
}

// isStructuredOutput returns true if JSON or YAML output is enabled.
func isStructuredOutput() bool {
	return jsonOutput || yamlOutput
}

// handleError handles an error appropriately based on output mode.
// In structured mode, outputs an error envelope. In text mode, returns the error for Cobra.
func handleError(code string, err error, suggestion string) error {
	if isStructuredOutput() {
		outputError(code, err.Error(), nil, suggestion)
		return nil // Don't let Cobra also print the error
	}
	return err
}

// handleErrorMsg handles an error message appropriately based on output mode.
func handleErrorMsg(code, message, suggestion string) error {
	if isStructuredOutput() {
		outputError(code, message, nil, suggestion)
		return nil
	}
	return fmt.Errorf("%s", message)
}

// handleErrorWithDetails handles an error with structured details.
func handleErrorWithDetails(code string, err error, suggestion string, details interface{}) error {
	if isStructuredOutput() {
		outputError(code, err.Error(), details, suggestion)
		return nil
	}
	return err
}

// printWarnings writes warnings to stderr in text mode.
func printWarnings(warnings []Warning) {
	for _, w := range warnings {
		msg := ui.Warning(w.Message)
		if !ui.StderrIsTerminal() {
			msg = "warning: " + w.Message
		}
		fmt.Fprintln(os.Stderr, msg)
	}
}
