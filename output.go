package scsstypes

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat selects how a run summary is printed.
type OutputFormat string

const (
	// OutputText prints a one-line summary.
	OutputText OutputFormat = "text"
	// OutputJSON prints the summary as JSON.
	OutputJSON OutputFormat = "json"
	// OutputNone prints nothing.
	OutputNone OutputFormat = "none"
)

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// json is printed even when quiet
	switch formatFlag {
	case "json":
		return OutputJSON
	case "text":
		if quiet {
			return OutputNone
		}
		return OutputText
	}

	if quiet {
		return OutputNone
	}
	return OutputText
}

// jsonSummary is the JSON export schema
type jsonSummary struct {
	Version    string   `json:"version"`
	Files      int      `json:"files"`
	Written    []string `json:"written"`
	Deleted    []string `json:"deleted"`
	Skipped    []string `json:"skipped"`
	Failed     []string `json:"failed"`
	Unchanged  int      `json:"unchanged"`
	Orphans    []string `json:"orphans"`
	DurationMS int64    `json:"duration_ms"`
	Error      string   `json:"error,omitempty"`
}

// WriteSummary writes summary in format. runErr, if any, is included in the JSON output.
func WriteSummary(w io.Writer, summary Summary, runErr error, format OutputFormat, version string) error {
	switch format {
	case OutputNone:
		return nil

	case OutputJSON:
		out := jsonSummary{
			Version:    version,
			Files:      summary.Files,
			Written:    nonNil(summary.Written),
			Deleted:    nonNil(summary.Deleted),
			Skipped:    nonNil(summary.Skipped),
			Failed:     nonNil(summary.Failed),
			Unchanged:  summary.Unchanged,
			Orphans:    nonNil(summary.Orphans),
			DurationMS: summary.Duration.Milliseconds(),
		}
		if runErr != nil {
			out.Error = runErr.Error()
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(out)

	default:
		_, err := fmt.Fprintf(w, "%s: %d written, %d removed, %d skipped, %d failed, %d orphans removed\n",
			pluralizeCount(summary.Files, "file", "files"),
			len(summary.Written), len(summary.Deleted), len(summary.Skipped), len(summary.Failed), len(summary.Orphans))
		return err
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
