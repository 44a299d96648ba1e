package errors

import (
	"fmt"
	"sort"
	"strings"
)

// FormatUser renders an error for CLI presentation: message first, then
// details and the suggestion if present. Non-StrfindError values render as
// their plain Error() string.
func FormatUser(err error) string {
	if err == nil {
		return ""
	}

	se, ok := err.(*StrfindError)
	if !ok {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(se.Message)

	if len(se.Details) > 0 {
		keys := make([]string, 0, len(se.Details))
		for k := range se.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "\n  %s: %s", k, se.Details[k])
		}
	}

	if se.Suggestion != "" {
		fmt.Fprintf(&b, "\nSuggestion: %s", se.Suggestion)
	}

	return b.String()
}

// FormatLog renders an error for structured log fields: code plus the full
// cause chain.
func FormatLog(err error) string {
	if err == nil {
		return ""
	}

	se, ok := err.(*StrfindError)
	if !ok {
		return err.Error()
	}

	if se.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", se.Code, se.Message, se.Cause)
	}
	return fmt.Sprintf("[%s] %s", se.Code, se.Message)
}
