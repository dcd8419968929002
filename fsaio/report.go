package fsaio

import "github.com/katalvlaran/automata/validate"

// Report lines rendered for the two classifications.
const (
	completeLine   = "FSA is complete"
	incompleteLine = "FSA is incomplete"

	errorHeader   = "Error:"
	warningHeader = "Warning:"
)

// FormatReport renders an advisory validation Result as output lines:
// either the error block, or the completeness line followed by an optional
// warning block. A nil result yields nil.
func FormatReport(res *validate.Result) []string {
	if res == nil {
		return nil
	}
	if res.Err != nil {
		return []string{errorHeader, res.Err.Error()}
	}

	lines := make([]string, 0, len(res.Warnings)+2)
	if res.Complete {
		lines = append(lines, completeLine)
	} else {
		lines = append(lines, incompleteLine)
	}
	if len(res.Warnings) > 0 {
		lines = append(lines, warningHeader)
		for _, w := range res.Warnings {
			lines = append(lines, w.String())
		}
	}

	return lines
}

// FormatError renders any failure — a malformed-input error, a build error,
// or a hard validation error — as the two-line error block.
func FormatError(err error) []string {
	if err == nil {
		return nil
	}

	return []string{errorHeader, err.Error()}
}
