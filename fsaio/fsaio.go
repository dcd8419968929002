// Package fsaio is the thin ingestion collaborator around the fsa core:
// it parses the five-field textual record into an fsa.Def and renders
// validation results as report lines. It never touches files itself.
package fsaio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/automata/fsa"
)

// ErrMalformedInput indicates a structural violation of the five-field
// record: wrong field count, wrong order, or a field not matching the
// literal "name=[comma,separated]" shape. It is a distinct failure class
// from every validation error and is always fatal.
var ErrMalformedInput = errors.New("fsaio: input record is malformed")

// fieldPrefixes fixes the required field names and their order.
var fieldPrefixes = [5]string{
	"states=[",
	"alpha=[",
	"initial=[",
	"accepting=[",
	"trans=[",
}

// ParseRecord parses the five-field record into an fsa.Def.
//
// Lines are trimmed and blank lines ignored; exactly five fields must remain,
// in fixed order: states, alpha, initial, accepting, trans. Each field has
// the literal form "name=[a,b,c]" (an empty bracket body yields an empty
// set). Any deviation returns an error matching ErrMalformedInput.
// Token shape and semantic checks are not performed here — fsa.New and the
// validate package own those.
func ParseRecord(lines []string) (fsa.Def, error) {
	// 1. Strip whitespace and drop blank lines
	fields := make([]string, 0, len(fieldPrefixes))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}

	// 2. Exactly five fields, no more, no less
	if len(fields) != len(fieldPrefixes) {
		return fsa.Def{}, fmt.Errorf("%w: expected %d fields, got %d",
			ErrMalformedInput, len(fieldPrefixes), len(fields))
	}

	// 3. Fixed prefix, fixed order, closing bracket
	items := make([][]string, len(fieldPrefixes))
	for i, prefix := range fieldPrefixes {
		body, err := fieldBody(fields[i], prefix)
		if err != nil {
			return fsa.Def{}, err
		}
		if body != "" {
			items[i] = strings.Split(body, ",")
		}
	}

	return fsa.Def{
		States:      items[0],
		Alphabet:    items[1],
		Initial:     items[2],
		Accepting:   items[3],
		Transitions: items[4],
	}, nil
}

// fieldBody strips the "name=[" prefix and the trailing "]" from one field.
func fieldBody(field, prefix string) (string, error) {
	if !strings.HasPrefix(field, prefix) || !strings.HasSuffix(field, "]") {
		return "", fmt.Errorf("%w: field must have form %q, got %q",
			ErrMalformedInput, prefix+"...]", field)
	}

	return field[len(prefix) : len(field)-1], nil
}
