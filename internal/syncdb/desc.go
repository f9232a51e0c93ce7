package syncdb

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ralt/pacdb/internal/models"
)

// blockMarker starts a new field in a desc file, e.g. "%NAME%"
const blockMarker = "%"

// descState is the accumulator of the desc fold. A block is open once
// the first marker line has been seen.
type descState struct {
	open      bool
	key       string
	values    []string
	committed map[string][]string
}

func newDescState() descState {
	return descState{committed: make(map[string][]string)}
}

// advance consumes one line
func (s descState) advance(line string) descState {
	if strings.HasPrefix(line, blockMarker) {
		s = s.commit()
		s.open = true
		s.key = strings.ToLower(strings.ReplaceAll(line, blockMarker, ""))
		s.values = nil
		return s
	}

	// Blank lines separate blocks; they are never values. Lines before
	// the first marker belong to no field.
	if line == "" || !s.open {
		return s
	}

	s.values = append(s.values, line)
	return s
}

// commit stores the open block, replacing an earlier block with the same key
func (s descState) commit() descState {
	if !s.open {
		return s
	}
	values := s.values
	if values == nil {
		values = []string{}
	}
	s.committed[s.key] = values
	s.open = false
	s.values = nil
	return s
}

// finish flushes the last block and returns the collected fields
func (s descState) finish() map[string][]string {
	return s.commit().committed
}

// foldDesc runs the desc state machine over every line
func foldDesc(lines []string) map[string][]string {
	state := newDescState()
	for _, line := range lines {
		state = state.advance(line)
	}
	return state.finish()
}

// splitLines splits on "\n" and drops a trailing "\r" from each line
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ParseDesc parses the content of one desc entry
func ParseDesc(content []byte) (*models.Package, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("desc is not valid UTF-8")
	}

	metadata := foldDesc(splitLines(string(content)))

	return models.NewPackage(metadata)
}
