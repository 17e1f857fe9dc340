package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-sourcemap/sourcemap"
)

// Projector looks up a generated position in a source map.
type Projector interface {
	// Project returns the original position for a generated line (1-based)
	// and column. ok is false when the mapping has no source.
	Project(line, column int) (pos Position, ok bool)
}

// SourceMapError reports a source map that could not be parsed. It is fatal
// for the file being reconciled.
type SourceMapError struct {
	Err error
}

func (e *SourceMapError) Error() string {
	return fmt.Sprintf("invalid source map: %v", e.Err)
}

func (e *SourceMapError) Unwrap() error {
	return e.Err
}

// SourceMap is a read-only Projector backed by a v3 source map.
type SourceMap struct {
	consumer *sourcemap.Consumer

	// firstColumns holds the first mapped column of each generated line
	// (index 0 is line 1), -1 for lines without mappings. nil for index
	// maps, which are not checked.
	firstColumns []int
}

// ParseSourceMap builds a SourceMap from the JSON payload emitted by a
// preprocessor. Sources are returned exactly as written in the map (joined
// with sourceRoot); callers resolve them to absolute paths.
func ParseSourceMap(data []byte) (*SourceMap, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &SourceMapError{Err: fmt.Errorf("empty payload")}
	}

	consumer, err := sourcemap.Parse("", data)
	if err != nil {
		return nil, &SourceMapError{Err: err}
	}

	firstColumns, err := mappedLineStarts(data)
	if err != nil {
		return nil, &SourceMapError{Err: err}
	}

	return &SourceMap{consumer: consumer, firstColumns: firstColumns}, nil
}

// Project implements Projector. A position on a generated line without
// mappings, or before the line's first mapping, has no source.
func (m *SourceMap) Project(line, column int) (Position, bool) {
	if !m.mapped(line, column) {
		return Position{}, false
	}

	source, _, origLine, origColumn, ok := m.consumer.Source(line, column)
	if !ok || source == "" {
		return Position{}, false
	}
	return Position{Line: origLine, Column: origColumn, Source: source}, true
}

func (m *SourceMap) mapped(line, column int) bool {
	if m.firstColumns == nil {
		return true
	}
	if line < 1 || line > len(m.firstColumns) {
		return false
	}
	first := m.firstColumns[line-1]
	return first >= 0 && column >= first
}

// mappedLineStarts decodes the generated column of the first segment on
// every line of the map's mappings.
func mappedLineStarts(data []byte) ([]int, error) {
	var raw struct {
		Mappings string          `json:"mappings"`
		Sections json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.Sections != nil {
		return nil, nil
	}

	lines := strings.Split(raw.Mappings, ";")
	starts := make([]int, len(lines))
	for i, line := range lines {
		starts[i] = -1
		for _, segment := range strings.Split(line, ",") {
			if segment == "" {
				continue
			}
			column, err := decodeVLQ(segment)
			if err != nil {
				return nil, fmt.Errorf("mappings line %d: %w", i+1, err)
			}
			starts[i] = column
			break
		}
	}
	return starts, nil
}

const base64Digits = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// decodeVLQ returns the first base64 VLQ value of segment.
func decodeVLQ(segment string) (int, error) {
	var value, shift int
	for i := 0; i < len(segment); i++ {
		digit := strings.IndexByte(base64Digits, segment[i])
		if digit < 0 {
			return 0, fmt.Errorf("invalid base64 digit %q", segment[i])
		}
		value += (digit & 31) << shift
		if digit&32 == 0 {
			if value&1 == 1 {
				return -(value >> 1), nil
			}
			return value >> 1, nil
		}
		shift += 5
	}
	return 0, fmt.Errorf("truncated segment %q", segment)
}
