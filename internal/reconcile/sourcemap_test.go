package reconcile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lessMap: generated line 1 comes from b.less:1, lines 3 and 4 from a.less:3-4.
const lessMap = `{
  "version": 3,
  "sources": ["/proj/b.less", "/proj/a.less"],
  "names": [],
  "mappings": "AAAA;;ACEA;AACA"
}`

// sassMap: relative and file:// sources, as dart-sass writes them.
const sassMap = `{
  "version": 3,
  "sourceRoot": "",
  "sources": ["_vars.scss", "file:///proj/styles/main.scss"],
  "names": [],
  "mappings": "AAAA;ACAA;AAEA"
}`

func TestParseSourceMap(t *testing.T) {
	sm, err := ParseSourceMap([]byte(lessMap))
	require.NoError(t, err)

	pos, ok := sm.Project(1, 0)
	require.True(t, ok)
	assert.Equal(t, Position{Line: 1, Column: 0, Source: "/proj/b.less"}, pos)

	pos, ok = sm.Project(3, 1)
	require.True(t, ok)
	assert.Equal(t, "/proj/a.less", pos.Source)
	assert.Equal(t, 3, pos.Line)
}

func TestParseSourceMap_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "whitespace", data: "  \n"},
		{name: "not json", data: "{mappings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSourceMap([]byte(tt.data))
			require.Error(t, err)
			var smErr *SourceMapError
			assert.True(t, errors.As(err, &smErr))
		})
	}
}

func TestReconcile_LessImportsEndToEnd(t *testing.T) {
	diags := []Diagnostic{
		{Line: 1, Column: 1, Text: "Rule is empty.", RuleID: "empty-rules", Severity: SeverityWarning},
		{Line: 3, Column: 1, Text: "Don't use IDs in selectors.", RuleID: "ids", Severity: SeverityWarning},
	}

	b, err := Reconcile(diags, "/proj/a.less", KindLess, []byte(lessMap), Options{WorkDir: "/proj"})
	require.NoError(t, err)

	entry := filepath.Clean("/proj/a.less")
	require.Equal(t, []string{entry}, b.Files())
	got := b.Diagnostics(entry)
	require.Len(t, got, 1)
	assert.Equal(t, "ids", got[0].RuleID)
	assert.Equal(t, 3, got[0].Line)
	assert.Equal(t, 1, got[0].Column)
	assert.Equal(t, entry, got[0].OriginFile)
}

func TestReconcile_SassEndToEnd(t *testing.T) {
	entry := filepath.FromSlash("/proj/styles/main.scss")
	diags := []Diagnostic{
		{Line: 1, Column: 0, Text: "from partial"},
		{Line: 2, Column: 0, Text: "from main"},
		{Line: 3, Column: 0, Text: "also main"},
		{Rollup: true, Text: "Too many font-size declarations (10)"},
	}

	b, err := Reconcile(diags, entry, KindSass, []byte(sassMap), Options{WorkDir: "/somewhere/else"})
	require.NoError(t, err)

	require.Equal(t, []string{entry}, b.Files())
	got := b.Diagnostics(entry)
	require.Len(t, got, 3)
	assert.Equal(t, "from main", got[0].Text)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, "also main", got[1].Text)
	assert.Equal(t, 3, got[1].Line)
	assert.True(t, got[2].Rollup)
	assert.Equal(t, 1, got[2].Line)
	assert.Equal(t, 1, got[2].Column)
}

func TestReconcile_SassAllowedPartial(t *testing.T) {
	entry := filepath.FromSlash("/proj/styles/main.scss")
	diags := []Diagnostic{{Line: 1, Column: 0, Text: "from partial"}}

	b, err := Reconcile(diags, entry, KindSass, []byte(sassMap), Options{
		WorkDir: "/proj",
		Imports: []string{"styles/_*.scss"},
	})
	require.NoError(t, err)

	partial := filepath.FromSlash("/proj/styles/_vars.scss")
	assert.Equal(t, []string{partial}, b.Files())
	require.Len(t, b.Diagnostics(partial), 1)
}

func TestAbsolutePath(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		source string
		want   string
	}{
		{name: "relative", base: "/proj/styles", source: "_vars.scss", want: "/proj/styles/_vars.scss"},
		{name: "parent", base: "/proj/styles", source: "../lib/mixins.scss", want: "/proj/lib/mixins.scss"},
		{name: "absolute", base: "/proj", source: "/other/a.less", want: "/other/a.less"},
		{name: "file url", base: "/proj", source: "file:///proj/a%20b.scss", want: "/proj/a b.scss"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), absolutePath(filepath.FromSlash(tt.base), tt.source))
		})
	}
}

// gapMap: line 1 mapped from column 0, line 2 has no mappings, line 3 is
// mapped only from column 4.
const gapMap = `{
  "version": 3,
  "sources": ["/proj/a.less"],
  "names": [],
  "mappings": "AAAA;;IACA"
}`

func TestSourceMap_UnmappedPositions(t *testing.T) {
	sm, err := ParseSourceMap([]byte(gapMap))
	require.NoError(t, err)

	tests := []struct {
		name   string
		line   int
		column int
		want   Position
		wantOK bool
	}{
		{name: "mapped line", line: 1, column: 0, want: Position{Line: 1, Column: 0, Source: "/proj/a.less"}, wantOK: true},
		{name: "line without mappings", line: 2, column: 1},
		{name: "before first mapping", line: 3, column: 1},
		{name: "at first mapping", line: 3, column: 4, want: Position{Line: 2, Column: 0, Source: "/proj/a.less"}, wantOK: true},
		{name: "after first mapping", line: 3, column: 9, want: Position{Line: 2, Column: 0, Source: "/proj/a.less"}, wantOK: true},
		{name: "past last line", line: 4, column: 0},
		{name: "line zero", line: 0, column: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := sm.Project(tt.line, tt.column)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, pos)
		})
	}
}

func TestReconcile_LessDropsUnmappedLines(t *testing.T) {
	diags := []Diagnostic{
		{Line: 2, Column: 1, Text: "on unmapped line", RuleID: "ids"},
		{Line: 3, Column: 1, Text: "before first mapping", RuleID: "ids"},
		{Line: 3, Column: 5, Text: "mapped", RuleID: "ids"},
	}

	b, err := Reconcile(diags, "/proj/a.less", KindLess, []byte(gapMap), Options{WorkDir: "/proj"})
	require.NoError(t, err)

	entry := filepath.Clean("/proj/a.less")
	got := b.Diagnostics(entry)
	require.Len(t, got, 1)
	assert.Equal(t, "mapped", got[0].Text)
	assert.Equal(t, 2, got[0].Line)
	assert.Equal(t, 1, got[0].Column)
}

func TestDecodeVLQ(t *testing.T) {
	tests := []struct {
		segment string
		want    int
		wantErr bool
	}{
		{segment: "AAAA", want: 0},
		{segment: "CAAA", want: 1},
		{segment: "DAAA", want: -1},
		{segment: "IACA", want: 4},
		{segment: "gBAA", want: 16},
		{segment: "2H", want: 123},
		{segment: "!", wantErr: true},
		{segment: "g", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			got, err := decodeVLQ(tt.segment)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
