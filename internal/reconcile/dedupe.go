package reconcile

type dedupeKey struct {
	line   int
	text   string
	origin string
}

// Dedupe drops diagnostics whose (Line, Text, OriginFile) was already seen,
// keeping the first occurrence. A preprocessor loop or mixin can expand one
// authored rule into many generated rules that all map back to one site.
func Dedupe(diags []Diagnostic) []Diagnostic {
	seen := make(map[dedupeKey]struct{}, len(diags))
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		key := dedupeKey{line: d.Line, text: d.Text, origin: d.OriginFile}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}
