package reconcile

// Bundle maps origin file paths to their diagnostics. Files and the
// diagnostics within each file keep insertion order.
type Bundle struct {
	files  []string
	groups map[string][]Diagnostic
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{groups: make(map[string][]Diagnostic)}
}

// Add appends d to the group for file.
func (b *Bundle) Add(file string, d Diagnostic) {
	if _, ok := b.groups[file]; !ok {
		b.files = append(b.files, file)
	}
	b.groups[file] = append(b.groups[file], d)
}

// Files returns origin paths in first-seen order.
func (b *Bundle) Files() []string {
	out := make([]string, len(b.files))
	copy(out, b.files)
	return out
}

// Diagnostics returns the diagnostics attributed to file.
func (b *Bundle) Diagnostics(file string) []Diagnostic {
	return b.groups[file]
}

// All returns every diagnostic, file by file.
func (b *Bundle) All() []Diagnostic {
	var out []Diagnostic
	for _, f := range b.files {
		out = append(out, b.groups[f]...)
	}
	return out
}

// Len is the total number of diagnostics across all files.
func (b *Bundle) Len() int {
	n := 0
	for _, g := range b.groups {
		n += len(g)
	}
	return n
}

// Group partitions diags by OriginFile, falling back to entryPath. The
// fallback is written back so every grouped diagnostic names its file.
func Group(diags []Diagnostic, entryPath string) *Bundle {
	b := NewBundle()
	for _, d := range diags {
		if d.OriginFile == "" {
			d.OriginFile = entryPath
		}
		b.Add(d.OriginFile, d)
	}
	return b
}
