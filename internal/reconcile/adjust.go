package reconcile

// Adjuster finalizes a source-mapped diagnostic into output coordinates.
type Adjuster func(d Diagnostic, entryPath string, proj Projector, resolve Resolver) Diagnostic

// AdjusterFor returns the position adjuster for kind, or nil for plain CSS.
func AdjusterFor(kind Kind) Adjuster {
	switch kind {
	case KindLess:
		return AdjustLess
	case KindSass:
		return AdjustSass
	default:
		return nil
	}
}

// AdjustLess projects d and applies the lessc offset transform.
//
// The raw map column is 0-based and the output is 1-based, and lessc maps
// are shifted by one synthetic header line, so line is -1,+1 and column is
// -1,+2 relative to the mapped position.
func AdjustLess(d Diagnostic, entryPath string, proj Projector, resolve Resolver) Diagnostic {
	if !d.IsFileLevel() {
		if pos, ok := proj.Project(d.Line, d.Column); ok {
			d.Intermediate = &pos
		}
	}

	if d.IsFileLevel() || d.Line <= 0 {
		return pinToFirstLine(d, entryPath)
	}
	if d.Intermediate == nil {
		d.OriginFile = entryPath
		return d
	}

	d.Line = d.Intermediate.Line - 1
	d.Column = d.Intermediate.Column - 1
	d.Line++
	d.Column += 2
	d.OriginFile = resolve(d.Intermediate.Source)
	return d
}

// AdjustSass projects d; sass maps already use output coordinates, only the
// source path needs resolving against the entry file's directory.
func AdjustSass(d Diagnostic, entryPath string, proj Projector, resolve Resolver) Diagnostic {
	if d.IsFileLevel() {
		return pinToFirstLine(d, entryPath)
	}

	pos, ok := proj.Project(d.Line, d.Column)
	if !ok {
		d.OriginFile = entryPath
		return d
	}

	d.Line = pos.Line
	d.Column = pos.Column
	d.OriginFile = resolve(pos.Source)
	return d
}

func pinToFirstLine(d Diagnostic, entryPath string) Diagnostic {
	d.Line = 1
	d.Column = 1
	d.OriginFile = entryPath
	return d
}
