// Package changeset computes explicit field diffs between a stored row and the
// values an update supplies. A Diff is plain data: it can be inspected, tested
// and handed to a write without touching the row it was computed from.
package changeset

// Field is one column whose value changes.
type Field struct {
	Column string
	Old    any
	New    any
}

// Diff is the ordered list of changed columns of one row.
type Diff struct {
	fields []Field
}

// Compare records column when old and next differ and reports whether it did.
func Compare[V comparable](d *Diff, column string, old, next V) bool {
	if old == next {
		return false
	}
	d.fields = append(d.fields, Field{Column: column, Old: old, New: next})
	return true
}

// ComparePtr compares optional values; two nils are equal.
func ComparePtr[V comparable](d *Diff, column string, old, next *V) bool {
	switch {
	case old == nil && next == nil:
		return false
	case old != nil && next != nil && *old == *next:
		return false
	}
	d.fields = append(d.fields, Field{Column: column, Old: deref(old), New: deref(next)})
	return true
}

// Empty reports whether nothing changed.
func (d *Diff) Empty() bool { return len(d.fields) == 0 }

// Has reports whether column changed.
func (d *Diff) Has(column string) bool {
	for _, f := range d.fields {
		if f.Column == column {
			return true
		}
	}
	return false
}

// Fields returns a copy of the changed columns in comparison order.
func (d *Diff) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// Updates returns the column → new value map for a GORM Updates call.
func (d *Diff) Updates() map[string]any {
	out := make(map[string]any, len(d.fields))
	for _, f := range d.fields {
		out[f.Column] = f.New
	}
	return out
}

func deref[V any](p *V) any {
	if p == nil {
		return nil
	}
	return *p
}
