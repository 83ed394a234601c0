package domain

// ChangeTracker records which product columns were modified since load, so the
// repository can emit an Update mutation carrying only those columns.
type ChangeTracker struct {
	dirtyFields map[string]bool
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirtyFields: make(map[string]bool),
	}
}

func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirtyFields[field] = true
}

func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirtyFields[field]
}

func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirtyFields) > 0
}

// DirtyFields returns the modified field names in no particular order.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirtyFields))
	for field := range ct.dirtyFields {
		fields = append(fields, field)
	}
	return fields
}

// RowChanges tracks child rows (client price records, configurations) by id.
//
// A cleared set means every stored child row is dropped before the upserted
// ones are written, which is how whole-list replacement is persisted.
type RowChanges struct {
	upserted []string
	removed  []string
	cleared  bool
}

// Upsert marks id as written. Repeated calls keep the first position.
func (rc *RowChanges) Upsert(id string) {
	rc.removed = without(rc.removed, id)
	for _, existing := range rc.upserted {
		if existing == id {
			return
		}
	}
	rc.upserted = append(rc.upserted, id)
}

// Remove marks id as deleted and forgets any pending write for it.
func (rc *RowChanges) Remove(id string) {
	rc.upserted = without(rc.upserted, id)
	if rc.cleared {
		return
	}
	for _, existing := range rc.removed {
		if existing == id {
			return
		}
	}
	rc.removed = append(rc.removed, id)
}

// Clear drops all pending per-row work in favor of a full replacement.
func (rc *RowChanges) Clear() {
	rc.cleared = true
	rc.upserted = nil
	rc.removed = nil
}

func (rc *RowChanges) Upserted() []string {
	return append([]string(nil), rc.upserted...)
}

func (rc *RowChanges) Removed() []string {
	return append([]string(nil), rc.removed...)
}

func (rc *RowChanges) Cleared() bool {
	return rc.cleared
}

func (rc *RowChanges) HasChanges() bool {
	return rc.cleared || len(rc.upserted) > 0 || len(rc.removed) > 0
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
