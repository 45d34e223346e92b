package verification

// FileRef describes an uploaded file attached to a slot for the current
// session. The raw bytes are hashed at attach time and discarded; only this
// metadata is kept in memory. FileRef is transient and is never written to
// the store — the persisted representation (PersistedSlot) has no field for it.
type FileRef struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	SHA256      string `json:"sha256"`
}

// Slot is the runtime state of one expected document. A slot has at most one
// source at a time: either an uploaded file (File) or an external-picker
// reference (ExternalRef), never both.
type Slot struct {
	SlotDef
	Status      Status
	File        *FileRef
	ExternalRef string
	Error       string
}

// HasSource reports whether any source is attached to the slot.
func (s *Slot) HasSource() bool {
	return s.File != nil || s.ExternalRef != ""
}

// SourceName returns a display name for the attached source.
func (s *Slot) SourceName() string {
	if s.File != nil {
		return s.File.Name
	}
	return s.ExternalRef
}

// PersistedSlot is the subset of slot state that survives a session. The
// transient file reference is excluded by construction; title and mandatory
// are registry-owned and deliberately absent so stale persisted copies can
// never override them.
type PersistedSlot struct {
	ID          string `json:"id"`
	Status      Status `json:"status"`
	ExternalRef string `json:"external_ref,omitempty"`
	Error       string `json:"error,omitempty"`
}

// persisted returns the storable view of the slot.
func (s *Slot) persisted() PersistedSlot {
	return PersistedSlot{
		ID:          s.ID,
		Status:      s.Status,
		ExternalRef: s.ExternalRef,
		Error:       s.Error,
	}
}
