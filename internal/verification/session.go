package verification

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hirelogic/hirelogic-api/internal/kvstore"
	"github.com/hirelogic/hirelogic-api/internal/metrics"
)

// maxConcurrentVerifications bounds how many strategy calls VerifyAll runs at once.
const maxConcurrentVerifications = 4

// Upload is a candidate file for a document slot. Size and ContentType are
// the client-declared values checked by the upload policy; Content is read
// once to compute the file hash.
type Upload struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

// Config assembles a Session. Zero-value fields fall back to the default
// registry, an in-memory store, the mock strategy, and the document policy.
type Config struct {
	Registry []SlotDef
	Store    kvstore.Store
	StoreKey string
	Strategy Strategy
	Policy   UploadPolicy
	Metrics  *metrics.Metrics
}

// Session owns the verification state for one candidate: the ordered document
// slots, the external-source link flag, and the activity log. All mutations
// go through the session mutex, every user-visible action appends to the
// activity log, and every state change writes through to the store. Store
// write failures are logged and never surfaced to the caller.
type Session struct {
	mu       sync.Mutex
	slots    []*Slot
	index    map[string]*Slot
	linked   bool
	store    kvstore.Store
	storeKey string
	strategy Strategy
	policy   UploadPolicy
	activity *ActivityLog
	metrics  *metrics.Metrics
}

// NewSession constructs a session from registry defaults merged with any
// previously persisted state. Corrupt or missing persisted data falls back to
// defaults with a log entry; construction never fails.
func NewSession(ctx context.Context, cfg Config) *Session {
	registry := cfg.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	store := cfg.Store
	if store == nil {
		store = kvstore.NewMemoryStore()
	}
	storeKey := cfg.StoreKey
	if storeKey == "" {
		storeKey = StateKey
	}
	strategy := cfg.Strategy
	if strategy == nil {
		strategy = NewMockStrategy()
	}
	policy := cfg.Policy
	if len(policy.AllowedTypes) == 0 {
		policy = DocumentUploadPolicy()
	}

	s := &Session{
		slots:    make([]*Slot, 0, len(registry)),
		index:    make(map[string]*Slot, len(registry)),
		store:    store,
		storeKey: storeKey,
		strategy: strategy,
		policy:   policy,
		activity: NewActivityLog(),
		metrics:  cfg.Metrics,
	}
	for _, def := range registry {
		slot := &Slot{SlotDef: def, Status: StatusNotUploaded}
		s.slots = append(s.slots, slot)
		s.index[def.ID] = slot
	}

	s.restore(ctx)
	return s
}

// restore merges persisted state into the registry-defined slots. Entries for
// unknown slot ids are ignored silently; registry titles and mandatory flags
// always win.
func (s *Session) restore(ctx context.Context) {
	raw, ok, err := s.store.Get(ctx, s.storeKey)
	if err != nil {
		log.Printf("Failed to read verification state: %v", err)
		s.activity.Append("Could not restore previous session.")
		return
	}
	if !ok {
		s.activity.Append("Initialized new session.")
		return
	}

	state, ok := decodeState(raw)
	if !ok {
		log.Printf("Corrupt verification state under %s, starting fresh", s.storeKey)
		s.activity.Append("Could not restore previous session.")
		return
	}

	for _, saved := range state.Documents {
		slot, known := s.index[saved.ID]
		if !known {
			continue
		}
		mergeSlot(slot, saved)
	}
	s.linked = state.ExternalSourceLinked
	s.activity.Append("Session restored.")
}

// persist writes the full session state through to the store. Failures are
// logged, never returned: persistence must not block the action that
// triggered it. Callers must hold the session lock.
func (s *Session) persist(ctx context.Context) {
	raw, err := encodeState(s.slots, s.linked)
	if err != nil {
		log.Printf("Failed to encode verification state: %v", err)
		return
	}
	if err := s.store.Set(ctx, s.storeKey, raw); err != nil {
		log.Printf("Failed to save verification state: %v", err)
	}
}

// Attach accepts an uploaded file for the slot. The upload is validated
// before any transition: a rejected file leaves the status untouched and sets
// the slot's error message. A valid file replaces any external reference and
// moves the slot to ReadyToVerify.
func (s *Session) Attach(ctx context.Context, id string, upload Upload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.index[id]
	if !ok {
		return &ErrUnknownSlot{ID: id}
	}
	if slot.Status == StatusVerifying {
		return &ErrSlotBusy{ID: id}
	}

	if msg := s.policy.Check(upload.Size, upload.ContentType); msg != "" {
		slot.Error = msg
		s.metrics.UploadRejected()
		s.activity.Append("Rejected file for %s: %s", slot.Title, msg)
		s.persist(ctx)
		return &ErrValidation{Message: msg}
	}

	hasher := sha256.New()
	n, err := io.Copy(hasher, upload.Content)
	if err != nil {
		msg := "Could not read the uploaded file."
		slot.Error = msg
		s.activity.Append("Rejected file for %s: %s", slot.Title, msg)
		return &ErrValidation{Message: msg}
	}
	if n > s.policy.MaxSize {
		msg := fmt.Sprintf("File size exceeds %dMB limit.", s.policy.MaxSize/1024/1024)
		slot.Error = msg
		s.metrics.UploadRejected()
		s.activity.Append("Rejected file for %s: %s", slot.Title, msg)
		s.persist(ctx)
		return &ErrValidation{Message: msg}
	}

	slot.File = &FileRef{
		Name:        upload.Name,
		Size:        n,
		ContentType: upload.ContentType,
		SHA256:      hex.EncodeToString(hasher.Sum(nil)),
	}
	slot.ExternalRef = ""
	slot.Error = ""
	slot.Status = StatusReadyToVerify

	s.activity.Append("Uploaded file for %s.", slot.Title)
	s.persist(ctx)
	return nil
}

// PickExternal attaches a document by external-picker reference. The external
// source must be linked first. The reference replaces any uploaded file.
func (s *Session) PickExternal(ctx context.Context, id, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.linked {
		return &ErrNotLinked{}
	}
	slot, ok := s.index[id]
	if !ok {
		return &ErrUnknownSlot{ID: id}
	}
	if slot.Status == StatusVerifying {
		return &ErrSlotBusy{ID: id}
	}

	slot.ExternalRef = ref
	slot.File = nil
	slot.Error = ""
	slot.Status = StatusReadyToVerify

	s.activity.Append("Picked '%s' from DigiLocker.", slot.Title)
	s.persist(ctx)
	return nil
}

// Remove detaches the slot's source and resets it to NotUploaded. Removing an
// empty slot is a no-op; removing a slot mid-verification is rejected.
func (s *Session) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.index[id]
	if !ok {
		return &ErrUnknownSlot{ID: id}
	}
	if slot.Status == StatusVerifying {
		return &ErrSlotBusy{ID: id}
	}
	if slot.Status == StatusNotUploaded {
		return nil
	}

	slot.File = nil
	slot.ExternalRef = ""
	slot.Error = ""
	slot.Status = StatusNotUploaded

	s.activity.Append("Removed file for %s.", slot.Title)
	s.persist(ctx)
	return nil
}

// LinkExternalSource marks the external document source as linked. Linking is
// one-way for the life of the session.
func (s *Session) LinkExternalSource(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.linked {
		return
	}
	s.linked = true
	s.activity.Append("DigiLocker linked successfully.")
	s.persist(ctx)
}

// Linked reports whether the external document source is linked.
func (s *Session) Linked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.linked
}

// SetStrategy swaps the verification strategy. In-flight verifications keep
// the strategy they started with.
func (s *Session) SetStrategy(strategy Strategy, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strategy = strategy
	s.activity.Append("Switched to %s verification.", name)
}

// Verify runs the configured strategy for the slot and applies the terminal
// outcome. Verification is legal from ReadyToVerify and from any terminal
// status (re-verify); a slot that is already Verifying is rejected, and a
// slot with nothing attached is left untouched. The strategy call runs
// outside the session lock so independent slots verify concurrently.
func (s *Session) Verify(ctx context.Context, id string) error {
	s.mu.Lock()
	slot, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return &ErrUnknownSlot{ID: id}
	}
	if slot.Status == StatusVerifying {
		s.mu.Unlock()
		return &ErrSlotBusy{ID: id}
	}
	if !slot.Status.CanVerify() {
		s.mu.Unlock()
		return &ErrNotReady{ID: id}
	}

	req := Request{DocumentType: slot.ID, Source: SourceUpload}
	if slot.ExternalRef != "" {
		req.Source = SourceExternal
		req.ExternalRef = slot.ExternalRef
	} else if slot.File != nil {
		req.FileHash = slot.File.SHA256
		req.FileName = slot.File.Name
	}
	if req.FileName == "" {
		req.FileName = slot.Title
	}

	slot.Status = StatusVerifying
	slot.Error = ""
	strategy := s.strategy
	title := slot.Title
	s.metrics.VerificationStarted()
	s.activity.Append("Verifying %s...", title)
	s.persist(ctx)
	s.mu.Unlock()

	outcome := strategy.Verify(ctx, req)
	if !outcome.Status.IsTerminal() {
		outcome = Outcome{Status: StatusError, Detail: "Verification did not produce a result."}
	}

	s.mu.Lock()
	slot.Status = outcome.Status
	if outcome.Status == StatusError {
		if outcome.Detail == "" {
			outcome.Detail = "Verification failed."
		}
		slot.Error = outcome.Detail
	} else {
		slot.Error = ""
	}
	s.metrics.VerificationFinished(string(outcome.Status))
	s.activity.Append("Verification for %s complete: %s.", title, outcome.Status)
	s.persist(ctx)
	s.mu.Unlock()
	return nil
}

// VerifyAll starts verification for every slot currently in ReadyToVerify.
// Independent slots verify concurrently; the per-slot guard in Verify keeps
// same-slot verifications exclusive. It returns the number of slots verified.
func (s *Session) VerifyAll(ctx context.Context) int {
	s.mu.Lock()
	ready := make([]string, 0, len(s.slots))
	for _, slot := range s.slots {
		if slot.Status == StatusReadyToVerify {
			ready = append(ready, slot.ID)
		}
	}
	if len(ready) > 0 {
		s.activity.Append("Verification started for all ready documents.")
	}
	s.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentVerifications)
	for _, id := range ready {
		g.Go(func() error {
			// Verify resolves every failure to a terminal slot status.
			_ = s.Verify(gctx, id)
			return nil
		})
	}
	_ = g.Wait()
	return len(ready)
}

// Snapshot returns a copy of every slot in registry order.
func (s *Session) Snapshot() []Slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Slot, 0, len(s.slots))
	for _, slot := range s.slots {
		copied := *slot
		if slot.File != nil {
			file := *slot.File
			copied.File = &file
		}
		out = append(out, copied)
	}
	return out
}

// Overall derives the aggregate status across all slots.
func (s *Session) Overall() OverallStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeriveOverall(s.slots)
}

// Progress summarizes submitted counts per classification.
func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeriveProgress(s.slots)
}

// Activity returns the activity log entries, newest first.
func (s *Session) Activity() []LogEntry {
	return s.activity.Entries()
}
