package verification

import "encoding/json"

// StateKey is the versioned store key for the verification session state.
// Bump the suffix when the persisted schema changes shape.
const StateKey = "hirelogic_doc_verification_state_v1"

// persistedState is the full blob written through to the store on every
// mutation. Only persisted-safe slot fields appear here; transient file
// references cannot be represented.
type persistedState struct {
	Documents            []PersistedSlot `json:"documents"`
	ExternalSourceLinked bool            `json:"external_source_linked"`
}

// encodeState serializes the session state. Callers must hold the session lock.
func encodeState(slots []*Slot, linked bool) (string, error) {
	state := persistedState{
		Documents:            make([]PersistedSlot, 0, len(slots)),
		ExternalSourceLinked: linked,
	}
	for _, s := range slots {
		state.Documents = append(state.Documents, s.persisted())
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decodeState parses a persisted blob. A decode failure returns ok=false so
// the caller can fall back to registry defaults.
func decodeState(raw string) (persistedState, bool) {
	var state persistedState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return persistedState{}, false
	}
	return state, true
}

// mergeSlot applies a persisted entry onto a registry-defined slot. Title and
// mandatory stay registry-owned. Unknown statuses reset to NotUploaded, and a
// persisted Verifying becomes ReadyToVerify because an in-flight verification
// cannot survive a restart.
func mergeSlot(slot *Slot, saved PersistedSlot) {
	status := saved.Status
	if !status.Valid() {
		status = StatusNotUploaded
	}
	if status == StatusVerifying {
		status = StatusReadyToVerify
	}

	slot.Status = status
	slot.ExternalRef = saved.ExternalRef
	slot.Error = saved.Error
	if slot.Status == StatusNotUploaded {
		slot.ExternalRef = ""
	}
}
