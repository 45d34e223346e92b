package verification

import "fmt"

// ErrUnknownSlot indicates a slot id outside the registry.
type ErrUnknownSlot struct {
	ID string
}

func (e *ErrUnknownSlot) Error() string {
	return fmt.Sprintf("unknown document slot: %s", e.ID)
}

// ErrValidation indicates an upload rejected by the upload policy. The slot's
// status is unchanged and its error field carries the same message.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// ErrSlotBusy indicates an action on a slot with a verification in flight.
type ErrSlotBusy struct {
	ID string
}

func (e *ErrSlotBusy) Error() string {
	return fmt.Sprintf("verification already in progress for slot %s", e.ID)
}

// ErrNotReady indicates a verify request for a slot with nothing attached.
// The slot's state is unchanged.
type ErrNotReady struct {
	ID string
}

func (e *ErrNotReady) Error() string {
	return fmt.Sprintf("nothing to verify for slot %s", e.ID)
}

// ErrNotLinked indicates an external-picker action before the external
// document source was linked.
type ErrNotLinked struct{}

func (e *ErrNotLinked) Error() string {
	return "external document source is not linked"
}

// ErrEmptyReceipt indicates a receipt request before any document reached a
// terminal verification outcome.
type ErrEmptyReceipt struct{}

func (e *ErrEmptyReceipt) Error() string {
	return "no documents have been verified yet"
}
