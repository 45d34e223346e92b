// Package verification implements the document-verification workflow: the
// per-document status state machine, pluggable mock/real verification
// strategies, session persistence, and the derived overall status.
package verification

// Status represents the verification lifecycle state of a single document slot.
type Status string

// Document slot statuses
const (
	// StatusNotUploaded means no file or external reference is attached.
	StatusNotUploaded Status = "Not Uploaded"
	// StatusReadyToVerify means a valid source is attached and verification can start.
	StatusReadyToVerify Status = "Ready to Verify"
	// StatusVerifying means a verification request is in flight.
	StatusVerifying Status = "Verifying"
	// StatusGenuine is the terminal outcome for a document classified as authentic.
	StatusGenuine Status = "Genuine"
	// StatusFraud is the terminal outcome for a document classified as fraudulent.
	// Fraud is a valid classification, not an error.
	StatusFraud Status = "Fraud"
	// StatusError is the terminal outcome when verification itself failed.
	StatusError Status = "Error"
)

// IsTerminal reports whether the status is a verification outcome.
// Terminal states are re-enterable: a slot may be re-verified from any of them.
func (s Status) IsTerminal() bool {
	return s == StatusGenuine || s == StatusFraud || s == StatusError
}

// CanVerify reports whether a verify request is legal from this status.
// Verification may start from ReadyToVerify or be retried from a terminal state.
func (s Status) CanVerify() bool {
	return s == StatusReadyToVerify || s.IsTerminal()
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotUploaded, StatusReadyToVerify, StatusVerifying, StatusGenuine, StatusFraud, StatusError:
		return true
	}
	return false
}

// OverallStatus is the aggregate verification status derived from all slots.
type OverallStatus string

// Aggregate statuses, in increasing order of completion.
const (
	// OverallPendingDocuments means at least one mandatory slot has nothing attached.
	OverallPendingDocuments OverallStatus = "Pending Documents"
	// OverallPendingVerification means all mandatory slots are submitted but
	// at least one has not reached Genuine.
	OverallPendingVerification OverallStatus = "Pending Verification"
	// OverallIssuesFound means at least one slot, mandatory or optional, is Fraud.
	OverallIssuesFound OverallStatus = "Issues Found"
	// OverallAllGenuine means every mandatory slot is Genuine and no slot is Fraud.
	OverallAllGenuine OverallStatus = "All Genuine"
)
