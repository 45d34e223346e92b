package verification

// DeriveOverall computes the aggregate verification status from all slots.
// It is a pure function: Fraud anywhere takes precedence over completion, so
// a single fraudulent optional document flips the overall status even when
// every mandatory document is genuine. Optional slots that were never
// submitted do not block All Genuine.
func DeriveOverall(slots []*Slot) OverallStatus {
	for _, s := range slots {
		if s.Status == StatusFraud {
			return OverallIssuesFound
		}
	}

	for _, s := range slots {
		if s.Mandatory && s.Status == StatusNotUploaded {
			return OverallPendingDocuments
		}
	}

	for _, s := range slots {
		if s.Mandatory && s.Status != StatusGenuine {
			return OverallPendingVerification
		}
		if !s.Mandatory && s.Status != StatusNotUploaded && s.Status != StatusGenuine {
			return OverallPendingVerification
		}
	}
	return OverallAllGenuine
}

// Progress summarizes how many mandatory and optional slots have a source attached.
type Progress struct {
	MandatorySubmitted int `json:"mandatory_submitted"`
	MandatoryTotal     int `json:"mandatory_total"`
	OptionalSubmitted  int `json:"optional_submitted"`
	OptionalTotal      int `json:"optional_total"`
}

// DeriveProgress counts submitted slots per classification.
func DeriveProgress(slots []*Slot) Progress {
	var p Progress
	for _, s := range slots {
		if s.Mandatory {
			p.MandatoryTotal++
			if s.Status != StatusNotUploaded {
				p.MandatorySubmitted++
			}
		} else {
			p.OptionalTotal++
			if s.Status != StatusNotUploaded {
				p.OptionalSubmitted++
			}
		}
	}
	return p
}
