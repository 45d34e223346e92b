package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildSlots creates the default registry slots with the given statuses keyed by id.
func buildSlots(statuses map[string]Status) []*Slot {
	slots := make([]*Slot, 0, 5)
	for _, def := range DefaultRegistry() {
		status, ok := statuses[def.ID]
		if !ok {
			status = StatusNotUploaded
		}
		slots = append(slots, &Slot{SlotDef: def, Status: status})
	}
	return slots
}

func TestDeriveOverall(t *testing.T) {
	tests := []struct {
		name     string
		statuses map[string]Status
		want     OverallStatus
	}{
		{
			name:     "empty session",
			statuses: nil,
			want:     OverallPendingDocuments,
		},
		{
			name: "some mandatory missing",
			statuses: map[string]Status{
				"tenth":   StatusReadyToVerify,
				"twelfth": StatusGenuine,
			},
			want: OverallPendingDocuments,
		},
		{
			name: "all mandatory submitted but unverified",
			statuses: map[string]Status{
				"tenth":   StatusReadyToVerify,
				"twelfth": StatusReadyToVerify,
				"degree":  StatusReadyToVerify,
			},
			want: OverallPendingVerification,
		},
		{
			name: "all mandatory genuine",
			statuses: map[string]Status{
				"tenth":   StatusGenuine,
				"twelfth": StatusGenuine,
				"degree":  StatusGenuine,
			},
			want: OverallAllGenuine,
		},
		{
			name: "fraud on a mandatory slot",
			statuses: map[string]Status{
				"tenth":   StatusGenuine,
				"twelfth": StatusGenuine,
				"degree":  StatusFraud,
			},
			want: OverallIssuesFound,
		},
		{
			name: "fraud on an optional slot overrides all genuine mandatory",
			statuses: map[string]Status{
				"tenth":   StatusGenuine,
				"twelfth": StatusGenuine,
				"degree":  StatusGenuine,
				"mtech":   StatusFraud,
			},
			want: OverallIssuesFound,
		},
		{
			name: "fraud takes precedence even with mandatory missing",
			statuses: map[string]Status{
				"mtech": StatusFraud,
			},
			want: OverallIssuesFound,
		},
		{
			name: "mandatory error keeps verification pending",
			statuses: map[string]Status{
				"tenth":   StatusGenuine,
				"twelfth": StatusGenuine,
				"degree":  StatusError,
			},
			want: OverallPendingVerification,
		},
		{
			name: "submitted optional slot must also be genuine",
			statuses: map[string]Status{
				"tenth":   StatusGenuine,
				"twelfth": StatusGenuine,
				"degree":  StatusGenuine,
				"ms":      StatusReadyToVerify,
			},
			want: OverallPendingVerification,
		},
		{
			name: "genuine optional slot does not break all genuine",
			statuses: map[string]Status{
				"tenth":   StatusGenuine,
				"twelfth": StatusGenuine,
				"degree":  StatusGenuine,
				"ms":      StatusGenuine,
			},
			want: OverallAllGenuine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveOverall(buildSlots(tt.statuses)))
		})
	}
}

func TestDeriveProgress(t *testing.T) {
	slots := buildSlots(map[string]Status{
		"tenth": StatusReadyToVerify,
		"mtech": StatusGenuine,
	})

	p := DeriveProgress(slots)
	assert.Equal(t, 1, p.MandatorySubmitted)
	assert.Equal(t, 3, p.MandatoryTotal)
	assert.Equal(t, 1, p.OptionalSubmitted)
	assert.Equal(t, 2, p.OptionalTotal)
}
