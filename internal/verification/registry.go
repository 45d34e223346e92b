package verification

// SlotDef defines one expected document slot. The set of slots, their order,
// and their mandatory classification are fixed at registry-definition time.
type SlotDef struct {
	ID        string
	Title     string
	Mandatory bool
}

// DefaultRegistry returns the document slots expected from a candidate, in
// display order. Restoration merges persisted state into this list; the
// registry's title and mandatory flag always win over persisted content.
func DefaultRegistry() []SlotDef {
	return []SlotDef{
		{ID: "tenth", Title: "10th Marksheet", Mandatory: true},
		{ID: "twelfth", Title: "12th Marksheet", Mandatory: true},
		{ID: "degree", Title: "Degree/B.Tech Certificate", Mandatory: true},
		{ID: "mtech", Title: "M.Tech Certificate", Mandatory: false},
		{ID: "ms", Title: "MS Certificate", Mandatory: false},
	}
}
