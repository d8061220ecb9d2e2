package entity

// FundingEntry is one confirmed contribution. Immutable from the client's
// perspective; created upstream when the payment provider confirms.
type FundingEntry struct {
	ID        string   `json:"_id"`
	AltID     string   `json:"id"`
	User      PartyRef `json:"user"`
	Name      string   `json:"name"`  // legacy flat variant
	Email     string   `json:"email"` // legacy flat variant
	Amount    int64    `json:"amount"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"createdAt"`
}

// ContributorName prefers the nested user reference over the flat fields.
func (f FundingEntry) ContributorName() string {
	if f.User.Name != "" {
		return f.User.Name
	}
	if f.Name != "" {
		return f.Name
	}
	return "Unknown"
}

// TotalAmount sums the visible entries for the page footer.
func TotalAmount(entries []FundingEntry) int64 {
	var sum int64
	for _, f := range entries {
		sum += f.Amount
	}
	return sum
}
