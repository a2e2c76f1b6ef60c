package domain

// Participant is a registered member of the gift exchange. The pointer
// fields serialize as explicit nulls when absent, matching the snapshot and
// wire layout.
type Participant struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	GiftPreference *string `json:"giftPreference"`
	AssignedTo     *string `json:"assignedTo"`
}

// Recipient is the view of an assignment exposed to its giver. It never
// carries the recipient's identity token.
type Recipient struct {
	Name           string  `json:"name"`
	GiftPreference *string `json:"giftPreference"`
}
