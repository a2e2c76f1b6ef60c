package dto

import (
	"github.com/spec-kit/gift-exchange-service/internal/domain"
	"github.com/spec-kit/gift-exchange-service/internal/registry"
)

// JoinRequest payload for new participants.
type JoinRequest struct {
	Name           string  `json:"name"`
	GiftPreference *string `json:"giftPreference"`
}

// JoinResponse returns the identity and the deep link to the assignment page.
type JoinResponse struct {
	ID             string `json:"id"`
	Message        string `json:"message"`
	AssignmentLink string `json:"assignmentLink"`
}

// MessageResponse standard confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// DrawResponse returns the full pairing list for organizer eyes only.
type DrawResponse struct {
	Message     string             `json:"message"`
	Assignments []registry.Pairing `json:"assignments"`
}

// AssignmentResponse returns the recipient view for one participant.
type AssignmentResponse struct {
	YouAreGivingTo domain.Recipient `json:"youAreGivingTo"`
}
