package models

import "github.com/google/uuid"

// Card represents a kanban card
type Card struct {
	ID          string `json:"id,omitempty"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Details     string `json:"details,omitempty"`
}

// Identity is the structural identity of a card. Duplicate pairs on the
// same board are ambiguous; identity lookups always take the first match.
type Identity struct {
	Label       string
	Description string
}

// NewCard creates a card with a freshly generated ID
func NewCard(label, description, details string) Card {
	return Card{
		ID:          NewCardID(),
		Label:       label,
		Description: description,
		Details:     details,
	}
}

// NewCardID generates a unique card identifier
func NewCardID() string {
	return uuid.NewString()
}

// Identity returns the card's (label, description) pair
func (c Card) Identity() Identity {
	return Identity{Label: c.Label, Description: c.Description}
}

// CardRef addresses a card either by ID or by structural identity
type CardRef struct {
	ID       string
	Identity Identity
}

// ByID returns a ref matching the card with the given ID
func ByID(id string) CardRef {
	return CardRef{ID: id}
}

// ByIdentity returns a ref matching the first card with the given label and description
func ByIdentity(label, description string) CardRef {
	return CardRef{Identity: Identity{Label: label, Description: description}}
}

// RefOf returns the most precise ref for a card: its ID when it has one
func RefOf(c Card) CardRef {
	if c.ID != "" {
		return ByID(c.ID)
	}
	return CardRef{Identity: c.Identity()}
}

// Matches reports whether the ref addresses the card
func (r CardRef) Matches(c Card) bool {
	if r.ID != "" {
		return c.ID == r.ID
	}
	return c.Label == r.Identity.Label && c.Description == r.Identity.Description
}
