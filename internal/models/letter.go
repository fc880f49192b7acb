package models

import (
	"time"

	"github.com/google/uuid"
)

// LetterRequest — input of dispute letter generation.
type LetterRequest struct {
	DisputeID   uuid.UUID
	Reason      string
	AccountName string
	AccountType string
}

// GeneratedLetter — letter text plus which strategy produced it.
type GeneratedLetter struct {
	Content         string    `json:"letter_content"`
	GeneratedWithAI bool      `json:"generated_with_ai"`
	Timestamp       time.Time `json:"timestamp"`
}

// DisputeLetter — a generated letter stored against a dispute.
type DisputeLetter struct {
	ID              uuid.UUID `json:"id"`
	DisputeID       uuid.UUID `json:"dispute_id"`
	Content         string    `json:"letter_content"`
	GeneratedWithAI bool      `json:"generated_with_ai"`
	CreatedAt       time.Time `json:"created_at"`
}
