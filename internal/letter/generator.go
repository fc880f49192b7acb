// Package letter produces dispute letters, either from a fixed template or
// through an OpenAI-compatible chat-completions API.
package letter

//go:generate mockgen -destination=../../mocks/mock_generator.go -package=mocks github.com/pribylovaa/credit-dispute/internal/letter Generator

import (
	"context"
	"errors"

	"github.com/pribylovaa/credit-dispute/internal/models"
)

// ErrEmptyCompletion — the AI backend answered without any text.
var ErrEmptyCompletion = errors.New("empty completion")

// Generator writes a dispute letter. Content and GeneratedWithAI of the
// result are filled; Timestamp is left to the caller.
type Generator interface {
	Generate(ctx context.Context, req models.LetterRequest) (models.GeneratedLetter, error)
}
