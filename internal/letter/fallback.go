package letter

import (
	"context"
	"log/slog"
	"time"

	"github.com/pribylovaa/credit-dispute/internal/models"
	logctx "github.com/pribylovaa/credit-dispute/internal/pkg/log"
)

// Fallback tries Primary within Timeout and falls back to the template on
// any error, so Generate always succeeds.
type Fallback struct {
	Primary  Generator
	Template *Template
	Timeout  time.Duration
}

// NewFallback wraps primary with the template fallback.
func NewFallback(primary Generator, timeout time.Duration) *Fallback {
	return &Fallback{Primary: primary, Template: NewTemplate(), Timeout: timeout}
}

func (f *Fallback) Generate(ctx context.Context, req models.LetterRequest) (models.GeneratedLetter, error) {
	const op = "letter.fallback.Generate"

	if f.Primary != nil {
		if budget, ok := f.budget(ctx); ok {
			pctx := ctx
			if budget > 0 {
				var cancel context.CancelFunc
				pctx, cancel = context.WithTimeout(ctx, budget)
				defer cancel()
			}

			res, err := f.Primary.Generate(pctx, req)
			if err == nil {
				return res, nil
			}

			logctx.From(ctx).Warn("letter_ai_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return f.Template.Generate(ctx, req)
}

// budget is the time Primary may take: Timeout, cut so that a quarter of
// the caller's remaining deadline is left after it. Zero means unbounded;
// ok is false when the caller has no time left at all.
func (f *Fallback) budget(ctx context.Context) (time.Duration, bool) {
	d := f.Timeout

	deadline, ok := ctx.Deadline()
	if !ok {
		return d, true
	}

	left := time.Until(deadline)
	if left <= 0 {
		return 0, false
	}

	if capped := left - left/4; d <= 0 || capped < d {
		d = capped
	}

	return d, true
}
