// Package credit simulates a credit bureau. Reports are derived from the user
// id alone, so the same user always gets the same figures.
package credit

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/models"
)

var (
	accountTypes = []string{"Credit Card", "Auto Loan", "Mortgage", "Student Loan", "Personal Loan", "Collection"}
	accountNames = []string{
		"Chase Freedom Credit Card",
		"Wells Fargo Auto Loan",
		"Bank of America Mortgage",
		"Discover Student Loan",
		"Capital One Credit Card",
		"Citi Personal Loan",
		"Medical Collection Account",
		"American Express Card",
		"Toyota Financial Services",
		"Quicken Loans Mortgage",
	}
	accountStatuses = []string{"Open", "Closed", "Open", "Open", "Closed"}
	paymentStatuses = []string{"Current", "Current", "Current", "Late", "Paid"}
)

const collectionType = "Collection"

var (
	openedFrom   = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	openedTo     = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	activityFrom = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	activityTo   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Provider is the mock bureau client. Latency simulates the remote call.
type Provider struct {
	Latency time.Duration
}

// New returns a provider with the given simulated latency.
func New(latency time.Duration) *Provider {
	return &Provider{Latency: latency}
}

// Fetch returns the report of userID as of now. Only ReportDate and the
// timestamps depend on now.
func (p *Provider) Fetch(ctx context.Context, userID uuid.UUID, now time.Time) (*models.CreditReport, error) {
	const op = "credit.provider.Fetch"

	if p.Latency > 0 {
		t := time.NewTimer(p.Latency)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-t.C:
		}
	}

	return Generate(userID, now), nil
}

// Generate builds the report without any simulated delay.
func Generate(userID uuid.UUID, now time.Time) *models.CreditReport {
	now = now.UTC()
	r := rng(userID)

	score := 600 + r.IntN(200)
	count := 3 + r.IntN(8)
	utilization := float64(r.IntN(60))
	history := 24 + r.IntN(120)

	profileID := uuid.NewSHA1(userID, []byte("credit-profile"))

	items := make([]models.CreditReportItem, 0, count)
	var total float64
	for i := 0; i < count; i++ {
		it := item(r, userID, i)
		it.ID = uuid.NewSHA1(profileID, []byte(fmt.Sprintf("item-%d", i)))
		it.ProfileID = profileID
		it.CreatedAt = now
		total += it.Balance
		items = append(items, it)
	}

	return &models.CreditReport{
		Profile: models.CreditProfile{
			ID:                    profileID,
			UserID:                userID,
			CreditScore:           score,
			ReportDate:            time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			TotalAccounts:         count,
			OpenAccounts:          count * 7 / 10,
			TotalBalance:          total,
			PaymentHistoryScore:   min(100, score/8),
			CreditUtilization:     utilization,
			LengthOfHistoryMonths: history,
			CreatedAt:             now,
			UpdatedAt:             now,
		},
		Items: items,
	}
}

func item(r *rand.Rand, userID uuid.UUID, i int) models.CreditReportItem {
	typ := accountTypes[i%len(accountTypes)]

	it := models.CreditReportItem{
		AccountType:   typ,
		AccountName:   accountNames[i%len(accountNames)],
		AccountStatus: accountStatuses[i%len(accountStatuses)],
		PaymentStatus: paymentStatuses[i%len(paymentStatuses)],
	}

	if typ == collectionType {
		it.AccountName = fmt.Sprintf("%s #%s%d", accountNames[6], userID.String()[:8], i)
		it.AccountStatus = "Open"
		it.PaymentStatus = collectionType
		it.Balance = float64(r.IntN(2000))
	} else {
		it.Balance = float64(r.IntN(25000))
	}

	it.DateOpened = day(r, openedFrom, openedTo)
	it.LastActivity = day(r, activityFrom, activityTo)
	if it.LastActivity.Before(it.DateOpened) {
		it.LastActivity = it.DateOpened
	}

	return it
}

func day(r *rand.Rand, from, to time.Time) time.Time {
	days := int(to.Sub(from).Hours() / 24)
	return from.AddDate(0, 0, r.IntN(days+1))
}

// rng is seeded with the FNV-64a hash of the id bytes.
func rng(userID uuid.UUID) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write(userID[:])
	seed := h.Sum64()

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
