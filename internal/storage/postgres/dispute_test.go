package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/storage"
	"github.com/stretchr/testify/require"
)

// seedDispute creates a user with a profile and one pending dispute.
func seedDispute(t *testing.T, st *Storage, email string) (*models.User, *models.Dispute) {
	t.Helper()
	ctx := context.Background()

	u := seedUser(t, st, email, models.RoleUser)
	_, err := st.CreateCreditReport(ctx, testReport(u.ID, 3))
	require.NoError(t, err)
	items, err := st.CreditReportItems(ctx, u.ID)
	require.NoError(t, err)

	d := &models.Dispute{
		ID:                 uuid.New(),
		UserID:             u.ID,
		CreditReportItemID: items[0].ID,
		Reason:             "not my account",
		Status:             models.DisputePending,
		CreatedAt:          time.Now().UTC(),
	}
	require.NoError(t, st.SaveDispute(ctx, d))
	return u, d
}

func TestIntegration_Dispute_SaveAndGet(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u, d := seedDispute(t, st, "user@example.com")

	got, err := st.DisputeByID(context.Background(), d.ID)
	require.NoError(t, err)
	require.Equal(t, models.DisputePending, got.Status)
	require.Equal(t, "not my account", got.Reason)
	require.Equal(t, "Account", got.AccountName)
	require.Equal(t, u.Email, got.Email)
	require.Empty(t, got.AdminNotes)
	require.Nil(t, got.ResolvedAt)

	_, err = st.DisputeByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ListDisputes_Filters(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	a, _ := seedDispute(t, st, "a@example.com")
	_, db := seedDispute(t, st, "b@example.com")

	resolved := models.DisputeResolved
	require.NoError(t, st.UpdateDispute(ctx, db.ID, models.DisputeUpdate{Status: &resolved}, time.Now().UTC()))

	all, err := st.ListDisputes(ctx, models.DisputeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	own, err := st.ListDisputes(ctx, models.DisputeFilter{UserID: a.ID})
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, a.ID, own[0].UserID)

	byStatus, err := st.ListDisputes(ctx, models.DisputeFilter{Status: models.DisputeResolved})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	require.Equal(t, db.ID, byStatus[0].ID)
}

func TestIntegration_UpdateDispute_ResolvedStampsTime(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	_, d := seedDispute(t, st, "user@example.com")

	notes := "checked with bureau"
	review := models.DisputeUnderReview
	require.NoError(t, st.UpdateDispute(ctx, d.ID, models.DisputeUpdate{Status: &review, AdminNotes: &notes}, time.Now().UTC()))

	got, err := st.DisputeByID(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, models.DisputeUnderReview, got.Status)
	require.Equal(t, notes, got.AdminNotes)
	require.Nil(t, got.ResolvedAt)

	resolved := models.DisputeResolved
	now := time.Now().UTC()
	require.NoError(t, st.UpdateDispute(ctx, d.ID, models.DisputeUpdate{Status: &resolved}, now))

	got, err = st.DisputeByID(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, notes, got.AdminNotes, "untouched fields kept")
	require.NotNil(t, got.ResolvedAt)
	require.WithinDuration(t, now, *got.ResolvedAt, time.Second)

	err = st.UpdateDispute(ctx, uuid.New(), models.DisputeUpdate{Status: &resolved}, now)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_DisputeStats(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	seedDispute(t, st, "a@example.com")
	_, d := seedDispute(t, st, "b@example.com")
	rejected := models.DisputeRejected
	require.NoError(t, st.UpdateDispute(ctx, d.ID, models.DisputeUpdate{Status: &rejected}, time.Now().UTC()))

	stats, err := st.DisputeStats(ctx, time.Now().UTC().Add(-7*24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.Total)
	require.EqualValues(t, 2, stats.Recent)
	require.Len(t, stats.ByStatus, len(models.DisputeStatuses))
	require.EqualValues(t, 1, stats.ByStatus[models.DisputePending])
	require.EqualValues(t, 1, stats.ByStatus[models.DisputeRejected])
	require.EqualValues(t, 0, stats.ByStatus[models.DisputeResolved])
}

func TestIntegration_DisputeLetters(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	_, d := seedDispute(t, st, "user@example.com")

	require.NoError(t, st.SaveDisputeLetter(ctx, &models.DisputeLetter{
		ID:              uuid.New(),
		DisputeID:       d.ID,
		Content:         "Dear Sir or Madam",
		GeneratedWithAI: false,
		CreatedAt:       time.Now().UTC(),
	}))

	letters, err := st.DisputeLetters(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, letters, 1)
	require.Equal(t, "Dear Sir or Madam", letters[0].Content)

	none, err := st.DisputeLetters(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, none)
}
