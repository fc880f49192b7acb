package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/letter"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/mocks"
	"github.com/stretchr/testify/require"
)

func TestGenerateLetter_TemplateDefault(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)

	res, err := svc.GenerateLetter(context.Background(), userIdentity(uuid.New()), LetterInput{
		Reason:      "Account was paid in full",
		AccountName: "Capital One Platinum",
		AccountType: "Credit Card",
	})
	require.NoError(t, err)
	require.False(t, res.GeneratedWithAI)
	require.Contains(t, res.Content, "Capital One Platinum")
	require.Contains(t, res.Content, "Account was paid in full")
	require.False(t, res.Timestamp.IsZero())
}

func TestGenerateLetter_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)
	_, err := svc.GenerateLetter(context.Background(), userIdentity(uuid.New()), LetterInput{Reason: "x"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateLetter_FromDisputeStoresLetter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	gen := mocks.NewMockGenerator(ctrl)
	svc := New(st, testCfg())
	svc.SetLetterGenerator(gen)

	uid, did := uuid.New(), uuid.New()
	st.EXPECT().DisputeByID(gomock.Any(), did).Return(&models.Dispute{
		ID:          did,
		UserID:      uid,
		Reason:      "Never late",
		AccountName: "Wells Fargo Auto",
		AccountType: "Auto Loan",
	}, nil)
	gen.EXPECT().Generate(gomock.Any(), models.LetterRequest{
		DisputeID:   did,
		Reason:      "Never late",
		AccountName: "Wells Fargo Auto",
		AccountType: "Auto Loan",
	}).Return(models.GeneratedLetter{Content: "Dear bureau", GeneratedWithAI: true}, nil)

	var saved *models.DisputeLetter
	st.EXPECT().SaveDisputeLetter(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l *models.DisputeLetter) error {
			saved = l
			return nil
		})

	res, err := svc.GenerateLetter(context.Background(), userIdentity(uid), LetterInput{DisputeID: did})
	require.NoError(t, err)
	require.True(t, res.GeneratedWithAI)
	require.Equal(t, did, saved.DisputeID)
	require.Equal(t, "Dear bureau", saved.Content)
	require.True(t, saved.GeneratedWithAI)
}

// hangingAI blocks until its context ends.
type hangingAI struct{}

func (hangingAI) Generate(ctx context.Context, _ models.LetterRequest) (models.GeneratedLetter, error) {
	<-ctx.Done()
	return models.GeneratedLetter{}, ctx.Err()
}

func TestGenerateLetter_HungAIStillStoresTemplate(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	svc.SetLetterGenerator(letter.NewFallback(hangingAI{}, 200*time.Millisecond))

	uid, did := uuid.New(), uuid.New()
	st.EXPECT().DisputeByID(gomock.Any(), did).Return(&models.Dispute{
		ID:          did,
		UserID:      uid,
		Reason:      "Never late",
		AccountName: "Wells Fargo Auto",
		AccountType: "Auto Loan",
	}, nil)

	var saved *models.DisputeLetter
	st.EXPECT().SaveDisputeLetter(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, l *models.DisputeLetter) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			saved = l
			return nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	res, err := svc.GenerateLetter(ctx, userIdentity(uid), LetterInput{DisputeID: did})
	require.NoError(t, err)
	require.False(t, res.GeneratedWithAI)
	require.Contains(t, res.Content, "Wells Fargo Auto")
	require.NotNil(t, saved)
	require.False(t, saved.GeneratedWithAI)
}

func TestGenerateLetter_SaveSurvivesExpiredRequest(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)

	uid, did := uuid.New(), uuid.New()
	st.EXPECT().DisputeByID(gomock.Any(), did).Return(&models.Dispute{
		ID: did, UserID: uid, Reason: "r", AccountName: "a", AccountType: "t",
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	st.EXPECT().SaveDisputeLetter(gomock.Any(), gomock.Any()).DoAndReturn(
		func(sctx context.Context, _ *models.DisputeLetter) error {
			_, ok := sctx.Deadline()
			require.True(t, ok, "save is bounded")
			return sctx.Err()
		})

	// DisputeByID already ran; the request is cancelled before the write.
	svc.SetLetterGenerator(cancellingGenerator{cancel: cancel})

	_, err := svc.GenerateLetter(ctx, userIdentity(uid), LetterInput{DisputeID: did})
	require.NoError(t, err)
}

// cancellingGenerator cancels the request context after producing a letter.
type cancellingGenerator struct{ cancel context.CancelFunc }

func (g cancellingGenerator) Generate(_ context.Context, _ models.LetterRequest) (models.GeneratedLetter, error) {
	g.cancel()
	return models.GeneratedLetter{Content: "letter"}, nil
}

func TestGenerateLetter_ForeignDispute(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	did := uuid.New()
	st.EXPECT().DisputeByID(gomock.Any(), did).Return(&models.Dispute{ID: did, UserID: uuid.New()}, nil)

	_, err := svc.GenerateLetter(context.Background(), userIdentity(uuid.New()), LetterInput{DisputeID: did})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestDisputeLetters(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	uid, did := uuid.New(), uuid.New()
	st.EXPECT().DisputeByID(gomock.Any(), did).Return(&models.Dispute{ID: did, UserID: uid}, nil)
	st.EXPECT().DisputeLetters(gomock.Any(), did).Return([]models.DisputeLetter{{DisputeID: did}}, nil)

	got, err := svc.DisputeLetters(context.Background(), userIdentity(uid), did)
	require.NoError(t, err)
	require.Len(t, got, 1)
}
