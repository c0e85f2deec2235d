package services

import (
	"context"
	"fmt"
	"testing"

	"heartlink_server/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchFixture() (*MatchService, *MemoryDirectory) {
	directory := NewMemoryDirectory()
	return &MatchService{Directory: directory}, directory
}

func seedUser(t *testing.T, directory *MemoryDirectory, name, gender string) *models.User {
	t.Helper()

	user := models.NewUser()
	user.UserID = uuid.NewString()
	user.Name = name
	user.Gender = gender
	user.Email = fmt.Sprintf("%s@example.com", name)
	user.PhoneNumber = fmt.Sprintf("+91-%s", user.UserID[:8])
	user.DOB = "1995-06-15"
	user.UserPhotos = []string{fmt.Sprintf("https://photos.example.com/%s/1.jpg", name)}

	require.NoError(t, directory.Save(context.Background(), user))
	return user
}

func mustFind(t *testing.T, directory *MemoryDirectory, userID string) *models.User {
	t.Helper()

	user, err := directory.FindByID(context.Background(), userID)
	require.NoError(t, err)
	return user
}

func TestLikeCreatesPendingLike(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	result, err := ms.Like(ctx, alice.UserID, bob.UserID, "loved your bio")
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
	assert.False(t, result.AlreadyLiked)

	storedAlice := mustFind(t, directory, alice.UserID)
	storedBob := mustFind(t, directory, bob.UserID)

	assert.True(t, storedAlice.HasLiked(bob.UserID))
	require.Len(t, storedBob.ReceivedLikes, 1)
	assert.Equal(t, alice.UserID, storedBob.ReceivedLikes[0].FromUserID)
	assert.Equal(t, "loved your bio", storedBob.ReceivedLikes[0].Comment)
	assert.Empty(t, storedAlice.Matches)
	assert.Empty(t, storedBob.Matches)
}

func TestMutualLikeCreatesMatch(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	first, err := ms.Like(ctx, alice.UserID, bob.UserID, "")
	require.NoError(t, err)
	assert.False(t, first.IsMatch)

	second, err := ms.Like(ctx, bob.UserID, alice.UserID, "")
	require.NoError(t, err)
	assert.True(t, second.IsMatch)

	storedAlice := mustFind(t, directory, alice.UserID)
	storedBob := mustFind(t, directory, bob.UserID)

	// Symmetric match, pending likes resolved on both sides.
	assert.True(t, storedAlice.HasMatch(bob.UserID))
	assert.True(t, storedBob.HasMatch(alice.UserID))
	assert.Empty(t, storedAlice.ReceivedLikes)
	assert.Empty(t, storedBob.ReceivedLikes)
}

func TestLikeIsIdempotent(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	_, err := ms.Like(ctx, alice.UserID, bob.UserID, "hello")
	require.NoError(t, err)

	result, err := ms.Like(ctx, alice.UserID, bob.UserID, "hello again")
	require.NoError(t, err)
	assert.True(t, result.AlreadyLiked)
	assert.False(t, result.IsMatch)

	storedAlice := mustFind(t, directory, alice.UserID)
	storedBob := mustFind(t, directory, bob.UserID)

	assert.Len(t, storedAlice.LikedProfiles, 1)
	assert.Len(t, storedBob.ReceivedLikes, 1)
	assert.Equal(t, "hello", storedBob.ReceivedLikes[0].Comment)
}

func TestLikeAfterMatchReportsMatch(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	_, err := ms.Like(ctx, alice.UserID, bob.UserID, "")
	require.NoError(t, err)
	_, err = ms.Like(ctx, bob.UserID, alice.UserID, "")
	require.NoError(t, err)

	result, err := ms.Like(ctx, alice.UserID, bob.UserID, "")
	require.NoError(t, err)
	assert.True(t, result.AlreadyLiked)
	assert.True(t, result.IsMatch)
}

func TestLikeValidation(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)

	_, err := ms.Like(ctx, alice.UserID, alice.UserID, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ms.Like(ctx, alice.UserID, "", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ms.Like(ctx, alice.UserID, "missing-user", "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ms.Like(ctx, "missing-user", alice.UserID, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicatePendingLikeNotQueued(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	// A stale pending entry from alice already sits on bob's record.
	storedBob := mustFind(t, directory, bob.UserID)
	storedBob.ReceivedLikes = append(storedBob.ReceivedLikes, models.ReceivedLike{FromUserID: alice.UserID, Comment: "old"})
	require.NoError(t, directory.Save(ctx, storedBob))

	_, err := ms.Like(ctx, alice.UserID, bob.UserID, "new")
	require.NoError(t, err)

	storedBob = mustFind(t, directory, bob.UserID)
	require.Len(t, storedBob.ReceivedLikes, 1)
	assert.Equal(t, "old", storedBob.ReceivedLikes[0].Comment)
}

func TestRejectSuppressesDiscovery(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)
	charlie := seedUser(t, directory, "charlie", models.GenderMen)

	require.NoError(t, ms.Reject(ctx, alice.UserID, bob.UserID))

	candidates, err := ms.GetDiscoveryCandidates(ctx, alice.UserID)
	require.NoError(t, err)

	ids := candidateIDs(candidates)
	assert.NotContains(t, ids, bob.UserID)
	assert.Contains(t, ids, charlie.UserID)

	// Rejection is one-sided: alice still surfaces for bob.
	bobCandidates, err := ms.GetDiscoveryCandidates(ctx, bob.UserID)
	require.NoError(t, err)
	assert.Contains(t, candidateIDs(bobCandidates), alice.UserID)
}

func TestDuplicateRejectFails(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	require.NoError(t, ms.Reject(ctx, alice.UserID, bob.UserID))

	err := ms.Reject(ctx, alice.UserID, bob.UserID)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	storedAlice := mustFind(t, directory, alice.UserID)
	assert.Len(t, storedAlice.RejectedProfiles, 1)
}

func TestRejectLeavesTargetUntouched(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	require.NoError(t, ms.Reject(ctx, alice.UserID, bob.UserID))

	storedBob := mustFind(t, directory, bob.UserID)
	assert.Empty(t, storedBob.RejectedProfiles)
	assert.Empty(t, storedBob.ReceivedLikes)
}

func TestUnmatchRemovesBothSides(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	_, err := ms.Like(ctx, alice.UserID, bob.UserID, "")
	require.NoError(t, err)
	_, err = ms.Like(ctx, bob.UserID, alice.UserID, "")
	require.NoError(t, err)

	require.NoError(t, ms.Unmatch(ctx, alice.UserID, bob.UserID))

	storedAlice := mustFind(t, directory, alice.UserID)
	storedBob := mustFind(t, directory, bob.UserID)

	assert.False(t, storedAlice.HasMatch(bob.UserID))
	assert.False(t, storedBob.HasMatch(alice.UserID))
	assert.True(t, storedAlice.HasRejected(bob.UserID))
	assert.False(t, storedBob.HasRejected(alice.UserID))

	mutual, err := ms.GetMutualMatches(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Empty(t, mutual)
}

func TestUnmatchTolerantOfAbsentMatch(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	require.NoError(t, ms.Unmatch(ctx, alice.UserID, bob.UserID))

	storedAlice := mustFind(t, directory, alice.UserID)
	assert.True(t, storedAlice.HasRejected(bob.UserID))
}

func TestGetPendingLikesProjection(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	_, err := ms.Like(ctx, alice.UserID, bob.UserID, "coffee sometime?")
	require.NoError(t, err)

	pending, err := ms.GetPendingLikes(ctx, bob.UserID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, alice.UserID, pending[0].FromUserID)
	assert.Equal(t, "alice", pending[0].Name)
	assert.Equal(t, alice.UserPhotos, pending[0].UserPhotos)
	assert.Equal(t, "coffee sometime?", pending[0].Comment)

	// The liker sees nothing pending.
	pending, err = ms.GetPendingLikes(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestGetMatchesProjection(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	_, err := ms.Like(ctx, alice.UserID, bob.UserID, "")
	require.NoError(t, err)
	_, err = ms.Like(ctx, bob.UserID, alice.UserID, "")
	require.NoError(t, err)

	matches, err := ms.GetMatches(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, bob.UserID, matches[0].UserID)
	assert.Equal(t, "bob", matches[0].Name)
	assert.Equal(t, bob.UserPhotos, matches[0].UserPhotos)
}

func TestGetMutualMatchesFiltersAsymmetricEntries(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)
	charlie := seedUser(t, directory, "charlie", models.GenderMen)

	_, err := ms.Like(ctx, alice.UserID, bob.UserID, "")
	require.NoError(t, err)
	_, err = ms.Like(ctx, bob.UserID, alice.UserID, "")
	require.NoError(t, err)

	// Simulate a half-committed write: charlie appears in alice's matches
	// but alice is missing from charlie's.
	storedAlice := mustFind(t, directory, alice.UserID)
	storedAlice.Matches = append(storedAlice.Matches, charlie.UserID)
	require.NoError(t, directory.Save(ctx, storedAlice))

	mutual, err := ms.GetMutualMatches(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, mutual, 1)
	assert.Equal(t, bob.UserID, mutual[0].UserID)

	// The plain matches query still reports both.
	matches, err := ms.GetMatches(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestDiscoveryExcludesRelationships(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	liked := seedUser(t, directory, "liked", models.GenderMen)
	matched := seedUser(t, directory, "matched", models.GenderMen)
	rejected := seedUser(t, directory, "rejected", models.GenderMen)
	fresh := seedUser(t, directory, "fresh", models.GenderMen)
	sameGender := seedUser(t, directory, "samegender", models.GenderWomen)

	_, err := ms.Like(ctx, alice.UserID, liked.UserID, "")
	require.NoError(t, err)

	_, err = ms.Like(ctx, alice.UserID, matched.UserID, "")
	require.NoError(t, err)
	_, err = ms.Like(ctx, matched.UserID, alice.UserID, "")
	require.NoError(t, err)

	require.NoError(t, ms.Reject(ctx, alice.UserID, rejected.UserID))

	candidates, err := ms.GetDiscoveryCandidates(ctx, alice.UserID)
	require.NoError(t, err)

	ids := candidateIDs(candidates)
	assert.Contains(t, ids, fresh.UserID)
	assert.NotContains(t, ids, alice.UserID)
	assert.NotContains(t, ids, liked.UserID)
	assert.NotContains(t, ids, matched.UserID)
	assert.NotContains(t, ids, rejected.UserID)
	assert.NotContains(t, ids, sameGender.UserID)
}

func TestRejectValidation(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)

	assert.ErrorIs(t, ms.Reject(ctx, alice.UserID, alice.UserID), ErrInvalidArgument)
	assert.ErrorIs(t, ms.Reject(ctx, "", alice.UserID), ErrInvalidArgument)
	assert.ErrorIs(t, ms.Reject(ctx, alice.UserID, "missing-user"), ErrNotFound)
}

// Full lifecycle: register → one-sided like → match → unmatch.
func TestMatchLifecycle(t *testing.T) {
	ms, directory := newMatchFixture()
	ctx := context.Background()

	alice := seedUser(t, directory, "alice", models.GenderWomen)
	bob := seedUser(t, directory, "bob", models.GenderMen)

	result, err := ms.Like(ctx, alice.UserID, bob.UserID, "hi bob")
	require.NoError(t, err)
	assert.False(t, result.IsMatch)

	pending, err := ms.GetPendingLikes(ctx, bob.UserID)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	result, err = ms.Like(ctx, bob.UserID, alice.UserID, "")
	require.NoError(t, err)
	assert.True(t, result.IsMatch)

	for _, userID := range []string{alice.UserID, bob.UserID} {
		pending, err = ms.GetPendingLikes(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, pending)
	}

	require.NoError(t, ms.Unmatch(ctx, alice.UserID, bob.UserID))

	storedAlice := mustFind(t, directory, alice.UserID)
	storedBob := mustFind(t, directory, bob.UserID)
	assert.Empty(t, storedAlice.Matches)
	assert.Empty(t, storedBob.Matches)
	assert.True(t, storedAlice.HasRejected(bob.UserID))
	assert.False(t, storedBob.HasRejected(alice.UserID))
}

func candidateIDs(candidates []models.ProfileSummary) []string {
	ids := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		ids = append(ids, candidate.UserID)
	}
	return ids
}
