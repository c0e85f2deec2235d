package services

import (
	"context"
	"fmt"

	"heartlink_server/models"
	"heartlink_server/utils"
)

// MatchService enforces the state transitions between two user records:
// unconnected → one-sided like → mutual match, plus rejection and unmatch.
// Every state-changing operation loads both records, applies the transition
// and persists the affected records through the directory; dual-record
// writes go through SavePair so the pair commits as one unit.
type MatchService struct {
	Directory UserDirectory
}

// LikeResult reports the outcome of a like action.
type LikeResult struct {
	AlreadyLiked bool `json:"alreadyLiked"`
	IsMatch      bool `json:"isMatch"`
}

// loadPair validates the two ids and loads both records.
func (ms *MatchService) loadPair(ctx context.Context, actorID, targetID string) (*models.User, *models.User, error) {
	if actorID == "" || targetID == "" {
		return nil, nil, fmt.Errorf("%w: both user ids are required", ErrInvalidArgument)
	}
	if actorID == targetID {
		return nil, nil, fmt.Errorf("%w: cannot act on own profile", ErrInvalidArgument)
	}

	actor, err := ms.Directory.FindByID(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}
	target, err := ms.Directory.FindByID(ctx, targetID)
	if err != nil {
		return nil, nil, err
	}
	return actor, target, nil
}

// Like records that actor liked target. Liking the same profile twice is
// absorbed as an idempotent success. If the target had already liked the
// actor the pair becomes a match: both matches sets gain the other user and
// the pending like entries between them are cleared on both sides.
func (ms *MatchService) Like(ctx context.Context, actorID, targetID, comment string) (*LikeResult, error) {
	actor, target, err := ms.loadPair(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}

	if actor.HasLiked(targetID) {
		return &LikeResult{AlreadyLiked: true, IsMatch: actor.HasMatch(targetID)}, nil
	}

	actor.LikedProfiles = append(actor.LikedProfiles, targetID)

	// Queue the pending like unless one from this actor is already waiting.
	if !target.HasPendingLikeFrom(actorID) {
		target.ReceivedLikes = append(target.ReceivedLikes, models.ReceivedLike{
			FromUserID: actorID,
			Comment:    comment,
		})
	}

	result := &LikeResult{}
	if target.HasLiked(actorID) {
		// Reciprocal like: form the match on both records and resolve the
		// pending entries between the pair.
		actor.Matches = appendUnique(actor.Matches, targetID)
		target.Matches = appendUnique(target.Matches, actorID)
		actor.ReceivedLikes = removePendingFrom(actor.ReceivedLikes, targetID)
		target.ReceivedLikes = removePendingFrom(target.ReceivedLikes, actorID)
		result.IsMatch = true
	}

	if err := ms.Directory.SavePair(ctx, actor, target); err != nil {
		return nil, err
	}
	return result, nil
}

// Reject records that actor passed on target. Rejection is one-sided: the
// target's record is untouched and the target never learns about it. A
// duplicate reject is a client error, unlike the idempotent Like.
func (ms *MatchService) Reject(ctx context.Context, actorID, targetID string) error {
	actor, _, err := ms.loadPair(ctx, actorID, targetID)
	if err != nil {
		return err
	}

	if actor.HasRejected(targetID) {
		return fmt.Errorf("%w: profile already rejected", ErrAlreadyExists)
	}

	actor.RejectedProfiles = append(actor.RejectedProfiles, targetID)
	return ms.Directory.Save(ctx, actor)
}

// Unmatch dissolves a match from both records and suppresses the other user
// from the actor's future discovery. Only the actor's rejected set gains the
// other party. Tolerant of the match being already absent on either side.
func (ms *MatchService) Unmatch(ctx context.Context, actorID, otherID string) error {
	actor, other, err := ms.loadPair(ctx, actorID, otherID)
	if err != nil {
		return err
	}

	actor.Matches = removeID(actor.Matches, otherID)
	other.Matches = removeID(other.Matches, actorID)
	actor.RejectedProfiles = appendUnique(actor.RejectedProfiles, otherID)

	return ms.Directory.SavePair(ctx, actor, other)
}

// GetPendingLikes returns the user's received likes enriched with the
// sender's display details. Senders that no longer resolve are skipped.
func (ms *MatchService) GetPendingLikes(ctx context.Context, userID string) ([]models.PendingLike, error) {
	user, err := ms.Directory.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pendingLikes := []models.PendingLike{}
	for _, like := range user.ReceivedLikes {
		sender, err := ms.Directory.FindByID(ctx, like.FromUserID)
		if err != nil {
			continue
		}
		pendingLikes = append(pendingLikes, models.PendingLike{
			FromUserID: like.FromUserID,
			Name:       sender.Name,
			UserPhotos: sender.UserPhotos,
			Comment:    like.Comment,
		})
	}
	return pendingLikes, nil
}

// GetMatches returns profile summaries for the user's matches.
func (ms *MatchService) GetMatches(ctx context.Context, userID string) ([]models.ProfileSummary, error) {
	user, err := ms.Directory.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	matches := []models.ProfileSummary{}
	for _, matchID := range user.Matches {
		matchedUser, err := ms.Directory.FindByID(ctx, matchID)
		if err != nil {
			continue
		}
		matches = append(matches, summarize(matchedUser))
	}
	return matches, nil
}

// GetMutualMatches returns the subset of the user's matches whose own
// matches set also contains the user. The matches relation is written
// symmetrically, so a mismatch here points at a corrupted prior write;
// the query filters it out rather than erroring.
func (ms *MatchService) GetMutualMatches(ctx context.Context, userID string) ([]models.ProfileSummary, error) {
	user, err := ms.Directory.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	mutualMatches := []models.ProfileSummary{}
	for _, matchID := range user.Matches {
		matchedUser, err := ms.Directory.FindByID(ctx, matchID)
		if err != nil {
			continue
		}
		if matchedUser.HasMatch(userID) {
			mutualMatches = append(mutualMatches, summarize(matchedUser))
		}
	}
	return mutualMatches, nil
}

// GetDiscoveryCandidates returns profiles eligible to be shown to the user:
// filtered by the user's stated preference and excluding self, matches,
// liked and rejected profiles.
func (ms *MatchService) GetDiscoveryCandidates(ctx context.Context, userID string) ([]models.ProfileSummary, error) {
	user, err := ms.Directory.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	excludeIDs := map[string]struct{}{user.UserID: {}}
	for _, id := range user.Matches {
		excludeIDs[id] = struct{}{}
	}
	for _, id := range user.LikedProfiles {
		excludeIDs[id] = struct{}{}
	}
	for _, id := range user.RejectedProfiles {
		excludeIDs[id] = struct{}{}
	}

	filter := models.DiscoveryFilter{
		Gender:          utils.PreferredGender(user.Gender),
		DatingIntention: user.DatingIntention,
	}

	candidates, err := ms.Directory.FindMany(ctx, filter, excludeIDs)
	if err != nil {
		return nil, err
	}

	summaries := []models.ProfileSummary{}
	for i := range candidates {
		summaries = append(summaries, summarize(&candidates[i]))
	}
	return summaries, nil
}

func summarize(user *models.User) models.ProfileSummary {
	return models.ProfileSummary{
		UserID:          user.UserID,
		Name:            user.Name,
		DOB:             user.DOB,
		Age:             utils.AgeFromDOB(user.DOB),
		City:            user.City,
		OneWord:         user.OneWord,
		Bio:             user.Bio,
		DatingIntention: user.DatingIntention,
		UserPhotos:      user.UserPhotos,
	}
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func removeID(ids []string, id string) []string {
	filtered := ids[:0]
	for _, existing := range ids {
		if existing != id {
			filtered = append(filtered, existing)
		}
	}
	return filtered
}

func removePendingFrom(likes []models.ReceivedLike, fromUserID string) []models.ReceivedLike {
	filtered := likes[:0]
	for _, like := range likes {
		if like.FromUserID != fromUserID {
			filtered = append(filtered, like)
		}
	}
	return filtered
}
