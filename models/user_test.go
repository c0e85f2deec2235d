package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserInitializesRelationshipSets(t *testing.T) {
	user := NewUser()

	require.NotNil(t, user.LikedProfiles)
	require.NotNil(t, user.ReceivedLikes)
	require.NotNil(t, user.Matches)
	require.NotNil(t, user.RejectedProfiles)
	assert.Empty(t, user.LikedProfiles)
}

func TestCloneIsIndependent(t *testing.T) {
	user := NewUser()
	user.UserID = "u1"
	user.LikedProfiles = append(user.LikedProfiles, "u2")
	user.ReceivedLikes = append(user.ReceivedLikes, ReceivedLike{FromUserID: "u3", Comment: "hi"})
	user.UserPrompts = map[string]string{"ideal sunday": "hiking"}

	clone := user.Clone()
	clone.LikedProfiles = append(clone.LikedProfiles, "u4")
	clone.ReceivedLikes[0].Comment = "changed"
	clone.UserPrompts["ideal sunday"] = "sleeping in"

	assert.Equal(t, []string{"u2"}, user.LikedProfiles)
	assert.Equal(t, "hi", user.ReceivedLikes[0].Comment)
	assert.Equal(t, "hiking", user.UserPrompts["ideal sunday"])
}

func TestMembershipHelpers(t *testing.T) {
	user := NewUser()
	user.LikedProfiles = []string{"a"}
	user.Matches = []string{"b"}
	user.RejectedProfiles = []string{"c"}
	user.ReceivedLikes = []ReceivedLike{{FromUserID: "d"}}

	assert.True(t, user.HasLiked("a"))
	assert.False(t, user.HasLiked("b"))
	assert.True(t, user.HasMatch("b"))
	assert.True(t, user.HasRejected("c"))
	assert.True(t, user.HasPendingLikeFrom("d"))
	assert.False(t, user.HasPendingLikeFrom("a"))
}
