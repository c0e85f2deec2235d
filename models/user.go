package models

// ReceivedLike is a pending one-sided like. It stays on the recipient's
// record until it is reciprocated (and resolved into a match) or ignored.
type ReceivedLike struct {
	FromUserID string `dynamodbav:"fromUserId" json:"fromUserId"`
	Comment    string `dynamodbav:"comment,omitempty" json:"comment,omitempty"`
}

// User defines the structure for user records
type User struct {
	UserID            string            `dynamodbav:"userId" json:"userId"`                                         // ✅ Partition Key
	Email             string            `dynamodbav:"emailId" json:"emailId"`                                       // Indexed via EmailIndex GSI
	PhoneNumber       string            `dynamodbav:"phoneNumber" json:"phoneNumber"`                               // Indexed via PhoneIndex GSI
	PasswordHash      string            `dynamodbav:"passwordHash,omitempty" json:"-"`                              // bcrypt hash, never serialized
	Name              string            `dynamodbav:"name,omitempty" json:"name,omitempty"`                         // Full name of the user
	DOB               string            `dynamodbav:"dob,omitempty" json:"dob,omitempty"`                           // Date of birth (YYYY-MM-DD)
	City              string            `dynamodbav:"city,omitempty" json:"city,omitempty"`                         // City of residence
	Area              string            `dynamodbav:"area,omitempty" json:"area,omitempty"`                         // Area within the city
	Gender            string            `dynamodbav:"gender,omitempty" json:"gender,omitempty"`                     // Gender
	DatingIntention   string            `dynamodbav:"datingIntention,omitempty" json:"datingIntention,omitempty"`   // What the user is looking for
	DatingPreferences string            `dynamodbav:"datingPreferences,omitempty" json:"datingPreferences,omitempty"`
	Religion          string            `dynamodbav:"religion,omitempty" json:"religion,omitempty"`
	Hometown          string            `dynamodbav:"hometown,omitempty" json:"hometown,omitempty"`
	FoodPreference    string            `dynamodbav:"foodPreference,omitempty" json:"foodPreference,omitempty"`
	KnownLanguages    []string          `dynamodbav:"knownLanguages,omitempty" json:"knownLanguages,omitempty"`
	MotherTongue      string            `dynamodbav:"motherTongue,omitempty" json:"motherTongue,omitempty"`
	ProfileImage      string            `dynamodbav:"profileImage,omitempty" json:"profileImage,omitempty"`
	UserPhotos        []string          `dynamodbav:"userPhotos,omitempty" json:"userPhotos,omitempty"`             // User photos
	SelectedInterests []string          `dynamodbav:"selectedInterests,omitempty" json:"selectedInterests,omitempty"`
	OneWord           string            `dynamodbav:"oneWord,omitempty" json:"oneWord,omitempty"`
	Bio               string            `dynamodbav:"bio,omitempty" json:"bio,omitempty"`                           // Short biography
	UserPrompts       map[string]string `dynamodbav:"userPrompts,omitempty" json:"userPrompts,omitempty"`           // Prompt responses

	// Relationship state. These four are always non-nil: NewUser initializes
	// them empty so the match engine never has to guard against absence.
	LikedProfiles    []string       `dynamodbav:"likedProfiles" json:"likedProfiles"`
	ReceivedLikes    []ReceivedLike `dynamodbav:"receivedLikes" json:"receivedLikes"`
	Matches          []string       `dynamodbav:"matches" json:"matches"`
	RejectedProfiles []string       `dynamodbav:"rejectedProfiles" json:"rejectedProfiles"`

	CreatedAt string `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt string `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// NewUser returns a User with all relationship sets initialized empty.
func NewUser() *User {
	return &User{
		LikedProfiles:    []string{},
		ReceivedLikes:    []ReceivedLike{},
		Matches:          []string{},
		RejectedProfiles: []string{},
	}
}

// Clone returns a deep copy of the user record.
func (u *User) Clone() *User {
	clone := *u
	clone.KnownLanguages = append([]string(nil), u.KnownLanguages...)
	clone.UserPhotos = append([]string(nil), u.UserPhotos...)
	clone.SelectedInterests = append([]string(nil), u.SelectedInterests...)
	clone.LikedProfiles = append([]string{}, u.LikedProfiles...)
	clone.ReceivedLikes = append([]ReceivedLike{}, u.ReceivedLikes...)
	clone.Matches = append([]string{}, u.Matches...)
	clone.RejectedProfiles = append([]string{}, u.RejectedProfiles...)
	if u.UserPrompts != nil {
		clone.UserPrompts = make(map[string]string, len(u.UserPrompts))
		for k, v := range u.UserPrompts {
			clone.UserPrompts[k] = v
		}
	}
	return &clone
}

// HasLiked reports whether the user has already liked the given profile.
func (u *User) HasLiked(userID string) bool {
	return containsID(u.LikedProfiles, userID)
}

// HasMatch reports whether the given profile is in the user's matches.
func (u *User) HasMatch(userID string) bool {
	return containsID(u.Matches, userID)
}

// HasRejected reports whether the user has passed on the given profile.
func (u *User) HasRejected(userID string) bool {
	return containsID(u.RejectedProfiles, userID)
}

// HasPendingLikeFrom reports whether a pending like from the given user is
// already queued on this record.
func (u *User) HasPendingLikeFrom(userID string) bool {
	for _, like := range u.ReceivedLikes {
		if like.FromUserID == userID {
			return true
		}
	}
	return false
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
