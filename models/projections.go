package models

// ProfileSummary is the lightweight projection returned by the match
// queries (matches, mutual matches, discovery).
type ProfileSummary struct {
	UserID          string   `json:"userId"`
	Name            string   `json:"name,omitempty"`
	DOB             string   `json:"dob,omitempty"`
	Age             int      `json:"age,omitempty"`
	City            string   `json:"city,omitempty"`
	OneWord         string   `json:"oneWord,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	DatingIntention string   `json:"datingIntention,omitempty"`
	UserPhotos      []string `json:"userPhotos,omitempty"`
}

// PendingLike is a received like enriched with the sender's display details.
type PendingLike struct {
	FromUserID string   `json:"fromUserId"`
	Name       string   `json:"name,omitempty"`
	UserPhotos []string `json:"userPhotos,omitempty"`
	Comment    string   `json:"comment,omitempty"`
}

// DiscoveryFilter restricts discovery candidates by equality on profile
// fields. Empty values mean "no restriction".
type DiscoveryFilter struct {
	Gender          string
	DatingIntention string
}
