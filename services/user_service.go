package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"heartlink_server/models"
	"heartlink_server/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, login and profile access.
type UserService struct {
	Directory UserDirectory
}

// Register creates a new user record with empty relationship sets, hashes
// the password and returns a token for automatic login. Email and phone
// number must both be unused.
func (us *UserService) Register(ctx context.Context, user *models.User, password string) (string, error) {
	if user.Name == "" || user.Email == "" || password == "" || user.PhoneNumber == "" {
		return "", fmt.Errorf("%w: name, email, phone number and password are required", ErrInvalidArgument)
	}

	if _, err := us.Directory.FindByEmail(ctx, user.Email); err == nil {
		return "", fmt.Errorf("%w: email already registered", ErrAlreadyExists)
	} else if !errors.Is(err, ErrNotFound) {
		return "", err
	}
	if _, err := us.Directory.FindByPhone(ctx, user.PhoneNumber); err == nil {
		return "", fmt.Errorf("%w: phone number already registered", ErrAlreadyExists)
	} else if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user.UserID = uuid.NewString()
	user.PasswordHash = string(hashedPassword)
	user.CreatedAt = now
	user.UpdatedAt = now
	// Relationship sets start empty, never nil.
	user.LikedProfiles = []string{}
	user.ReceivedLikes = []models.ReceivedLike{}
	user.Matches = []string{}
	user.RejectedProfiles = []string{}

	if err := us.Directory.Save(ctx, user); err != nil {
		return "", err
	}

	return utils.GenerateToken(user.UserID)
}

// Login verifies the credentials and returns the user with a fresh token.
// Unknown email and wrong password are reported identically.
func (us *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrInvalidArgument)
	}

	user, err := us.Directory.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.UserID)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

// ValidateToken parses the token and resolves it to the user it names.
func (us *UserService) ValidateToken(ctx context.Context, tokenString string) (*models.User, error) {
	userID, err := utils.ParseToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return us.GetProfile(ctx, userID)
}

// GetProfile fetches a user record with the password hash stripped.
func (us *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidArgument)
	}
	user, err := us.Directory.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile applies the non-empty display fields of updates onto the
// stored record. Identity and relationship state cannot be edited here.
func (us *UserService) UpdateProfile(ctx context.Context, userID string, updates *models.User) (*models.User, error) {
	user, err := us.Directory.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfileUpdates(user, updates)
	user.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := us.Directory.Save(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func applyProfileUpdates(user, updates *models.User) {
	if updates.Name != "" {
		user.Name = updates.Name
	}
	if updates.DOB != "" {
		user.DOB = updates.DOB
	}
	if updates.City != "" {
		user.City = updates.City
	}
	if updates.Area != "" {
		user.Area = updates.Area
	}
	if updates.Gender != "" {
		user.Gender = updates.Gender
	}
	if updates.DatingIntention != "" {
		user.DatingIntention = updates.DatingIntention
	}
	if updates.DatingPreferences != "" {
		user.DatingPreferences = updates.DatingPreferences
	}
	if updates.Religion != "" {
		user.Religion = updates.Religion
	}
	if updates.Hometown != "" {
		user.Hometown = updates.Hometown
	}
	if updates.FoodPreference != "" {
		user.FoodPreference = updates.FoodPreference
	}
	if len(updates.KnownLanguages) > 0 {
		user.KnownLanguages = updates.KnownLanguages
	}
	if updates.MotherTongue != "" {
		user.MotherTongue = updates.MotherTongue
	}
	if updates.ProfileImage != "" {
		user.ProfileImage = updates.ProfileImage
	}
	if len(updates.UserPhotos) > 0 {
		user.UserPhotos = updates.UserPhotos
	}
	if len(updates.SelectedInterests) > 0 {
		user.SelectedInterests = updates.SelectedInterests
	}
	if updates.OneWord != "" {
		user.OneWord = updates.OneWord
	}
	if updates.Bio != "" {
		user.Bio = updates.Bio
	}
	if len(updates.UserPrompts) > 0 {
		user.UserPrompts = updates.UserPrompts
	}
}
