package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"heartlink_server/models"
	"heartlink_server/services"
)

// UserController handles HTTP requests for registration, login and profiles
type UserController struct {
	UserService *services.UserService
}

// NewUserController creates a new UserController instance
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{UserService: userService}
}

// HandleRegister creates a new user account and logs it in
func (uc *UserController) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var request struct {
		models.User
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("Invalid request payload:", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := uc.UserService.Register(r.Context(), &request.User, request.Password)
	if err != nil {
		log.Println("Error creating user:", err)
		writeServiceError(w, err)
		return
	}

	request.User.PasswordHash = ""
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"token":   token,
		"user":    request.User,
	})
}

// HandleLogin verifies credentials, sets the token cookie and returns the token
func (uc *UserController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, token, err := uc.UserService.Login(r.Context(), strings.TrimSpace(request.Email), request.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// HandleLogout clears the token cookie
func (uc *UserController) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

// HandleProfile returns the authenticated user's own profile
func (uc *UserController) HandleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := uc.UserService.GetProfile(r.Context(), userIDFromContext(r))
	if err != nil {
		log.Println("Error fetching profile:", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

// HandleValidateToken verifies the bearer token and returns its user
func (uc *UserController) HandleValidateToken(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		writeError(w, http.StatusUnauthorized, "Not authorized, token missing")
		return
	}

	user, err := uc.UserService.ValidateToken(r.Context(), strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

// HandleGetOtherProfile returns another user's profile by id
func (uc *UserController) HandleGetOtherProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	user, err := uc.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

// HandleUpdateProfile applies partial display-field edits to the
// authenticated user's record
func (uc *UserController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var updates models.User
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := uc.UserService.UpdateProfile(r.Context(), userIDFromContext(r), &updates)
	if err != nil {
		log.Println("Error updating profile:", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}
