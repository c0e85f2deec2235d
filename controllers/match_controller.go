package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"heartlink_server/services"
)

// MatchController handles HTTP requests for the matching workflow
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// HandleLike records a like from the authenticated user on a target profile
func (mc *MatchController) HandleLike(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TargetUserID string `json:"targetUserId"`
		Comment      string `json:"comment"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("Invalid request payload:", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := mc.MatchService.Like(r.Context(), userIDFromContext(r), request.TargetUserID, request.Comment)
	if err != nil {
		log.Println("Error processing like:", err)
		writeServiceError(w, err)
		return
	}

	message := "Profile liked successfully"
	if result.IsMatch {
		message = "It's a match!"
	}
	if result.AlreadyLiked {
		message = "User already liked this profile"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"message":      message,
		"alreadyLiked": result.AlreadyLiked,
		"isMatch":      result.IsMatch,
	})
}

// HandleReject records a pass on a target profile
func (mc *MatchController) HandleReject(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TargetUserID string `json:"targetUserId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := mc.MatchService.Reject(r.Context(), userIDFromContext(r), request.TargetUserID); err != nil {
		log.Println("Error processing reject:", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Profile rejected successfully",
	})
}

// HandleUnmatch dissolves a match with another user
func (mc *MatchController) HandleUnmatch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchUserID string `json:"matchUserId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := mc.MatchService.Unmatch(r.Context(), userIDFromContext(r), request.MatchUserID); err != nil {
		log.Println("Error processing unmatch:", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Match removed successfully",
	})
}

// HandlePendingLikes returns the likes waiting on the authenticated user
func (mc *MatchController) HandlePendingLikes(w http.ResponseWriter, r *http.Request) {
	pendingLikes, err := mc.MatchService.GetPendingLikes(r.Context(), userIDFromContext(r))
	if err != nil {
		log.Println("Error fetching pending likes:", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"receivedLikes": pendingLikes,
	})
}

// HandleMatches returns the authenticated user's matches
func (mc *MatchController) HandleMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := mc.MatchService.GetMatches(r.Context(), userIDFromContext(r))
	if err != nil {
		log.Println("Error fetching matches:", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"matches": matches,
	})
}

// HandleMutualMatches returns only matches confirmed on both records
func (mc *MatchController) HandleMutualMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := mc.MatchService.GetMutualMatches(r.Context(), userIDFromContext(r))
	if err != nil {
		log.Println("Error fetching mutual matches:", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"matches": matches,
	})
}

// HandleDiscover returns profiles eligible to be shown to the user
func (mc *MatchController) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	candidates, err := mc.MatchService.GetDiscoveryCandidates(r.Context(), userIDFromContext(r))
	if err != nil {
		log.Println("Error fetching discovery candidates:", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"potentialMatches": candidates,
	})
}
