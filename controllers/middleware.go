package controllers

import (
	"context"
	"net/http"
	"strings"

	"heartlink_server/utils"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// Authenticate verifies the bearer token (or the login cookie) and injects
// the acting user's id into the request context. Handlers behind it trust
// that id; no further authentication happens downstream.
func Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := ""
		if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := r.Cookie("token"); err == nil {
			tokenString = cookie.Value
		}

		if tokenString == "" {
			writeError(w, http.StatusUnauthorized, "Not authorized, token missing")
			return
		}

		userID, err := utils.ParseToken(tokenString)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Not authorized, token invalid")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userIDContextKey, userID)))
	}
}

func userIDFromContext(r *http.Request) string {
	userID, _ := r.Context().Value(userIDContextKey).(string)
	return userID
}
