package routes

import (
	"heartlink_server/controllers"
	"heartlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for the matching workflow under /api/match.
// The acting user id always comes from the verified token.
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/match").Subrouter()

	matchRouter.HandleFunc("/like", controllers.Authenticate(controller.HandleLike)).Methods("POST")
	matchRouter.HandleFunc("/reject", controllers.Authenticate(controller.HandleReject)).Methods("POST")
	matchRouter.HandleFunc("/unmatch", controllers.Authenticate(controller.HandleUnmatch)).Methods("POST")
	matchRouter.HandleFunc("/pending-likes", controllers.Authenticate(controller.HandlePendingLikes)).Methods("GET")
	matchRouter.HandleFunc("/matches", controllers.Authenticate(controller.HandleMatches)).Methods("GET")
	matchRouter.HandleFunc("/mutual-matches", controllers.Authenticate(controller.HandleMutualMatches)).Methods("GET")
	matchRouter.HandleFunc("/discover", controllers.Authenticate(controller.HandleDiscover)).Methods("GET")
}
