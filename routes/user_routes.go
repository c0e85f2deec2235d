package routes

import (
	"heartlink_server/controllers"
	"heartlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for account and profile operations under /api/user
func RegisterUserRoutes(r *mux.Router, userService *services.UserService) {
	controller := controllers.NewUserController(userService)

	userRouter := r.PathPrefix("/api/user").Subrouter()

	userRouter.HandleFunc("/register", controller.HandleRegister).Methods("POST")
	userRouter.HandleFunc("/login", controller.HandleLogin).Methods("POST")
	userRouter.HandleFunc("/logout", controller.HandleLogout).Methods("POST")
	userRouter.HandleFunc("/validate-token", controller.HandleValidateToken).Methods("GET")
	userRouter.HandleFunc("/profile", controllers.Authenticate(controller.HandleProfile)).Methods("GET")
	userRouter.HandleFunc("/profile", controllers.Authenticate(controller.HandleUpdateProfile)).Methods("PATCH")
	userRouter.HandleFunc("/other-profile", controllers.Authenticate(controller.HandleGetOtherProfile)).Methods("GET")
}
