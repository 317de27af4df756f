package routes

import (
	"net/http"

	"linkhive/auth"
	"linkhive/middleware"
	"linkhive/profile"
	"linkhive/ratelim"
	"linkhive/social"
	"linkhive/uploads"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/postpic/*filepath", http.Dir("static/postpic"))
	router.ServeFiles("/static/userpic/*filepath", http.Dir("static/userpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
}

func AddSocialRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/social", middleware.OptionalAuth(social.GetFeed))
	router.POST("/api/social/:userId", rl.Limit(middleware.Authenticate(social.CreatePost)))

	router.PUT("/api/social/post/:userId/:postId/like", rl.Limit(middleware.Authenticate(social.LikePost)))
	router.PUT("/api/social/post/:userId/:postId/comment", rl.Limit(middleware.Authenticate(social.CommentPost)))
	router.PUT("/api/social/post/:userId/:postId/edit", rl.Limit(middleware.Authenticate(social.EditPost)))

	router.GET("/api/social/connections/:userId", middleware.Authenticate(profile.GetConnections))
	router.PUT("/api/social/connections/:userId/addConnection", rl.Limit(middleware.Authenticate(profile.AddConnection)))
	router.PUT("/api/social/connections/:userId/removeConnection", rl.Limit(middleware.Authenticate(profile.RemoveConnection)))

	// the explore tab issues both GET and PUT for the same view
	router.GET("/api/social/explore", social.Explore)
	router.GET("/api/social/explore/:postTag", social.Explore)
	router.PUT("/api/social/explore", social.Explore)
	router.PUT("/api/social/explore/:postTag", social.Explore)
}

func AddProfileRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/profile/:userId", middleware.OptionalAuth(profile.GetProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.EditProfile))
	router.POST("/api/profile/picture", rl.Limit(middleware.Authenticate(profile.UploadProfilePicture)))
}

func AddMediaRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/media/upload", rl.Limit(middleware.Authenticate(uploads.UploadPostImage)))
}
