package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/config"
	"github.com/tripondo/tripondo-backend/internal/handlers"
	"github.com/tripondo/tripondo-backend/internal/middleware"
)

// Handlers bundles every HTTP handler mounted by the router
type Handlers struct {
	User             *handlers.UserHandler
	Admin            *handlers.AdminHandler
	Trip             *handlers.TripHandler
	Event            *handlers.EventHandler
	Reservation      *handlers.ReservationHandler
	EventReservation *handlers.EventReservationHandler
	Reward           *handlers.RewardHandler
	ClaimedReward    *handlers.ClaimedRewardHandler
	Survey           *handlers.SurveyHandler
	Question         *handlers.QuestionHandler
	Response         *handlers.ResponseHandler
	Community        *handlers.CommunityHandler
	Dashboard        *handlers.DashboardHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	auth := middleware.JWTAuthMiddleware(cfg)
	adminOnly := middleware.AdminOnly()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded community images are served straight from local storage.
	router.Static("/uploads", cfg.Uploads.Dir)

	user := router.Group("/user")
	{
		user.POST("/register", h.User.Register)
		user.POST("/login", h.User.Login)
		user.POST("/forgot-password", h.User.ForgotPassword)
		user.POST("/reset-password", h.User.ResetPassword)
		user.GET("/me", auth, h.User.Me)
		user.GET("/get", auth, h.User.GetAllUsers)
		user.GET("/get/:id", auth, h.User.GetUserByID)
		user.PUT("/update/:id", auth, h.User.UpdateUser)
		user.DELETE("/delete/:id", auth, adminOnly, h.User.DeleteUser)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/login", h.Admin.Login)
		admin.GET("/me", auth, h.Admin.Me)
		admin.POST("/add", auth, adminOnly, h.Admin.CreateAdmin)
		admin.GET("/get", auth, adminOnly, h.Admin.GetAllAdmins)
		admin.GET("/get/:id", auth, adminOnly, h.Admin.GetAdminByID)
		admin.PUT("/update/:id", auth, adminOnly, h.Admin.UpdateAdmin)
		admin.DELETE("/delete/:id", auth, adminOnly, h.Admin.DeleteAdmin)
	}

	trip := router.Group("/trip")
	{
		trip.POST("/add", auth, adminOnly, h.Trip.CreateTrip)
		trip.GET("/get", h.Trip.GetAllTrips)
		trip.GET("/get/:id", h.Trip.GetTripByID)
		trip.PUT("/update/:id", auth, adminOnly, h.Trip.UpdateTrip)
		trip.PATCH("/:id/toggle-status", auth, adminOnly, h.Trip.ToggleTripStatus)
		trip.DELETE("/delete/:id", auth, adminOnly, h.Trip.DeleteTrip)
	}

	events := router.Group("/events")
	{
		events.POST("/add", auth, adminOnly, h.Event.CreateEvent)
		events.GET("/get", h.Event.GetAllEvents)
		events.GET("/get/:id", h.Event.GetEventByID)
		events.PUT("/update/:id", auth, adminOnly, h.Event.UpdateEvent)
		events.PATCH("/:id/toggle-status", auth, adminOnly, h.Event.ToggleEventStatus)
		events.DELETE("/delete/:id", auth, adminOnly, h.Event.DeleteEvent)
	}

	reservation := router.Group("/reservation", auth)
	{
		reservation.POST("/add", h.Reservation.CreateReservation)
		reservation.GET("/get", h.Reservation.GetAllReservations)
		reservation.GET("/get/:id", h.Reservation.GetReservationByID)
		reservation.GET("/user/:userId", h.Reservation.GetReservationsByUser)
		reservation.GET("/trip/:tripId", h.Reservation.GetReservationsByTrip)
		reservation.GET("/event/:eventId", h.Reservation.GetReservationsByEvent)
		reservation.GET("/filter-status/:status", h.Reservation.GetReservationsByStatus)
		reservation.GET("/date-range", h.Reservation.GetReservationsByDateRange)
		reservation.PUT("/update/:id", h.Reservation.UpdateReservation)
		reservation.PUT("/status/:id", h.Reservation.UpdateReservationStatus)
		reservation.DELETE("/delete/:id", h.Reservation.DeleteReservation)
	}

	eventReservations := router.Group("/event-reservations", auth)
	{
		eventReservations.POST("/add", h.EventReservation.CreateEventReservation)
		eventReservations.GET("/get", h.EventReservation.GetAllEventReservations)
		eventReservations.GET("/get/:id", h.EventReservation.GetEventReservationByID)
		eventReservations.GET("/user/:userId", h.EventReservation.GetEventReservationsByUser)
		eventReservations.GET("/event/:eventId", h.EventReservation.GetEventReservationsByEvent)
		eventReservations.GET("/filter-status/:status", h.EventReservation.GetEventReservationsByStatus)
		eventReservations.PUT("/update/:id", h.EventReservation.UpdateEventReservation)
		eventReservations.PUT("/status/:id", h.EventReservation.UpdateEventReservationStatus)
		eventReservations.DELETE("/delete/:id", h.EventReservation.DeleteEventReservation)
	}

	reward := router.Group("/reward")
	{
		reward.POST("/add", auth, adminOnly, h.Reward.CreateReward)
		reward.GET("/get", h.Reward.GetAllRewards)
		reward.GET("/get/:id", h.Reward.GetRewardByID)
		reward.PUT("/update/:id", auth, adminOnly, h.Reward.UpdateReward)
		reward.PATCH("/:id/deactivate-reward", auth, adminOnly, h.Reward.DeactivateReward)
		reward.DELETE("/delete/:id", auth, adminOnly, h.Reward.DeleteReward)
	}

	claimedReward := router.Group("/claimed-reward", auth)
	{
		claimedReward.POST("/add", h.ClaimedReward.ClaimReward)
		claimedReward.GET("/get", h.ClaimedReward.GetAllClaimedRewards)
		claimedReward.GET("/get/:id", h.ClaimedReward.GetClaimedRewardByID)
		claimedReward.GET("/user/:userId", h.ClaimedReward.GetClaimedRewardsByUser)
	}

	survey := router.Group("/survey")
	{
		survey.POST("/add", auth, adminOnly, h.Survey.CreateSurvey)
		survey.GET("/get", h.Survey.GetAllSurveys)
		survey.GET("/get/:id", h.Survey.GetSurveyByID)
		survey.PUT("/update/:id", auth, adminOnly, h.Survey.UpdateSurvey)
		survey.PATCH("/publish/:id", auth, adminOnly, h.Survey.PublishSurvey)
		survey.PATCH("/complete/:id", auth, adminOnly, h.Survey.CompleteSurvey)
		survey.DELETE("/delete/:id", auth, adminOnly, h.Survey.DeleteSurvey)
	}

	question := router.Group("/question")
	{
		question.POST("/add", auth, adminOnly, h.Question.AddQuestion)
		question.GET("/get/:id", h.Question.GetQuestionByID)
		question.GET("/survey/:surveyId", h.Question.GetQuestionsBySurvey)
		question.PUT("/update/:id", auth, adminOnly, h.Question.UpdateQuestion)
		question.PATCH("/reorder/:surveyId", auth, adminOnly, h.Question.ReorderQuestions)
		question.DELETE("/delete/:id", auth, adminOnly, h.Question.DeleteQuestion)
	}

	response := router.Group("/response", auth)
	{
		response.POST("/add", h.Response.CreateResponse)
		response.GET("/get", h.Response.GetAllResponses)
		response.GET("/get/:id", h.Response.GetResponseByID)
		response.GET("/get-by-question/:questionId", h.Response.GetResponsesByQuestion)
		response.GET("/get-by-user/:userId", h.Response.GetResponsesByUser)
		response.GET("/get-by-survey/:surveyId", h.Response.GetResponsesBySurvey)
		response.PUT("/update/:id", h.Response.UpdateResponse)
		response.DELETE("/delete/:id", h.Response.DeleteResponse)
	}

	community := router.Group("/community")
	{
		community.GET("/get", h.Community.GetAllPosts)
		community.GET("/get/:postId", h.Community.GetPostByID)
		community.GET("/:postId/comments", h.Community.GetComments)
		community.POST("/add", auth, h.Community.CreatePost)
		community.PATCH("/:postId/like", auth, h.Community.ToggleLike)
		community.POST("/:postId/comment", auth, h.Community.AddComment)
		community.DELETE("/:postId", auth, h.Community.DeletePost)
	}

	dashboard := router.Group("/dashboard", auth, adminOnly)
	{
		dashboard.GET("/user-stats", h.Dashboard.GetUserStats)
		dashboard.GET("/trip-stats", h.Dashboard.GetTripStats)
		dashboard.GET("/survey-stats", h.Dashboard.GetSurveyStats)
		dashboard.GET("/reward-stats", h.Dashboard.GetRewardStats)
		dashboard.GET("/community-stats", h.Dashboard.GetCommunityStats)
		dashboard.GET("/monthly-revenue", h.Dashboard.GetDailyRevenue)
	}

	return router
}
