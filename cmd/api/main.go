package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tripondo/tripondo-backend/api/routes"
	"github.com/tripondo/tripondo-backend/internal/config"
	"github.com/tripondo/tripondo-backend/internal/handlers"
	mongorepo "github.com/tripondo/tripondo-backend/internal/repositories/mongodb"
	"github.com/tripondo/tripondo-backend/internal/services"
	"github.com/tripondo/tripondo-backend/pkg/mailer"
	"github.com/tripondo/tripondo-backend/pkg/mongodb"
)

func main() {
	// A missing .env file is fine; the environment may carry everything.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database()

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	// Repositories
	userRepo := mongorepo.NewUserRepository(db)
	adminRepo := mongorepo.NewAdminRepository(db)
	tripRepo := mongorepo.NewTripRepository(db)
	eventRepo := mongorepo.NewEventRepository(db)
	rewardRepo := mongorepo.NewRewardRepository(db)
	reservationRepo := mongorepo.NewReservationRepository(db)
	eventReservationRepo := mongorepo.NewEventReservationRepository(db)
	claimedRewardRepo := mongorepo.NewClaimedRewardRepository(db)
	surveyRepo := mongorepo.NewSurveyRepository(db)
	questionRepo := mongorepo.NewQuestionRepository(db)
	responseRepo := mongorepo.NewResponseRepository(db)
	communityPostRepo := mongorepo.NewCommunityPostRepository(db)
	dashboardRepo := mongorepo.NewDashboardRepository(db)

	// Outgoing mail
	var mail mailer.Mailer
	if cfg.SMTP.Mock {
		mail = mailer.NewMockMailer()
		log.Println("Using mock mailer; outgoing mail is recorded, not sent")
	} else {
		mail = mailer.NewSMTPMailer(cfg)
	}

	// Services
	notificationService := services.NewNotificationService(mail)
	authService := services.NewAuthService(userRepo, adminRepo, mail, cfg)
	userService := services.NewUserService(userRepo)
	adminService := services.NewAdminService(adminRepo)
	tripService := services.NewTripService(tripRepo, reservationRepo)
	eventService := services.NewEventService(eventRepo, reservationRepo, eventReservationRepo)
	rewardService := services.NewRewardService(rewardRepo)
	reservationService := services.NewReservationService(reservationRepo, tripRepo, eventRepo, userRepo, notificationService)
	eventReservationService := services.NewEventReservationService(eventReservationRepo, eventRepo, userRepo, notificationService)
	claimedRewardService := services.NewClaimedRewardService(claimedRewardRepo, rewardRepo, userRepo, notificationService)
	surveyService := services.NewSurveyService(surveyRepo, questionRepo)
	responseService := services.NewResponseService(responseRepo, questionRepo, surveyRepo, userRepo)
	communityService := services.NewCommunityService(communityPostRepo, userRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)

	// Handlers
	h := &routes.Handlers{
		User:             handlers.NewUserHandler(userService, authService),
		Admin:            handlers.NewAdminHandler(adminService, authService),
		Trip:             handlers.NewTripHandler(tripService),
		Event:            handlers.NewEventHandler(eventService),
		Reservation:      handlers.NewReservationHandler(reservationService),
		EventReservation: handlers.NewEventReservationHandler(eventReservationService),
		Reward:           handlers.NewRewardHandler(rewardService),
		ClaimedReward:    handlers.NewClaimedRewardHandler(claimedRewardService),
		Survey:           handlers.NewSurveyHandler(surveyService),
		Question:         handlers.NewQuestionHandler(surveyService),
		Response:         handlers.NewResponseHandler(responseService),
		Community:        handlers.NewCommunityHandler(communityService, cfg),
		Dashboard:        handlers.NewDashboardHandler(dashboardService),
	}

	router := routes.SetupRouter(cfg, h)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
