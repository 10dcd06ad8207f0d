package main

import (
	"context"
	"log"

	"github.com/polarstudio/showroom-booking-backend/config"
	"github.com/polarstudio/showroom-booking-backend/internal/auth"
	"github.com/polarstudio/showroom-booking-backend/internal/booking/repository"
	"github.com/polarstudio/showroom-booking-backend/internal/booking/service"
	"github.com/polarstudio/showroom-booking-backend/internal/bootstrap"
	"github.com/polarstudio/showroom-booking-backend/internal/cache"
	"github.com/polarstudio/showroom-booking-backend/internal/calendar"
	"github.com/polarstudio/showroom-booking-backend/internal/mailer"
	"github.com/polarstudio/showroom-booking-backend/internal/reminder"
)

const serviceName = "showroom-booking-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	clients, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	defer clients.Firestore.Close()

	calendarClient, err := calendar.NewClient(ctx, &cfg.Calendar)
	if err != nil {
		log.Fatalf("calendar: %v", err)
	}

	mailClient := mailer.NewClient(cfg.SMTP)
	dispatcher := mailer.NewDispatcher(mailClient, cfg.SMTP.AdminEmails, cfg.App.FrontendURL)
	defer dispatcher.Close()

	bookingRepo := repository.NewBookingRepo(clients.Firestore, cfg.Firebase.ProjectID)
	profileRepo := repository.NewProfileRepo(clients.Firestore, cfg.Firebase.ProjectID)
	identity := auth.NewIdentity(clients.Auth)

	var slots service.SlotsCache
	if cfg.Redis.Enabled() {
		slotsCache := cache.NewSlotsCache(cfg.Redis)
		defer slotsCache.Close()
		slots = slotsCache
		log.Printf("booked-slots cache enabled (redis %s)", cfg.Redis.Addr)
	}

	svc := service.NewBookingService(bookingRepo, profileRepo, identity, calendarClient, dispatcher, slots)

	if cfg.Reminder.Enabled {
		sched := reminder.NewScheduler(cfg.Reminder.Spec, bookingRepo, identity, dispatcher)
		if err := sched.Start(); err != nil {
			log.Printf("reminder scheduler disabled: %v", err)
		}
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		AuthClient:  clients.Auth,
		Profiles:    profileRepo,
		Service:     svc,
		RateLimit:   cfg.RateLimit,
	})

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
