package main

import (
	"context"

	authhandler "motovasiya/internal/auth/handler"
	authservice "motovasiya/internal/auth/service"
	bookingshandler "motovasiya/internal/bookings/handler"
	bookingsrepository "motovasiya/internal/bookings/repository"
	bookingsservice "motovasiya/internal/bookings/service"
	bookingsvalidator "motovasiya/internal/bookings/validator"
	instructorshandler "motovasiya/internal/instructors/handler"
	instructorsrepository "motovasiya/internal/instructors/repository"
	instructorsservice "motovasiya/internal/instructors/service"
	instructorsvalidator "motovasiya/internal/instructors/validator"
	motorcycleshandler "motovasiya/internal/motorcycles/handler"
	motorcyclesrepository "motovasiya/internal/motorcycles/repository"
	motorcyclesservice "motovasiya/internal/motorcycles/service"
	motorcyclesvalidator "motovasiya/internal/motorcycles/validator"
	"motovasiya/pkg/app"
	"motovasiya/pkg/config"
	"motovasiya/pkg/kafka"
	kafka_config "motovasiya/pkg/kafka/config"
)

const ServiceName = "server"

func main() {
	cfg := config.Load(ServiceName)
	cfg.ConnectMongo()

	cfg.Log.Info("Starting booking server")

	instructorRepo := instructorsrepository.NewMongoInstructorRepository(cfg)
	instructorService := instructorsservice.NewInstructorService(
		instructorRepo,
		instructorsvalidator.NewInstructorValidator(cfg.Log),
		cfg,
	)

	motorcycleRepo := motorcyclesrepository.NewMongoMotorcycleRepository(cfg)
	motorcycleService := motorcyclesservice.NewMotorcycleService(
		motorcycleRepo,
		motorcyclesvalidator.NewMotorcycleValidator(cfg.Log),
		cfg,
	)

	bookingRepo := bookingsrepository.NewMongoBookingRepository(cfg)
	bookingService := bookingsservice.NewBookingService(
		bookingRepo,
		bookingsvalidator.NewBookingValidator(cfg.Log, cfg.TimeSlots),
		newBookingPublisher(cfg),
		cfg,
	)

	authService := authservice.NewAuthService(instructorService, cfg)

	ensureIndexes(cfg, instructorRepo, bookingRepo)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		instructorshandler.NewInstructorHandler(instructorService, cfg),
		motorcycleshandler.NewMotorcycleHandler(motorcycleService, cfg),
		bookingshandler.NewBookingHandler(bookingService, cfg),
		authhandler.NewAuthHandler(authService, cfg),
	)
	serverApp.Run()
}

func newBookingPublisher(cfg *config.Config) bookingsservice.EventPublisher {
	producer, err := kafka.NewProducer(kafka_config.Load(), cfg.BookingCreatedTopic, cfg.BookingCreatedTopic+".dlq")
	if err != nil {
		// Notifications are best-effort; the server still takes bookings.
		cfg.Log.Error("Failed to initialize booking event producer", "error", err)
		return nil
	}
	return producer
}

func ensureIndexes(cfg *config.Config, instructorRepo instructorsrepository.InstructorRepository, bookingRepo bookingsrepository.BookingRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	if err := instructorRepo.EnsureIndexes(ctx); err != nil {
		cfg.Log.Fatal("Failed to ensure instructor indexes", "error", err)
	}
	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		cfg.Log.Fatal("Failed to ensure booking indexes", "error", err)
	}
	cfg.Log.Info("Database indexes ensured")
}
