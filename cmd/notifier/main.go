package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"motovasiya/pkg/config"
	"motovasiya/pkg/kafka"
	kafka_config "motovasiya/pkg/kafka/config"
	"motovasiya/pkg/model"
)

const (
	ServiceName     = "notifier"
	consumerGroupID = "motovasiya-notifier"
)

// The notifier consumes booking.created events and dispatches the instructor
// notification. Delivery here is a structured log line standing in for the
// mail gateway.
func main() {
	cfg := config.Load(ServiceName)

	handler := func(ctx context.Context, msg kafka.Message) error {
		var booking model.Booking
		if err := msg.DecodeValue(&booking); err != nil {
			return kafka.NewPermanentError("undecodable booking payload", err)
		}

		cfg.Log.Info(fmt.Sprintf("[EMAIL SENT] To Instructor %s: new booking request from %s %s for %s at %s",
			booking.InstructorID,
			booking.Customer.Name,
			booking.Customer.Surname,
			booking.Date,
			booking.TimeSlot,
		),
			"event_id", msg.GetEventID(),
			"booking_id", booking.ID,
		)
		return nil
	}

	consumer, err := kafka.NewConsumer(
		kafka_config.Load(),
		cfg.BookingCreatedTopic,
		consumerGroupID,
		cfg.BookingCreatedTopic+".dlq",
		handler,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize consumer", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Notifier started", "topic", cfg.BookingCreatedTopic, "group", consumerGroupID)

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	cfg.Log.Info("Notifier stopped")
}
