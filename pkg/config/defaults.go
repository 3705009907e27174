package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "motovasiya"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8000"

	DefaultAuthSecret   = "motovasiya-dev-secret"
	DefaultAuthTokenTTL = 12 * time.Hour

	// The schedule template: the fixed set of time-of-day slots offered each
	// day. Slots are HH:MM, ordered.
	DefaultTimeSlots = "10:00,11:00,12:00,14:00,15:00,16:00,17:00"

	// The lookahead window: how many calendar days, starting today, are
	// offered for booking.
	DefaultLookaheadDays = 30

	DefaultAllowedOrigins = "*"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultBookingCreatedTopic = "booking.created"

	DefaultLogLevel = "info"
)
