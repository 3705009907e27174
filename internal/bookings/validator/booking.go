package validator

import (
	"errors"
	"fmt"
	"strings"

	"motovasiya/pkg/logger"
	"motovasiya/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// BookingValidator checks bookings against the struct tags plus the schedule
// template: the "timeslot" tag admits only the configured daily slots.
type BookingValidator struct {
	validate  *validator.Validate
	timeSlots []string
	logger    *logger.Logger
}

func NewBookingValidator(log *logger.Logger, timeSlots []string) *BookingValidator {
	v := validator.New()

	bv := &BookingValidator{
		validate:  v,
		timeSlots: timeSlots,
		logger:    log,
	}

	if err := v.RegisterValidation("timeslot", bv.validateTimeSlot); err != nil {
		log.Fatal("Failed to register 'timeslot' validator", "error", err)
	}

	log.Info("Booking validator initialized successfully", "time_slots", timeSlots)
	return bv
}

func (bv *BookingValidator) validateTimeSlot(fl validator.FieldLevel) bool {
	slot := strings.TrimSpace(fl.Field().String())
	for _, t := range bv.timeSlots {
		if t == slot {
			return true
		}
	}
	return false
}

func (bv *BookingValidator) Validate(b *model.Booking) error {
	return bv.translate(bv.validate.Struct(b))
}

func (bv *BookingValidator) ValidateRequest(req *model.BookingRequest) error {
	return bv.translate(bv.validate.Struct(req))
}

func (bv *BookingValidator) ValidateUpdate(updates *model.BookingUpdate) error {
	return bv.translate(bv.validate.Struct(updates))
}

func (bv *BookingValidator) translate(err error) error {
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var validationErrors ValidationErrors
	for _, fieldErr := range validationErrs {
		message := fieldErr.Error()

		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fieldErr.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", fieldErr.Field(), fieldErr.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param())
		case "e164":
			message = fmt.Sprintf("%s must be an international phone number starting with +", fieldErr.Field())
		case "datetime":
			message = fmt.Sprintf("%s must be a calendar date in YYYY-MM-DD format", fieldErr.Field())
		case "timeslot":
			message = fmt.Sprintf("%s must be one of the scheduled slots: %s",
				fieldErr.Field(), strings.Join(bv.timeSlots, ", "))
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   fieldErr.Field(),
			Message: message,
		})
	}

	return validationErrors
}
