package flow

import (
	"context"
	"sync"

	"motovasiya/pkg/client"
	"motovasiya/pkg/logger"
	"motovasiya/pkg/model"
)

// Submitter sends a completed draft to the booking collaborator. At most one
// submission per draft runs at a time; a second concurrent attempt is
// rejected instead of queued. There is no automatic retry.
type Submitter struct {
	api client.API
	log *logger.Logger

	mu       sync.Mutex
	inFlight map[*Draft]struct{}
}

func NewSubmitter(api client.API, log *logger.Logger) *Submitter {
	return &Submitter{
		api:      api,
		log:      log,
		inFlight: make(map[*Draft]struct{}),
	}
}

// Submit sends the draft's booking request. On success the draft transitions
// to Submitted; on failure it stays at DetailsValid so the user can resubmit
// or go back. A Reset during flight discards the outcome.
func (s *Submitter) Submit(ctx context.Context, draft *Draft) (model.Booking, error) {
	s.mu.Lock()
	if _, busy := s.inFlight[draft]; busy {
		s.mu.Unlock()
		return model.Booking{}, ErrSubmitInFlight
	}

	req, err := draft.Request()
	if err != nil {
		s.mu.Unlock()
		return model.Booking{}, err
	}
	generation := draft.generation
	s.inFlight[draft] = struct{}{}
	s.mu.Unlock()

	booking, submitErr := s.api.CreateBooking(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, draft)

	if draft.generation != generation {
		// The draft was discarded while the request was on the wire. The
		// backend may have stored the booking, but this draft is gone.
		s.log.Warn("submission outcome discarded after draft reset",
			"instructorId", req.InstructorID, "date", req.Date, "timeSlot", req.TimeSlot)
		return model.Booking{}, ErrDraftReset
	}

	if submitErr != nil {
		return model.Booking{}, submitErr
	}

	draft.step = StepSubmitted
	return booking, nil
}
