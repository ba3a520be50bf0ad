package request

import (
	"errors"
	"time"

	"raga-booking/internal/domain/booking"
	"raga-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidStart = errors.New("start time must be in HH:MM format")
	ErrInvalidEnd   = errors.New("end time must be in HH:MM format")
)

type CreateBookingRequest struct {
	Date      string      `json:"date" binding:"required"`
	StartTime string      `json:"start_time" binding:"required"`
	EndTime   string      `json:"end_time" binding:"required"`
	AddOnIDs  []uuid.UUID `json:"add_on_ids"`
	Notes     string      `json:"notes"`
}

func (r CreateBookingRequest) ToInput(venueSlug string, userID uuid.UUID) (commands.CreateBookingInput, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return commands.CreateBookingInput{}, ErrInvalidDate
	}
	start, err := booking.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.CreateBookingInput{}, ErrInvalidStart
	}
	end, err := booking.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return commands.CreateBookingInput{}, ErrInvalidEnd
	}
	return commands.CreateBookingInput{
		VenueSlug: venueSlug,
		UserID:    userID,
		Date:      date,
		Start:     start,
		End:       end,
		AddOnIDs:  r.AddOnIDs,
		Notes:     r.Notes,
	}, nil
}

type ChangeBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
