package createBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"cafeBooker/internal/booking"
	"cafeBooker/internal/lib/api/response"
	"cafeBooker/internal/lib/logger/sl"
	"cafeBooker/internal/models"
)

type BookingRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	Phone  string `json:"phone" validate:"required"`
	Date   string `json:"date" validate:"required"`
	Time   string `json:"time" validate:"required"`
	Guests int    `json:"number_of_guests" validate:"required"`
	Notes  string `json:"notes" validate:"max=1000"`
}

type BookingResponse struct {
	response.Response
	BookingId int `json:"booking_id"`
	TableId   int `json:"table_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingAllocator
type BookingAllocator interface {
	Allocate(req booking.AllocateRequest) (*models.Booking, error)
}

func New(log *slog.Logger, allocator BookingAllocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			log.Error("invalid date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date format, expected YYYY-MM-DD"))
			return
		}

		timeOfDay, err := time.Parse("15:04", req.Time)
		if err != nil {
			log.Error("invalid time format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid time format, expected HH:MM"))
			return
		}

		start := date.Add(
			time.Duration(timeOfDay.Hour())*time.Hour +
				time.Duration(timeOfDay.Minute())*time.Minute,
		)

		b, err := allocator.Allocate(booking.AllocateRequest{
			Name:   strings.TrimSpace(req.Name),
			Phone:  digitsOnly(req.Phone),
			Start:  start,
			Guests: req.Guests,
			Notes:  strings.TrimSpace(req.Notes),
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrNoTableAvailable):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, booking.ErrMissingField),
				errors.Is(err, booking.ErrGuestCount),
				errors.Is(err, booking.ErrInvalidPhone),
				errors.Is(err, booking.ErrPastTime),
				errors.Is(err, booking.ErrOutsideHours),
				errors.Is(err, booking.ErrDuplicateBooking):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created",
			slog.Int("booking_id", b.ID),
			slog.Int("table_id", b.TableID),
		)

		responseOK(w, r, b)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b *models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response:  response.OK(),
		BookingId: b.ID,
		TableId:   b.TableID,
	})
}

// digitsOnly strips everything but digits, so "+31 6 1234-5678" and
// "31612345678" normalize to the same phone.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
