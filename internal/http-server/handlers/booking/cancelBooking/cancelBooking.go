package cancelBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"cafeBooker/internal/booking"
	"cafeBooker/internal/lib/api/response"
	"cafeBooker/internal/lib/logger/sl"
)

type CancelResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceler
type BookingCanceler interface {
	Cancel(id int) error
}

func New(log *slog.Logger, canceler BookingCanceler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log = log.With(slog.String("op", op))

		bookingIdStr := chi.URLParam(r, "id")
		if bookingIdStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		bookingID, err := strconv.Atoi(bookingIdStr)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", bookingID))

		if err = canceler.Cancel(bookingID); err != nil {
			log.Error("failed to cancel booking", sl.Err(err))

			if errors.Is(err, booking.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to cancel booking"))
			return
		}

		log.Info("booking cancelled")

		render.JSON(w, r, CancelResponse{Response: response.OK()})
	}
}
