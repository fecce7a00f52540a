package listBookings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"cafeBooker/internal/http-server/middleware/mwauth"
	"cafeBooker/internal/lib/api/response"
	"cafeBooker/internal/lib/logger/sl"
	"cafeBooker/internal/models"
)

// AdminBookingView is the full record, only shown to authenticated admins.
type AdminBookingView struct {
	ID        int    `json:"id"`
	TableID   int    `json:"table_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Guests    int    `json:"number_of_guests"`
	Notes     string `json:"notes,omitempty"`
}

// PublicBookingView only reveals when a table frees up again.
type PublicBookingView struct {
	TableID int    `json:"table_id"`
	Date    string `json:"date"`
	EndTime string `json:"end_time"`
}

type AdminBookingsResponse struct {
	response.Response
	Bookings []AdminBookingView `json:"bookings"`
}

type PublicBookingsResponse struct {
	response.Response
	Bookings []PublicBookingView `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	ListBookings(asAdmin bool) ([]models.Booking, error)
}

func New(log *slog.Logger, lister BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log = log.With(slog.String("op", op))

		asAdmin := mwauth.IsAdmin(r.Context())

		bookings, err := lister.ListBookings(asAdmin)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved successfully",
			slog.Int("count", len(bookings)),
			slog.Bool("as_admin", asAdmin),
		)

		if asAdmin {
			responseAdmin(w, r, bookings)
			return
		}

		responsePublic(w, r, bookings)
	}
}

func responseAdmin(w http.ResponseWriter, r *http.Request, bookings []models.Booking) {
	views := make([]AdminBookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, AdminBookingView{
			ID:        b.ID,
			TableID:   b.TableID,
			Name:      b.Name,
			Phone:     b.Phone,
			Date:      b.Date.Format("2006-01-02"),
			StartTime: b.StartTime.Format("15:04"),
			EndTime:   b.EndTime.Format("15:04"),
			Guests:    b.Guests,
			Notes:     b.Notes,
		})
	}

	render.JSON(w, r, AdminBookingsResponse{
		Response: response.OK(),
		Bookings: views,
	})
}

func responsePublic(w http.ResponseWriter, r *http.Request, bookings []models.Booking) {
	views := make([]PublicBookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, PublicBookingView{
			TableID: b.TableID,
			Date:    b.Date.Format("2006-01-02"),
			EndTime: b.EndTime.Format("15:04"),
		})
	}

	render.JSON(w, r, PublicBookingsResponse{
		Response: response.OK(),
		Bookings: views,
	})
}
