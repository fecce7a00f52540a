package deleteTable

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

type DeleteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TableDeleter
type TableDeleter interface {
	DeleteTable(id int) error
}

func New(log *slog.Logger, deleter TableDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.table.deleteTable.New"

		log = log.With(slog.String("op", op))

		tableIdStr := chi.URLParam(r, "id")
		if tableIdStr == "" {
			log.Error("table id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("table id is required"))
			return
		}

		tableID, err := strconv.Atoi(tableIdStr)
		if err != nil {
			log.Error("invalid table id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid table id format"))
			return
		}

		log = log.With(slog.Int("table_id", tableID))

		if err = deleter.DeleteTable(tableID); err != nil {
			log.Error("failed to delete table", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrTableNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("table not found"))
			case errors.Is(err, booking.ErrTableOccupied):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("table has active bookings"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete table"))
			}
			return
		}

		log.Info("table deleted")

		render.JSON(w, r, DeleteResponse{Response: response.OK()})
	}
}
