package createTable

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"cafeBooker/internal/booking"
	"cafeBooker/internal/lib/api/response"
	"cafeBooker/internal/lib/logger/sl"
	"cafeBooker/internal/models"
)

type TableRequest struct {
	Capacity int `json:"capacity" validate:"required"`
}

type TableResponse struct {
	response.Response
	Table *models.Table `json:"table"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TableCreator
type TableCreator interface {
	CreateTable(capacity int) (*models.Table, error)
}

func New(log *slog.Logger, creator TableCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.table.createTable.New"

		log = log.With(slog.String("op", op))

		var req TableRequest

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

		table, err := creator.CreateTable(req.Capacity)
		if err != nil {
			log.Error("failed to create table", sl.Err(err))

			if errors.Is(err, booking.ErrInvalidCapacity) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create table"))
			return
		}

		log.Info("table created", slog.Int("table_id", table.ID))

		responseOK(w, r, table)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, table *models.Table) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, TableResponse{
		Response: response.OK(),
		Table:    table,
	})
}
