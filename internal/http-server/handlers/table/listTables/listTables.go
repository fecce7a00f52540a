package listTables

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"cafeBooker/internal/lib/api/response"
	"cafeBooker/internal/lib/logger/sl"
	"cafeBooker/internal/models"
)

type TablesResponse struct {
	response.Response
	Tables []models.Table `json:"tables"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TableLister
type TableLister interface {
	ListTables() ([]models.Table, error)
}

func New(log *slog.Logger, lister TableLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.table.listTables.New"

		log = log.With(slog.String("op", op))

		tables, err := lister.ListTables()
		if err != nil {
			log.Error("failed to get tables", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tables"))
			return
		}

		log.Info("tables retrieved successfully", slog.Int("count", len(tables)))

		responseOK(w, r, tables)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, tables []models.Table) {
	render.JSON(w, r, TablesResponse{
		Response: response.OK(),
		Tables:   tables,
	})
}
