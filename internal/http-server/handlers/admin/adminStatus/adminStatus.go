package adminStatus

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"cafeBooker/internal/http-server/middleware/mwauth"
	"cafeBooker/internal/lib/api/response"
)

type StatusResponse struct {
	response.Response
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

// New reports the authentication state of the caller. Routed behind
// mwauth.RequireAdmin, so reaching it means the token checked out.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.adminStatus.New"

		log = log.With(slog.String("op", op))

		username := mwauth.Username(r.Context())

		log.Info("admin status checked", slog.String("username", username))

		render.JSON(w, r, StatusResponse{
			Response:      response.OK(),
			Authenticated: true,
			Username:      username,
		})
	}
}
