package deleteTable

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafeBooker/internal/booking"
	"cafeBooker/internal/http-server/handlers/table/deleteTable/mocks"
	"cafeBooker/internal/lib/logger/handlers/slogdiscard"
)

func TestDeleteTableHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		tableID        string
		mockSetup      func(mock *mocks.TableDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			tableID: "3",
			mockSetup: func(m *mocks.TableDeleter) {
				m.On("DeleteTable", 3).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:    "Table not found",
			tableID: "99",
			mockSetup: func(m *mocks.TableDeleter) {
				m.On("DeleteTable", 99).Return(booking.ErrTableNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"table not found"}`,
		},
		{
			name:    "Table occupied",
			tableID: "3",
			mockSetup: func(m *mocks.TableDeleter) {
				m.On("DeleteTable", 3).Return(booking.ErrTableOccupied)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"table has active bookings"}`,
		},
		{
			name:           "Invalid id format",
			tableID:        "abc",
			mockSetup:      func(m *mocks.TableDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid table id format"}`,
		},
		{
			name:    "Storage failure",
			tableID: "3",
			mockSetup: func(m *mocks.TableDeleter) {
				m.On("DeleteTable", 3).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete table"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewTableDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			router := chi.NewRouter()
			router.Delete("/tables/{id}", handler)

			req, err := http.NewRequest("DELETE", "/tables/"+tc.tableID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
