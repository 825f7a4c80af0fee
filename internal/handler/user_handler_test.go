package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "userform/internal/errors"
	"userform/internal/model"
)

func TestUserHandler_GetUser(t *testing.T) {
	stored := &model.User{FirstName: "Dan", LastName: "Vega", Email: "dan@x.com"}
	stored.SetID(3)

	tests := []struct {
		name       string
		id         string
		setupMock  func(*MockUserService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "found",
			id:   "3",
			setupMock: func(m *MockUserService) {
				m.On("GetUser", mock.Anything, uint(3)).Return(stored, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad id",
			id:         "x",
			setupMock:  func(*MockUserService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name: "missing",
			id:   "9",
			setupMock: func(m *MockUserService) {
				m.On("GetUser", mock.Anything, uint(9)).Return(nil, apperrors.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name: "storage failure",
			id:   "4",
			setupMock: func(m *MockUserService) {
				m.On("GetUser", mock.Anything, uint(4)).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEcho()
			svc := new(MockUserService)
			tt.setupMock(svc)
			h := NewUserHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/users/"+tt.id, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/api/users/:id")
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, h.GetUser(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				var body apperrors.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Code)
			} else {
				var got model.User
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.True(t, stored.Equal(&got))
			}
			svc.AssertExpectations(t)
		})
	}
}
