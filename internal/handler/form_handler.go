package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "userform/internal/errors"
	"userform/internal/model"
	"userform/internal/service"
	"userform/internal/validation"
)

const (
	formView = "index"

	// SavedMessage is shown after a successful save.
	SavedMessage = "User information saved successfully!"
	// RequiredFieldsMessage is shown when a required field is blank.
	RequiredFieldsMessage = "Please fill out all required fields."
)

// FormHandler serves the user form.
type FormHandler struct {
	svc       service.UserService
	validator *validation.Validator
}

// NewFormHandler creates a form handler.
func NewFormHandler(svc service.UserService, v *validation.Validator) *FormHandler {
	return &FormHandler{svc: svc, validator: v}
}

// ShowForm renders the form bound to an empty user.
func (h *FormHandler) ShowForm(c echo.Context) error {
	return c.Render(http.StatusOK, formView, echo.Map{
		"user":        &model.User{},
		"fieldErrors": map[string]string{},
	})
}

// Save validates the submitted user and persists it when valid. Validation
// failures re-render the form with the submitted values.
func (h *FormHandler) Save(c echo.Context) error {
	user, err := bindUser(c)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	if res := h.validator.Check(user); !res.OK() {
		c.Logger().Infof("User validation failed for: %s", user)
		return c.Render(http.StatusOK, formView, echo.Map{
			"user":        user,
			"error":       RequiredFieldsMessage,
			"fieldErrors": res.Messages(),
		})
	}

	c.Logger().Infof("Saving User: %s", user)
	saved, err := h.svc.SaveUser(c.Request().Context(), user)
	if err != nil {
		c.Logger().Errorf("save user: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save user")
	}

	return c.Render(http.StatusOK, formView, echo.Map{
		"user":        saved,
		"message":     SavedMessage,
		"fieldErrors": map[string]string{},
	})
}

// bindUser builds a fresh user from the submitted form. The identity is
// never taken from the form, so every submission is an insert.
func bindUser(c echo.Context) (*model.User, error) {
	var user model.User
	if err := (&echo.DefaultBinder{}).BindBody(c, &user); err != nil {
		return nil, apperrors.ErrInvalidForm
	}
	user.ID = nil
	return &user, nil
}
