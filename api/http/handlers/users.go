package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/accounts/api/http/presenter"
	"github.com/artem13815/accounts/pkg/auth"
)

type UserHandler struct {
	useCase auth.AuthUseCase
}

func NewUserHandler(useCase auth.AuthUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// userResponse is the wire representation of an account. The password hash is
// deliberately absent.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u auth.User) userResponse {
	return userResponse{ID: u.ID.String(), Name: u.Name, CreatedAt: u.CreatedAt}
}

// Register handles account creation.
// @Summary Register user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Name) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "name and password are required")
	}

	user, err := h.useCase.Register(c.Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusConflict, "user already exists")
		case errors.Is(err, auth.ErrInvalidInput):
			return presenter.Error(c, http.StatusBadRequest, "name and password are required")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.Result(c, http.StatusCreated, toUserResponse(user))
}

// Login handles user login.
// @Summary Login
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Name) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "name and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "user not found")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to login")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"token":  result.Token,
		"result": toUserResponse(result.User),
	})
}

// List returns all registered accounts. Admin only.
// @Summary List users
// @Tags    users
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Security BearerAuth
// @Router  /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	users, err := h.useCase.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list users")
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return presenter.Result(c, http.StatusOK, out)
}
