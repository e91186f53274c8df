package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/config"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/pkg/response"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary Self-registration (account waits for approval)
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "Registration info"
// @Success 201 {object} response.MessageResponse "Registration received"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := h.svc.Register(c.Request.Context(), input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "Registration received. An administrator will activate your account."})
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Failure 403 {object} response.ErrorResponse "Account is not active"
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindError(c, err)
		return
	}

	usr, token, err := h.svc.Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		int(config.TokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:  token,
		UserID: usr.ID,
		Email:  usr.Email,
		Role:   string(usr.Role),
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Session godoc
// @Summary Current user and role navigation
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.Session
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/session [get]
func (h *UserHandler) Session(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	session, err := h.svc.Session(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param role query string false "Role filter"
// @Param status query string false "Status filter"
// @Success 200 {array} user.User
// @Failure 403 {object} response.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var filter user.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}
	users, err := h.svc.ListUsers(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} user.User
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	usr, err := h.svc.GetUser(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// CreateUser godoc
// @Summary Create an active user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "User"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	usr, err := h.svc.CreateUser(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// UpdateUser godoc
// @Summary Update a user profile, role or status
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body user.UpdateUserInput true "Changes"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input user.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	usr, err := h.svc.UpdateUser(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ChangePassword godoc
// @Summary Change own password
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.ChangePasswordInput true "Old and new password"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /users/me/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var input user.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.svc.ChangePassword(c.Request.Context(), actor, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password updated"})
}
