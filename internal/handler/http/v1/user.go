package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snowshield/snow_shield_api/internal/service"
)

// @Summary Sign up
// @Description Register a new account. Every new account gets the regular user role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body SignUpRequest true "Sign up request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request or validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	log := h.logger.WithField("method", "signUp")

	var input SignUpRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.userService.SignUp(c.Request.Context(), service.SignUpInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Phone:    input.Phone,
		Pincode:  input.Pincode,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: ModelToUserResponse(user)})
}

// @Summary Log in
// @Description Exchange email and password for a token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LogInRequest true "Log in request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) logIn(c *gin.Context) {
	log := h.logger.WithField("method", "logIn")

	var input LogInRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.userService.LogIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: ModelToUserResponse(user)})
}

// @Summary Get own profile
// @Description Get the profile of the authenticated user.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/me [get]
func (h *Handler) getProfile(c *gin.Context) {
	log := h.logger.WithField("method", "getProfile")
	session := sessionFromContext(c)

	user, err := h.userService.Profile(c.Request.Context(), session)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Update own profile
// @Description Update name, phone or pincode of the authenticated user. Email and role are immutable here.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Profile update request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/me [put]
func (h *Handler) updateProfile(c *gin.Context) {
	log := h.logger.WithField("method", "updateProfile")
	session := sessionFromContext(c)

	var input UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), session, service.ProfilePatch{
		Name:    input.Name,
		Phone:   input.Phone,
		Pincode: input.Pincode,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToUserResponse(user))
}
