package controllers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"talenthub/middleware"
	"talenthub/models"
	"talenthub/services"
	"talenthub/utils"
)

// AuthController handles registration, login and account endpoints
type AuthController struct {
	users      *models.UserModel
	jwtService *services.JWTService
	logger     *utils.Logger
}

func NewAuthController(users *models.UserModel, jwtService *services.JWTService) *AuthController {
	return &AuthController{
		users:      users,
		jwtService: jwtService,
		logger:     utils.GlobalLogger.WithComponent("auth"),
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates a new recruiter account
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if _, err := ac.users.GetByEmail(req.Email); err == nil {
		utils.ConflictError(c, "An account with this email already exists", nil)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalServerError(c, "Failed to create account", err)
		return
	}

	user, err := ac.users.Create(req.Email, req.Name, string(hashed))
	if err != nil {
		ac.logger.Error("failed to create user", err)
		utils.InternalServerError(c, "Failed to create account", err)
		return
	}

	token, err := ac.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Account created", AuthResponse{User: user, Token: token})
}

// Login authenticates a recruiter and returns a token
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	user, err := ac.users.GetByEmail(req.Email)
	if err != nil {
		// Same response for unknown email and wrong password
		utils.UnauthorizedError(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.UnauthorizedError(c, "Invalid email or password")
		return
	}

	token, err := ac.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token", err)
		return
	}

	user.Password = ""
	utils.SuccessResponse(c, http.StatusOK, "Logged in", AuthResponse{User: user, Token: token})
}

// Me returns the authenticated account with its resolved capabilities
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.users.GetByID(middleware.UserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Account not found")
			return
		}
		utils.InternalServerError(c, "Failed to load account", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user":         user,
		"capabilities": services.CapabilitiesForPlan(user.Plan),
	})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// ChangePassword replaces the account password after verifying the current one
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	user, err := ac.users.GetByEmail(middleware.UserEmail(c))
	if err != nil {
		utils.InternalServerError(c, "Failed to load account", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		utils.UnauthorizedError(c, "Current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalServerError(c, "Failed to update password", err)
		return
	}

	if err := ac.users.UpdatePassword(user.ID, string(hashed)); err != nil {
		ac.logger.Error("failed to update password", err)
		utils.InternalServerError(c, "Failed to update password", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}

type UpdatePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// UpdatePlan switches the account's subscription plan. Billing is handled
// elsewhere; this only records the chosen plan.
func (ac *AuthController) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if req.Plan != services.PlanFree && req.Plan != services.PlanStarter && req.Plan != services.PlanPro {
		utils.BadRequestError(c, "Unknown plan", nil)
		return
	}

	if err := ac.users.UpdatePlan(middleware.UserID(c), req.Plan); err != nil {
		utils.InternalServerError(c, "Failed to update plan", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated", services.CapabilitiesForPlan(req.Plan))
}
