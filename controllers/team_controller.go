package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"talenthub/middleware"
	"talenthub/models"
	"talenthub/services"
	"talenthub/utils"
)

// TeamController handles workspace membership and invitations
type TeamController struct {
	members    *models.TeamMemberModel
	email      *services.EmailNotificationService
	inviteBase string
	logger     *utils.Logger
}

func NewTeamController(members *models.TeamMemberModel, email *services.EmailNotificationService, inviteBase string) *TeamController {
	return &TeamController{
		members:    members,
		email:      email,
		inviteBase: inviteBase,
		logger:     utils.GlobalLogger.WithComponent("team"),
	}
}

type InviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// List returns the workspace's members, pending invites included
func (tc *TeamController) List(c *gin.Context) {
	members, err := tc.members.GetByUserID(middleware.UserID(c))
	if err != nil {
		tc.logger.Error("failed to list team members", err)
		utils.InternalServerError(c, "Failed to load team", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", members)
}

// Invite creates a pending membership and emails the invite link. The
// permission set is derived from the role now and stored with the member.
func (tc *TeamController) Invite(c *gin.Context) {
	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}
	if req.Role == "" {
		req.Role = models.RoleMember
	}
	if !models.ValidRole(req.Role) {
		utils.BadRequestError(c, "Invalid role", nil)
		return
	}

	token := uuid.NewString()
	invitedBy := middleware.UserEmail(c)

	member, err := tc.members.Create(middleware.UserID(c), req.Email, req.Role, token, invitedBy)
	if err != nil {
		tc.logger.Error("failed to create invite", err)
		utils.ConflictError(c, "This email has already been invited", err)
		return
	}

	inviteURL := tc.inviteBase + "?token=" + token
	if err := tc.email.SendTeamInvite(req.Email, invitedBy, req.Role, inviteURL); err != nil {
		tc.logger.Warn("invite email failed", map[string]string{"email": req.Email})
	}

	utils.SuccessResponse(c, http.StatusCreated, "Invitation sent", member)
}

type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}

// Accept activates a pending invitation by its token
func (tc *TeamController) Accept(c *gin.Context) {
	var req AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	member, err := tc.members.Accept(req.Token)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Invitation not found or already accepted")
			return
		}
		utils.InternalServerError(c, "Failed to accept invitation", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invitation accepted", member)
}

type UpdateMemberRequest struct {
	Role   string `json:"role"`
	Status string `json:"status"`
}

// Update changes a member's role or status
func (tc *TeamController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid member id", err)
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	userID := middleware.UserID(c)
	if req.Role != "" {
		if !models.ValidRole(req.Role) {
			utils.BadRequestError(c, "Invalid role", nil)
			return
		}
		if err := tc.members.UpdateRole(userID, id, req.Role); err != nil {
			utils.InternalServerError(c, "Failed to update role", err)
			return
		}
	}
	if req.Status != "" {
		if req.Status != models.MemberStatusPending && req.Status != models.MemberStatusActive && req.Status != models.MemberStatusInactive {
			utils.BadRequestError(c, "Invalid status value", nil)
			return
		}
		if err := tc.members.UpdateStatus(userID, id, req.Status); err != nil {
			utils.InternalServerError(c, "Failed to update status", err)
			return
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Member updated", nil)
}

// Delete removes a member or revokes a pending invite
func (tc *TeamController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid member id", err)
		return
	}

	if err := tc.members.Delete(middleware.UserID(c), id); err != nil {
		utils.InternalServerError(c, "Failed to remove member", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Member removed", nil)
}
