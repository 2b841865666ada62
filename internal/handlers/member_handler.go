package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"planboard/internal/authz"
	"planboard/internal/models"
	"planboard/internal/services"
)

type MemberHandler struct {
	service services.TeamMemberService
}

func NewMemberHandler(service services.TeamMemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

type memberRequest struct {
	Name     string `json:"name" binding:"required"`
	DNI      string `json:"dni"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"required,email"`
	Address  string `json:"address"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`

	TelegramChatID int64 `json:"telegram_chat_id"`
	NotifyTelegram bool  `json:"notify_telegram"`
}

// @Summary  Create a team member
// @Tags     Members
// @Accept   json
// @Produce  json
// @Router   /members [post]
func (h *MemberHandler) Create(c *gin.Context) {
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[member][create] call by member=%s role=%d", memberID, roleID)

	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[member][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}
	if req.RoleID == 0 {
		req.RoleID = authz.RoleMember
	}

	created, err := h.service.CreateWithPassword(c.Request.Context(), &models.TeamMember{
		Name:           req.Name,
		DNI:            req.DNI,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		RoleID:         req.RoleID,
		TelegramChatID: req.TelegramChatID,
		NotifyTelegram: req.NotifyTelegram,
	}, req.Password)
	if err != nil {
		log.Printf("[member][create][err] %v", err)
		respondServiceError(c, err)
		return
	}
	log.Printf("[member][create][ok] id=%s email=%s", created.ID, created.Email)
	c.JSON(http.StatusCreated, created)
}

// @Summary  Get a team member
// @Tags     Members
// @Produce  json
// @Router   /members/{id} [get]
func (h *MemberHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	member, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[member][getByID][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get member"})
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// @Summary  List team members
// @Tags     Members
// @Produce  json
// @Router   /members [get]
func (h *MemberHandler) GetAll(c *gin.Context) {
	members, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("[member][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// @Summary  Update a team member
// @Tags     Members
// @Accept   json
// @Produce  json
// @Router   /members/{id} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[member][update] call by member=%s role=%d id=%s", memberID, roleID, id)

	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[member][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &models.TeamMember{
		Name:           req.Name,
		DNI:            req.DNI,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		RoleID:         req.RoleID,
		TelegramChatID: req.TelegramChatID,
		NotifyTelegram: req.NotifyTelegram,
	})
	if err != nil {
		log.Printf("[member][update][err] id=%s: %v", id, err)
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}
	log.Printf("[member][update][ok] id=%s", id)
	c.JSON(http.StatusOK, updated)
}

// @Summary  Delete a team member
// @Tags     Members
// @Router   /members/{id} [delete]
func (h *MemberHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[member][delete] call by member=%s role=%d id=%s", memberID, roleID, id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[member][delete][err] id=%s: %v", id, err)
		respondServiceError(c, err)
		return
	}
	log.Printf("[member][delete][ok] id=%s", id)
	c.Status(http.StatusNoContent)
}
