package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"planboard/internal/middleware"
	"planboard/internal/models"
	"planboard/internal/services"
	"planboard/internal/utils"
)

type AuthHandler struct {
	members services.TeamMemberService
	auth    services.AuthService
}

func NewAuthHandler(members services.TeamMemberService, auth services.AuthService) *AuthHandler {
	return &AuthHandler{members: members, auth: auth}
}

// @Summary      Log in
// @Description  Authenticates a team member and returns access/refresh tokens
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.TrimSpace(req.Email)
	log.Printf("[auth][login] attempt email=%q", email)

	member, err := h.members.GetByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("[auth][login][err] lookup email=%q: %v", email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if member == nil || member.PasswordHash == "" {
		log.Printf("[auth][login][deny] unknown email=%q", email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := h.auth.ComparePassword(member.PasswordHash, strings.TrimSpace(req.Password)); err != nil {
		log.Printf("[auth][login][deny] password mismatch memberID=%s", member.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	accessClaims := &middleware.Claims{
		MemberID: member.ID,
		RoleID:   member.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString(middleware.JWTKey())
	if err != nil {
		log.Printf("[auth][login][err] sign access token memberID=%s: %v", member.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}

	rt, err := utils.NewRefreshToken(32)
	if err != nil {
		log.Printf("[auth][login][err] new refresh token memberID=%s: %v", member.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}
	rtExp := time.Now().Add(30 * 24 * time.Hour)
	if err := h.members.UpdateRefresh(c.Request.Context(), member.ID, rt, rtExp); err != nil {
		log.Printf("[auth][login][err] store refresh token memberID=%s: %v", member.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
		return
	}

	log.Printf("[auth][login][ok] memberID=%s role=%d", member.ID, member.RoleID)
	c.JSON(http.StatusOK, gin.H{
		"member":        member, // PasswordHash is json:"-", it never leaves
		"access_token":  accessTokenString,
		"refresh_token": rt,
	})
}

// @Summary      Refresh access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Router       /refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		MemberID     string `json:"member_id" binding:"required"`
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.members.GetByID(c.Request.Context(), req.MemberID)
	if err != nil || member == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}
	if member.RefreshRevoked || member.RefreshToken == nil || *member.RefreshToken != req.RefreshToken {
		log.Printf("[auth][refresh][deny] memberID=%s", req.MemberID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}
	if member.RefreshExpiresAt == nil || member.RefreshExpiresAt.Before(time.Now()) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired"})
		return
	}

	accessClaims := &middleware.Claims{
		MemberID: member.ID,
		RoleID:   member.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString(middleware.JWTKey())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}

	log.Printf("[auth][refresh][ok] memberID=%s", member.ID)
	c.JSON(http.StatusOK, gin.H{"access_token": accessTokenString})
}
