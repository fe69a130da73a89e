package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/services"
)

// AdminHandler handles back-office operator HTTP requests
type AdminHandler struct {
	adminService *services.AdminService
	authService  *services.AuthService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService *services.AdminService, authService *services.AuthService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		authService:  authService,
	}
}

type adminPayload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ProfileImage string `json:"profileImage"`
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	admin, token, err := h.authService.LoginAdmin(c, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged in",
		"admin":   admin,
		"token":   token,
	})
}

// Me handles GET /admin/me
func (h *AdminHandler) Me(c *gin.Context) {
	id, ok := actingUserID(c)
	if !ok {
		return
	}
	admin, err := h.adminService.GetAdminByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "admin": admin})
}

// CreateAdmin handles POST /admin/add
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var payload adminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if payload.Email == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email and password are required"})
		return
	}

	admin := &models.Admin{
		Name:         payload.Name,
		Email:        payload.Email,
		Password:     payload.Password,
		ProfileImage: payload.ProfileImage,
	}
	if err := h.adminService.CreateAdmin(c, admin); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Admin created", "admin": admin})
}

// GetAdminByID handles GET /admin/get/:id
func (h *AdminHandler) GetAdminByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	admin, err := h.adminService.GetAdminByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "admin": admin})
}

// GetAllAdmins handles GET /admin/get
func (h *AdminHandler) GetAllAdmins(c *gin.Context) {
	admins, err := h.adminService.GetAllAdmins(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "admins": admins})
}

// UpdateAdmin handles PUT /admin/update/:id
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload adminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	admin, err := h.adminService.UpdateAdmin(c, id, &models.Admin{
		Name:         payload.Name,
		Email:        payload.Email,
		Password:     payload.Password,
		ProfileImage: payload.ProfileImage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin updated", "admin": admin})
}

// DeleteAdmin handles DELETE /admin/delete/:id
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteAdmin(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin deleted"})
}
