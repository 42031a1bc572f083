package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmsplatform/rms/internal/common"
	"github.com/rmsplatform/rms/internal/server/models"
)

// userResponse is the wire shape of a user profile.
type userResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
	CompanyID    string `json:"companyId,omitempty"`
	IsSuperAdmin bool   `json:"isSuperAdmin,omitempty"`
	ReferralCode string `json:"referralCode,omitempty"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Role:         u.Role,
		Avatar:       u.Avatar,
		CompanyID:    u.CompanyID,
		IsSuperAdmin: u.IsSuperAdmin,
		ReferralCode: u.ReferralCode,
	}
}

func dataBody(v any) gin.H {
	return gin.H{"data": v}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleGetBranding(c *gin.Context) {
	settings, err := s.brandingService.Get(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "branding read failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	c.JSON(http.StatusOK, dataBody(settings))
}

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	user, err := s.userService.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, []byte(req.Password))
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusConflict, errorBody("email already registered"))
			return
		}
		s.logger.Error(c.Request.Context(), "registration failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	c.JSON(http.StatusCreated, dataBody(toUserResponse(user)))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	token, user, err := s.userService.Login(c.Request.Context(), req.Email, []byte(req.Password))
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, errorBody("invalid credentials"))
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	c.JSON(http.StatusOK, dataBody(gin.H{
		"token": token,
		"user":  toUserResponse(user),
	}))
}

func (s *Server) handleProfile(c *gin.Context) {
	user, err := s.userService.Profile(c.Request.Context(), c.GetString(ctxUserIDKey))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusUnauthorized, errorBody("unknown user"))
			return
		}
		s.logger.Error(c.Request.Context(), "profile read failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	c.JSON(http.StatusOK, dataBody(toUserResponse(user)))
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Avatar    *string `json:"avatar"`
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	patch := models.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    req.Avatar,
	}

	user, err := s.userService.UpdateProfile(c.Request.Context(), c.GetString(ctxUserIDKey), patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusUnauthorized, errorBody("unknown user"))
			return
		}
		s.logger.Error(c.Request.Context(), "profile update failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	c.JSON(http.StatusOK, dataBody(toUserResponse(user)))
}

type updateBrandingRequest struct {
	CompanyName    string `json:"companyName"`
	ShortName      string `json:"shortName"`
	Logo           string `json:"logo"`
	WhatsappNumber string `json:"whatsappNumber"`
	WhatsappLink   string `json:"whatsappLink"`
	SupportEmail   string `json:"supportEmail"`
	SupportPhone   string `json:"supportPhone"`
	Address        string `json:"address"`
}

// handleUpdateBranding replaces the whole branding document with the
// request body. Omitted fields are cleared, not kept.
func (s *Server) handleUpdateBranding(c *gin.Context) {
	var req updateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	settings := &models.BrandingSettings{
		CompanyName:    req.CompanyName,
		ShortName:      req.ShortName,
		Logo:           req.Logo,
		WhatsappNumber: req.WhatsappNumber,
		WhatsappLink:   req.WhatsappLink,
		SupportEmail:   req.SupportEmail,
		SupportPhone:   req.SupportPhone,
		Address:        req.Address,
	}

	if err := s.brandingService.Update(c.Request.Context(), settings); err != nil {
		s.logger.Error(c.Request.Context(), "branding update failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	c.JSON(http.StatusOK, dataBody(settings))
}

func (s *Server) handleLogoUploadURL(c *gin.Context) {
	key, url, err := s.presigner.PresignedLogoPutURL(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "logo presign failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	c.JSON(http.StatusOK, dataBody(gin.H{
		"key": key,
		"url": url,
	}))
}
