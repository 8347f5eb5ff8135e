package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/service"
)

type MentorsHandler struct {
	mentorSvs MentorServicer
}

func NewMentorsHandler(mentorSvs MentorServicer) *MentorsHandler {
	return &MentorsHandler{
		mentorSvs: mentorSvs,
	}
}

type MentorProfileResponse struct {
	UserID      int64   `json:"user_id"`
	DisplayName string  `json:"display_name"`
	Bio         string  `json:"bio,omitempty"`
	Skills      string  `json:"skills,omitempty"`
	HourlyRate  float64 `json:"hourly_rate"`
}

func newMentorProfileResponse(profile domain.MentorProfile) MentorProfileResponse {
	return MentorProfileResponse{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		Skills:      profile.Skills,
		HourlyRate:  profile.HourlyRate.InexactFloat64(),
	}
}

// Show GET RouteGroup + MentorRoute. Публичный профиль ментора по id юзера.
func (h *MentorsHandler) Show(c *gin.Context) {
	userID, parseErr := strconv.ParseInt(c.Param("userID"), 10, 64)
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.mentorSvs.GetProfile(reqCtx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": newMentorProfileResponse(*profile)})
}

type MentorProfileParams struct {
	DisplayName string          `binding:"required,min=1,max=100"   json:"display_name"`
	Bio         string          `binding:"omitempty,max_bytes=5000" json:"bio"`
	Skills      string          `binding:"omitempty,max_bytes=1000" json:"skills"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
}

// Update PUT RouteGroup + MentorProfileRoute. Обновляет профиль текущего ментора.
// Переиндексация эмбеддинга выполняется сервисом и на ответ не влияет.
func (h *MentorsHandler) Update(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params MentorProfileParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if params.HourlyRate.IsNegative() {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.mentorSvs.UpdateProfile(reqCtx, currentUserID, service.UpdateProfileArgs{
		DisplayName: params.DisplayName,
		Bio:         params.Bio,
		Skills:      params.Skills,
		HourlyRate:  params.HourlyRate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWrongRole):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": newMentorProfileResponse(*profile)})
}
