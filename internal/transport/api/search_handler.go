package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/mentorlink/internal/domain"
)

// searchTimeout больше стандартного: запрос включает обращение к провайдеру эмбеддингов.
const searchTimeout = 15 * time.Second

type SearchHandler struct {
	searchSvs SearchServicer
}

func NewSearchHandler(searchSvs SearchServicer) *SearchHandler {
	return &SearchHandler{
		searchSvs: searchSvs,
	}
}

// Search GET RouteGroup + MentorSearchRoute. Семантический поиск менторов
// по параметру q с необязательным limit. Флаг fallback в ответе означает,
// что векторный поиск был недоступен и сработал поиск по ключевым словам.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")

	var limit uint
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, parseErr := strconv.ParseUint(limitStr, 10, 32)
		if parseErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
			return
		}
		limit = uint(parsed)
	}

	reqCtx, cancel := context.WithTimeout(c, searchTimeout)
	defer cancel()

	result, err := h.searchSvs.Search(reqCtx, query, limit)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySearchQuery) {
			_ = c.AbortWithError(http.StatusBadRequest, errors.New("query must not be empty")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]MentorProfileResponse, len(result.Mentors))
	for i, mentor := range result.Mentors {
		response[i] = newMentorProfileResponse(mentor)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     response,
		"fallback": result.Fallback,
	})
}
