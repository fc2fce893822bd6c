package controllers

import (
	"errors"
	"net/http"

	"github.com/msherazsadiq/Healthify/core"
	"github.com/msherazsadiq/Healthify/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	History *services.HistoryService
}

func NewHistoryController(history *services.HistoryService) *HistoryController {
	return &HistoryController{History: history}
}

func (hc *HistoryController) GetRange(c *gin.Context) {
	userID := c.GetUint("userID")

	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'start' or 'end' query param (yyyy-mm-dd)"})
		return
	}

	summaries, err := hc.History.Range(userID, start, end)
	if err != nil {
		var parseErr *core.ParseError
		switch {
		case errors.Is(err, core.ErrInvalidRange), errors.As(err, &parseErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, summaries)
}
