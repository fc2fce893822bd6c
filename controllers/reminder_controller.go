package controllers

import (
	"errors"
	"net/http"

	"github.com/msherazsadiq/Healthify/core"
	"github.com/msherazsadiq/Healthify/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Reminders *services.ReminderService
}

func NewReminderController(reminders *services.ReminderService) *ReminderController {
	return &ReminderController{Reminders: reminders}
}

func (rc *ReminderController) GetReminder(c *gin.Context) {
	userID := c.GetUint("userID")

	reminder, err := rc.Reminders.Get(userID)
	if errors.Is(err, core.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no reminder time set"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reminder)
}

func (rc *ReminderController) UpdateReminder(c *gin.Context) {
	userID := c.GetUint("userID")

	var body struct {
		Hour   int    `json:"hour"`
		Minute int    `json:"minute"`
		AmPm   string `json:"amPm" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rc.Reminders.Set(userID, body.Hour, body.Minute, body.AmPm); err != nil {
		if isStoreError(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
