package controllers

import (
	"errors"
	"net/http"

	"github.com/msherazsadiq/Healthify/core"
	"github.com/msherazsadiq/Healthify/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	Entries *services.EntryService
}

func NewEntryController(entries *services.EntryService) *EntryController {
	return &EntryController{Entries: entries}
}

func (ec *EntryController) LogSteps(c *gin.Context) {
	userID := c.GetUint("userID")

	var body struct {
		Steps int `json:"steps" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec.respond(c, ec.Entries.LogSteps(userID, body.Steps))
}

func (ec *EntryController) LogWater(c *gin.Context) {
	userID := c.GetUint("userID")

	var body struct {
		Cups int `json:"cups" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec.respond(c, ec.Entries.LogWater(userID, body.Cups))
}

func (ec *EntryController) LogSleep(c *gin.Context) {
	userID := c.GetUint("userID")

	var body struct {
		BedTime  string `json:"bed_time" binding:"required"`
		WakeTime string `json:"wake_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec.respond(c, ec.Entries.LogSleep(userID, body.BedTime, body.WakeTime))
}

func (ec *EntryController) LogMood(c *gin.Context) {
	userID := c.GetUint("userID")

	var body struct {
		Mood string `json:"mood" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec.respond(c, ec.Entries.LogMood(userID, body.Mood))
}

func (ec *EntryController) LogWeight(c *gin.Context) {
	userID := c.GetUint("userID")

	var body struct {
		Weight float64 `json:"weight" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec.respond(c, ec.Entries.LogWeight(userID, body.Weight))
}

func (ec *EntryController) respond(c *gin.Context, err error) {
	var parseErr *core.ParseError
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.As(err, &parseErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isStoreError(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func isStoreError(err error) bool {
	var storeErr *core.StoreError
	return errors.As(err, &storeErr)
}
