package controllers

import (
	"net/http"

	"github.com/msherazsadiq/Healthify/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

func (gc *GoalController) GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goals, err := gc.Goals.Effective(userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (gc *GoalController) UpdateStepGoal(c *gin.Context) {
	userID := c.GetUint("userID")

	var body struct {
		StepGoal int `json:"stepGoal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gc.Goals.UpdateStepGoal(userID, body.StepGoal); err != nil {
		if isStoreError(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (gc *GoalController) UpdateWaterGoal(c *gin.Context) {
	userID := c.GetUint("userID")

	var body struct {
		WaterIntakeGoal int `json:"waterIntakeGoal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gc.Goals.UpdateWaterGoal(userID, body.WaterIntakeGoal); err != nil {
		if isStoreError(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
