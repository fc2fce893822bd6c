package services

import (
	"errors"
	"fmt"

	"github.com/msherazsadiq/Healthify/core"
	"github.com/msherazsadiq/Healthify/models"
	"github.com/msherazsadiq/Healthify/store"
)

type GoalService struct {
	store store.EntryStore
}

func NewGoalService(st store.EntryStore) *GoalService {
	return &GoalService{store: st}
}

// Effective returns the user's stored goals, falling back to the defaults
// (6000 steps, 3000 ml) when none were ever saved.
func (s *GoalService) Effective(userID uint) (models.HealthGoals, error) {
	goals, err := s.store.GetGoals(userID)
	if errors.Is(err, core.ErrNotFound) {
		return models.DefaultHealthGoals(userID), nil
	}
	if err != nil {
		return models.HealthGoals{}, err
	}
	return *goals, nil
}

// UpdateStepGoal changes only the step target; the water target keeps its
// stored (or default) value.
func (s *GoalService) UpdateStepGoal(userID uint, stepGoal int) error {
	if stepGoal <= 0 {
		return fmt.Errorf("step goal must be positive")
	}
	goals, err := s.Effective(userID)
	if err != nil {
		return err
	}
	goals.StepGoal = stepGoal
	return s.store.PutGoals(userID, goals)
}

// UpdateWaterGoal changes only the water target, in ml.
func (s *GoalService) UpdateWaterGoal(userID uint, waterGoal int) error {
	if waterGoal <= 0 {
		return fmt.Errorf("water goal must be positive")
	}
	goals, err := s.Effective(userID)
	if err != nil {
		return err
	}
	goals.WaterIntakeGoal = waterGoal
	return s.store.PutGoals(userID, goals)
}
