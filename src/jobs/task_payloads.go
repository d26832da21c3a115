package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeEvaluateAssignment = "assignment:evaluate"

type EvaluateAssignmentPayload struct {
	UserID   string `json:"user_id"`
	SurveyID string `json:"survey_id"`
}

// NewEvaluateAssignmentTask builds the completion re-check task for one
// (user, survey) pair.
func NewEvaluateAssignmentTask(userID, surveyID string) (*asynq.Task, error) {
	payload, err := json.Marshal(EvaluateAssignmentPayload{UserID: userID, SurveyID: surveyID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEvaluateAssignment, payload), nil
}
