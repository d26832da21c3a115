package jobs

import (
	"Backend-SurveyTrack/src/database"
	"Backend-SurveyTrack/src/services/assignments"
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleEvaluateAssignmentTask re-runs the completion evaluator for one pair.
// Answer submission and HTTP-triggered evaluation are not ordered against each
// other, so this task is the late re-check that lets completion converge once
// the last answer of a pass has committed.
func HandleEvaluateAssignmentTask(ctx context.Context, t *asynq.Task) error {
	var payload EvaluateAssignmentPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return err
	}
	surveyID, err := primitive.ObjectIDFromHex(payload.SurveyID)
	if err != nil {
		return err
	}

	_, err = assignments.EvaluateAndUpdate(userID, surveyID)
	if err != nil {
		if errors.Is(err, assignments.ErrAssignmentNotFound) {
			// Assignment deleted between enqueue and run. Nothing to evaluate.
			log.Println("⚠️ Assignment gone, skipping evaluation:", payload.UserID, payload.SurveyID)
			return nil
		}
		log.Println("❌ Evaluation task failed:", err)
		return err
	}

	log.Println("✅ Evaluation task done for user", payload.UserID, "survey", payload.SurveyID)
	return nil
}

// StartWorker runs the Asynq server in the background when Redis is
// configured.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeEvaluateAssignment, HandleEvaluateAssignmentTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatal("❌ Asynq worker failed:", err)
		}
	}()
	log.Println("✅ Asynq worker started")
}

// EnqueueEvaluation pushes an evaluation task if the Asynq client is up.
// Callers treat a missing client as a no-op; the HTTP trigger still works.
func EnqueueEvaluation(userID, surveyID string) {
	if database.AsynqClient == nil {
		return
	}

	task, err := NewEvaluateAssignmentTask(userID, surveyID)
	if err != nil {
		log.Println("❌ Failed to build evaluation task:", err)
		return
	}

	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("❌ Failed to enqueue evaluation task:", err)
	}
}
