package controllers

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// isStoreError separates store failures (5xx) from request problems (4xx).
func isStoreError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return true
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		return true
	}
	var bulkErr mongo.BulkWriteException
	if errors.As(err, &bulkErr) {
		return true
	}
	return mongo.IsTimeout(err) || mongo.IsNetworkError(err)
}
