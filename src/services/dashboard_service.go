package services

import (
	"Backend-SurveyTrack/src/database"
	"Backend-SurveyTrack/src/models"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// DashboardTotals - the admin landing-page counters.
type DashboardTotals struct {
	TotalUsers           int64 `json:"totalUsers"`
	TotalAdmins          int64 `json:"totalAdmins"`
	CompletedAssignments int64 `json:"completedAssignments"`
	TotalQuantity        int64 `json:"totalQuantity"`
}

// SurveyorWorkload - assignment load per surveyor.
type SurveyorWorkload struct {
	UserName         string `json:"userName" bson:"_id"`
	TotalAssignments int64  `json:"totalAssignments" bson:"totalAssignments"`
	TotalQuantity    int64  `json:"totalQuantity" bson:"totalQuantity"`
}

// CompletedPerDay - completed assigned quantity summed per creation day.
type CompletedPerDay struct {
	Date     string `json:"date" bson:"_id"`
	Quantity int64  `json:"quantity" bson:"quantity"`
}

// GetDashboardTotals collects the headline counters in one call.
func GetDashboardTotals() (*DashboardTotals, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	totals := DashboardTotals{}

	var err error
	if totals.TotalUsers, err = database.UserCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}

	if totals.CompletedAssignments, err = database.AssignmentCollection.CountDocuments(ctx,
		bson.M{"status": models.AssignmentCompleted}); err != nil {
		return nil, err
	}

	admins, err := GetUsersByRole(models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	totals.TotalAdmins = int64(len(admins))

	cursor, err := database.AssignmentCollection.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"status": bson.M{"$in": []string{
			models.AssignmentPending, models.AssignmentCompleted,
		}}}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$quantity"}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sum struct {
		Total int64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&sum); err != nil {
			return nil, err
		}
	}
	totals.TotalQuantity = sum.Total

	return &totals, nil
}

// GetCompletedPerDay sums completed assigned quantity per day for one month.
func GetCompletedPerDay(year int, month time.Month) ([]CompletedPerDay, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	pipeline := []bson.M{
		{"$match": bson.M{
			"status":    models.AssignmentCompleted,
			"createdAt": bson.M{"$gte": from, "$lt": to},
		}},
		{"$group": bson.M{
			"_id":      bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"quantity": bson.M{"$sum": "$quantity"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := database.AssignmentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []CompletedPerDay{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetSurveyorWorkload groups assignments per surveyor: how many assignments
// each carries and the summed quantity asked of them.
func GetSurveyorWorkload() ([]SurveyorWorkload, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$unwind": "$user"},
		{"$lookup": bson.M{
			"from":         "roles",
			"localField":   "user.roleId",
			"foreignField": "_id",
			"as":           "role",
		}},
		{"$unwind": "$role"},
		{"$match": bson.M{"role.name": models.RoleSurveyor}},
		{"$group": bson.M{
			"_id":              "$user.name",
			"totalAssignments": bson.M{"$sum": 1},
			"totalQuantity":    bson.M{"$sum": "$quantity"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := database.AssignmentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []SurveyorWorkload{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ParseMonth validates the year/month pair of the dashboard series query.
func ParseMonth(yearStr, monthStr string) (int, time.Month, error) {
	var year, month int
	if _, err := fmt.Sscanf(yearStr, "%d", &year); err != nil || year < 1970 {
		return 0, 0, fmt.Errorf("invalid year %q", yearStr)
	}
	if _, err := fmt.Sscanf(monthStr, "%d", &month); err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q", monthStr)
	}
	return year, time.Month(month), nil
}
