package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ConnectMongoDB() must only run once
	connectErr error

	UserCollection       *mongo.Collection
	RoleCollection       *mongo.Collection
	CategoryCollection   *mongo.Collection
	SurveyCollection     *mongo.Collection
	QuestionCollection   *mongo.Collection
	OptionCollection     *mongo.Collection
	AnswerCollection     *mongo.Collection
	AssignmentCollection *mongo.Collection
)

const dbName = "SurveyTrackDB"

// ConnectMongoDB connects to MongoDB exactly once and wires the collection handles.
func ConnectMongoDB() error {

	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		UserCollection = GetCollection(dbName, "users")
		RoleCollection = GetCollection(dbName, "roles")
		CategoryCollection = GetCollection(dbName, "categories")
		SurveyCollection = GetCollection(dbName, "surveys")
		QuestionCollection = GetCollection(dbName, "questions")
		OptionCollection = GetCollection(dbName, "answerOptions")
		AnswerCollection = GetCollection(dbName, "answers")
		AssignmentCollection = GetCollection(dbName, "assignments")

		log.Println("✅ MongoDB connected successfully")
		ListDatabases()
	})

	return connectErr
}

// ListDatabases prints every database visible on the connection.
func ListDatabases() {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}

	dbs, err := client.ListDatabaseNames(context.TODO(), bson.M{})
	if err != nil {
		log.Fatal("❌ Error listing databases:", err)
	}

	fmt.Println("📌 Databases in MongoDB:")
	for _, db := range dbs {
		fmt.Println(" -", db)
	}
}

// GetCollection returns a collection handle from MongoDB.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
