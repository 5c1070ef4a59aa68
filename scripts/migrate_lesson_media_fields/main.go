// Script migrate các field media cũ dạng snake_case sang camelCase
// trên collection content_lessons. Chạy lại nhiều lần an toàn:
// $rename bỏ qua document không có field nguồn.
//
// Chạy: go run scripts/migrate_lesson_media_fields/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Map field cũ -> field mới
var renameMap = map[string]string{
	"media_type":   "mediaType",
	"storage_path": "storagePath",
	"duration_sec": "durationSec",
	"program_id":   "programId",
	"fail_reason":  "failReason",
	"publish_at":   "publishAt",
	"author_id":    "authorId",
}

func loadEnv() {
	tryPaths := []string{".env", "api/.env", "config/env/development.env", "api/config/env/development.env"}
	cwd, _ := os.Getwd()
	for _, p := range tryPaths {
		full := filepath.Join(cwd, p)
		if _, err := os.Stat(full); err == nil {
			_ = godotenv.Load(full)
			break
		}
		parent := filepath.Dir(cwd)
		if _, err := os.Stat(filepath.Join(parent, p)); err == nil {
			_ = godotenv.Load(filepath.Join(parent, p))
			break
		}
	}
}

func main() {
	loadEnv()
	uri := os.Getenv("MONGODB_CONNECTION_URI")
	dbName := os.Getenv("MONGODB_DBNAME")
	if uri == "" || dbName == "" {
		log.Fatal("Cần MONGODB_CONNECTION_URI và MONGODB_DBNAME")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 600*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Kết nối lỗi: %v", err)
	}
	defer client.Disconnect(ctx)

	coll := client.Database(dbName).Collection("content_lessons")

	totalModified := int64(0)
	for oldField, newField := range renameMap {
		// Chỉ đụng tới document còn field cũ
		filter := bson.M{oldField: bson.M{"$exists": true}}
		update := bson.M{"$rename": bson.M{oldField: newField}}
		res, err := coll.UpdateMany(ctx, filter, update)
		if err != nil {
			log.Fatalf("Rename %s -> %s lỗi: %v", oldField, newField, err)
		}
		if res.ModifiedCount > 0 {
			fmt.Printf("Rename %s -> %s: %d document\n", oldField, newField, res.ModifiedCount)
		}
		totalModified += res.ModifiedCount
	}

	fmt.Printf("Hoàn tất: đã migrate %d thay đổi field\n", totalModified)
}
