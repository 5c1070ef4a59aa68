// Script xóa toàn bộ user giả (isFake=true) do seed_fake_users tạo ra.
// Xóa theo từng đợt nhỏ để tránh giữ khóa quá lâu trên collection.
//
// Chạy: go run scripts/purge_fake_users/main.go
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

const batchSize = 500

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

	coll := client.Database(dbName).Collection("auth_users")

	total, err := coll.CountDocuments(ctx, bson.M{"isFake": true})
	if err != nil {
		log.Fatalf("Đếm user giả lỗi: %v", err)
	}
	fmt.Printf("Tìm thấy %d user giả\n", total)
	if total == 0 {
		return
	}

	deleted := int64(0)
	for {
		// DeleteMany không hỗ trợ limit, nên lấy id theo đợt rồi xóa theo $in
		cursor, err := coll.Find(ctx, bson.M{"isFake": true},
			options.Find().SetLimit(batchSize).SetProjection(bson.M{"_id": 1}))
		if err != nil {
			log.Fatalf("Truy vấn lỗi: %v", err)
		}
		var docs []bson.M
		if err := cursor.All(ctx, &docs); err != nil {
			log.Fatalf("Đọc cursor lỗi: %v", err)
		}
		if len(docs) == 0 {
			break
		}
		ids := make([]interface{}, 0, len(docs))
		for _, d := range docs {
			ids = append(ids, d["_id"])
		}
		res, err := coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			log.Fatalf("Xóa lỗi: %v", err)
		}
		deleted += res.DeletedCount
		fmt.Printf("Đã xóa %d/%d...\n", deleted, total)
	}

	fmt.Printf("Hoàn tất: đã xóa %d user giả\n", deleted)
}
