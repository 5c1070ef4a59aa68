// Script seed user giả (isFake=true) để test giao diện quản lý người dùng.
// User giả có email dạng fake-<n>@example.test, vai trò viewer.
//
// Chạy: go run scripts/seed_fake_users/main.go <count>
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

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

	if len(os.Args) < 2 {
		log.Fatal("Cách dùng: go run scripts/seed_fake_users/main.go <count>")
	}
	count, err := strconv.Atoi(os.Args[1])
	if err != nil || count <= 0 {
		log.Fatalf("Số lượng không hợp lệ: %s", os.Args[1])
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Kết nối lỗi: %v", err)
	}
	defer client.Disconnect(ctx)

	coll := client.Database(dbName).Collection("auth_users")

	now := time.Now().UnixMilli()
	inserted := 0
	failed := 0
	for i := 1; i <= count; i++ {
		doc := bson.M{
			"name":      fmt.Sprintf("Fake User %d", i),
			"email":     fmt.Sprintf("fake-%d@example.test", i),
			"role":      "viewer",
			"isFake":    true,
			"createdAt": now,
			"updatedAt": now,
		}
		if _, err := coll.InsertOne(ctx, doc); err != nil {
			// Email trùng (đã seed trước đó) hoặc lỗi ghi: log và đếm, không dừng
			log.Printf("Bỏ qua user %d: %v", i, err)
			failed++
			continue
		}
		inserted++
		if inserted%100 == 0 {
			fmt.Printf("Đã tạo %d/%d user giả...\n", inserted, count)
		}
	}

	fmt.Printf("Hoàn tất: tạo %d user giả, bỏ qua %d\n", inserted, failed)
	if failed > 0 && inserted == 0 {
		os.Exit(1)
	}
}
