// Script tìm các lesson mồ côi: lesson có programId không trỏ tới
// program nào còn tồn tại. Mặc định chỉ liệt kê; dùng flag để sửa:
//
//	--delete                xóa các lesson mồ côi
//	--reassign <programId>  gắn các lesson mồ côi vào program chỉ định
//
// Chạy: go run scripts/fix_orphan_lessons/main.go [--delete | --reassign <programId>]
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
	"go.mongodb.org/mongo-driver/bson/primitive"
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

	doDelete := false
	var reassignTo primitive.ObjectID
	doReassign := false
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--delete":
			doDelete = true
		case "--reassign":
			if len(os.Args) < 3 {
				log.Fatal("Cách dùng: --reassign <programId>")
			}
			id, err := primitive.ObjectIDFromHex(os.Args[2])
			if err != nil {
				log.Fatalf("programId không hợp lệ: %s", os.Args[2])
			}
			reassignTo = id
			doReassign = true
		default:
			log.Fatalf("Flag không hỗ trợ: %s", os.Args[1])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 600*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Kết nối lỗi: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	programColl := db.Collection("content_programs")
	lessonColl := db.Collection("content_lessons")

	if doReassign {
		count, err := programColl.CountDocuments(ctx, bson.M{"_id": reassignTo})
		if err != nil {
			log.Fatalf("Kiểm tra program đích lỗi: %v", err)
		}
		if count == 0 {
			log.Fatalf("Program đích không tồn tại: %s", reassignTo.Hex())
		}
	}

	// Nạp toàn bộ id program hiện có (số lượng program nhỏ, nạp hết được)
	cursor, err := programColl.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		log.Fatalf("Truy vấn program lỗi: %v", err)
	}
	var programDocs []bson.M
	if err := cursor.All(ctx, &programDocs); err != nil {
		log.Fatalf("Đọc cursor program lỗi: %v", err)
	}
	programIDs := make(map[primitive.ObjectID]bool, len(programDocs))
	for _, d := range programDocs {
		if id, ok := d["_id"].(primitive.ObjectID); ok {
			programIDs[id] = true
		}
	}
	fmt.Printf("Có %d program\n", len(programIDs))

	// Quét lesson có programId khác rỗng, đối chiếu với danh sách program
	lessonCursor, err := lessonColl.Find(ctx,
		bson.M{"programId": bson.M{"$exists": true, "$ne": primitive.NilObjectID}},
		options.Find().SetProjection(bson.M{"_id": 1, "title": 1, "programId": 1}))
	if err != nil {
		log.Fatalf("Truy vấn lesson lỗi: %v", err)
	}

	type orphan struct {
		ID        primitive.ObjectID `bson:"_id"`
		Title     string             `bson:"title"`
		ProgramID primitive.ObjectID `bson:"programId"`
	}
	var orphans []orphan
	for lessonCursor.Next(ctx) {
		var l orphan
		if err := lessonCursor.Decode(&l); err != nil {
			log.Printf("Decode lesson lỗi: %v", err)
			continue
		}
		if !programIDs[l.ProgramID] {
			orphans = append(orphans, l)
		}
	}
	lessonCursor.Close(ctx)

	fmt.Printf("Tìm thấy %d lesson mồ côi\n", len(orphans))
	for _, o := range orphans {
		fmt.Printf("  %s  %q  (programId=%s)\n", o.ID.Hex(), o.Title, o.ProgramID.Hex())
	}
	if len(orphans) == 0 {
		return
	}

	orphanIDs := make([]primitive.ObjectID, 0, len(orphans))
	for _, o := range orphans {
		orphanIDs = append(orphanIDs, o.ID)
	}

	switch {
	case doDelete:
		res, err := lessonColl.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": orphanIDs}})
		if err != nil {
			log.Fatalf("Xóa lesson mồ côi lỗi: %v", err)
		}
		fmt.Printf("Đã xóa %d lesson mồ côi\n", res.DeletedCount)
	case doReassign:
		now := time.Now().UnixMilli()
		res, err := lessonColl.UpdateMany(ctx,
			bson.M{"_id": bson.M{"$in": orphanIDs}},
			bson.M{"$set": bson.M{"programId": reassignTo, "updatedAt": now}})
		if err != nil {
			log.Fatalf("Gắn lại lesson lỗi: %v", err)
		}
		fmt.Printf("Đã gắn %d lesson vào program %s\n", res.ModifiedCount, reassignTo.Hex())
	default:
		fmt.Println("Chạy lại với --delete hoặc --reassign <programId> để sửa")
	}
}
