// Package mediasvc - service khởi tạo upload media qua signed URL.
// Server không bao giờ nhận media bytes: client PUT thẳng lên bucket.
package mediasvc

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"

	contentsvc "wellness_admin/api/internal/api/content/service"
	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/global"
	"wellness_admin/api/internal/utility"
)

// Tài nguyên đích của một lần upload.
const (
	UploadResourceLesson  = "lesson"
	UploadResourceProgram = "program"
)

// InitUploadResult kết quả khởi tạo upload
type InitUploadResult struct {
	StoragePath string `json:"storagePath"` // Đường dẫn object trong bucket
	UploadURL   string `json:"uploadUrl"`   // Signed URL để client PUT media
	ExpiresAt   int64  `json:"expiresAt"`   // Thời điểm signed URL hết hạn (millis)
}

// MediaService là cấu trúc chứa các phương thức liên quan đến upload media
type MediaService struct {
	lessonService *contentsvc.LessonService
}

// NewMediaService tạo mới MediaService
func NewMediaService() (*MediaService, error) {
	lessonService, err := contentsvc.NewLessonService()
	if err != nil {
		return nil, err
	}
	return &MediaService{lessonService: lessonService}, nil
}

// sanitizeFileName loại bỏ path separator và khoảng trắng khỏi tên file
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	return name
}

// InitUpload sinh đường dẫn object và signed PUT URL cho một lần upload media.
// Khi tài nguyên đích là lesson, lesson được chuyển sang trạng thái uploading.
func (s *MediaService) InitUpload(ctx context.Context, resourceType string, resourceID primitive.ObjectID, fileName, contentType string) (*InitUploadResult, error) {
	storagePath := fmt.Sprintf("uploads/%s/%s/%d_%s",
		resourceType, resourceID.Hex(), time.Now().UnixMilli(), sanitizeFileName(fileName))

	firebaseStorage := utility.GetFirebaseStorage()
	if firebaseStorage == nil {
		return nil, common.NewError(common.ErrCodeStorage,
			"Firebase Storage chưa được khởi tạo", common.StatusInternalServerError, nil)
	}

	bucket, err := firebaseStorage.DefaultBucket()
	if err != nil {
		return nil, common.NewError(common.ErrCodeStorage,
			fmt.Sprintf("Không lấy được storage bucket: %v", err), common.StatusInternalServerError, err)
	}

	expiry := time.Duration(global.ServerConfig.SignedURLExpiry) * time.Minute
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	expiresAt := time.Now().Add(expiry)

	uploadURL, err := bucket.SignedURL(storagePath, &storage.SignedURLOptions{
		Method:      "PUT",
		Expires:     expiresAt,
		ContentType: contentType,
		Scheme:      storage.SigningSchemeV4,
	})
	if err != nil {
		return nil, common.NewError(common.ErrCodeStorage,
			fmt.Sprintf("Không tạo được signed URL: %v", err), common.StatusInternalServerError, err)
	}

	// Lesson chuyển sang trạng thái uploading, lưu đường dẫn object đích
	if resourceType == UploadResourceLesson {
		if _, err := s.lessonService.MarkUploading(ctx, resourceID, storagePath); err != nil {
			return nil, err
		}
	}

	return &InitUploadResult{
		StoragePath: storagePath,
		UploadURL:   uploadURL,
		ExpiresAt:   expiresAt.UnixMilli(),
	}, nil
}
