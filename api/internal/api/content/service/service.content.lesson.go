package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "wellness_admin/api/internal/api/base/service"
	models "wellness_admin/api/internal/api/content/models"
	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/global"
)

// LessonService là cấu trúc chứa các phương thức liên quan đến Lesson
type LessonService struct {
	*basesvc.BaseServiceMongoImpl[models.Lesson]
}

// NewLessonService tạo mới LessonService
func NewLessonService() (*LessonService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Lessons)
	if !exist {
		return nil, fmt.Errorf("failed to get lessons collection: %v", common.ErrNotFound)
	}

	return &LessonService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Lesson](collection),
	}, nil
}

// transitionStatus chuyển trạng thái media của Lesson, kèm kiểm tra hợp lệ.
func (s *LessonService) transitionStatus(ctx context.Context, id primitive.ObjectID, newStatus string, extraSet bson.M) (models.Lesson, error) {
	var zero models.Lesson

	lesson, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if !models.CanTransitionLesson(lesson.Status, newStatus) {
		return zero, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể chuyển trạng thái bài học từ '%s' sang '%s'", lesson.Status, newStatus),
			common.StatusConflict, nil)
	}

	set := bson.M{"status": newStatus}
	for k, v := range extraSet {
		set[k] = v
	}
	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// MarkUploading đánh dấu Lesson đang được upload media, lưu đường dẫn object đích
func (s *LessonService) MarkUploading(ctx context.Context, id primitive.ObjectID, storagePath string) (models.Lesson, error) {
	set := bson.M{}
	if storagePath != "" {
		set["storagePath"] = storagePath
	}
	return s.transitionStatus(ctx, id, models.LessonStatusUploading, set)
}

// MarkProcessing đánh dấu media của Lesson đang được transcode
func (s *LessonService) MarkProcessing(ctx context.Context, id primitive.ObjectID) (models.Lesson, error) {
	return s.transitionStatus(ctx, id, models.LessonStatusProcessing, nil)
}

// MarkReady đánh dấu media đã transcode xong, lưu các rendition kết quả
func (s *LessonService) MarkReady(ctx context.Context, id primitive.ObjectID, durationSec int64, renditions []models.Rendition) (models.Lesson, error) {
	set := bson.M{"renditions": renditions}
	if durationSec > 0 {
		set["durationSec"] = durationSec
	}
	return s.transitionStatus(ctx, id, models.LessonStatusReady, set)
}

// MarkFailed đánh dấu transcode thất bại, lý do lưu vào failReason
func (s *LessonService) MarkFailed(ctx context.Context, id primitive.ObjectID, reason string) (models.Lesson, error) {
	return s.transitionStatus(ctx, id, models.LessonStatusFailed, bson.M{"failReason": reason})
}
