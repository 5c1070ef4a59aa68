// Package contentsvc - service quản lý Program và Lesson.
package contentsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "wellness_admin/api/internal/api/base/service"
	models "wellness_admin/api/internal/api/content/models"
	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/global"
)

// ProgramService là cấu trúc chứa các phương thức liên quan đến Program
type ProgramService struct {
	*basesvc.BaseServiceMongoImpl[models.Program]
	lessonService *LessonService
}

// NewProgramService tạo mới ProgramService
func NewProgramService() (*ProgramService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Programs)
	if !exist {
		return nil, fmt.Errorf("failed to get programs collection: %v", common.ErrNotFound)
	}

	lessonService, err := NewLessonService()
	if err != nil {
		return nil, err
	}

	return &ProgramService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Program](collection),
		lessonService:        lessonService,
	}, nil
}

// transitionStatus chuyển trạng thái vòng đời của Program, kèm kiểm tra hợp lệ.
func (s *ProgramService) transitionStatus(ctx context.Context, id primitive.ObjectID, newStatus string, extraSet bson.M) (models.Program, error) {
	var zero models.Program

	program, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if !models.CanTransitionProgram(program.Status, newStatus) {
		return zero, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể chuyển trạng thái chương trình từ '%s' sang '%s'", program.Status, newStatus),
			common.StatusConflict, nil)
	}

	set := bson.M{"status": newStatus}
	for k, v := range extraSet {
		set[k] = v
	}
	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// Publish chuyển Program sang trạng thái published
func (s *ProgramService) Publish(ctx context.Context, id primitive.ObjectID) (models.Program, error) {
	return s.transitionStatus(ctx, id, models.ProgramStatusPublished, bson.M{
		"publishedAt": time.Now().UnixMilli(),
	})
}

// Archive chuyển Program sang trạng thái archived
func (s *ProgramService) Archive(ctx context.Context, id primitive.ObjectID) (models.Program, error) {
	return s.transitionStatus(ctx, id, models.ProgramStatusArchived, bson.M{
		"archivedAt": time.Now().UnixMilli(),
	})
}

// Schedule đặt lịch publish/archive cho Program (timestamp millis, 0 = không đổi)
func (s *ProgramService) Schedule(ctx context.Context, id primitive.ObjectID, publishAt, archiveAt int64) (models.Program, error) {
	var zero models.Program

	if publishAt > 0 && archiveAt > 0 && archiveAt <= publishAt {
		return zero, common.NewError(common.ErrCodeValidationInput,
			"Thời điểm archive phải sau thời điểm publish", common.StatusBadRequest, nil)
	}

	set := bson.M{}
	if publishAt > 0 {
		set["publishAt"] = publishAt
	}
	if archiveAt > 0 {
		set["archiveAt"] = archiveAt
	}
	if len(set) == 0 {
		return zero, common.NewError(common.ErrCodeValidationInput,
			"Cần ít nhất một trong hai thời điểm publishAt/archiveAt", common.StatusBadRequest, nil)
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// ReorderLessons ghi lại thứ tự lesson của Program: cập nhật program.lessonIds
// theo danh sách mới và ghi field order của từng lesson theo vị trí trong danh sách.
// Lesson chưa thuộc Program nào sẽ được gắn vào Program này; lesson đang thuộc
// Program khác bị từ chối.
func (s *ProgramService) ReorderLessons(ctx context.Context, programID primitive.ObjectID, lessonIDs []primitive.ObjectID) (models.Program, error) {
	var zero models.Program

	if _, err := s.FindOneById(ctx, programID); err != nil {
		return zero, err
	}

	lessons, err := s.lessonService.FindManyByIds(ctx, lessonIDs)
	if err != nil {
		return zero, err
	}
	if len(lessons) != len(lessonIDs) {
		return zero, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("Có lesson không tồn tại: nhận %d, tìm thấy %d", len(lessonIDs), len(lessons)),
			common.StatusBadRequest, nil)
	}
	for _, lesson := range lessons {
		if !lesson.ProgramID.IsZero() && lesson.ProgramID != programID {
			return zero, common.NewError(common.ErrCodeBusinessState,
				fmt.Sprintf("Lesson %s đang thuộc chương trình khác", lesson.ID.Hex()),
				common.StatusConflict, nil)
		}
	}

	for index, lessonID := range lessonIDs {
		if _, err := s.lessonService.UpdateById(ctx, lessonID, &basesvc.UpdateData{Set: bson.M{
			"order":     index,
			"programId": programID,
		}}); err != nil {
			return zero, err
		}
	}

	return s.UpdateById(ctx, programID, &basesvc.UpdateData{Set: bson.M{"lessonIds": lessonIDs}})
}
