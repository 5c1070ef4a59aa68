// Package onboardingsvc - service quản lý bảng câu hỏi onboarding và gợi ý chương trình.
package onboardingsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "wellness_admin/api/internal/api/base/service"
	models "wellness_admin/api/internal/api/onboarding/models"
	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/global"
)

// OnboardingConfigService là cấu trúc chứa các phương thức liên quan đến OnboardingConfig
type OnboardingConfigService struct {
	*basesvc.BaseServiceMongoImpl[models.OnboardingConfig]
}

// NewOnboardingConfigService tạo mới OnboardingConfigService
func NewOnboardingConfigService() (*OnboardingConfigService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.OnboardingConfigs)
	if !exist {
		return nil, fmt.Errorf("failed to get onboarding_configs collection: %v", common.ErrNotFound)
	}

	return &OnboardingConfigService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.OnboardingConfig](collection),
	}, nil
}

// Activate kích hoạt một config và archive mọi config đang active khác.
// Config đã archived không được kích hoạt lại.
func (s *OnboardingConfigService) Activate(ctx context.Context, id primitive.ObjectID) (models.OnboardingConfig, error) {
	var zero models.OnboardingConfig

	config, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if config.Status == models.ConfigStatusActive {
		return config, nil
	}
	if config.Status != models.ConfigStatusDraft {
		return zero, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể kích hoạt config ở trạng thái '%s'", config.Status),
			common.StatusConflict, nil)
	}

	// Archive các config đang active trước khi kích hoạt config mới
	if _, err := s.UpdateMany(ctx,
		bson.M{"status": models.ConfigStatusActive, "_id": bson.M{"$ne": id}},
		&basesvc.UpdateData{Set: bson.M{"status": models.ConfigStatusArchived}}, nil); err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: bson.M{"status": models.ConfigStatusActive}})
}

// GetActive trả về config đang active
func (s *OnboardingConfigService) GetActive(ctx context.Context) (models.OnboardingConfig, error) {
	return s.FindOne(ctx, bson.M{"status": models.ConfigStatusActive}, nil)
}

// Recommend chạy bộ câu trả lời qua các luật của config và trả về danh sách
// programId của các luật khớp, theo thứ tự priority tăng dần, đã khử trùng lặp.
func (s *OnboardingConfigService) Recommend(ctx context.Context, configID primitive.ObjectID, answers map[string]interface{}) ([]primitive.ObjectID, error) {
	config, err := s.FindOneById(ctx, configID)
	if err != nil {
		return nil, err
	}

	programIDs := make([]primitive.ObjectID, 0)
	seen := make(map[primitive.ObjectID]bool)
	for _, rule := range MatchingRules(config.Rules, answers) {
		for _, programID := range rule.ProgramIDs {
			if !seen[programID] {
				seen[programID] = true
				programIDs = append(programIDs, programID)
			}
		}
	}
	return programIDs, nil
}
