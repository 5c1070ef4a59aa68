// Package auditsvc - service ghi và đọc nhật ký thao tác.
package auditsvc

import (
	"context"
	"fmt"
	"reflect"
	"time"

	models "wellness_admin/api/internal/api/audit/models"
	basesvc "wellness_admin/api/internal/api/base/service"
	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/global"
	"wellness_admin/api/internal/logger"
	"wellness_admin/api/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLogService là cấu trúc chứa các phương thức liên quan đến nhật ký thao tác
type AuditLogService struct {
	*basesvc.BaseServiceMongoImpl[models.AuditLog]
}

// NewAuditLogService tạo mới AuditLogService
func NewAuditLogService() (*AuditLogService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AuditLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get audit_logs collection: %v", common.ErrNotFound)
	}

	return &AuditLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AuditLog](collection),
	}, nil
}

// ComputeChanges tính diff nông giữa hai snapshot của một tài nguyên.
// - before nil: tài nguyên mới được tạo, trả về {"created": after}
// - after nil: tài nguyên bị xóa, trả về {"deleted": before}
// - còn lại: so sánh từng key cấp một, key thay đổi trả về {"before": ..., "after": ...}
func ComputeChanges(before, after map[string]interface{}) map[string]interface{} {
	if before == nil {
		return map[string]interface{}{"created": after}
	}
	if after == nil {
		return map[string]interface{}{"deleted": before}
	}

	changes := make(map[string]interface{})
	for key, beforeVal := range before {
		afterVal, exists := after[key]
		if !exists {
			changes[key] = map[string]interface{}{"before": beforeVal, "after": nil}
			continue
		}
		if !reflect.DeepEqual(beforeVal, afterVal) {
			changes[key] = map[string]interface{}{"before": beforeVal, "after": afterVal}
		}
	}
	for key, afterVal := range after {
		if _, exists := before[key]; !exists {
			changes[key] = map[string]interface{}{"before": nil, "after": afterVal}
		}
	}
	return changes
}

// Actor gom thông tin người thao tác và request kèm theo một bản ghi nhật ký.
type Actor struct {
	ID        primitive.ObjectID
	Email     string
	IP        string
	UserAgent string
	RequestID string
}

// Record ghi một bản ghi nhật ký ở background (best-effort).
// Việc ghi nhật ký không được chặn hay làm fail thao tác chính:
// chạy trong goroutine riêng với context timeout riêng, lỗi chỉ được log.
func (s *AuditLogService) Record(actor Actor, action string, resourceType string, resourceID string, before, after map[string]interface{}) {
	entry := models.AuditLog{
		ActorID:      actor.ID,
		ActorEmail:   actor.Email,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Changes:      ComputeChanges(before, after),
		IP:           actor.IP,
		UserAgent:    actor.UserAgent,
		RequestID:    actor.RequestID,
	}

	utility.GoProtect(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := s.BaseServiceMongoImpl.InsertOne(ctx, entry); err != nil {
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"action":        action,
				"resource_type": resourceType,
				"resource_id":   resourceID,
				"error":         err.Error(),
			}).Error("AuditLog: Lỗi ghi nhật ký thao tác")
			return
		}

		logger.GetAuditLogger().WithFields(logrus.Fields{
			"actor_id":      actor.ID.Hex(),
			"actor_email":   actor.Email,
			"action":        action,
			"resource_type": resourceType,
			"resource_id":   resourceID,
		}).Info("Đã ghi nhật ký thao tác")
	})
}
