package global

import (
	"wellness_admin/api/config"
	"wellness_admin/api/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users             string // Tên collection cho người dùng
	Programs          string // Tên collection cho chương trình (curriculum)
	Lessons           string // Tên collection cho bài học
	OnboardingConfigs string // Tên collection cho bộ câu hỏi onboarding
	AuditLogs         string // Tên collection cho audit log
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{} // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
