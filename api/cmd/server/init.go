package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"wellness_admin/api/config"
	auditmodels "wellness_admin/api/internal/api/audit/models"
	authmodels "wellness_admin/api/internal/api/auth/models"
	contentmodels "wellness_admin/api/internal/api/content/models"
	onboardingmodels "wellness_admin/api/internal/api/onboarding/models"
	"wellness_admin/api/internal/database"
	"wellness_admin/api/internal/global"
	"wellness_admin/api/internal/utility"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.Programs = "content_programs"
	global.MongoDB_ColNames.Lessons = "content_lessons"
	global.MongoDB_ColNames.OnboardingConfigs = "onboarding_configs"
	global.MongoDB_ColNames.AuditLogs = "audit_logs"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, exists, user_role, media_type, rule_operator)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo database và các collection nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo struct tag `index`
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Programs), contentmodels.Program{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Lessons), contentmodels.Lesson{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.OnboardingConfigs), onboardingmodels.OnboardingConfig{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AuditLogs), auditmodels.AuditLog{})
}

// initFirebase khởi tạo Firebase Admin SDK (auth + storage bucket cho media upload)
func initFirebase() {
	cfg := global.ServerConfig

	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath, cfg.StorageBucket)
	if err != nil {
		// Không fatal, chỉ log để hệ thống vẫn chạy được (login và upload sẽ fail)
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		return
	}

	logrus.Info("Firebase initialized successfully")
}
