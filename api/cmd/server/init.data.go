package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "wellness_admin/api/internal/api/auth/models"
	authsvc "wellness_admin/api/internal/api/auth/service"
	basesvc "wellness_admin/api/internal/api/base/service"
	"wellness_admin/api/internal/global"
	"wellness_admin/api/internal/logger"
	"wellness_admin/api/internal/utility"
)

// InitDefaultData khởi tạo dữ liệu mặc định khi server khởi động.
// Nếu có FIREBASE_ADMIN_UID, user tương ứng (phải tồn tại trong Firebase
// Authentication) được gán vai trò admin. Nếu không, user đầu tiên đăng nhập
// sẽ tự động trở thành admin.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if global.ServerConfig.FirebaseAdminUID == "" {
		log.Info("FIREBASE_ADMIN_UID not set, user đầu tiên đăng nhập sẽ tự động trở thành admin")
		return
	}

	if err := initAdminUser(global.ServerConfig.FirebaseAdminUID); err != nil {
		log.Warnf("Failed to initialize admin user from Firebase UID: %v", err)
		log.Info("User đầu tiên đăng nhập sẽ tự động trở thành admin")
		return
	}
	log.Info("Admin user initialized successfully from Firebase UID")
}

// initAdminUser upsert user admin từ Firebase UID
func initAdminUser(firebaseUID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	firebaseUser, err := utility.GetUserByUID(ctx, firebaseUID)
	if err != nil {
		return err
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		return err
	}

	set := bson.M{
		"firebaseUid": firebaseUID,
		"role":        authmodels.RoleAdmin,
	}
	if firebaseUser.Email != "" {
		set["email"] = firebaseUser.Email
	}
	if firebaseUser.DisplayName != "" {
		set["name"] = firebaseUser.DisplayName
	}

	_, err = userService.Upsert(ctx, bson.M{"firebaseUid": firebaseUID}, &basesvc.UpdateData{Set: set})
	return err
}
