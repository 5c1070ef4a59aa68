// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "wellness_admin/api/internal/api/auth/dto"
	models "wellness_admin/api/internal/api/auth/models"
	basesvc "wellness_admin/api/internal/api/base/service"
	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/global"
	"wellness_admin/api/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) ([]string, error) {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Trả về các token bị thu hồi để caller xóa khỏi cache xác thực,
	// phiên đăng xuất mất hiệu lực ngay thay vì đợi cache hết hạn.
	revoked := make([]string, 0, 2)
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid == input.Hwid {
			if t.JwtToken != "" {
				revoked = append(revoked, t.JwtToken)
			}
			continue
		}
		newTokens = append(newTokens, t)
	}
	if user.Token != "" {
		revoked = append(revoked, user.Token)
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	if _, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData); err != nil {
		return nil, err
	}
	return revoked, nil
}

// LoginWithFirebase đăng nhập bằng Firebase ID token.
// User đầu tiên đăng nhập khi hệ thống chưa có admin sẽ trở thành admin,
// các user mới sau đó mặc định là viewer.
func (s *UserService) LoginWithFirebase(ctx context.Context, input *authdto.FirebaseLoginInput) (*models.User, error) {
	token, err := utility.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		logrus.WithError(err).Error("LoginWithFirebase: Lỗi verify Firebase ID token")
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Token không hợp lệ", common.StatusUnauthorized, err)
	}

	firebaseUser, err := utility.GetUserByUID(ctx, token.UID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"firebase_uid": token.UID, "error": err.Error()}).Error("LoginWithFirebase: Lỗi lấy thông tin user từ Firebase")
		return nil, err
	}

	// Tìm user đã tồn tại theo email (user được mời trước qua invite chưa có firebaseUid)
	var existingUser *models.User
	if firebaseUser.Email != "" {
		emailFilter := bson.M{"email": firebaseUser.Email}
		if emailUser, emailErr := s.BaseServiceMongoImpl.FindOne(ctx, emailFilter, nil); emailErr == nil {
			existingUser = &emailUser
		} else if !errors.Is(emailErr, common.ErrNotFound) {
			logrus.WithError(emailErr).Error("LoginWithFirebase: Lỗi khi tìm user theo email")
			return nil, emailErr
		}
	}

	if existingUser != nil && existingUser.FirebaseUID != "" && existingUser.FirebaseUID != token.UID {
		logrus.WithFields(logrus.Fields{
			"existing_firebase_uid": existingUser.FirebaseUID,
			"new_firebase_uid":      token.UID,
		}).Warn("LoginWithFirebase: Conflict firebaseUid")
		return nil, common.NewError(common.ErrCodeAuthCredentials,
			fmt.Sprintf("Email '%s' đã được sử dụng bởi tài khoản khác.", firebaseUser.Email),
			common.StatusConflict, nil)
	}

	updateData := &basesvc.UpdateData{Set: make(map[string]interface{})}
	updateData.Set["firebaseUid"] = token.UID
	if firebaseUser.DisplayName != "" {
		updateData.Set["name"] = firebaseUser.DisplayName
	}
	if firebaseUser.PhotoURL != "" {
		updateData.Set["avatarUrl"] = firebaseUser.PhotoURL
	}
	if firebaseUser.Email != "" {
		updateData.Set["email"] = firebaseUser.Email
	}
	if firebaseUser.PhoneNumber != "" {
		updateData.Set["phone"] = firebaseUser.PhoneNumber
	}

	// Gán vai trò khi tạo mới: user đầu tiên là admin, còn lại là viewer.
	// User đã tồn tại giữ nguyên vai trò hiện có.
	if existingUser == nil || existingUser.Role == "" {
		role := models.RoleViewer
		adminCount, countErr := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
		if countErr != nil {
			return nil, countErr
		}
		if adminCount == 0 {
			role = models.RoleAdmin
			logrus.WithField("firebase_uid", token.UID).Info("LoginWithFirebase: Chưa có admin, user này trở thành admin")
		}
		updateData.Set["role"] = role
	}

	var filter bson.M
	if existingUser != nil {
		filter = bson.M{"_id": existingUser.ID}
	} else {
		filter = bson.M{"firebaseUid": token.UID}
	}

	user, err := s.BaseServiceMongoImpl.Upsert(ctx, filter, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"filter": filter, "error": err.Error()}).Error("LoginWithFirebase: Lỗi khi gọi Upsert")
		if errors.Is(err, common.ErrMongoDuplicate) {
			firebaseFilter := bson.M{"firebaseUid": token.UID}
			if found, findErr := s.BaseServiceMongoImpl.FindOne(ctx, firebaseFilter, nil); findErr == nil {
				user = found
			} else {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị khóa", common.StatusForbidden, nil)
	}

	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	idTokenExist := -1
	for i, t := range user.Tokens {
		if t.Hwid == input.Hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: input.Hwid, JwtToken: tokenMap["token"]})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	tokenUpdateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, tokenUpdateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("LoginWithFirebase: Lỗi khi cập nhật token vào user")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email, "role": updatedUser.Role}).Info("LoginWithFirebase: Đăng nhập thành công")
	return &updatedUser, nil
}

// UpdateProfile cập nhật thông tin cá nhân của người dùng đang đăng nhập
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangeInfoInput) (*models.User, error) {
	updateData := &basesvc.UpdateData{Set: make(map[string]interface{})}
	if input.Name != "" {
		updateData.Set["name"] = input.Name
	}
	if len(updateData.Set) == 0 {
		user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}
