// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng.
// Token chứa token xác thực mới nhất của người dùng; chỉ lưu trong database,
// không bao giờ serialize ra JSON (login trả token qua field riêng của response).
// Tokens chứa danh sách các token, mỗi thiết bị khác nhau sẽ có một token riêng để xác thực (bằng hwid).
// Role là vai trò tĩnh của user: admin | teacher | viewer.
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
	FirebaseUID string             `json:"firebaseUid,omitempty" bson:"firebaseUid,omitempty" index:"unique,sparse"`
	Role        string             `json:"role" bson:"role" index:"single:1"`
	AvatarURL   string             `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Token       string             `json:"-" bson:"token,omitempty"`
	Tokens      []Token            `json:"-" bson:"tokens,omitempty"`
	IsBlock     bool               `json:"isBlock" bson:"isBlock"`
	BlockNote   string             `json:"-" bson:"blockNote,omitempty"`
	IsFake      bool               `json:"-" bson:"isFake,omitempty" index:"single:1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
