// Package models - model bảng câu hỏi onboarding và luật gợi ý chương trình.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của OnboardingConfig.
const (
	ConfigStatusDraft    = "draft"
	ConfigStatusActive   = "active"
	ConfigStatusArchived = "archived"
)

// CanDeleteConfig kiểm tra một config có được phép xóa theo trạng thái không.
// Config đang active không được xóa: phải activate config khác (hoặc archive)
// trước, để app luôn còn một bảng câu hỏi dùng được.
func CanDeleteConfig(status string) bool {
	return status != ConfigStatusActive
}

// Loại câu hỏi onboarding.
const (
	QuestionTypeSingleChoice = "single_choice"
	QuestionTypeMultiChoice  = "multi_choice"
	QuestionTypeScale        = "scale"
	QuestionTypeText         = "text"
)

// Toán tử so sánh trong điều kiện của luật gợi ý.
const (
	OperatorEquals      = "equals"
	OperatorNotEquals   = "not_equals"
	OperatorContains    = "contains"
	OperatorNotContains = "not_contains"
	OperatorGreaterThan = "greater_than"
	OperatorLessThan    = "less_than"
)

// Question là một câu hỏi trong bảng onboarding, thứ tự theo vị trí trong mảng.
type Question struct {
	ID       string   `json:"id" bson:"id"`
	Type     string   `json:"type" bson:"type"`
	Text     string   `json:"text" bson:"text"`
	Options  []string `json:"options,omitempty" bson:"options,omitempty"`
	Required bool     `json:"required,omitempty" bson:"required,omitempty"`
}

// InfoScreen là một màn hình giới thiệu chèn giữa các câu hỏi.
type InfoScreen struct {
	Title     string `json:"title" bson:"title"`
	Body      string `json:"body,omitempty" bson:"body,omitempty"`
	ImagePath string `json:"imagePath,omitempty" bson:"imagePath,omitempty"`
	Position  int    `json:"position" bson:"position"`
}

// Condition là một điều kiện so khớp câu trả lời của một câu hỏi.
type Condition struct {
	QuestionID string      `json:"questionId" bson:"questionId"`
	Operator   string      `json:"operator" bson:"operator"`
	Value      interface{} `json:"value" bson:"value"`
}

// Rule là một luật gợi ý: khớp khi TẤT CẢ điều kiện cùng khớp.
type Rule struct {
	ID         string               `json:"id" bson:"id"`
	Priority   int                  `json:"priority" bson:"priority"`
	Conditions []Condition          `json:"conditions" bson:"conditions"`
	ProgramIDs []primitive.ObjectID `json:"programIds" bson:"programIds"`
}

// OnboardingConfig là một phiên bản bảng câu hỏi onboarding.
// Tại một thời điểm chỉ có tối đa một config ở trạng thái active.
type OnboardingConfig struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Status      string             `json:"status" bson:"status" index:"single:1"`
	Version     int                `json:"version" bson:"version" index:"single:-1"`
	Questions   []Question         `json:"questions,omitempty" bson:"questions,omitempty"`
	InfoScreens []InfoScreen       `json:"infoScreens,omitempty" bson:"infoScreens,omitempty"`
	Rules       []Rule             `json:"rules,omitempty" bson:"rules,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
