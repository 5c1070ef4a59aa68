// Package dto - input cho domain onboarding.
package dto

import (
	onboardingmodels "wellness_admin/api/internal/api/onboarding/models"
	"wellness_admin/api/internal/utility"
)

// QuestionInput một câu hỏi trong bảng onboarding
type QuestionInput struct {
	ID       string   `json:"id" validate:"required,no_xss"`
	Type     string   `json:"type" validate:"required,oneof=single_choice multi_choice scale text"`
	Text     string   `json:"text" validate:"required,no_xss"`
	Options  []string `json:"options,omitempty" validate:"omitempty,dive,no_xss"`
	Required bool     `json:"required,omitempty"`
}

// InfoScreenInput một màn hình giới thiệu
type InfoScreenInput struct {
	Title     string `json:"title" validate:"required,no_xss"`
	Body      string `json:"body,omitempty" validate:"omitempty,no_xss"`
	ImagePath string `json:"imagePath,omitempty"`
	Position  int    `json:"position" validate:"gte=0"`
}

// ConditionInput một điều kiện so khớp câu trả lời
type ConditionInput struct {
	QuestionID string      `json:"questionId" validate:"required"`
	Operator   string      `json:"operator" validate:"required,rule_operator"`
	Value      interface{} `json:"value" validate:"required"`
}

// RuleInput một luật gợi ý chương trình
type RuleInput struct {
	ID         string           `json:"id" validate:"required"`
	Priority   int              `json:"priority" validate:"gte=0"`
	Conditions []ConditionInput `json:"conditions" validate:"omitempty,dive"`
	ProgramIDs []string         `json:"programIds" validate:"required,min=1,dive,len=24"`
}

// OnboardingConfigCreateInput dữ liệu tạo mới OnboardingConfig
type OnboardingConfigCreateInput struct {
	Title       string            `json:"title" validate:"required,no_xss"`
	Description string            `json:"description,omitempty" validate:"omitempty,no_xss"`
	Version     int               `json:"version,omitempty" validate:"omitempty,gte=1"`
	Questions   []QuestionInput   `json:"questions,omitempty" validate:"omitempty,dive"`
	InfoScreens []InfoScreenInput `json:"infoScreens,omitempty" validate:"omitempty,dive"`
	Rules       []RuleInput       `json:"rules,omitempty" validate:"omitempty,dive"`
}

// OnboardingConfigUpdateInput dữ liệu cập nhật OnboardingConfig (partial update)
type OnboardingConfigUpdateInput struct {
	Title       string            `json:"title,omitempty" validate:"omitempty,no_xss"`
	Description string            `json:"description,omitempty" validate:"omitempty,no_xss"`
	Questions   []QuestionInput   `json:"questions,omitempty" validate:"omitempty,dive"`
	InfoScreens []InfoScreenInput `json:"infoScreens,omitempty" validate:"omitempty,dive"`
	Rules       []RuleInput       `json:"rules,omitempty" validate:"omitempty,dive"`
}

// RecommendInput bộ câu trả lời onboarding cần chạy qua các luật gợi ý
type RecommendInput struct {
	Answers map[string]interface{} `json:"answers" validate:"required"`
}

// ToQuestions chuyển danh sách QuestionInput sang model
func ToQuestions(inputs []QuestionInput) []onboardingmodels.Question {
	questions := make([]onboardingmodels.Question, len(inputs))
	for i, input := range inputs {
		questions[i] = onboardingmodels.Question{
			ID:       input.ID,
			Type:     input.Type,
			Text:     input.Text,
			Options:  input.Options,
			Required: input.Required,
		}
	}
	return questions
}

// ToRules chuyển danh sách RuleInput sang model
func ToRules(inputs []RuleInput) []onboardingmodels.Rule {
	rules := make([]onboardingmodels.Rule, len(inputs))
	for i, input := range inputs {
		conditions := make([]onboardingmodels.Condition, len(input.Conditions))
		for j, condition := range input.Conditions {
			conditions[j] = onboardingmodels.Condition{
				QuestionID: condition.QuestionID,
				Operator:   condition.Operator,
				Value:      condition.Value,
			}
		}
		rules[i] = onboardingmodels.Rule{
			ID:         input.ID,
			Priority:   input.Priority,
			Conditions: conditions,
			ProgramIDs: utility.StringArray2ObjectIDArray(input.ProgramIDs),
		}
	}
	return rules
}

// ToInfoScreens chuyển danh sách InfoScreenInput sang model
func ToInfoScreens(inputs []InfoScreenInput) []onboardingmodels.InfoScreen {
	screens := make([]onboardingmodels.InfoScreen, len(inputs))
	for i, input := range inputs {
		screens[i] = onboardingmodels.InfoScreen{
			Title:     input.Title,
			Body:      input.Body,
			ImagePath: input.ImagePath,
			Position:  input.Position,
		}
	}
	return screens
}
