package onboardingsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	models "wellness_admin/api/internal/api/onboarding/models"
)

func TestMatchCondition(t *testing.T) {
	t.Run("equals khớp chuỗi", func(t *testing.T) {
		cond := models.Condition{QuestionID: "q_goal", Operator: models.OperatorEquals, Value: "sleep"}
		assert.True(t, MatchCondition(cond, map[string]interface{}{"q_goal": "sleep"}))
		assert.False(t, MatchCondition(cond, map[string]interface{}{"q_goal": "focus"}))
	})

	t.Run("equals khớp số giữa các kiểu khác nhau", func(t *testing.T) {
		cond := models.Condition{QuestionID: "q_age", Operator: models.OperatorEquals, Value: float64(30)}
		assert.True(t, MatchCondition(cond, map[string]interface{}{"q_age": 30}))
		assert.True(t, MatchCondition(cond, map[string]interface{}{"q_age": int64(30)}))
	})

	t.Run("not_equals không khớp khi thiếu câu trả lời", func(t *testing.T) {
		cond := models.Condition{QuestionID: "q_goal", Operator: models.OperatorNotEquals, Value: "sleep"}
		assert.False(t, MatchCondition(cond, map[string]interface{}{}))
		assert.False(t, MatchCondition(cond, map[string]interface{}{"q_goal": nil}))
		assert.True(t, MatchCondition(cond, map[string]interface{}{"q_goal": "focus"}))
	})

	t.Run("contains trên câu trả lời nhiều lựa chọn", func(t *testing.T) {
		cond := models.Condition{QuestionID: "q_level", Operator: models.OperatorContains, Value: "beginner"}
		answers := map[string]interface{}{"q_level": []interface{}{"beginner", "flexible"}}
		assert.True(t, MatchCondition(cond, answers))

		answers = map[string]interface{}{"q_level": []interface{}{"advanced"}}
		assert.False(t, MatchCondition(cond, answers))
	})

	t.Run("contains trên chuỗi là substring", func(t *testing.T) {
		cond := models.Condition{QuestionID: "q_note", Operator: models.OperatorContains, Value: "ngủ"}
		assert.True(t, MatchCondition(cond, map[string]interface{}{"q_note": "khó ngủ về đêm"}))
	})

	t.Run("not_contains không khớp khi thiếu câu trả lời", func(t *testing.T) {
		cond := models.Condition{QuestionID: "q_level", Operator: models.OperatorNotContains, Value: "beginner"}
		assert.False(t, MatchCondition(cond, map[string]interface{}{}))
		assert.True(t, MatchCondition(cond, map[string]interface{}{"q_level": []interface{}{"advanced"}}))
	})

	t.Run("greater_than so sánh số", func(t *testing.T) {
		cond := models.Condition{QuestionID: "q_minutes", Operator: models.OperatorGreaterThan, Value: float64(5)}
		assert.False(t, MatchCondition(cond, map[string]interface{}{"q_minutes": 3}))
		assert.False(t, MatchCondition(cond, map[string]interface{}{"q_minutes": 5}))
		assert.True(t, MatchCondition(cond, map[string]interface{}{"q_minutes": 10}))
	})

	t.Run("less_than với câu trả lời không phải số", func(t *testing.T) {
		cond := models.Condition{QuestionID: "q_minutes", Operator: models.OperatorLessThan, Value: float64(5)}
		assert.False(t, MatchCondition(cond, map[string]interface{}{"q_minutes": "nhiều"}))
	})

	t.Run("operator lạ không khớp", func(t *testing.T) {
		cond := models.Condition{QuestionID: "q_goal", Operator: "regex", Value: ".*"}
		assert.False(t, MatchCondition(cond, map[string]interface{}{"q_goal": "sleep"}))
	})
}

func TestMatchRule(t *testing.T) {
	t.Run("tất cả điều kiện phải cùng khớp", func(t *testing.T) {
		rule := models.Rule{Conditions: []models.Condition{
			{QuestionID: "q_goal", Operator: models.OperatorEquals, Value: "sleep"},
			{QuestionID: "q_minutes", Operator: models.OperatorGreaterThan, Value: float64(5)},
		}}
		answers := map[string]interface{}{"q_goal": "sleep", "q_minutes": 10}
		assert.True(t, MatchRule(rule, answers))

		answers["q_minutes"] = 3
		assert.False(t, MatchRule(rule, answers))
	})

	t.Run("luật không có điều kiện luôn khớp", func(t *testing.T) {
		assert.True(t, MatchRule(models.Rule{}, map[string]interface{}{}))
	})
}

func TestMatchingRules(t *testing.T) {
	rules := []models.Rule{
		{ID: "r_default", Priority: 100},
		{ID: "r_sleep", Priority: 1, Conditions: []models.Condition{
			{QuestionID: "q_goal", Operator: models.OperatorEquals, Value: "sleep"},
		}},
		{ID: "r_focus", Priority: 2, Conditions: []models.Condition{
			{QuestionID: "q_goal", Operator: models.OperatorEquals, Value: "focus"},
		}},
	}

	t.Run("chỉ trả về luật khớp, sắp theo priority tăng dần", func(t *testing.T) {
		matched := MatchingRules(rules, map[string]interface{}{"q_goal": "sleep"})
		assert.Len(t, matched, 2)
		assert.Equal(t, "r_sleep", matched[0].ID)
		assert.Equal(t, "r_default", matched[1].ID)
	})

	t.Run("không có câu trả lời thì chỉ luật mặc định khớp", func(t *testing.T) {
		matched := MatchingRules(rules, map[string]interface{}{})
		assert.Len(t, matched, 1)
		assert.Equal(t, "r_default", matched[0].ID)
	})
}
