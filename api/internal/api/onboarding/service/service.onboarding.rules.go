package onboardingsvc

import (
	"encoding/json"
	"sort"
	"strings"

	models "wellness_admin/api/internal/api/onboarding/models"
)

// toFloat64 ép một giá trị trả lời/điều kiện về float64 để so sánh số học.
// Hỗ trợ các kiểu số Go, json.Number và chuỗi số.
func toFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		var f float64
		if err := json.Unmarshal([]byte(v), &f); err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// valuesEqual so sánh hai giá trị: ưu tiên so sánh số học khi cả hai là số,
// còn lại so sánh chuỗi biểu diễn qua json.
func valuesEqual(a, b interface{}) bool {
	if fa, ok := toFloat64(a); ok {
		if fb, ok := toFloat64(b); ok {
			return fa == fb
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return sa == sb
		}
	}
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(ja) == string(jb)
}

// answerContains kiểm tra câu trả lời có chứa giá trị điều kiện không:
// mảng thì kiểm tra phần tử, chuỗi thì kiểm tra substring.
func answerContains(answer, value interface{}) bool {
	switch a := answer.(type) {
	case []interface{}:
		for _, item := range a {
			if valuesEqual(item, value) {
				return true
			}
		}
		return false
	case []string:
		for _, item := range a {
			if valuesEqual(item, value) {
				return true
			}
		}
		return false
	case string:
		if s, ok := value.(string); ok {
			return strings.Contains(a, s)
		}
		return false
	default:
		return false
	}
}

// MatchCondition đánh giá một điều kiện với bộ câu trả lời.
// Câu hỏi chưa được trả lời thì điều kiện không khớp, kể cả not_equals/not_contains.
func MatchCondition(condition models.Condition, answers map[string]interface{}) bool {
	answer, ok := answers[condition.QuestionID]
	if !ok || answer == nil {
		return false
	}

	switch condition.Operator {
	case models.OperatorEquals:
		return valuesEqual(answer, condition.Value)
	case models.OperatorNotEquals:
		return !valuesEqual(answer, condition.Value)
	case models.OperatorContains:
		return answerContains(answer, condition.Value)
	case models.OperatorNotContains:
		return !answerContains(answer, condition.Value)
	case models.OperatorGreaterThan:
		fa, okA := toFloat64(answer)
		fv, okV := toFloat64(condition.Value)
		return okA && okV && fa > fv
	case models.OperatorLessThan:
		fa, okA := toFloat64(answer)
		fv, okV := toFloat64(condition.Value)
		return okA && okV && fa < fv
	default:
		return false
	}
}

// MatchRule đánh giá một luật: khớp khi tất cả điều kiện cùng khớp (AND).
// Luật không có điều kiện nào thì luôn khớp (luật mặc định).
func MatchRule(rule models.Rule, answers map[string]interface{}) bool {
	for _, condition := range rule.Conditions {
		if !MatchCondition(condition, answers) {
			return false
		}
	}
	return true
}

// MatchingRules trả về các luật khớp với bộ câu trả lời,
// sắp xếp theo priority tăng dần (số nhỏ ưu tiên trước).
func MatchingRules(rules []models.Rule, answers map[string]interface{}) []models.Rule {
	matched := make([]models.Rule, 0)
	for _, rule := range rules {
		if MatchRule(rule, answers) {
			matched = append(matched, rule)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority < matched[j].Priority
	})
	return matched
}
