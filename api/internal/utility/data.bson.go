package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct thành map[string]interface{} theo bson tag.
// Dùng cho các thao tác insert/update để có thể thêm field động (timestamps).
func ToMap(s interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi marshal struct sang BSON: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("lỗi khi unmarshal BSON sang map: %w", err)
	}

	return result, nil
}
