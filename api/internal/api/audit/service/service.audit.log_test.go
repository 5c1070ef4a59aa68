package auditsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeChanges(t *testing.T) {
	t.Run("tạo mới trả về created với snapshot sau", func(t *testing.T) {
		after := map[string]interface{}{"title": "Thiền buổi sáng", "status": "draft"}
		changes := ComputeChanges(nil, after)
		assert.Equal(t, map[string]interface{}{"created": after}, changes)
	})

	t.Run("xóa trả về deleted với snapshot trước", func(t *testing.T) {
		before := map[string]interface{}{"title": "Thiền buổi sáng"}
		changes := ComputeChanges(before, nil)
		assert.Equal(t, map[string]interface{}{"deleted": before}, changes)
	})

	t.Run("cập nhật trả về before/after cho từng key thay đổi", func(t *testing.T) {
		before := map[string]interface{}{"title": "Old", "status": "draft"}
		after := map[string]interface{}{"title": "New", "status": "draft"}
		changes := ComputeChanges(before, after)

		assert.Len(t, changes, 1)
		assert.Equal(t, map[string]interface{}{"before": "Old", "after": "New"}, changes["title"])
	})

	t.Run("key bị gỡ khỏi snapshot được ghi nhận", func(t *testing.T) {
		before := map[string]interface{}{"title": "Old", "note": "xyz"}
		after := map[string]interface{}{"title": "Old"}
		changes := ComputeChanges(before, after)

		assert.Equal(t, map[string]interface{}{"before": "xyz", "after": nil}, changes["note"])
	})

	t.Run("key mới xuất hiện được ghi nhận", func(t *testing.T) {
		before := map[string]interface{}{"title": "Old"}
		after := map[string]interface{}{"title": "Old", "category": "yoga"}
		changes := ComputeChanges(before, after)

		assert.Equal(t, map[string]interface{}{"before": nil, "after": "yoga"}, changes["category"])
	})

	t.Run("không thay đổi trả về map rỗng", func(t *testing.T) {
		snapshot := map[string]interface{}{"title": "Same", "order": 3}
		changes := ComputeChanges(snapshot, snapshot)
		assert.Empty(t, changes)
	})

	t.Run("diff nông: giá trị lồng nhau so sánh nguyên khối", func(t *testing.T) {
		before := map[string]interface{}{"renditions": map[string]interface{}{"hd": "a.mp4"}}
		after := map[string]interface{}{"renditions": map[string]interface{}{"hd": "b.mp4"}}
		changes := ComputeChanges(before, after)

		assert.Len(t, changes, 1)
		entry := changes["renditions"].(map[string]interface{})
		assert.Equal(t, map[string]interface{}{"hd": "a.mp4"}, entry["before"])
		assert.Equal(t, map[string]interface{}{"hd": "b.mp4"}, entry["after"])
	})
}
