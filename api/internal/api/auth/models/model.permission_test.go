package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHasPermission(t *testing.T) {
	t.Run("admin có mọi quyền", func(t *testing.T) {
		assert.True(t, HasPermission(RoleAdmin, PermUserDelete))
		assert.True(t, HasPermission(RoleAdmin, PermProgramInsert))
		assert.True(t, HasPermission(RoleAdmin, PermCommandRun))
		assert.True(t, HasPermission(RoleAdmin, PermAuditLogRead))
	})

	t.Run("teacher không được quản lý user", func(t *testing.T) {
		assert.False(t, HasPermission(RoleTeacher, PermUserDelete))
		assert.False(t, HasPermission(RoleTeacher, PermUserBlock))
		assert.False(t, HasPermission(RoleTeacher, PermUserSetRole))
		assert.False(t, HasPermission(RoleTeacher, PermCommandRun))
	})

	t.Run("teacher tạo và sửa được nội dung", func(t *testing.T) {
		assert.True(t, HasPermission(RoleTeacher, PermProgramInsert))
		assert.True(t, HasPermission(RoleTeacher, PermProgramUpdate))
		assert.True(t, HasPermission(RoleTeacher, PermLessonInsert))
		assert.True(t, HasPermission(RoleTeacher, PermMediaUpload))
	})

	t.Run("viewer chỉ đọc", func(t *testing.T) {
		assert.False(t, HasPermission(RoleViewer, PermProgramInsert))
		assert.False(t, HasPermission(RoleViewer, PermProgramUpdate))
		assert.False(t, HasPermission(RoleViewer, PermMediaUpload))
		assert.True(t, HasPermission(RoleViewer, PermProgramRead))
		assert.True(t, HasPermission(RoleViewer, PermLessonRead))
	})

	t.Run("quyền rỗng chỉ cần đăng nhập", func(t *testing.T) {
		assert.True(t, HasPermission(RoleViewer, ""))
		assert.True(t, HasPermission(RoleTeacher, ""))
	})

	t.Run("vai trò không hợp lệ không có quyền", func(t *testing.T) {
		assert.False(t, HasPermission("superuser", PermProgramRead))
	})
}

func TestCanEditResource(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	t.Run("admin sửa được mọi tài nguyên", func(t *testing.T) {
		assert.True(t, CanEditResource(RoleAdmin, ResourceTypeProgram, other, owner))
		assert.True(t, CanEditResource(RoleAdmin, ResourceTypeLesson, other, owner))
	})

	t.Run("teacher chỉ sửa được tài nguyên của mình", func(t *testing.T) {
		assert.True(t, CanEditResource(RoleTeacher, ResourceTypeProgram, owner, owner))
		assert.False(t, CanEditResource(RoleTeacher, ResourceTypeProgram, other, owner))
	})

	t.Run("teacher không upload media vào lesson của người khác", func(t *testing.T) {
		assert.True(t, CanEditResource(RoleTeacher, ResourceTypeLesson, owner, owner))
		assert.False(t, CanEditResource(RoleTeacher, ResourceTypeLesson, other, owner))
	})

	t.Run("viewer không sửa được gì", func(t *testing.T) {
		assert.False(t, CanEditResource(RoleViewer, ResourceTypeLesson, owner, owner))
	})

	t.Run("actor rỗng không sửa được", func(t *testing.T) {
		assert.False(t, CanEditResource(RoleTeacher, ResourceTypeLesson, primitive.NilObjectID, primitive.NilObjectID))
	})
}

func TestCanAccessRoute(t *testing.T) {
	t.Run("trang users và commands chỉ dành cho admin", func(t *testing.T) {
		assert.True(t, CanAccessRoute(RoleAdmin, RouteUsers))
		assert.True(t, CanAccessRoute(RoleAdmin, RouteCommands))
		assert.False(t, CanAccessRoute(RoleTeacher, RouteUsers))
		assert.False(t, CanAccessRoute(RoleViewer, RouteCommands))
	})

	t.Run("trang content mở cho mọi vai trò", func(t *testing.T) {
		assert.True(t, CanAccessRoute(RoleAdmin, RouteContent))
		assert.True(t, CanAccessRoute(RoleTeacher, RouteContent))
		assert.True(t, CanAccessRoute(RoleViewer, RouteContent))
	})

	t.Run("route không tồn tại bị từ chối", func(t *testing.T) {
		assert.False(t, CanAccessRoute(RoleAdmin, "/admin/unknown"))
	})
}
