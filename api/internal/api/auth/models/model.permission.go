// Package models - ma trận phân quyền tĩnh theo vai trò.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Các vai trò trong hệ thống. Vai trò là tĩnh, không cấu hình qua database.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleViewer  = "viewer"
)

// AllRoles danh sách tất cả vai trò hợp lệ
var AllRoles = []string{RoleAdmin, RoleTeacher, RoleViewer}

// IsValidRole kiểm tra một chuỗi có phải vai trò hợp lệ không
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleTeacher || role == RoleViewer
}

// Các quyền đặt tên theo dạng <Collection>.<Operation>.
// Quyền rỗng "" nghĩa là chỉ cần đăng nhập.
const (
	PermProgramInsert = "Program.Insert"
	PermProgramRead   = "Program.Read"
	PermProgramUpdate = "Program.Update"
	PermProgramDelete = "Program.Delete"

	PermLessonInsert = "Lesson.Insert"
	PermLessonRead   = "Lesson.Read"
	PermLessonUpdate = "Lesson.Update"
	PermLessonDelete = "Lesson.Delete"

	PermOnboardingInsert = "Onboarding.Insert"
	PermOnboardingRead   = "Onboarding.Read"
	PermOnboardingUpdate = "Onboarding.Update"
	PermOnboardingDelete = "Onboarding.Delete"

	PermUserRead    = "User.Read"
	PermUserInsert  = "User.Insert"
	PermUserUpdate  = "User.Update"
	PermUserDelete  = "User.Delete"
	PermUserBlock   = "User.Block"
	PermUserSetRole = "User.SetRole"
	PermUserInvite  = "User.Invite"

	PermAuditLogRead = "AuditLog.Read"

	PermMediaUpload = "Media.Upload"

	PermCommandRun = "Command.Run"
)

// teacherPermissions các quyền của vai trò teacher.
// Teacher tạo và sửa nội dung; việc "chỉ sửa nội dung của mình" được
// kiểm tra thêm bằng CanEditResource ở tầng handler.
var teacherPermissions = map[string]bool{
	PermProgramInsert: true,
	PermProgramRead:   true,
	PermProgramUpdate: true,
	PermProgramDelete: true,

	PermLessonInsert: true,
	PermLessonRead:   true,
	PermLessonUpdate: true,
	PermLessonDelete: true,

	PermOnboardingRead: true,

	PermMediaUpload: true,
}

// viewerPermissions các quyền của vai trò viewer (chỉ đọc nội dung).
var viewerPermissions = map[string]bool{
	PermProgramRead:    true,
	PermLessonRead:     true,
	PermOnboardingRead: true,
}

// HasPermission kiểm tra một vai trò có quyền thực hiện một thao tác không.
// Admin luôn có mọi quyền. Quyền rỗng nghĩa là chỉ cần đăng nhập.
func HasPermission(role string, permission string) bool {
	if permission == "" {
		return true
	}
	switch role {
	case RoleAdmin:
		return true
	case RoleTeacher:
		return teacherPermissions[permission]
	case RoleViewer:
		return viewerPermissions[permission]
	default:
		return false
	}
}

// Các loại tài nguyên nội dung có kiểm tra quyền sở hữu
const (
	ResourceTypeProgram = "program"
	ResourceTypeLesson  = "lesson"
)

// CanEditResource kiểm tra một user có được sửa/xóa một tài nguyên nội dung không.
// Admin sửa được mọi tài nguyên. Teacher chỉ sửa được tài nguyên do chính mình tạo.
// Viewer không sửa được gì. Luật sở hữu hiện áp dụng giống nhau cho mọi
// resourceType (program, lesson).
func CanEditResource(role string, resourceType string, actorID primitive.ObjectID, authorID primitive.ObjectID) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleTeacher:
		return !actorID.IsZero() && actorID == authorID
	default:
		return false
	}
}

// Các route cấp trang của admin console
const (
	RouteContent  = "/admin/content"
	RouteUsers    = "/admin/users"
	RouteCommands = "/admin/commands"
)

// CanAccessRoute kiểm tra một vai trò có được truy cập một route cấp trang không.
// /admin/users và /admin/commands chỉ dành cho admin, /admin/content mở cho mọi vai trò.
func CanAccessRoute(role string, route string) bool {
	switch route {
	case RouteUsers, RouteCommands:
		return role == RoleAdmin
	case RouteContent:
		return IsValidRole(role)
	default:
		return false
	}
}
