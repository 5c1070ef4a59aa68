package utility

import (
	"regexp"

	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/logger"
)

// GoProtect chạy f và bắt lại mọi panic, ghi vào error log.
// Dùng cho các tác vụ nền (ghi audit, gửi mail) không được phép kéo sập server.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.GetErrorLogger().Errorf("Đã bắt lỗi panic: %v", err)
		}
	}()

	f()
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail kiểm tra định dạng email.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return common.ErrInvalidEmail
	}
	return nil
}
