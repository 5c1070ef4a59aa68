package utility

import (
	"fmt"

	"wellness_admin/api/config"
	"wellness_admin/api/internal/logger"

	"gopkg.in/gomail.v2"
)

// SendInviteEmail gửi mail mời cho người dùng mới được admin tạo.
// Gửi mail là best-effort: lỗi chỉ được ghi log, không chặn thao tác tạo user.
func SendInviteEmail(cfg *config.Configuration, email string, name string, role string) error {
	if cfg.SMTPHost == "" || cfg.SMTPFrom == "" {
		logger.GetAppLogger().Debug("SMTP chưa được cấu hình, bỏ qua gửi mail mời")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Bạn được mời vào trang quản trị nội dung")
	m.SetBody("text/html", fmt.Sprintf(
		`<p>Xin chào %s,</p>
<p>Bạn vừa được thêm vào trang quản trị với vai trò <b>%s</b>.</p>
<p>Đăng nhập tại: <a href="%s">%s</a></p>`,
		name, role, cfg.FrontendURL, cfg.FrontendURL,
	))

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("lỗi khi gửi mail mời tới %s: %w", email, err)
	}

	logger.GetAppLogger().WithField("email", email).Info("Đã gửi mail mời người dùng mới")
	return nil
}
