// Package authdto - DTO người dùng thuộc domain auth.
package authdto

// UserCreateInput đầu vào tạo người dùng (CRUD).
type UserCreateInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,user_role"`
}

// UserUpdateInput đầu vào cập nhật người dùng (CRUD).
type UserUpdateInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UserLogoutInput đầu vào đăng xuất người dùng.
type UserLogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Name string `json:"name"`
}

// BlockUserInput đầu vào khóa người dùng.
type BlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput đầu vào mở khóa người dùng.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
}

// SetRoleInput đầu vào gán vai trò cho người dùng.
type SetRoleInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,user_role"`
}

// InviteUserInput đầu vào mời người dùng mới vào admin console.
type InviteUserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,user_role"`
}

// FirebaseLoginInput đầu vào đăng nhập bằng Firebase ID token.
type FirebaseLoginInput struct {
	IDToken string `json:"idToken" validate:"required"`
	Hwid    string `json:"hwid" validate:"required"`
}
