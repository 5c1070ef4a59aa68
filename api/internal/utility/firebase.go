package utility

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	fbstorage "firebase.google.com/go/v4/storage"
	"google.golang.org/api/option"
)

var (
	firebaseApp     *firebase.App
	firebaseAuth    *auth.Client
	firebaseStorage *fbstorage.Client
)

// findAPIDir tìm thư mục api (thư mục chứa config/env)
func findAPIDir() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("không tìm thấy thư mục api")
		}
		currentDir = parentDir
	}
}

// InitFirebase khởi tạo Firebase Admin SDK (auth + storage).
// storageBucket rỗng sẽ dùng bucket mặc định <project-id>.appspot.com.
func InitFirebase(projectID, credentialsPath, storageBucket string) error {
	// Resolve đường dẫn credentials từ thư mục api nếu là relative
	if !filepath.IsAbs(credentialsPath) {
		apiDir, err := findAPIDir()
		if err != nil {
			return fmt.Errorf("không tìm thấy thư mục api: %v", err)
		}
		credentialsPath = filepath.Join(apiDir, credentialsPath)
	}

	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
	}

	if storageBucket == "" {
		storageBucket = fmt.Sprintf("%s.appspot.com", projectID)
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: storageBucket,
	}, opt)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %v", err)
	}

	firebaseApp = app

	authClient, err := app.Auth(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Auth client: %v", err)
	}
	firebaseAuth = authClient

	storageClient, err := app.Storage(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Storage client: %v", err)
	}
	firebaseStorage = storageClient

	return nil
}

// GetFirebaseAuth trả về Firebase Auth client
func GetFirebaseAuth() *auth.Client {
	return firebaseAuth
}

// GetFirebaseStorage trả về Firebase Storage client
func GetFirebaseStorage() *fbstorage.Client {
	return firebaseStorage
}

// VerifyIDToken verify Firebase ID token và trả về user info
func VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth not initialized")
	}

	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %v", err)
	}

	return token, nil
}

// GetUserByUID lấy thông tin user từ Firebase bằng UID
func GetUserByUID(ctx context.Context, uid string) (*auth.UserRecord, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth not initialized")
	}

	user, err := firebaseAuth.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return user, nil
}
