package services

// ServiceContainer bundles the application services for wiring.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	ContentService ContentService
	Notifier       NotificationService
	FileService    FileService
}
