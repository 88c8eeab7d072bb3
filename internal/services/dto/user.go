package dto

type UpdateProfileRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// UploadProjectRequest is the multipart form body of a project upload.
// The file part itself is read from the request separately.
type UploadProjectRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
}
