package dto

import "time"

// ExportRequest asks for a filtered directory file.
type ExportRequest struct {
	Format string         `json:"format" validate:"required,oneof=csv pdf xlsx CSV PDF XLSX"`
	Filter DirectoryQuery `json:"filter"`
}

// ExportResponse points at the stored file.
type ExportResponse struct {
	ID        string    `json:"id"`
	Format    string    `json:"format"`
	Rows      int       `json:"rows"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
