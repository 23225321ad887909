package dto

// ActivityRequest records one user action.
type ActivityRequest struct {
	Identifier string `json:"identifier" validate:"required,max=254"`
	Activity   string `json:"activity" validate:"required,activity_kind"`
}
