package user

// UpdateProfileDTO carries the profile fields a user may change about
// themselves. Level, email and password deliberately have no place here.
type UpdateProfileDTO struct {
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Department      *string `json:"department,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

func (d UpdateProfileDTO) Empty() bool {
	return d.FirstName == nil && d.LastName == nil && d.Department == nil && d.ProfileImageURL == nil
}
