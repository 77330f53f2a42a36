package models

// UpdateProfileRequest represents a request to update user profile
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Company *string `json:"company,omitempty" validate:"omitempty,min=2"`
}

// UserResponse represents a user in responses
type UserResponse struct {
	ID                  int     `json:"id"`
	Email               string  `json:"email"`
	Name                string  `json:"name"`
	Company             string  `json:"company,omitempty"`
	Role                string  `json:"role,omitempty"`
	Status              string  `json:"status,omitempty"`
	SubmitterTier       string  `json:"submitter_tier"`
	ProjectsUsed        int     `json:"projects_used"`
	ProjectLimit        int     `json:"project_limit"`
	TotalProjects       int     `json:"total_projects"`
	SuccessfulProjects  int     `json:"successful_projects"`
	AverageProjectScore float64 `json:"average_project_score"`
	EmailVerified       bool    `json:"email_verified"`
	CreatedAt           string  `json:"created_at"`
}

// QuotaResponse represents monthly project quota statistics
type QuotaResponse struct {
	Used        int    `json:"used"`
	Limit       int    `json:"limit"`
	Unlimited   bool   `json:"unlimited"`
	Remaining   int    `json:"remaining"`
	PercentUsed int    `json:"percent_used"`
	ResetDate   string `json:"reset_date"`
}

// CreditsResponse represents the consultation credit position
type CreditsResponse struct {
	Plan             string `json:"plan"`
	RemainingCredits int    `json:"remaining_credits"`
	UsedCredits      int    `json:"used_credits"`
	IsUnlimited      bool   `json:"is_unlimited"`
}

// TierProgressResponse represents reputation tier standing
type TierProgressResponse struct {
	CurrentTier     string `json:"current_tier"`
	NextTier        string `json:"next_tier"`
	ProgressPercent int    `json:"progress_percent"`
	TotalPoints     int    `json:"total_points"`
	Level           int    `json:"level"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}
