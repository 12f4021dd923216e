package dto

// RegisterRequest mirrors the registration payload.
type RegisterRequest struct {
	FullName    string   `json:"fullName"`
	Email       string   `json:"email"`
	Age         int      `json:"age"`
	Gender      string   `json:"gender"`
	Profession  string   `json:"profession"`
	WorkMode    string   `json:"workMode"`
	StressLevel string   `json:"stressLevel"`
	SleepHours  *float64 `json:"sleepHours"`
}

// RegisterResponse confirms registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}
