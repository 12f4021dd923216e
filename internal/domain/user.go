package domain

import "time"

// DefaultSleepHours is assumed when a profile omits sleep data; the
// low-sleep risk rule cannot fire against the default.
const DefaultSleepHours = 8.0

// User is the domain model for a registered employee profile.
// Profiles are created once at registration and never updated.
type User struct {
	ID          string
	FullName    string
	Email       string
	Age         int
	Gender      string
	Profession  string
	WorkMode    string
	StressLevel string
	SleepHours  *float64
	CreatedAt   time.Time
}

// SleepOrDefault returns the self-reported sleep hours, or
// DefaultSleepHours when the profile omitted them.
func (u *User) SleepOrDefault() float64 {
	if u.SleepHours == nil {
		return DefaultSleepHours
	}
	return *u.SleepHours
}
