package entity

import "time"

// Role is the platform authorization role as reported by the API.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

// UserStatus is the account status managed by admins upstream.
type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserBlocked UserStatus = "blocked"
)

// User is the client-side projection of a platform user. The API is the
// authoritative source; this struct only mirrors what screens need.
//
// Some deployments return Mongo-style "_id" instead of "id", so both are
// decoded and Key() picks whichever is present.
type User struct {
	ID         string     `json:"_id"`
	AltID      string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Status     UserStatus `json:"status"`
	BloodGroup string     `json:"bloodGroup"`
	District   string     `json:"district"`
	Upazila    string     `json:"upazila"`
	AvatarURL  string     `json:"avatar"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Key returns the canonical identifier regardless of which field the API used.
func (u User) Key() string {
	if u.ID != "" {
		return u.ID
	}
	return u.AltID
}

func (u *User) IsAdmin() bool     { return u != nil && u.Role == RoleAdmin }
func (u *User) IsVolunteer() bool { return u != nil && u.Role == RoleVolunteer }

// HasRole reports whether the user's role is in the given list.
func (u *User) HasRole(roles ...Role) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// BloodGroups lists the selectable blood groups in form order.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
