package Models

import (
	"gorm.io/gorm"
)

// Operator permission levels. Agents can read the ledger and append status
// updates; admins can create, edit and delete records.
const (
	PermissionAgent = 1
	PermissionAdmin = 2
)

type User struct {
	gorm.Model
	Username   string `json:"username" gorm:"not null;uniqueIndex"`
	Password   []byte `json:"-"`
	Permission int    `json:"permission"`
}

// Role returns the coarse role label used by the ledger core.
func (u *User) Role() string {
	if u.Permission >= PermissionAdmin {
		return RoleAdmin
	}
	return RoleUser
}
