package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

type User struct {
	ID       uint   `json:"id"       gorm:"primary_key"`
	Email    string `json:"email"    validate:"required,email" gorm:"type:varchar(180);unique_index;not null"`
	Password string `json:"-"        gorm:"not null"`
	Roles    Roles  `json:"roles"    gorm:"type:jsonb"`
}

// Roles is stored as a json column, e.g. ["ROLE_USER"].
type Roles []string

func (r Roles) Value() (driver.Value, error) {
	if r == nil {
		r = Roles{}
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "marshal roles")
	}
	return string(b), nil
}

func (r *Roles) Scan(src interface{}) error {
	if src == nil {
		*r = Roles{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.Errorf("roles: unsupported source type %T", src)
	}
	return json.Unmarshal(b, r)
}

// Has reports whether the user carries the given role. Every registered
// user implicitly has RoleUser.
func (u User) Has(role string) bool {
	if role == RoleUser {
		return true
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

const RoleUser = "ROLE_USER"
