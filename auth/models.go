// Package auth is responsible for authentication and account management:
// registration, login, token issuance and verification, and the email-based
// password reset flow.
// This file defines the persisted user document.
package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a user document in the store.
// The password is persisted only as a bcrypt hash and is never serialized;
// the reset fields are set by the forgot-password flow and cleared again by a
// successful reset.
type User struct {
	ID                   bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                 string        `bson:"name" json:"name"`
	Email                string        `bson:"email" json:"email"`
	HashedPassword       string        `bson:"password" json:"-"`
	ResetPasswordToken   string        `bson:"resetPasswordToken,omitempty" json:"-"`
	ResetPasswordExpires *time.Time    `bson:"resetPasswordExpires,omitempty" json:"-"`
	CreatedAt            time.Time     `bson:"createdAt" json:"created_at"`
}

// Public returns the client-facing view of the user: id, name and email only.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
	}
}
