package models

import "github.com/uptrace/bun"

// User is a prediction-game player with bcrypt-hashed password.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID          int    `bun:"id,pk,autoincrement" json:"id"`
	Username    string `bun:"username,notnull,unique" json:"username"`
	DisplayName string `bun:"display_name,notnull,default:''" json:"displayName"`
	Password    string `bun:"password,notnull" json:"-"`
}
