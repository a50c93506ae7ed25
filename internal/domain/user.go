package domain

// MaxUserNameLength is the maximum number of characters in a user name
const MaxUserNameLength = 50

// User is a registered voter. Admin rights are granted by configuration.
type User struct {
	BaseModel
	Name    string `gorm:"type:varchar(50);not null;uniqueIndex:idx_users_name" json:"name"`
	IsAdmin bool   `gorm:"not null;default:false" json:"is_admin"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
