package db_models

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"size:16;default:'USER'"` // USER / ADMIN / EDITOR

	Posts    []BlogPost       `gorm:"foreignKey:AuthorID"`
	Requests []ServiceRequest `gorm:"foreignKey:UserID"`
}
