package db_models

type Service struct {
	BaseModel
	Title         string `gorm:"not null"`
	Description   string `gorm:"type:text;not null"`
	StartingPrice int64  // minor units, e.g. 4999 = $49.99
	IsActive      bool   `gorm:"default:true;index"`
}
