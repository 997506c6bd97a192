package db_models

type Account struct {
	BaseModel
	DisplayName  string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"type:varchar(16);default:'user'"`

	Journeys []Journey `gorm:"foreignKey:AccountID"`
	CheckIns []CheckIn `gorm:"foreignKey:AccountID"`
}
