package model

type Faculty struct {
	Name string `gorm:"size:100;primaryKey" json:"name"`
}

type Career struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	FacultyName string  `gorm:"size:100;not null" json:"faculty_name"`
	Faculty     Faculty `gorm:"foreignKey:FacultyName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
