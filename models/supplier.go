package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	Nama    string `json:"nama" gorm:"size:180;not null"`
	Alamat  string `json:"alamat" gorm:"size:255"`
	Telepon string `json:"telepon" gorm:"size:60"`
	Email   string `json:"email" gorm:"size:180"`
}
