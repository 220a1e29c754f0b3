package models

import "gorm.io/gorm"

type Kategori struct {
	gorm.Model
	Nama      string `json:"nama" gorm:"size:120;uniqueIndex;not null"`
	Deskripsi string `json:"deskripsi" gorm:"size:255"`
}
