package models

import (
	"time"

	"gorm.io/gorm"
)

// BarangLot adalah unit pelacakan stok fisik: satu barang bisa punya
// beberapa lot dengan tanggal kadaluarsa berbeda. Stok tidak boleh negatif.
type BarangLot struct {
	gorm.Model
	BarangID   uint       `json:"barang_id" gorm:"uniqueIndex:idx_barang_nomor_lot;not null"`
	Barang     Barang     `json:"barang" gorm:"foreignKey:BarangID"`
	NomorLot   string     `json:"nomor_lot" gorm:"uniqueIndex:idx_barang_nomor_lot;size:120;not null"`
	Kadaluarsa *time.Time `json:"kadaluarsa"`
	Stok       int        `json:"stok" gorm:"not null;default:0"`
}
