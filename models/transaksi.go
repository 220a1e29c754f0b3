package models

import "time"

type JenisTransaksi string

const (
	TransaksiMasuk  JenisTransaksi = "Masuk"
	TransaksiKeluar JenisTransaksi = "Keluar"
)

// Transaksi adalah catatan mutasi stok per lot. Stok lot harus selalu sama
// dengan jumlah bertanda seluruh transaksi lot tersebut (Masuk plus,
// Keluar minus).
type Transaksi struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Jenis      JenisTransaksi `gorm:"size:10;not null" json:"jenis"`
	BarangID   uint           `gorm:"index;not null" json:"barang_id"`
	Barang     Barang         `gorm:"foreignKey:BarangID" json:"barang"`
	LotID      uint           `gorm:"index;not null" json:"lot_id"`
	Lot        BarangLot      `gorm:"foreignKey:LotID;constraint:OnDelete:CASCADE" json:"lot"`
	Jumlah     int            `gorm:"not null" json:"jumlah"`
	UserID     uint           `gorm:"not null" json:"user_id"`
	User       User           `gorm:"foreignKey:UserID" json:"user"`
	Keterangan string         `gorm:"type:text" json:"keterangan"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
