package models

import "gorm.io/gorm"

type StatusBarang string

const (
	BarangAktif    StatusBarang = "Aktif"
	BarangNonaktif StatusBarang = "Nonaktif"
)

type Barang struct {
	gorm.Model
	Nama        string       `json:"nama" gorm:"size:180;not null"`
	Deskripsi   string       `json:"deskripsi" gorm:"type:text"`
	KategoriID  uint         `json:"kategori_id"` // foreign key ke Kategori
	Kategori    Kategori     `json:"kategori"`    // preload
	Satuan      string       `json:"satuan" gorm:"size:60"`
	Suhu        string       `json:"suhu" gorm:"size:60"` // band penyimpanan, mis. "2-8°C"
	StokMinimal int          `json:"stok_minimal"`
	Status      StatusBarang `json:"status" gorm:"size:20;default:'Aktif'"`
	Gambar      string       `json:"gambar" gorm:"size:255"`

	Suppliers []Supplier  `json:"suppliers,omitempty" gorm:"many2many:barang_suppliers"`
	Lots      []BarangLot `json:"lots,omitempty" gorm:"foreignKey:BarangID"`
}
