package models

import "time"

const (
	OpnameBelum          = "Belum"
	OpnameDisetujui      = "Disetujui"
	OpnameTidakDisetujui = "Tidak Disetujui"
)

const (
	KadaluarsaSesuai      = "Sesuai"
	KadaluarsaTidakSesuai = "Tidak sesuai"
)

// StockOpname adalah sesi perhitungan fisik. Detail hanya boleh
// ditambah/dihapus selama status masih Belum; setelah divalidasi sesi
// bersifat final.
type StockOpname struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	KodeOpname      string         `gorm:"size:30" json:"kode_opname"`
	Tanggal         time.Time      `gorm:"not null" json:"tanggal"`
	PetugasID       uint           `gorm:"not null" json:"petugas_id"`
	Petugas         User           `gorm:"foreignKey:PetugasID" json:"petugas"`
	ValidatorID     *uint          `json:"validator_id"`
	Validator       *User          `gorm:"foreignKey:ValidatorID" json:"validator,omitempty"`
	StatusValidasi  string         `gorm:"size:20;default:'Belum'" json:"status_validasi"`
	TanggalValidasi *time.Time     `json:"tanggal_validasi"`
	Details         []DetailOpname `gorm:"foreignKey:StockOpnameID;constraint:OnDelete:CASCADE" json:"details"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type DetailOpname struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	StockOpnameID        uint       `gorm:"index;not null" json:"stock_opname_id"`
	BarangID             uint       `gorm:"not null" json:"barang_id"`
	Barang               Barang     `gorm:"foreignKey:BarangID" json:"barang"`
	StokTercatat         int        `gorm:"not null" json:"stok_tercatat"`
	StokFisik            int        `gorm:"not null" json:"stok_fisik"`
	Selisih              int        `gorm:"not null" json:"selisih"` // StokFisik - StokTercatat
	KesesuaianKadaluarsa string     `gorm:"size:20;default:'Sesuai'" json:"kesesuaian_kadaluarsa"`
	TanggalKadaluarsa    *time.Time `json:"tanggal_kadaluarsa"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}
