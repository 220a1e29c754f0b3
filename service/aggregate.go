package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"

	"gorm.io/gorm"
)

// Aggregate adalah proyeksi baca per barang: total stok, kadaluarsa
// terdekat, tanggal opname terakhir, dan daftar supplier. Dihitung ulang
// setiap dipanggil, tanpa cache, supaya selalu sama dengan isi ledger.
type Aggregate struct {
	db *gorm.DB
}

func NewAggregate(db *gorm.DB) *Aggregate { return &Aggregate{db: db} }

type BarangAggregate struct {
	BarangID              uint       `json:"barang_id"`
	Nama                  string     `json:"nama"`
	Satuan                string     `json:"satuan"`
	StokMinimal           int        `json:"stok_minimal"`
	TotalStok             int        `json:"total_stok"`
	Kadaluarsa            *time.Time `json:"kadaluarsa"`
	TanggalOpnameTerakhir *time.Time `json:"tanggal_opname_terakhir"`
	Suppliers             []string   `json:"suppliers"`
}

func (a *Aggregate) ItemAggregate(ctx context.Context, barangID uint) (*BarangAggregate, error) {
	db := a.db.WithContext(ctx)

	var barang models.Barang
	if err := db.First(&barang, barangID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: barang %d", ErrNotFound, barangID)
		}
		return nil, err
	}

	total, err := sumStok(db, barangID)
	if err != nil {
		return nil, err
	}

	kadaluarsa, err := earliestKadaluarsa(db, barangID)
	if err != nil {
		return nil, err
	}

	var terakhir *time.Time
	var opname models.StockOpname
	err = db.Model(&models.StockOpname{}).
		Select("stock_opnames.*").
		Joins("JOIN detail_opnames ON detail_opnames.stock_opname_id = stock_opnames.id").
		Where("detail_opnames.barang_id = ?", barangID).
		Order("stock_opnames.tanggal DESC").
		First(&opname).Error
	switch {
	case err == nil:
		terakhir = &opname.Tanggal
	case errors.Is(err, gorm.ErrRecordNotFound):
		// barang belum pernah diopname
	default:
		return nil, err
	}

	suppliers := []string{}
	err = db.Model(&models.Supplier{}).
		Joins("JOIN barang_suppliers bs ON bs.supplier_id = suppliers.id").
		Where("bs.barang_id = ?", barangID).
		Order("suppliers.nama ASC").
		Pluck("suppliers.nama", &suppliers).Error
	if err != nil {
		return nil, err
	}

	return &BarangAggregate{
		BarangID:              barang.ID,
		Nama:                  barang.Nama,
		Satuan:                barang.Satuan,
		StokMinimal:           barang.StokMinimal,
		TotalStok:             total,
		Kadaluarsa:            kadaluarsa,
		TanggalOpnameTerakhir: terakhir,
		Suppliers:             suppliers,
	}, nil
}
