package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/utils"

	"gorm.io/gorm"
)

// Opname mencatat sesi perhitungan stok fisik dan selisihnya terhadap stok
// tercatat. Validasi murni catatan audit: tidak pernah menyentuh lot maupun
// transaksi; selisih dilaporkan ke pemanggil tanpa dikoreksi otomatis.
type Opname struct {
	db *gorm.DB
}

func NewOpname(db *gorm.DB) *Opname { return &Opname{db: db} }

type OpnameItemInput struct {
	BarangID             uint
	StokTercatat         *int // default: stok buku (jumlah lot) saat dihitung
	StokFisik            int
	KesesuaianKadaluarsa string // default Sesuai
	TanggalKadaluarsa    *time.Time
}

func (in OpnameItemInput) validate() error {
	if in.BarangID == 0 {
		return fmt.Errorf("%w: barang_id wajib diisi", ErrValidation)
	}
	if in.StokFisik < 0 {
		return fmt.Errorf("%w: stok fisik tidak boleh negatif", ErrValidation)
	}
	switch in.KesesuaianKadaluarsa {
	case "", models.KadaluarsaSesuai, models.KadaluarsaTidakSesuai:
		return nil
	}
	return fmt.Errorf("%w: kesesuaian kadaluarsa tidak dikenal", ErrValidation)
}

// OpenSession membuka sesi opname berikut detail itemnya.
func (o *Opname) OpenSession(ctx context.Context, tanggal time.Time, petugasID uint, items []OpnameItemInput) (*models.StockOpname, error) {
	if petugasID == 0 {
		return nil, fmt.Errorf("%w: petugas_id wajib diisi", ErrValidation)
	}
	if len(items) == 0 {
		return nil, ErrEmptyOpname
	}
	for _, it := range items {
		if err := it.validate(); err != nil {
			return nil, err
		}
	}

	var opname models.StockOpname
	err := o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		opname = models.StockOpname{
			Tanggal:        tanggal,
			PetugasID:      petugasID,
			StatusValidasi: models.OpnameBelum,
		}
		if err := tx.Create(&opname).Error; err != nil {
			return err
		}
		kode := utils.GenOpnameCode(int64(opname.ID), tanggal)
		if err := tx.Model(&opname).Update("kode_opname", kode).Error; err != nil {
			return err
		}
		for _, it := range items {
			detail, err := buildDetail(tx, opname.ID, it)
			if err != nil {
				return err
			}
			if err := tx.Create(detail).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return o.Get(ctx, opname.ID)
}

// AddItem menambah satu item ke sesi yang masih berstatus Belum.
func (o *Opname) AddItem(ctx context.Context, opnameID uint, in OpnameItemInput) (*models.DetailOpname, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var detail *models.DetailOpname
	err := o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		opname, err := lockOpname(tx, opnameID)
		if err != nil {
			return err
		}
		if opname.StatusValidasi != models.OpnameBelum {
			return ErrSessionClosed
		}
		detail, err = buildDetail(tx, opname.ID, in)
		if err != nil {
			return err
		}
		return tx.Create(detail).Error
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// RemoveItem menghapus satu item dari sesi yang masih berstatus Belum.
func (o *Opname) RemoveItem(ctx context.Context, opnameID, detailID uint) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		opname, err := lockOpname(tx, opnameID)
		if err != nil {
			return err
		}
		if opname.StatusValidasi != models.OpnameBelum {
			return ErrSessionClosed
		}
		res := tx.Where("id = ? AND stock_opname_id = ?", detailID, opname.ID).
			Delete(&models.DetailOpname{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: detail opname %d", ErrNotFound, detailID)
		}
		return nil
	})
}

// Validate memutuskan sesi: Disetujui atau Tidak Disetujui. Transisi hanya
// boleh satu kali dari status Belum.
func (o *Opname) Validate(ctx context.Context, opnameID uint, keputusan string, validatorID uint) (*models.StockOpname, error) {
	if keputusan != models.OpnameDisetujui && keputusan != models.OpnameTidakDisetujui {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecision, keputusan)
	}
	if validatorID == 0 {
		return nil, fmt.Errorf("%w: validator_id wajib diisi", ErrValidation)
	}

	err := o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		opname, err := lockOpname(tx, opnameID)
		if err != nil {
			return err
		}
		if opname.StatusValidasi != models.OpnameBelum {
			return ErrAlreadyValidated
		}
		now := time.Now()
		return tx.Model(&models.StockOpname{}).Where("id = ?", opname.ID).
			Updates(map[string]any{
				"status_validasi":  keputusan,
				"validator_id":     validatorID,
				"tanggal_validasi": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return o.Get(ctx, opnameID)
}

func (o *Opname) Get(ctx context.Context, id uint) (*models.StockOpname, error) {
	var opname models.StockOpname
	err := o.db.WithContext(ctx).
		Preload("Petugas").Preload("Validator").
		Preload("Details.Barang").
		First(&opname, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: stock opname %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &opname, nil
}

func lockOpname(tx *gorm.DB, id uint) (*models.StockOpname, error) {
	var opname models.StockOpname
	if err := forUpdate(tx).First(&opname, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: stock opname %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &opname, nil
}

// buildDetail melengkapi field turunan: stok tercatat default dari jumlah
// stok lot barang, tanggal kadaluarsa default dari kadaluarsa terdekat lot
// yang masih berisi, dan selisih fisik-tercatat.
func buildDetail(tx *gorm.DB, opnameID uint, in OpnameItemInput) (*models.DetailOpname, error) {
	var barang models.Barang
	if err := tx.First(&barang, in.BarangID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: barang %d", ErrNotFound, in.BarangID)
		}
		return nil, err
	}

	tercatat := 0
	if in.StokTercatat != nil {
		tercatat = *in.StokTercatat
	} else {
		var err error
		tercatat, err = sumStok(tx, in.BarangID)
		if err != nil {
			return nil, err
		}
	}

	kadaluarsa := in.TanggalKadaluarsa
	if kadaluarsa == nil {
		var err error
		kadaluarsa, err = earliestKadaluarsa(tx, in.BarangID)
		if err != nil {
			return nil, err
		}
	}

	kesesuaian := in.KesesuaianKadaluarsa
	if kesesuaian == "" {
		kesesuaian = models.KadaluarsaSesuai
	}

	return &models.DetailOpname{
		StockOpnameID:        opnameID,
		BarangID:             in.BarangID,
		StokTercatat:         tercatat,
		StokFisik:            in.StokFisik,
		Selisih:              in.StokFisik - tercatat,
		KesesuaianKadaluarsa: kesesuaian,
		TanggalKadaluarsa:    kadaluarsa,
	}, nil
}
