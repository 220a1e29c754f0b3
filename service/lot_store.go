package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"

	"gorm.io/gorm"
)

// LotStore memegang counter stok per lot beserta metadata kadaluarsanya.
type LotStore struct {
	db *gorm.DB
}

func NewLotStore(db *gorm.DB) *LotStore { return &LotStore{db: db} }

type CreateLotInput struct {
	BarangID   uint
	NomorLot   string
	Kadaluarsa *time.Time
	StokAwal   int
	UserID     uint
}

// CreateLot membuat lot baru. Stok awal lebih dari nol dicatat sebagai
// transaksi Masuk pembuka dalam scope atomik yang sama, supaya stok lot
// selalu bisa diturunkan ulang dari riwayat transaksinya.
func (s *LotStore) CreateLot(ctx context.Context, in CreateLotInput) (*models.BarangLot, error) {
	nomor := strings.TrimSpace(in.NomorLot)
	if in.BarangID == 0 {
		return nil, fmt.Errorf("%w: barang_id wajib diisi", ErrValidation)
	}
	if nomor == "" {
		return nil, fmt.Errorf("%w: nomor_lot wajib diisi", ErrValidation)
	}
	if in.StokAwal < 0 {
		return nil, fmt.Errorf("%w: stok awal tidak boleh negatif", ErrValidation)
	}
	if in.StokAwal > 0 && in.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id wajib diisi untuk stok awal", ErrValidation)
	}

	var lot models.BarangLot
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var barang models.Barang
		if err := tx.First(&barang, in.BarangID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: barang %d", ErrNotFound, in.BarangID)
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.BarangLot{}).
			Where("barang_id = ? AND nomor_lot = ?", in.BarangID, nomor).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateLot, nomor)
		}

		lot = models.BarangLot{
			BarangID:   in.BarangID,
			NomorLot:   nomor,
			Kadaluarsa: in.Kadaluarsa,
			Stok:       in.StokAwal,
		}
		if err := tx.Create(&lot).Error; err != nil {
			return err
		}

		if in.StokAwal > 0 {
			pembuka := models.Transaksi{
				Jenis:      models.TransaksiMasuk,
				BarangID:   in.BarangID,
				LotID:      lot.ID,
				Jumlah:     in.StokAwal,
				UserID:     in.UserID,
				Keterangan: "Stok awal",
			}
			if err := tx.Create(&pembuka).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

type UpdateLotInput struct {
	NomorLot        *string
	Kadaluarsa      *time.Time
	HapusKadaluarsa bool // set kadaluarsa ke NULL
}

func (s *LotStore) UpdateLot(ctx context.Context, id uint, in UpdateLotInput) (*models.BarangLot, error) {
	var lot models.BarangLot
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&lot, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: lot %d", ErrNotFound, id)
			}
			return err
		}

		if in.NomorLot != nil {
			nomor := strings.TrimSpace(*in.NomorLot)
			if nomor == "" {
				return fmt.Errorf("%w: nomor_lot tidak boleh kosong", ErrValidation)
			}
			if nomor != lot.NomorLot {
				var count int64
				if err := tx.Model(&models.BarangLot{}).
					Where("barang_id = ? AND nomor_lot = ? AND id <> ?", lot.BarangID, nomor, lot.ID).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return fmt.Errorf("%w: %s", ErrDuplicateLot, nomor)
				}
				lot.NomorLot = nomor
			}
		}

		if in.HapusKadaluarsa {
			lot.Kadaluarsa = nil
		} else if in.Kadaluarsa != nil {
			lot.Kadaluarsa = in.Kadaluarsa
		}

		return tx.Save(&lot).Error
	})
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

// DeleteLot menghapus lot beserta riwayat transaksinya (yang jumlah
// bertandanya pasti nol). Lot yang masih menyimpan stok tidak boleh dihapus.
// Penghapusan permanen, supaya nomor lot yang sama bisa dipakai lagi nanti.
func (s *LotStore) DeleteLot(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lot models.BarangLot
		if err := forUpdate(tx).First(&lot, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: lot %d", ErrNotFound, id)
			}
			return err
		}
		if lot.Stok > 0 {
			return ErrLotHasStock
		}
		if err := tx.Where("lot_id = ?", lot.ID).Delete(&models.Transaksi{}).Error; err != nil {
			return err
		}
		// hard delete: baris soft-delete masih terhitung di index unik
		// (barang_id, nomor_lot)
		return tx.Unscoped().Delete(&lot).Error
	})
}

func (s *LotStore) ListByBarang(ctx context.Context, barangID uint) ([]models.BarangLot, error) {
	var lots []models.BarangLot
	err := s.db.WithContext(ctx).
		Where("barang_id = ?", barangID).
		Order("kadaluarsa ASC NULLS LAST").
		Find(&lots).Error
	if err != nil {
		return nil, err
	}
	return lots, nil
}

// TotalStok menjumlahkan stok seluruh lot milik satu barang.
func (s *LotStore) TotalStok(ctx context.Context, barangID uint) (int, error) {
	return sumStok(s.db.WithContext(ctx), barangID)
}

// KadaluarsaTerdekat mengembalikan tanggal kadaluarsa paling awal di antara
// lot yang masih menyimpan stok. Nil kalau tidak ada.
func (s *LotStore) KadaluarsaTerdekat(ctx context.Context, barangID uint) (*time.Time, error) {
	return earliestKadaluarsa(s.db.WithContext(ctx), barangID)
}

func sumStok(tx *gorm.DB, barangID uint) (int, error) {
	var total int64
	err := tx.Model(&models.BarangLot{}).
		Where("barang_id = ?", barangID).
		Select("COALESCE(SUM(stok), 0)").
		Scan(&total).Error
	return int(total), err
}

func earliestKadaluarsa(tx *gorm.DB, barangID uint) (*time.Time, error) {
	var lot models.BarangLot
	err := tx.
		Where("barang_id = ? AND stok > 0 AND kadaluarsa IS NOT NULL", barangID).
		Order("kadaluarsa ASC").
		First(&lot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lot.Kadaluarsa, nil
}
