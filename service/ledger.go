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

// Ledger menerapkan, mengubah, dan membatalkan transaksi stok terhadap lot.
// Setiap operasi berjalan dalam satu transaksi database: mutasi stok lot dan
// baris transaksi selalu commit atau rollback bersama-sama.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger { return &Ledger{db: db} }

type RecordTransaksiInput struct {
	Jenis      models.JenisTransaksi
	BarangID   uint
	Jumlah     int
	LotID      *uint      // kalau diisi, menang atas NomorLot
	NomorLot   string     // lookup per (barang_id, nomor_lot); auto-create kalau belum ada
	Kadaluarsa *time.Time // hanya dipakai saat lot baru dibuat
	Keterangan string
	UserID     uint
}

func (in RecordTransaksiInput) validate() error {
	if in.Jenis != models.TransaksiMasuk && in.Jenis != models.TransaksiKeluar {
		return fmt.Errorf("%w: jenis transaksi harus Masuk atau Keluar", ErrValidation)
	}
	if in.BarangID == 0 {
		return fmt.Errorf("%w: barang_id wajib diisi", ErrValidation)
	}
	if in.Jumlah <= 0 {
		return fmt.Errorf("%w: jumlah harus lebih dari nol", ErrValidation)
	}
	if in.LotID == nil && strings.TrimSpace(in.NomorLot) == "" {
		return fmt.Errorf("%w: lot_id atau nomor_lot wajib diisi", ErrValidation)
	}
	if in.UserID == 0 {
		return fmt.Errorf("%w: user_id wajib diisi", ErrValidation)
	}
	return nil
}

// RecordTransaction mencatat mutasi Masuk/Keluar pada satu lot.
// Keluar ditolak dengan ErrInsufficientStock kalau stok lot tidak cukup.
func (l *Ledger) RecordTransaction(ctx context.Context, in RecordTransaksiInput) (*models.Transaksi, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var trx models.Transaksi
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var barang models.Barang
		if err := tx.First(&barang, in.BarangID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: barang %d", ErrNotFound, in.BarangID)
			}
			return err
		}

		lot, err := l.resolveLot(tx, in)
		if err != nil {
			return err
		}

		delta := in.Jumlah
		if in.Jenis == models.TransaksiKeluar {
			delta = -in.Jumlah
		}
		if lot.Stok+delta < 0 {
			return ErrInsufficientStock
		}

		if err := tx.Model(&models.BarangLot{}).Where("id = ?", lot.ID).
			Update("stok", lot.Stok+delta).Error; err != nil {
			return err
		}

		trx = models.Transaksi{
			Jenis:      in.Jenis,
			BarangID:   in.BarangID,
			LotID:      lot.ID,
			Jumlah:     in.Jumlah,
			UserID:     in.UserID,
			Keterangan: in.Keterangan,
		}
		return tx.Create(&trx).Error
	})
	if err != nil {
		return nil, err
	}
	return l.reload(ctx, trx.ID)
}

// resolveLot menentukan lot target: LotID kalau ada, kalau tidak lookup
// (barang_id, nomor_lot). Lot yang sudah ada dipakai ulang (kadaluarsa
// kiriman diabaikan), yang belum ada dibuat dengan stok nol.
func (l *Ledger) resolveLot(tx *gorm.DB, in RecordTransaksiInput) (*models.BarangLot, error) {
	var lot models.BarangLot

	if in.LotID != nil {
		if err := forUpdate(tx).First(&lot, *in.LotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: lot %d", ErrNotFound, *in.LotID)
			}
			return nil, err
		}
		if lot.BarangID != in.BarangID {
			return nil, fmt.Errorf("%w: lot %d bukan milik barang %d", ErrValidation, lot.ID, in.BarangID)
		}
		return &lot, nil
	}

	nomor := strings.TrimSpace(in.NomorLot)
	err := forUpdate(tx).
		Where("barang_id = ? AND nomor_lot = ?", in.BarangID, nomor).
		First(&lot).Error
	if err == nil {
		return &lot, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	lot = models.BarangLot{
		BarangID:   in.BarangID,
		NomorLot:   nomor,
		Kadaluarsa: in.Kadaluarsa,
		Stok:       0,
	}
	if err := tx.Create(&lot).Error; err != nil {
		return nil, err
	}
	return &lot, nil
}

// AmendTransaction mengubah jumlah dan/atau keterangan transaksi yang sudah
// tercatat, sekaligus mengoreksi stok lot. Menaikkan jumlah transaksi Keluar
// berarti stok turun lebih jauh.
func (l *Ledger) AmendTransaction(ctx context.Context, id uint, jumlah *int, keterangan *string) (*models.Transaksi, error) {
	if jumlah == nil && keterangan == nil {
		return nil, fmt.Errorf("%w: tidak ada perubahan", ErrValidation)
	}
	if jumlah != nil && *jumlah <= 0 {
		return nil, fmt.Errorf("%w: jumlah harus lebih dari nol", ErrValidation)
	}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trx models.Transaksi
		if err := forUpdate(tx).First(&trx, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: transaksi %d", ErrNotFound, id)
			}
			return err
		}

		if jumlah != nil && *jumlah != trx.Jumlah {
			var lot models.BarangLot
			if err := forUpdate(tx).First(&lot, trx.LotID).Error; err != nil {
				return err
			}

			diff := *jumlah - trx.Jumlah
			stokBaru := lot.Stok + diff
			if trx.Jenis == models.TransaksiKeluar {
				stokBaru = lot.Stok - diff
			}
			if stokBaru < 0 {
				return ErrInsufficientStock
			}

			if err := tx.Model(&models.BarangLot{}).Where("id = ?", lot.ID).
				Update("stok", stokBaru).Error; err != nil {
				return err
			}
			trx.Jumlah = *jumlah
		}

		if keterangan != nil {
			trx.Keterangan = *keterangan
		}
		return tx.Save(&trx).Error
	})
	if err != nil {
		return nil, err
	}
	return l.reload(ctx, id)
}

// RemoveTransaction membatalkan efek transaksi lalu menghapus barisnya.
// Kalau pembatalan membuat stok lot negatif (misal stok sudah terpakai oleh
// transaksi lain) operasi ditolak dengan ErrInvalidReversal, tanpa clamp.
func (l *Ledger) RemoveTransaction(ctx context.Context, id uint) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trx models.Transaksi
		if err := forUpdate(tx).First(&trx, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: transaksi %d", ErrNotFound, id)
			}
			return err
		}

		var lot models.BarangLot
		if err := forUpdate(tx).First(&lot, trx.LotID).Error; err != nil {
			return err
		}

		stokBaru := lot.Stok + trx.Jumlah
		if trx.Jenis == models.TransaksiMasuk {
			stokBaru = lot.Stok - trx.Jumlah
		}
		if stokBaru < 0 {
			return ErrInvalidReversal
		}

		if err := tx.Model(&models.BarangLot{}).Where("id = ?", lot.ID).
			Update("stok", stokBaru).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Transaksi{}, trx.ID).Error
	})
}

func (l *Ledger) reload(ctx context.Context, id uint) (*models.Transaksi, error) {
	var trx models.Transaksi
	err := l.db.WithContext(ctx).
		Preload("Barang").Preload("Barang.Kategori").
		Preload("Lot").Preload("User").
		First(&trx, id).Error
	if err != nil {
		return nil, err
	}
	return &trx, nil
}
