package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"

	"gorm.io/gorm"
)

// Laporan berisi query baca untuk laporan dan dashboard. Semua dihitung
// langsung dari tabel lot/transaksi, tanpa cache.
type Laporan struct {
	db *gorm.DB
}

func NewLaporan(db *gorm.DB) *Laporan { return &Laporan{db: db} }

type StokBarangRow struct {
	BarangID    uint   `json:"barang_id"`
	Nama        string `json:"nama"`
	Satuan      string `json:"satuan"`
	StokMinimal int    `json:"stok_minimal"`
	TotalStok   int    `json:"total_stok"`
	StatusStok  string `json:"status_stok"` // LOW / OK
}

type StokKategoriReport struct {
	KategoriID   uint            `json:"kategori_id"`
	KategoriNama string          `json:"kategori_nama"`
	TotalStok    int             `json:"total_stok"`
	JumlahItem   int             `json:"jumlah_item"`
	Items        []StokBarangRow `json:"items"`
}

// StokPerKategori merangkum stok seluruh barang aktif dalam satu kategori.
func (s *Laporan) StokPerKategori(ctx context.Context, kategoriID uint) (StokKategoriReport, error) {
	db := s.db.WithContext(ctx)

	var kategori models.Kategori
	if err := db.First(&kategori, kategoriID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StokKategoriReport{}, fmt.Errorf("%w: kategori %d", ErrNotFound, kategoriID)
		}
		return StokKategoriReport{}, err
	}

	items, err := stokRows(db.Table("barangs").
		Where("barangs.kategori_id = ?", kategoriID).
		Where("barangs.status = ?", models.BarangAktif))
	if err != nil {
		return StokKategoriReport{}, err
	}

	report := StokKategoriReport{
		KategoriID:   kategori.ID,
		KategoriNama: kategori.Nama,
		JumlahItem:   len(items),
		Items:        items,
	}
	for _, it := range items {
		report.TotalStok += it.TotalStok
	}
	return report, nil
}

// LowStock mengembalikan barang aktif yang total stok lotnya di bawah
// stok minimal.
func (s *Laporan) LowStock(ctx context.Context) ([]StokBarangRow, error) {
	q := s.db.WithContext(ctx).Table("barangs").
		Where("barangs.status = ?", models.BarangAktif).
		Having("COALESCE(SUM(barang_lots.stok), 0) < barangs.stok_minimal")
	return stokRows(q)
}

func stokRows(q *gorm.DB) ([]StokBarangRow, error) {
	var rows []StokBarangRow
	err := q.
		Select(`
			barangs.id AS barang_id,
			barangs.nama,
			barangs.satuan,
			barangs.stok_minimal,
			COALESCE(SUM(barang_lots.stok), 0) AS total_stok,
			CASE WHEN COALESCE(SUM(barang_lots.stok), 0) < barangs.stok_minimal THEN 'LOW' ELSE 'OK' END AS status_stok
		`).
		Joins("LEFT JOIN barang_lots ON barang_lots.barang_id = barangs.id AND barang_lots.deleted_at IS NULL").
		Where("barangs.deleted_at IS NULL").
		Group("barangs.id, barangs.nama, barangs.satuan, barangs.stok_minimal").
		Order("barangs.nama ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LotKadaluarsaDalam mengembalikan lot berisi yang kadaluarsa dalam n hari
// ke depan (termasuk yang sudah lewat).
func (s *Laporan) LotKadaluarsaDalam(ctx context.Context, hari int) ([]models.BarangLot, error) {
	batas := time.Now().AddDate(0, 0, hari)
	var lots []models.BarangLot
	err := s.db.WithContext(ctx).
		Preload("Barang").
		Where("stok > 0 AND kadaluarsa IS NOT NULL AND kadaluarsa <= ?", batas).
		Order("kadaluarsa ASC").
		Find(&lots).Error
	if err != nil {
		return nil, err
	}
	return lots, nil
}

type TransaksiReport struct {
	TotalMasuk      int                `json:"total_masuk"`
	TotalKeluar     int                `json:"total_keluar"`
	JumlahTransaksi int                `json:"jumlah_transaksi"`
	Rows            []models.Transaksi `json:"rows"`
}

// RingkasanTransaksi merangkum mutasi dalam rentang tanggal (inklusif).
func (s *Laporan) RingkasanTransaksi(ctx context.Context, dari, sampai time.Time) (TransaksiReport, error) {
	db := s.db.WithContext(ctx)
	batas := sampai.AddDate(0, 0, 1)

	var rows []models.Transaksi
	err := db.Preload("Barang").Preload("Lot").Preload("User").
		Where("created_at >= ? AND created_at < ?", dari, batas).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return TransaksiReport{}, err
	}

	report := TransaksiReport{JumlahTransaksi: len(rows), Rows: rows}
	for _, r := range rows {
		if r.Jenis == models.TransaksiMasuk {
			report.TotalMasuk += r.Jumlah
		} else {
			report.TotalKeluar += r.Jumlah
		}
	}
	return report, nil
}
