package service

import (
	"testing"
	"time"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// satu koneksi saja: tiap koneksi :memory: adalah database terpisah
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Kategori{},
		&models.Supplier{},
		&models.Barang{},
		&models.BarangLot{},
		&models.Transaksi{},
		&models.StockOpname{},
		&models.DetailOpname{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedBarang(t *testing.T, db *gorm.DB) (models.User, models.Barang) {
	t.Helper()

	user := models.User{Nama: "Petugas Lab", Username: "petugas", Password: "rahasia", Role: models.RolePJGudang}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	kategori := models.Kategori{Nama: "Reagen"}
	if err := db.Create(&kategori).Error; err != nil {
		t.Fatalf("seed kategori: %v", err)
	}
	barang := models.Barang{
		Nama:        "Reagen Glukosa",
		KategoriID:  kategori.ID,
		Satuan:      "botol",
		Suhu:        "2-8°C",
		StokMinimal: 5,
		Status:      models.BarangAktif,
	}
	if err := db.Create(&barang).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}
	return user, barang
}

func seedLot(t *testing.T, db *gorm.DB, barangID uint, nomor string, kadaluarsa *time.Time, stok int) models.BarangLot {
	t.Helper()

	lot := models.BarangLot{BarangID: barangID, NomorLot: nomor, Kadaluarsa: kadaluarsa, Stok: stok}
	if err := db.Create(&lot).Error; err != nil {
		t.Fatalf("seed lot %s: %v", nomor, err)
	}
	return lot
}

func lotStok(t *testing.T, db *gorm.DB, lotID uint) int {
	t.Helper()

	var lot models.BarangLot
	if err := db.First(&lot, lotID).Error; err != nil {
		t.Fatalf("load lot %d: %v", lotID, err)
	}
	return lot.Stok
}

func countTransaksi(t *testing.T, db *gorm.DB, lotID uint) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.Transaksi{}).Where("lot_id = ?", lotID).Count(&n).Error; err != nil {
		t.Fatalf("count transaksi: %v", err)
	}
	return n
}

// signedSum menghitung jumlah bertanda riwayat transaksi sebuah lot; harus
// selalu sama dengan stok lot tersebut.
func signedSum(t *testing.T, db *gorm.DB, lotID uint) int {
	t.Helper()

	var rows []models.Transaksi
	if err := db.Where("lot_id = ?", lotID).Find(&rows).Error; err != nil {
		t.Fatalf("load transaksi: %v", err)
	}
	sum := 0
	for _, r := range rows {
		if r.Jenis == models.TransaksiMasuk {
			sum += r.Jumlah
		} else {
			sum -= r.Jumlah
		}
	}
	return sum
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
