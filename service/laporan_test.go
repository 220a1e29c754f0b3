package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
)

func TestLowStockHanyaBarangDiBawahMinimal(t *testing.T) {
	db := newTestDB(t)
	_, barang := seedBarang(t, db) // stok minimal 5
	seedLot(t, db, barang.ID, "LOT-A", nil, 2)
	seedLot(t, db, barang.ID, "LOT-B", nil, 2) // total 4 < 5

	cukup := models.Barang{
		Nama:        "Tabung EDTA",
		KategoriID:  barang.KategoriID,
		Satuan:      "pcs",
		StokMinimal: 10,
		Status:      models.BarangAktif,
	}
	if err := db.Create(&cukup).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}
	seedLot(t, db, cukup.ID, "LOT-C", nil, 25)

	nonaktif := models.Barang{
		Nama:        "Reagen Lama",
		KategoriID:  barang.KategoriID,
		Satuan:      "botol",
		StokMinimal: 5,
		Status:      models.BarangNonaktif,
	}
	if err := db.Create(&nonaktif).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}

	rows, err := NewLaporan(db).LowStock(context.Background())
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("jumlah baris = %d, harusnya 1", len(rows))
	}
	if rows[0].BarangID != barang.ID || rows[0].TotalStok != 4 || rows[0].StatusStok != "LOW" {
		t.Fatalf("baris tidak sesuai: %+v", rows[0])
	}
}

func TestStokPerKategori(t *testing.T) {
	db := newTestDB(t)
	_, barang := seedBarang(t, db)
	seedLot(t, db, barang.ID, "LOT-A", nil, 7)
	seedLot(t, db, barang.ID, "LOT-B", nil, 3)

	lain := models.Barang{
		Nama:        "Strip Urinalisis",
		KategoriID:  barang.KategoriID,
		Satuan:      "box",
		StokMinimal: 2,
		Status:      models.BarangAktif,
	}
	if err := db.Create(&lain).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}
	nonaktif := models.Barang{
		Nama:        "Reagen Lama",
		KategoriID:  barang.KategoriID,
		Satuan:      "botol",
		StokMinimal: 1,
		Status:      models.BarangNonaktif,
	}
	if err := db.Create(&nonaktif).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}
	seedLot(t, db, nonaktif.ID, "LOT-X", nil, 50)

	report, err := NewLaporan(db).StokPerKategori(context.Background(), barang.KategoriID)
	if err != nil {
		t.Fatalf("StokPerKategori: %v", err)
	}
	if report.JumlahItem != 2 {
		t.Fatalf("jumlah item = %d, harusnya 2", report.JumlahItem)
	}
	if report.TotalStok != 10 {
		t.Fatalf("total stok = %d, harusnya 10", report.TotalStok)
	}
	for _, it := range report.Items {
		if it.BarangID == lain.ID && it.TotalStok != 0 {
			t.Fatalf("barang tanpa lot harusnya total 0, dapat %d", it.TotalStok)
		}
	}
}

func TestStokPerKategoriTidakDitemukan(t *testing.T) {
	db := newTestDB(t)

	_, err := NewLaporan(db).StokPerKategori(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, harusnya ErrNotFound", err)
	}
}

func TestLotKadaluarsaDalam(t *testing.T) {
	db := newTestDB(t)
	_, barang := seedBarang(t, db)

	dekat := time.Now().AddDate(0, 0, 10)
	jauh := time.Now().AddDate(0, 6, 0)
	seedLot(t, db, barang.ID, "LOT-DEKAT", &dekat, 5)
	seedLot(t, db, barang.ID, "LOT-JAUH", &jauh, 5)
	seedLot(t, db, barang.ID, "LOT-KOSONG", &dekat, 0)
	seedLot(t, db, barang.ID, "LOT-TANPA", nil, 5)

	lots, err := NewLaporan(db).LotKadaluarsaDalam(context.Background(), 30)
	if err != nil {
		t.Fatalf("LotKadaluarsaDalam: %v", err)
	}
	if len(lots) != 1 {
		t.Fatalf("jumlah lot = %d, harusnya 1", len(lots))
	}
	if lots[0].NomorLot != "LOT-DEKAT" {
		t.Fatalf("nomor lot = %s", lots[0].NomorLot)
	}
	if lots[0].Barang.ID != barang.ID {
		t.Fatalf("preload barang tidak terisi")
	}
}

func TestRingkasanTransaksi(t *testing.T) {
	db := newTestDB(t)
	user, barang := seedBarang(t, db)
	ledger := NewLedger(db)
	ctx := context.Background()

	if _, err := ledger.RecordTransaction(ctx, RecordTransaksiInput{
		Jenis: models.TransaksiMasuk, BarangID: barang.ID, Jumlah: 10,
		NomorLot: "LOT-A", UserID: user.ID,
	}); err != nil {
		t.Fatalf("masuk: %v", err)
	}
	if _, err := ledger.RecordTransaction(ctx, RecordTransaksiInput{
		Jenis: models.TransaksiKeluar, BarangID: barang.ID, Jumlah: 3,
		NomorLot: "LOT-A", UserID: user.ID,
	}); err != nil {
		t.Fatalf("keluar: %v", err)
	}

	hariIni := time.Now()
	report, err := NewLaporan(db).RingkasanTransaksi(ctx, hariIni.AddDate(0, 0, -1), hariIni)
	if err != nil {
		t.Fatalf("RingkasanTransaksi: %v", err)
	}
	if report.JumlahTransaksi != 2 {
		t.Fatalf("jumlah transaksi = %d, harusnya 2", report.JumlahTransaksi)
	}
	if report.TotalMasuk != 10 || report.TotalKeluar != 3 {
		t.Fatalf("total masuk/keluar = %d/%d, harusnya 10/3", report.TotalMasuk, report.TotalKeluar)
	}

	kosong, err := NewLaporan(db).RingkasanTransaksi(ctx, hariIni.AddDate(0, -2, 0), hariIni.AddDate(0, -1, 0))
	if err != nil {
		t.Fatalf("RingkasanTransaksi rentang kosong: %v", err)
	}
	if kosong.JumlahTransaksi != 0 {
		t.Fatalf("rentang lampau harusnya kosong, dapat %d", kosong.JumlahTransaksi)
	}
}
