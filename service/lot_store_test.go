package service

import (
	"context"
	"errors"
	"testing"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
)

func TestCreateLotDuplicate(t *testing.T) {
	db := newTestDB(t)
	user, barang := seedBarang(t, db)
	store := NewLotStore(db)
	ctx := context.Background()

	if _, err := store.CreateLot(ctx, CreateLotInput{
		BarangID: barang.ID, NomorLot: "L1", Kadaluarsa: datePtr(2027, 1, 1), UserID: user.ID,
	}); err != nil {
		t.Fatalf("CreateLot: %v", err)
	}

	_, err := store.CreateLot(ctx, CreateLotInput{BarangID: barang.ID, NomorLot: "L1", UserID: user.ID})
	if !errors.Is(err, ErrDuplicateLot) {
		t.Fatalf("err = %v, harus ErrDuplicateLot", err)
	}

	// nomor sama di barang lain tidak bentrok
	lain := models.Barang{Nama: "Strip Urinalisis", KategoriID: barang.KategoriID, Satuan: "box", Status: models.BarangAktif}
	if err := db.Create(&lain).Error; err != nil {
		t.Fatalf("seed barang lain: %v", err)
	}
	if _, err := store.CreateLot(ctx, CreateLotInput{BarangID: lain.ID, NomorLot: "L1", UserID: user.ID}); err != nil {
		t.Fatalf("nomor lot sama lintas barang: %v", err)
	}
}

func TestCreateLotStokAwalTercatatSebagaiTransaksi(t *testing.T) {
	db := newTestDB(t)
	user, barang := seedBarang(t, db)
	store := NewLotStore(db)

	lot, err := store.CreateLot(context.Background(), CreateLotInput{
		BarangID: barang.ID, NomorLot: "L2", StokAwal: 8, UserID: user.ID,
	})
	if err != nil {
		t.Fatalf("CreateLot: %v", err)
	}
	if lot.Stok != 8 {
		t.Fatalf("stok = %d, harus 8", lot.Stok)
	}
	if got := signedSum(t, db, lot.ID); got != 8 {
		t.Fatalf("jumlah bertanda = %d, stok awal harus punya transaksi pembuka", got)
	}

	var pembuka models.Transaksi
	if err := db.Where("lot_id = ?", lot.ID).First(&pembuka).Error; err != nil {
		t.Fatalf("load transaksi pembuka: %v", err)
	}
	if pembuka.Jenis != models.TransaksiMasuk || pembuka.Keterangan != "Stok awal" {
		t.Fatalf("transaksi pembuka tidak sesuai: %+v", pembuka)
	}
}

func TestCreateLotValidation(t *testing.T) {
	db := newTestDB(t)
	user, barang := seedBarang(t, db)
	store := NewLotStore(db)
	ctx := context.Background()

	if _, err := store.CreateLot(ctx, CreateLotInput{BarangID: barang.ID, NomorLot: "  ", UserID: user.ID}); !errors.Is(err, ErrValidation) {
		t.Fatalf("nomor kosong: err = %v", err)
	}
	if _, err := store.CreateLot(ctx, CreateLotInput{BarangID: barang.ID, NomorLot: "L3", StokAwal: -1, UserID: user.ID}); !errors.Is(err, ErrValidation) {
		t.Fatalf("stok awal negatif: err = %v", err)
	}
	if _, err := store.CreateLot(ctx, CreateLotInput{BarangID: 777, NomorLot: "L3", UserID: user.ID}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("barang tidak ada: err = %v", err)
	}
}

func TestDeleteLot(t *testing.T) {
	db := newTestDB(t)
	user, barang := seedBarang(t, db)
	store := NewLotStore(db)
	ledger := NewLedger(db)
	ctx := context.Background()

	lot, err := store.CreateLot(ctx, CreateLotInput{BarangID: barang.ID, NomorLot: "L1", StokAwal: 5, UserID: user.ID})
	if err != nil {
		t.Fatalf("CreateLot: %v", err)
	}

	if err := store.DeleteLot(ctx, lot.ID); !errors.Is(err, ErrLotHasStock) {
		t.Fatalf("err = %v, harus ErrLotHasStock", err)
	}

	if _, err := ledger.RecordTransaction(ctx, RecordTransaksiInput{
		Jenis: models.TransaksiKeluar, BarangID: barang.ID, Jumlah: 5, LotID: &lot.ID, UserID: user.ID,
	}); err != nil {
		t.Fatalf("kosongkan lot: %v", err)
	}

	if err := store.DeleteLot(ctx, lot.ID); err != nil {
		t.Fatalf("DeleteLot: %v", err)
	}
	if got := countTransaksi(t, db, lot.ID); got != 0 {
		t.Fatalf("riwayat transaksi tersisa: %d", got)
	}
	if err := store.DeleteLot(ctx, lot.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("hapus kedua: err = %v, harus ErrNotFound", err)
	}
}

// Nomor lot yang sudah dihapus harus bisa dipakai ulang: penghapusan tidak
// boleh meninggalkan baris yang masih mengunci index unik (barang_id, nomor_lot).
func TestDeleteLotNomorBisaDipakaiUlang(t *testing.T) {
	db := newTestDB(t)
	user, barang := seedBarang(t, db)
	store := NewLotStore(db)
	ctx := context.Background()

	lot, err := store.CreateLot(ctx, CreateLotInput{BarangID: barang.ID, NomorLot: "L1", UserID: user.ID})
	if err != nil {
		t.Fatalf("CreateLot: %v", err)
	}
	if err := store.DeleteLot(ctx, lot.ID); err != nil {
		t.Fatalf("DeleteLot: %v", err)
	}

	ulang, err := store.CreateLot(ctx, CreateLotInput{
		BarangID: barang.ID, NomorLot: "L1", Kadaluarsa: datePtr(2027, 1, 1), StokAwal: 3, UserID: user.ID,
	})
	if err != nil {
		t.Fatalf("CreateLot ulang: %v", err)
	}
	if ulang.ID == lot.ID {
		t.Fatalf("lot ulang memakai id lama %d", lot.ID)
	}
	if ulang.Stok != 3 {
		t.Fatalf("stok lot ulang = %d, harus 3", ulang.Stok)
	}
	if got := countTransaksi(t, db, ulang.ID); got != 1 {
		t.Fatalf("jumlah transaksi pembuka = %d, harus 1", got)
	}
}

func TestUpdateLotRename(t *testing.T) {
	db := newTestDB(t)
	user, barang := seedBarang(t, db)
	store := NewLotStore(db)
	ctx := context.Background()

	l1, err := store.CreateLot(ctx, CreateLotInput{BarangID: barang.ID, NomorLot: "L1", UserID: user.ID})
	if err != nil {
		t.Fatalf("CreateLot L1: %v", err)
	}
	if _, err := store.CreateLot(ctx, CreateLotInput{BarangID: barang.ID, NomorLot: "L2", UserID: user.ID}); err != nil {
		t.Fatalf("CreateLot L2: %v", err)
	}

	if _, err := store.UpdateLot(ctx, l1.ID, UpdateLotInput{NomorLot: strPtr("L2")}); !errors.Is(err, ErrDuplicateLot) {
		t.Fatalf("rename ke nomor terpakai: err = %v", err)
	}

	hasil, err := store.UpdateLot(ctx, l1.ID, UpdateLotInput{NomorLot: strPtr("L9"), Kadaluarsa: datePtr(2028, 6, 1)})
	if err != nil {
		t.Fatalf("UpdateLot: %v", err)
	}
	if hasil.NomorLot != "L9" {
		t.Fatalf("nomor = %q", hasil.NomorLot)
	}
	if hasil.Kadaluarsa == nil || !hasil.Kadaluarsa.Equal(*datePtr(2028, 6, 1)) {
		t.Fatalf("kadaluarsa = %v", hasil.Kadaluarsa)
	}

	hasil, err = store.UpdateLot(ctx, l1.ID, UpdateLotInput{HapusKadaluarsa: true})
	if err != nil {
		t.Fatalf("hapus kadaluarsa: %v", err)
	}
	if hasil.Kadaluarsa != nil {
		t.Fatalf("kadaluarsa masih %v", hasil.Kadaluarsa)
	}
}

func TestAggregateHelpers(t *testing.T) {
	db := newTestDB(t)
	_, barang := seedBarang(t, db)
	store := NewLotStore(db)
	ctx := context.Background()

	seedLot(t, db, barang.ID, "L1", datePtr(2027, 5, 1), 3)
	seedLot(t, db, barang.ID, "L2", datePtr(2026, 12, 1), 4)
	seedLot(t, db, barang.ID, "L3", datePtr(2026, 1, 1), 0) // kosong, diabaikan
	seedLot(t, db, barang.ID, "L4", nil, 9)                 // tanpa kadaluarsa

	total, err := store.TotalStok(ctx, barang.ID)
	if err != nil {
		t.Fatalf("TotalStok: %v", err)
	}
	if total != 16 {
		t.Fatalf("total = %d, harus 16", total)
	}

	terdekat, err := store.KadaluarsaTerdekat(ctx, barang.ID)
	if err != nil {
		t.Fatalf("KadaluarsaTerdekat: %v", err)
	}
	if terdekat == nil || !terdekat.Equal(*datePtr(2026, 12, 1)) {
		t.Fatalf("kadaluarsa terdekat = %v, harus 2026-12-01", terdekat)
	}
}
