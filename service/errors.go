package service

import "errors"

// Kesalahan aturan bisnis. Semua terdeteksi di dalam scope transaksi dan
// memicu rollback penuh; controller memetakan ke status HTTP lewat errors.Is.
var (
	ErrValidation        = errors.New("data tidak valid")
	ErrNotFound          = errors.New("data tidak ditemukan")
	ErrInsufficientStock = errors.New("stok tidak mencukupi")
	ErrInvalidReversal   = errors.New("pembatalan membuat stok lot negatif")
	ErrDuplicateLot      = errors.New("nomor lot sudah digunakan")
	ErrLotHasStock       = errors.New("lot masih memiliki stok")
	ErrEmptyOpname       = errors.New("stock opname tanpa item")
	ErrSessionClosed     = errors.New("stock opname sudah divalidasi")
	ErrAlreadyValidated  = errors.New("stock opname sudah divalidasi sebelumnya")
	ErrInvalidDecision   = errors.New("keputusan validasi tidak dikenal")
)
