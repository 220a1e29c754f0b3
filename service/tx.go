package service

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate mengunci baris yang dibaca sampai transaksi selesai, supaya
// read-modify-write stok tidak terpecah antar transaksi. SQLite tidak
// mengenal FOR UPDATE; di sana penulis sudah serial per database.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
