package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/config"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/service"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/utils"

	"github.com/gin-gonic/gin"
)

type TransaksiController struct {
	ledger *service.Ledger
}

func NewTransaksiController(ledger *service.Ledger) *TransaksiController {
	return &TransaksiController{ledger: ledger}
}

func (t *TransaksiController) List(c *gin.Context) {
	q := config.DB.Preload("Barang").Preload("Lot").Preload("User")

	if jenis := c.Query("jenis"); jenis != "" {
		q = q.Where("jenis = ?", jenis)
	}
	if barangID := c.Query("barang_id"); barangID != "" {
		q = q.Where("barang_id = ?", barangID)
	}
	if lotID := c.Query("lot_id"); lotID != "" {
		q = q.Where("lot_id = ?", lotID)
	}
	if dari := c.Query("dari"); dari != "" {
		if tgl, err := time.Parse("2006-01-02", dari); err == nil {
			q = q.Where("created_at >= ?", tgl)
		}
	}
	if sampai := c.Query("sampai"); sampai != "" {
		if tgl, err := time.Parse("2006-01-02", sampai); err == nil {
			q = q.Where("created_at < ?", tgl.AddDate(0, 0, 1))
		}
	}

	var rows []models.Transaksi
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data transaksi", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data transaksi", rows)
}

func (t *TransaksiController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var trx models.Transaksi
	if err := config.DB.Preload("Barang").Preload("Lot").Preload("User").First(&trx, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaksi tidak ditemukan"})
		return
	}
	utils.Success(c, "Berhasil mengambil detail transaksi", trx)
}

type CreateTransaksiRequest struct {
	Jenis      string     `json:"jenis" binding:"required"`
	BarangID   uint       `json:"barang_id" binding:"required"`
	Jumlah     int        `json:"jumlah" binding:"required"`
	LotID      *uint      `json:"lot_id"`
	NomorLot   string     `json:"nomor_lot"`
	Kadaluarsa *time.Time `json:"kadaluarsa"`
	Keterangan string     `json:"keterangan"`
}

func (t *TransaksiController) Create(c *gin.Context) {
	var in CreateTransaksiRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	trx, err := t.ledger.RecordTransaction(c.Request.Context(), service.RecordTransaksiInput{
		Jenis:      models.JenisTransaksi(in.Jenis),
		BarangID:   in.BarangID,
		Jumlah:     in.Jumlah,
		LotID:      in.LotID,
		NomorLot:   in.NomorLot,
		Kadaluarsa: in.Kadaluarsa,
		Keterangan: in.Keterangan,
		UserID:     uid,
	})
	if err != nil {
		utils.Error(c, serviceStatus(err), "Gagal mencatat transaksi", err)
		return
	}
	utils.Success(c, "Transaksi berhasil dicatat", trx)
}

type UpdateTransaksiRequest struct {
	Jumlah     *int    `json:"jumlah,omitempty"`
	Keterangan *string `json:"keterangan,omitempty"`
}

func (t *TransaksiController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var in UpdateTransaksiRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	trx, err := t.ledger.AmendTransaction(c.Request.Context(), uint(id), in.Jumlah, in.Keterangan)
	if err != nil {
		utils.Error(c, serviceStatus(err), "Gagal mengubah transaksi", err)
		return
	}
	utils.Success(c, "Transaksi berhasil diubah", trx)
}

func (t *TransaksiController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	if err := t.ledger.RemoveTransaction(c.Request.Context(), uint(id)); err != nil {
		utils.Error(c, serviceStatus(err), "Gagal menghapus transaksi", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaksi berhasil dihapus, stok lot dikembalikan"})
}
