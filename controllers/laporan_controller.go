package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/service"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/utils"

	"github.com/gin-gonic/gin"
)

type LaporanController struct {
	laporan *service.Laporan
}

func NewLaporanController(laporan *service.Laporan) *LaporanController {
	return &LaporanController{laporan: laporan}
}

func (l *LaporanController) StokPerKategori(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	report, err := l.laporan.StokPerKategori(c.Request.Context(), uint(id))
	if err != nil {
		utils.Error(c, serviceStatus(err), "Gagal menyusun laporan stok", err)
		return
	}
	utils.Success(c, "Berhasil menyusun laporan stok per kategori", report)
}

func (l *LaporanController) LowStock(c *gin.Context) {
	rows, err := l.laporan.LowStock(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menyusun laporan stok rendah", err)
		return
	}
	utils.Success(c, "Berhasil menyusun laporan stok rendah", rows)
}

func (l *LaporanController) Transaksi(c *gin.Context) {
	dari, err := time.Parse("2006-01-02", c.DefaultQuery("dari", time.Now().AddDate(0, -1, 0).Format("2006-01-02")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tanggal 'dari' tidak valid"})
		return
	}
	sampai, err := time.Parse("2006-01-02", c.DefaultQuery("sampai", time.Now().Format("2006-01-02")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tanggal 'sampai' tidak valid"})
		return
	}

	report, err := l.laporan.RingkasanTransaksi(c.Request.Context(), dari, sampai)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menyusun laporan transaksi", err)
		return
	}
	utils.Success(c, "Berhasil menyusun laporan transaksi", report)
}

func (l *LaporanController) LotKadaluarsa(c *gin.Context) {
	hari := 30
	if v := c.Query("hari"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter hari tidak valid"})
			return
		}
		hari = n
	}

	lots, err := l.laporan.LotKadaluarsaDalam(c.Request.Context(), hari)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menyusun laporan kadaluarsa", err)
		return
	}
	utils.Success(c, "Berhasil menyusun laporan lot kadaluarsa", lots)
}
