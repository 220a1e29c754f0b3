package controllers

import (
	"net/http"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/config"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/service"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	laporan *service.Laporan
}

func NewDashboardController(laporan *service.Laporan) *DashboardController {
	return &DashboardController{laporan: laporan}
}

func (d *DashboardController) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	var totalBarang, totalLot, opnamePending int64
	config.DB.Model(&models.Barang{}).Where("status = ?", models.BarangAktif).Count(&totalBarang)
	config.DB.Model(&models.BarangLot{}).Where("stok > 0").Count(&totalLot)
	config.DB.Model(&models.StockOpname{}).Where("status_validasi = ?", models.OpnameBelum).Count(&opnamePending)

	lowStock, err := d.laporan.LowStock(ctx)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menyusun dashboard", err)
		return
	}

	kadaluarsa, err := d.laporan.LotKadaluarsaDalam(ctx, 30)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menyusun dashboard", err)
		return
	}

	var transaksiTerbaru []models.Transaksi
	if err := config.DB.Preload("Barang").Preload("Lot").Preload("User").
		Order("created_at DESC").Limit(10).Find(&transaksiTerbaru).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menyusun dashboard", err)
		return
	}

	utils.Success(c, "Berhasil menyusun dashboard", gin.H{
		"total_barang_aktif": totalBarang,
		"total_lot_berisi":   totalLot,
		"opname_pending":     opnamePending,
		"stok_rendah":        lowStock,
		"lot_kadaluarsa_30":  kadaluarsa,
		"transaksi_terbaru":  transaksiTerbaru,
	})
}
