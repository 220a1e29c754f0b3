package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/service"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/utils"

	"github.com/gin-gonic/gin"
)

type LotController struct {
	store *service.LotStore
}

func NewLotController(store *service.LotStore) *LotController {
	return &LotController{store: store}
}

func (l *LotController) ListByBarang(c *gin.Context) {
	barangID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	lots, err := l.store.ListByBarang(c.Request.Context(), uint(barangID))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data lot", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data lot", lots)
}

type CreateLotRequest struct {
	BarangID   uint       `json:"barang_id" binding:"required"`
	NomorLot   string     `json:"nomor_lot" binding:"required"`
	Kadaluarsa *time.Time `json:"kadaluarsa"`
	StokAwal   int        `json:"stok_awal"`
}

func (l *LotController) Create(c *gin.Context) {
	var in CreateLotRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	lot, err := l.store.CreateLot(c.Request.Context(), service.CreateLotInput{
		BarangID:   in.BarangID,
		NomorLot:   in.NomorLot,
		Kadaluarsa: in.Kadaluarsa,
		StokAwal:   in.StokAwal,
		UserID:     uid,
	})
	if err != nil {
		utils.Error(c, serviceStatus(err), "Gagal membuat lot", err)
		return
	}
	utils.Success(c, "Lot berhasil ditambahkan", lot)
}

type UpdateLotRequest struct {
	NomorLot        *string    `json:"nomor_lot,omitempty"`
	Kadaluarsa      *time.Time `json:"kadaluarsa,omitempty"`
	HapusKadaluarsa bool       `json:"hapus_kadaluarsa,omitempty"`
}

func (l *LotController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var in UpdateLotRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	lot, err := l.store.UpdateLot(c.Request.Context(), uint(id), service.UpdateLotInput{
		NomorLot:        in.NomorLot,
		Kadaluarsa:      in.Kadaluarsa,
		HapusKadaluarsa: in.HapusKadaluarsa,
	})
	if err != nil {
		utils.Error(c, serviceStatus(err), "Gagal update lot", err)
		return
	}
	utils.Success(c, "Lot berhasil diupdate", lot)
}

func (l *LotController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	if err := l.store.DeleteLot(c.Request.Context(), uint(id)); err != nil {
		utils.Error(c, serviceStatus(err), "Gagal hapus lot", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lot berhasil dihapus"})
}
