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

type OpnameController struct {
	opname *service.Opname
}

func NewOpnameController(opname *service.Opname) *OpnameController {
	return &OpnameController{opname: opname}
}

func (o *OpnameController) List(c *gin.Context) {
	q := config.DB.Preload("Petugas").Preload("Validator")

	if status := c.Query("status"); status != "" {
		q = q.Where("status_validasi = ?", status)
	}

	var rows []models.StockOpname
	if err := q.Order("tanggal DESC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data stock opname", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data stock opname", rows)
}

func (o *OpnameController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	sesi, err := o.opname.Get(c.Request.Context(), uint(id))
	if err != nil {
		utils.Error(c, serviceStatus(err), "Gagal mengambil detail stock opname", err)
		return
	}
	utils.Success(c, "Berhasil mengambil detail stock opname", sesi)
}

type OpnameItemRequest struct {
	BarangID             uint       `json:"barang_id" binding:"required"`
	StokTercatat         *int       `json:"stok_tercatat"`
	StokFisik            int        `json:"stok_fisik"`
	KesesuaianKadaluarsa string     `json:"kesesuaian_kadaluarsa"`
	TanggalKadaluarsa    *time.Time `json:"tanggal_kadaluarsa"`
}

func (r OpnameItemRequest) toInput() service.OpnameItemInput {
	return service.OpnameItemInput{
		BarangID:             r.BarangID,
		StokTercatat:         r.StokTercatat,
		StokFisik:            r.StokFisik,
		KesesuaianKadaluarsa: r.KesesuaianKadaluarsa,
		TanggalKadaluarsa:    r.TanggalKadaluarsa,
	}
}

type OpenOpnameRequest struct {
	Tanggal time.Time           `json:"tanggal" binding:"required"`
	Items   []OpnameItemRequest `json:"items"`
}

func (o *OpnameController) Open(c *gin.Context) {
	var in OpenOpnameRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	items := make([]service.OpnameItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, it.toInput())
	}

	sesi, err := o.opname.OpenSession(c.Request.Context(), in.Tanggal, uid, items)
	if err != nil {
		utils.Error(c, serviceStatus(err), "Gagal membuka stock opname", err)
		return
	}
	utils.Success(c, "Stock opname berhasil dibuka", sesi)
}

func (o *OpnameController) AddItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var in OpnameItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	detail, err := o.opname.AddItem(c.Request.Context(), uint(id), in.toInput())
	if err != nil {
		utils.Error(c, serviceStatus(err), "Gagal menambah item opname", err)
		return
	}
	utils.Success(c, "Item opname berhasil ditambahkan", detail)
}

func (o *OpnameController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}
	detailID, err := strconv.Atoi(c.Param("detailID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID detail tidak valid"})
		return
	}

	if err := o.opname.RemoveItem(c.Request.Context(), uint(id), uint(detailID)); err != nil {
		utils.Error(c, serviceStatus(err), "Gagal menghapus item opname", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item opname berhasil dihapus"})
}

type ValidateOpnameRequest struct {
	Keputusan string `json:"keputusan" binding:"required"` // Disetujui | Tidak Disetujui
}

func (o *OpnameController) Validate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var in ValidateOpnameRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	sesi, err := o.opname.Validate(c.Request.Context(), uint(id), in.Keputusan, uid)
	if err != nil {
		utils.Error(c, serviceStatus(err), "Gagal memvalidasi stock opname", err)
		return
	}

	// selisih dilaporkan apa adanya; koreksi stok tetap lewat transaksi
	selisih := 0
	for _, d := range sesi.Details {
		if d.Selisih != 0 || d.KesesuaianKadaluarsa != models.KadaluarsaSesuai {
			selisih++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Stock opname berhasil divalidasi",
		"data":         sesi,
		"item_selisih": selisih,
	})
}
