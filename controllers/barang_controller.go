package controllers

import (
	"net/http"
	"strconv"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/config"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/service"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/utils"

	"github.com/gin-gonic/gin"
)

type BarangInput struct {
	Nama        string `json:"nama" binding:"required"`
	Deskripsi   string `json:"deskripsi"`
	KategoriID  uint   `json:"kategori_id" binding:"required"`
	Satuan      string `json:"satuan"`
	Suhu        string `json:"suhu"`
	StokMinimal int    `json:"stok_minimal"`
	Gambar      string `json:"gambar"`
	SupplierIDs []uint `json:"supplier_ids"`
}

func CreateBarang(c *gin.Context) {
	var in BarangInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	var kategori models.Kategori
	if err := config.DB.First(&kategori, in.KategoriID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kategori tidak ditemukan"})
		return
	}

	barang := models.Barang{
		Nama:        in.Nama,
		Deskripsi:   in.Deskripsi,
		KategoriID:  in.KategoriID,
		Satuan:      in.Satuan,
		Suhu:        in.Suhu,
		StokMinimal: in.StokMinimal,
		Status:      models.BarangAktif,
		Gambar:      utils.CloudinaryThumb256(in.Gambar),
	}

	if len(in.SupplierIDs) > 0 {
		var suppliers []models.Supplier
		if err := config.DB.Where("id IN ?", in.SupplierIDs).Find(&suppliers).Error; err != nil || len(suppliers) != len(in.SupplierIDs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Supplier tidak ditemukan"})
			return
		}
		barang.Suppliers = suppliers
	}

	if err := config.DB.Create(&barang).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, "Barang berhasil ditambahkan", barang)
}

func GetAllBarang(c *gin.Context) {
	q := config.DB.Preload("Kategori").Preload("Suppliers").Preload("Lots")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if kategoriID := c.Query("kategori_id"); kategoriID != "" {
		q = q.Where("kategori_id = ?", kategoriID)
	}
	if cari := c.Query("q"); cari != "" {
		q = q.Where("nama ILIKE ?", "%"+cari+"%")
	}

	var barangs []models.Barang
	if err := q.Order("nama ASC").Find(&barangs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data barang", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data barang", barangs)
}

func GetBarangByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var barang models.Barang
	if err := config.DB.Preload("Kategori").Preload("Suppliers").Preload("Lots").First(&barang, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barang tidak ditemukan"})
		return
	}
	utils.Success(c, "Berhasil mengambil detail barang", barang)
}

type BarangUpdateInput struct {
	Nama        *string `json:"nama,omitempty"`
	Deskripsi   *string `json:"deskripsi,omitempty"`
	KategoriID  *uint   `json:"kategori_id,omitempty"`
	Satuan      *string `json:"satuan,omitempty"`
	Suhu        *string `json:"suhu,omitempty"`
	StokMinimal *int    `json:"stok_minimal,omitempty"`
	Gambar      *string `json:"gambar,omitempty"`
	SupplierIDs []uint  `json:"supplier_ids,omitempty"`
}

func UpdateBarang(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var barang models.Barang
	if err := config.DB.First(&barang, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barang tidak ditemukan"})
		return
	}

	var in BarangUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	if in.Nama != nil {
		barang.Nama = *in.Nama
	}
	if in.Deskripsi != nil {
		barang.Deskripsi = *in.Deskripsi
	}
	if in.KategoriID != nil {
		var kategori models.Kategori
		if err := config.DB.First(&kategori, *in.KategoriID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Kategori tidak ditemukan"})
			return
		}
		barang.KategoriID = *in.KategoriID
	}
	if in.Satuan != nil {
		barang.Satuan = *in.Satuan
	}
	if in.Suhu != nil {
		barang.Suhu = *in.Suhu
	}
	if in.StokMinimal != nil {
		barang.StokMinimal = *in.StokMinimal
	}
	if in.Gambar != nil {
		barang.Gambar = utils.CloudinaryThumb256(*in.Gambar)
	}

	if err := config.DB.Save(&barang).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if in.SupplierIDs != nil {
		var suppliers []models.Supplier
		if err := config.DB.Where("id IN ?", in.SupplierIDs).Find(&suppliers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat supplier"})
			return
		}
		if err := config.DB.Model(&barang).Association("Suppliers").Replace(suppliers); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal update supplier"})
			return
		}
	}
	utils.Success(c, "Barang berhasil diupdate", barang)
}

// ToggleBarangStatus soft-disable: barang yang masih punya lot/transaksi
// tidak pernah dihapus, hanya dinonaktifkan.
func ToggleBarangStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var barang models.Barang
	if err := config.DB.First(&barang, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barang tidak ditemukan"})
		return
	}

	status := models.BarangAktif
	if barang.Status == models.BarangAktif {
		status = models.BarangNonaktif
	}
	if err := config.DB.Model(&barang).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengubah status barang"})
		return
	}
	utils.Success(c, "Status barang berhasil diubah", barang)
}

func DeleteBarang(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var barang models.Barang
	if err := config.DB.First(&barang, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barang tidak ditemukan"})
		return
	}

	var lots int64
	config.DB.Model(&models.BarangLot{}).Where("barang_id = ?", barang.ID).Count(&lots)
	var transaksis int64
	config.DB.Model(&models.Transaksi{}).Where("barang_id = ?", barang.ID).Count(&transaksis)
	if lots > 0 || transaksis > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Barang masih punya lot/transaksi, nonaktifkan saja"})
		return
	}

	if err := config.DB.Delete(&barang).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal hapus barang"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Barang berhasil dihapus"})
}

// AggregateController mengekspos proyeksi stok per barang.
type AggregateController struct {
	agg *service.Aggregate
}

func NewAggregateController(agg *service.Aggregate) *AggregateController {
	return &AggregateController{agg: agg}
}

func (a *AggregateController) GetBarangAggregate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	agg, err := a.agg.ItemAggregate(c.Request.Context(), uint(id))
	if err != nil {
		utils.Error(c, serviceStatus(err), "Gagal mengambil ringkasan barang", err)
		return
	}
	utils.Success(c, "Berhasil mengambil ringkasan barang", agg)
}
