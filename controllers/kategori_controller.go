package controllers

import (
	"net/http"
	"strconv"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/config"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/utils"

	"github.com/gin-gonic/gin"
)

func CreateKategori(c *gin.Context) {
	var input struct {
		Nama      string `json:"nama" binding:"required"`
		Deskripsi string `json:"deskripsi"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	kategori := models.Kategori{Nama: input.Nama, Deskripsi: input.Deskripsi}
	if err := config.DB.Create(&kategori).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, "Kategori berhasil ditambahkan", kategori)
}

func GetAllKategori(c *gin.Context) {
	var kategoris []models.Kategori
	if err := config.DB.Order("nama ASC").Find(&kategoris).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data kategori", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data kategori", kategoris)
}

func GetKategoriByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var kategori models.Kategori
	if err := config.DB.First(&kategori, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kategori tidak ditemukan"})
		return
	}
	utils.Success(c, "Berhasil mengambil detail kategori", kategori)
}

func UpdateKategori(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var kategori models.Kategori
	if err := config.DB.First(&kategori, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kategori tidak ditemukan"})
		return
	}

	var input struct {
		Nama      string `json:"nama"`
		Deskripsi string `json:"deskripsi"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	if err := config.DB.Model(&kategori).Updates(models.Kategori{Nama: input.Nama, Deskripsi: input.Deskripsi}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, "Kategori berhasil diupdate", kategori)
}

func DeleteKategori(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var kategori models.Kategori
	if err := config.DB.First(&kategori, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kategori tidak ditemukan"})
		return
	}

	var dipakai int64
	if err := config.DB.Model(&models.Barang{}).Where("kategori_id = ?", kategori.ID).Count(&dipakai).Error; err == nil && dipakai > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Kategori masih dipakai barang"})
		return
	}

	if err := config.DB.Delete(&kategori).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal hapus kategori"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Kategori berhasil dihapus"})
}
