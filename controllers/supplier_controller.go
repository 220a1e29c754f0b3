package controllers

import (
	"net/http"
	"strconv"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/config"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/utils"

	"github.com/gin-gonic/gin"
)

func CreateSupplier(c *gin.Context) {
	var input struct {
		Nama    string `json:"nama" binding:"required"`
		Alamat  string `json:"alamat"`
		Telepon string `json:"telepon"`
		Email   string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	supplier := models.Supplier{
		Nama:    input.Nama,
		Alamat:  input.Alamat,
		Telepon: input.Telepon,
		Email:   input.Email,
	}
	if err := config.DB.Create(&supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, "Supplier berhasil ditambahkan", supplier)
}

func GetAllSupplier(c *gin.Context) {
	var suppliers []models.Supplier
	if err := config.DB.Order("nama ASC").Find(&suppliers).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data supplier", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data supplier", suppliers)
}

func GetSupplierByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier tidak ditemukan"})
		return
	}
	utils.Success(c, "Berhasil mengambil detail supplier", supplier)
}

func UpdateSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier tidak ditemukan"})
		return
	}

	var input struct {
		Nama    string `json:"nama"`
		Alamat  string `json:"alamat"`
		Telepon string `json:"telepon"`
		Email   string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	updateData := models.Supplier{
		Nama:    input.Nama,
		Alamat:  input.Alamat,
		Telepon: input.Telepon,
		Email:   input.Email,
	}
	if err := config.DB.Model(&supplier).Updates(updateData).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, "Supplier berhasil diupdate", supplier)
}

func DeleteSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier tidak ditemukan"})
		return
	}

	if err := config.DB.Delete(&supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal hapus supplier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier berhasil dihapus"})
}
