package controllers

import (
	"net/http"
	"strconv"

	"github.com/azzami13/Mapasset/service"
	"github.com/azzami13/Mapasset/utils"

	"github.com/gin-gonic/gin"
)

type AssetController struct {
	assets service.AssetService
}

func NewAssetController(assets service.AssetService) *AssetController {
	return &AssetController{assets: assets}
}

func (ctl *AssetController) List(c *gin.Context) {
	rows, err := ctl.assets.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(rows),
		"data":  rows,
	})
}

func (ctl *AssetController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	asset, err := ctl.assets.Detail(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": asset})
}

func (ctl *AssetController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var in service.UpdateAssetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	asset, err := ctl.assets.Update(c.Request.Context(), id, in)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, "Asset berhasil diupdate", asset)
}

func (ctl *AssetController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	if err := ctl.assets.Remove(c.Request.Context(), id); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset berhasil dihapus", "ok": true})
}

type CreatePointInput struct {
	KodeAset     string   `json:"kode_aset" binding:"required,min=3"`
	NamaAset     string   `json:"nama_aset" binding:"required,min=3"`
	Lat          *float64 `json:"lat" binding:"required"`
	Lng          *float64 `json:"lng" binding:"required"`
	AlamatLokasi *string  `json:"alamat_lokasi"`
}

func (ctl *AssetController) CreatePoint(c *gin.Context) {
	var in CreatePointInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	asset, err := ctl.assets.CreatePoint(c.Request.Context(), service.CreatePointInput{
		KodeAset:     in.KodeAset,
		NamaAset:     in.NamaAset,
		Lat:          *in.Lat,
		Lng:          *in.Lng,
		AlamatLokasi: in.AlamatLokasi,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, "Asset berhasil ditambahkan", asset)
}

type CreatePolygonInput struct {
	KodeAset     string       `json:"kode_aset" binding:"required,min=3"`
	NamaAset     string       `json:"nama_aset" binding:"required,min=3"`
	Coordinates  [][2]float64 `json:"coordinates" binding:"required"` // [lng, lat]
	AlamatLokasi *string      `json:"alamat_lokasi"`
}

func (ctl *AssetController) CreatePolygon(c *gin.Context) {
	var in CreatePolygonInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	asset, err := ctl.assets.CreatePolygon(c.Request.Context(), service.CreatePolygonInput{
		KodeAset:     in.KodeAset,
		NamaAset:     in.NamaAset,
		Coordinates:  in.Coordinates,
		AlamatLokasi: in.AlamatLokasi,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, "Asset berhasil ditambahkan", asset)
}

// GeoJSON mengembalikan FeatureCollection polos tanpa amplop respons,
// supaya bisa langsung dimuat library peta.
func (ctl *AssetController) GeoJSON(c *gin.Context) {
	fc, err := ctl.assets.GeoJSON(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, fc)
}
