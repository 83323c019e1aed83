package product

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"shopcart_back_end/internal/models"
	"shopcart_back_end/internal/utils"
)

// GetAllProducts godoc
// @Summary      獲取所有產品
// @Description  獲取系統中所有產品的資訊
// @Tags         產品管理
// @Produce      json
// @Success      200  {object}  models.Response{data=[]models.Product}  "成功獲取所有產品"
// @Router       /api/pts [get]
func GetAllProducts(c *gin.Context) {
	utils.OK(c, utils.EmptyList(), "已 獲取所有產品")
}

// SearchProducts godoc
// @Summary      搜尋產品
// @Description  根據關鍵字搜尋產品
// @Tags         產品管理
// @Produce      json
// @Param        key  query     string  true  "搜尋關鍵字"  example(手機)
// @Success      200  {object}  models.Response{data=models.KeyData}  "搜尋成功"
// @Router       /api/pts/search [get]
func SearchProducts(c *gin.Context) {
	key := c.Query("key")
	utils.OK(c, models.KeyData{Key: key}, "搜尋產品成功")
}

// GetProduct godoc
// @Summary      獲取特定產品
// @Description  根據 ID 獲取特定產品的詳細資訊
// @Tags         產品管理
// @Produce      json
// @Param        id   path      string  true  "產品 ID"
// @Success      200  {object}  models.Response{data=models.IDData}  "成功獲取產品資訊"
// @Failure      404  {object}  models.Response  "產品不存在"
// @Router       /api/pts/{id} [get]
func GetProduct(c *gin.Context) {
	id := c.Param("id")
	utils.OK(c, models.IDData{ID: id}, fmt.Sprintf("已 獲取 %s 的產品", id))
}

// CreateProduct godoc
// @Summary      新增產品
// @Description  新增一個產品到系統
// @Tags         產品管理
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        product  body      models.ProductInput  true  "產品資料"
// @Success      201      {object}  models.Response{data=models.Empty}  "產品新增成功"
// @Failure      400      {object}  models.Response  "新增資料不完整或價格無效"
// @Router       /api/pts [post]
func CreateProduct(c *gin.Context) {
	var input models.ProductInput
	_ = c.ShouldBind(&input)

	utils.Created(c, models.Empty{}, "新增一個產品成功")
}

// UpdateProduct godoc
// @Summary      更新產品
// @Description  更新特定產品的資訊
// @Tags         產品管理
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id       path      string               true  "產品 ID"
// @Param        product  body      models.ProductInput  true  "新產品資料"
// @Success      200      {object}  models.Response{data=models.IDData}  "產品更新成功"
// @Failure      400      {object}  models.Response  "更新失敗或參數錯誤"
// @Router       /api/pts/{id} [put]
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var input models.ProductInput
	_ = c.ShouldBind(&input)

	utils.OK(c, models.IDData{ID: id}, "更新產品成功")
}

// DeleteProduct godoc
// @Summary      刪除產品
// @Description  刪除特定產品
// @Tags         產品管理
// @Produce      json
// @Param        id   path      string  true  "產品 ID"
// @Success      200  {object}  models.Response{data=models.IDData}  "產品刪除成功"
// @Router       /api/pts/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	utils.OK(c, models.IDData{ID: id}, "刪除產品成功")
}
