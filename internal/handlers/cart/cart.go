package cart

import (
	"github.com/gin-gonic/gin"

	"shopcart_back_end/internal/models"
	"shopcart_back_end/internal/utils"
)

// GetCart godoc
// @Summary      獲取購物車內容
// @Description  獲取當前使用者的購物車內容
// @Tags         購物車管理
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Response{data=[]models.CartItem}  "成功獲取購物車內容"
// @Failure      401  {object}  models.Response  "未授權或身份驗證失敗"
// @Router       /api/cart [get]
func GetCart(c *gin.Context) {
	utils.OK(c, utils.EmptyList(), "已獲取購物車內容")
}

// AddToCart godoc
// @Summary      新增商品到購物車
// @Description  將商品新增到使用者的購物車中
// @Tags         購物車管理
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId  formData  string   true  "產品 ID"  example(123)
// @Param        quantity   formData  integer  true  "數量"    example(1)
// @Success      201        {object}  models.Response{data=models.Empty}  "商品新增到購物車成功"
// @Failure      400        {object}  models.Response  "新增資料不完整"
// @Failure      401        {object}  models.Response  "未授權或身份驗證失敗"
// @Router       /api/cart [post]
func AddToCart(c *gin.Context) {
	var input models.CartItemInput
	_ = c.ShouldBind(&input)

	utils.Created(c, models.Empty{}, "商品新增到購物車成功")
}

// UpdateCartItem godoc
// @Summary      更新購物車商品數量
// @Description  更新購物車中特定商品的數量
// @Tags         購物車管理
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string   true  "購物車項目 ID"  example(cart123)
// @Param        quantity  formData  integer  true  "新數量"        example(3)
// @Success      200       {object}  models.Response{data=models.IDData}  "購物車商品數量更新成功"
// @Failure      400       {object}  models.Response  "更新失敗或參數錯誤"
// @Failure      401       {object}  models.Response  "未授權或身份驗證失敗"
// @Router       /api/cart/{id} [put]
func UpdateCartItem(c *gin.Context) {
	id := c.Param("id")

	var input models.CartQuantityInput
	_ = c.ShouldBind(&input)

	utils.OK(c, models.IDData{ID: id}, "購物車商品數量更新成功")
}

// RemoveFromCart godoc
// @Summary      從購物車移除商品
// @Description  從購物車中移除特定商品
// @Tags         購物車管理
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "購物車項目 ID"  example(cart123)
// @Success      200  {object}  models.Response{data=models.IDData}  "商品從購物車移除成功"
// @Failure      401  {object}  models.Response  "未授權或身份驗證失敗"
// @Router       /api/cart/{id} [delete]
func RemoveFromCart(c *gin.Context) {
	id := c.Param("id")
	utils.OK(c, models.IDData{ID: id}, "商品從購物車移除成功")
}

// ClearCart godoc
// @Summary      清空購物車
// @Description  清空使用者的整個購物車
// @Tags         購物車管理
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Response{data=models.Empty}  "購物車清空成功"
// @Failure      401  {object}  models.Response  "未授權或身份驗證失敗"
// @Router       /api/cart/clear [delete]
func ClearCart(c *gin.Context) {
	utils.OK(c, models.Empty{}, "購物車清空成功")
}
