package user

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"shopcart_back_end/internal/models"
	"shopcart_back_end/internal/utils"
)

// GetUsers godoc
// @Summary      獲取所有使用者
// @Description  獲取系統中所有使用者的資訊
// @Tags         使用者管理
// @Produce      json
// @Success      200  {object}  models.Response{data=[]models.User}  "成功獲取所有使用者"
// @Router       /api/users [get]
func GetUsers(c *gin.Context) {
	utils.OK(c, utils.EmptyList(), "已 獲取所有使用者")
}

// SearchUsers godoc
// @Summary      搜尋使用者
// @Description  根據帳號或姓名搜尋使用者
// @Tags         使用者管理
// @Produce      json
// @Param        q    query     string  true  "搜尋關鍵字"
// @Success      200  {object}  models.Response{data=models.QueryData}  "搜尋成功"
// @Router       /api/users/search [get]
func SearchUsers(c *gin.Context) {
	q := c.Query("q")
	utils.OK(c, models.QueryData{Q: q}, "搜尋使用者成功")
}

// GetUser godoc
// @Summary      獲取特定使用者
// @Description  根據 ID 獲取特定使用者的資訊
// @Tags         使用者管理
// @Produce      json
// @Param        id   path      string  true  "使用者 ID"
// @Success      200  {object}  models.Response{data=models.IDData}  "成功獲取使用者資訊"
// @Failure      404  {object}  models.Response  "使用者不存在"
// @Router       /api/users/{id} [get]
func GetUser(c *gin.Context) {
	id := c.Param("id")
	utils.OK(c, models.IDData{ID: id}, fmt.Sprintf("已 獲取 %s 的使用者", id))
}

// CreateUser godoc
// @Summary      註冊使用者
// @Description  建立新的使用者帳號
// @Tags         使用者管理
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        user  body      models.RegisterRequest  true  "註冊資料"
// @Success      201   {object}  models.Response{data=models.Empty}  "註冊成功"
// @Failure      400   {object}  models.Response  "註冊資料不完整"
// @Router       /api/users [post]
func CreateUser(c *gin.Context) {
	var input models.RegisterRequest
	_ = c.ShouldBind(&input)

	utils.Created(c, models.Empty{}, "註冊成功")
}

// UpdateUser godoc
// @Summary      更新使用者
// @Description  更新特定使用者的資料
// @Tags         使用者管理
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id    path      string                    true  "使用者 ID"
// @Param        user  body      models.UserUpdateRequest  true  "新使用者資料"
// @Success      200   {object}  models.Response{data=models.IDData}  "使用者更新成功"
// @Failure      400   {object}  models.Response  "更新失敗或參數錯誤"
// @Router       /api/users/{id} [put]
func UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var input models.UserUpdateRequest
	_ = c.ShouldBind(&input)

	utils.OK(c, models.IDData{ID: id}, "更新使用者成功")
}

// DeleteUser godoc
// @Summary      刪除使用者
// @Description  刪除特定使用者
// @Tags         使用者管理
// @Produce      json
// @Param        id   path      string  true  "使用者 ID"
// @Success      200  {object}  models.Response{data=models.IDData}  "使用者刪除成功"
// @Router       /api/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	id := c.Param("id")
	utils.OK(c, models.IDData{ID: id}, "刪除使用者成功")
}
