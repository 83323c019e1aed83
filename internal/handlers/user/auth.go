package user

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"shopcart_back_end/internal/models"
	"shopcart_back_end/internal/utils"
)

const placeholderToken = "token"

// Login godoc
// @Summary      使用者登入
// @Description  使用帳號密碼登入
// @Tags         使用者管理
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        account   formData  string  true  "使用者帳號"  example(user123)
// @Param        password  formData  string  true  "使用者密碼"  example(password123)
// @Success      200       {object}  models.Response{data=string}  "登入成功"
// @Failure      400       {object}  models.Response  "帳號或密碼錯誤"
// @Router       /api/users/login [post]
func Login(c *gin.Context) {
	var input models.LoginRequest
	_ = c.ShouldBind(&input)

	utils.OK(c, placeholderToken, fmt.Sprintf("使用者%s登入成功", input.Account))
}

// Logout godoc
// @Summary      使用者登出
// @Tags         使用者管理
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Response{data=string}  "登出成功"
// @Failure      401  {object}  models.Response  "未授權或身份驗證失敗"
// @Router       /api/users/logout [post]
func Logout(c *gin.Context) {
	utils.OK(c, placeholderToken, "使用者登出成功")
}

// Status godoc
// @Summary      檢查登入狀態
// @Tags         使用者管理
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Response{data=string}  "檢查成功"
// @Failure      401  {object}  models.Response  "未授權或身份驗證失敗"
// @Router       /api/users/status [post]
func Status(c *gin.Context) {
	utils.OK(c, placeholderToken, "檢查登入狀態成功")
}
