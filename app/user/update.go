package user

import (
	"net/http"
	"strings"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

type updateAccountBody struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func UserUpdateAccount(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	var data updateAccountBody
	if err := c.ShouldBind(&data); err != nil {
		respond.Error(c, apperr.Wrap(apperr.ValidationFailed, "Invalid request body", err))
		return
	}

	updates := map[string]any{}

	// Trim before the presence checks so whitespace-only input can't blank a
	// required field
	if fullName := strings.TrimSpace(data.FullName); fullName != "" {
		updates["full_name"] = fullName
	}

	if email := strings.TrimSpace(data.Email); email != "" {
		if err := validators.EmailValidator(email); err != nil {
			respond.Error(c, apperr.New(apperr.ValidationFailed, err.Error()))
			return
		}
		updates["email"] = email
	}

	if len(updates) == 0 {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "Nothing to update"))
		return
	}

	err := d.DB.Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error
	if err != nil {
		if model.IsDuplicate(err) {
			respond.Error(c, apperr.New(apperr.Conflict, "A user with this email or full name already exists"))
			return
		}

		respond.Error(c, err)
		return
	}

	var user model.User
	if err := d.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, user, "Account updated")
}
