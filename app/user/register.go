package user

import (
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/service"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/util"
	"bitwise74/streamhub-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerForm struct {
	FullName string `form:"fullName"`
	Email    string `form:"email"`
	Username string `form:"username"`
	Password string `form:"password"`
}

func UserRegister(c *gin.Context, d *internal.Deps) {
	var data registerForm
	if err := c.ShouldBind(&data); err != nil {
		respond.Error(c, apperr.Wrap(apperr.ValidationFailed, "Invalid request body", err))
		return
	}

	data.Username = strings.ToLower(strings.TrimSpace(data.Username))
	data.FullName = strings.TrimSpace(data.FullName)
	data.Email = strings.TrimSpace(data.Email)

	if data.FullName == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "fullName can't be blank"))
		return
	}

	if err := validators.UsernameValidator(data.Username); err != nil {
		respond.Error(c, apperr.New(apperr.ValidationFailed, err.Error()))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		respond.Error(c, apperr.New(apperr.ValidationFailed, err.Error()))
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		respond.Error(c, apperr.New(apperr.ValidationFailed, err.Error()))
		return
	}

	var count int64
	err := d.DB.Model(&model.User{}).
		Where("username = ? OR email = ? OR full_name = ?", data.Username, data.Email, data.FullName).
		Count(&count).Error
	if err != nil {
		respond.Error(c, err)
		return
	}

	if count > 0 {
		respond.Error(c, apperr.New(apperr.Conflict, "A user with this username, email or full name already exists"))
		return
	}

	avatarFH, err := c.FormFile("avatar")
	if err != nil || avatarFH == nil {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "avatar image is required"))
		return
	}

	userID, err := model.NewID()
	if err != nil {
		respond.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	uploaded := []string{}

	avatarURL, avatarKey, err := uploadImage(c, d, avatarFH, userID+"_avatar_"+util.RandStr(6))
	if err != nil {
		respond.Error(c, apperr.Wrap(apperr.UpstreamFailure, "Failed to store avatar image", err))
		return
	}
	uploaded = append(uploaded, avatarKey)

	var coverURL string
	if coverFH, err := c.FormFile("coverImage"); err == nil && coverFH != nil {
		var coverKey string
		coverURL, coverKey, err = uploadImage(c, d, coverFH, userID+"_cover_"+util.RandStr(6))
		if err != nil {
			d.Storage.Delete(ctx, uploaded...)
			respond.Error(c, apperr.Wrap(apperr.UpstreamFailure, "Failed to store cover image", err))
			return
		}
		uploaded = append(uploaded, coverKey)
	}

	hash, err := d.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		d.Storage.Delete(ctx, uploaded...)
		respond.Error(c, err)
		return
	}

	user := model.User{
		ID:           userID,
		Username:     data.Username,
		Email:        data.Email,
		FullName:     data.FullName,
		Avatar:       avatarURL,
		CoverImage:   coverURL,
		PasswordHash: hash,
	}

	if err := d.DB.Create(&user).Error; err != nil {
		d.Storage.Delete(ctx, uploaded...)

		if model.IsDuplicate(err) {
			respond.Error(c, apperr.New(apperr.Conflict, "A user with this username, email or full name already exists"))
			return
		}

		respond.Error(c, err)
		return
	}

	zap.L().Info("User registered", zap.String("userID", userID))
	respond.JSON(c, http.StatusCreated, user, "User registered")
}

// uploadImage stages a multipart image in a temp file and pushes it to the
// object store under keyBase plus the original extension.
func uploadImage(c *gin.Context, d *internal.Deps, fh *multipart.FileHeader, keyBase string) (url, key string, err error) {
	tmp, cleanup, err := service.SaveTemp(fh, "image-*")
	if err != nil {
		return "", "", err
	}
	defer cleanup()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key = keyBase + path.Ext(fh.Filename)

	url, err = d.Storage.Upload(c.Request.Context(), key, tmp, contentType)
	if err != nil {
		return "", "", err
	}

	return url, key, nil
}
