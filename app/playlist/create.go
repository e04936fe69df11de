// Package playlist contains the playlist endpoints
package playlist

import (
	"net/http"
	"strings"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type playlistBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func PlaylistCreate(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	var data playlistBody
	if err := c.ShouldBind(&data); err != nil {
		respond.Error(c, apperr.Wrap(apperr.ValidationFailed, "Invalid request body", err))
		return
	}

	data.Name = strings.TrimSpace(data.Name)
	data.Description = strings.TrimSpace(data.Description)

	if data.Name == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "name can't be blank"))
		return
	}

	if data.Description == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "description can't be blank"))
		return
	}

	playlistID, err := model.NewID()
	if err != nil {
		respond.Error(c, err)
		return
	}

	playlist := model.Playlist{
		ID:          playlistID,
		OwnerID:     userID,
		Name:        data.Name,
		Description: data.Description,
	}

	if err := d.DB.Create(&playlist).Error; err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusCreated, playlist, "Playlist created")
}

// loadOwned fetches a playlist after the identifier and ownership checks.
func loadOwned(d *internal.Deps, playlistID, userID string) (*model.Playlist, error) {
	if err := validators.IDValidator(playlistID); err != nil {
		return nil, apperr.New(apperr.InvalidIdentifier, "Invalid playlist id")
	}

	var playlist model.Playlist
	if err := d.DB.Where("id = ?", playlistID).First(&playlist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.New(apperr.NotFound, "Playlist not found")
		}

		return nil, err
	}

	if playlist.OwnerID != userID {
		return nil, apperr.New(apperr.Forbidden, "You don't own this playlist")
	}

	return &playlist, nil
}
