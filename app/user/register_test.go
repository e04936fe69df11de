package user

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/testutil"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerReq(t *testing.T, d *internal.Deps, fields map[string]string, withAvatar bool) (*httptest.ResponseRecorder, respond.Envelope) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}

	if withAvatar {
		fw, err := mw.CreateFormFile("avatar", "avatar.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	c, w := testutil.Ctx(t, http.MethodPost, "/api/users/register", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())

	UserRegister(c, d)

	var env respond.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	return w, env
}

func validForm() map[string]string {
	return map[string]string{
		"fullName": "Jamie Doe",
		"email":    "jamie@example.com",
		"username": "jamie_doe",
		"password": "hunter2hunter2",
	}
}

func TestUserRegister(t *testing.T) {
	d := testutil.NewDeps(t)

	w, env := registerReq(t, d, validForm(), true)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var user model.User
	require.NoError(t, d.DB.Where("username = ?", "jamie_doe").First(&user).Error)

	assert.Equal(t, "Jamie Doe", user.FullName)
	assert.Contains(t, user.Avatar, "https://cdn.test/")
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$argon2id$"))

	// Credentials never serialize
	data := env.Data.(map[string]any)
	assert.NotContains(t, data, "passwordHash")
	assert.NotContains(t, data, "refreshToken")
}

func TestUserRegisterUppercaseUsernameIsLowered(t *testing.T) {
	d := testutil.NewDeps(t)

	form := validForm()
	form["username"] = "JAMIE_DOE"

	w, _ := registerReq(t, d, form, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var n int64
	require.NoError(t, d.DB.Model(&model.User{}).Where("username = ?", "jamie_doe").Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestUserRegisterValidation(t *testing.T) {
	d := testutil.NewDeps(t)

	cases := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"blank full name", func(f map[string]string) { f["fullName"] = "  " }},
		{"bad username", func(f map[string]string) { f["username"] = "no spaces here" }},
		{"short username", func(f map[string]string) { f["username"] = "ab" }},
		{"bad email", func(f map[string]string) { f["email"] = "not-an-email" }},
		{"short password", func(f map[string]string) { f["password"] = "short" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(form)

			w, env := registerReq(t, d, form, true)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
		})
	}

	t.Run("missing avatar", func(t *testing.T) {
		w, _ := registerReq(t, d, validForm(), false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	var n int64
	require.NoError(t, d.DB.Model(&model.User{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestUserRegisterDuplicate(t *testing.T) {
	d := testutil.NewDeps(t)

	w, _ := registerReq(t, d, validForm(), true)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := registerReq(t, d, validForm(), true)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)

	var n int64
	require.NoError(t, d.DB.Model(&model.User{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
