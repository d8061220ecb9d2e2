package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
	"github.com/bloodlink-bd/bloodlink-web/internal/interface/middleware"
	"github.com/bloodlink-bd/bloodlink-web/internal/session"
	"github.com/bloodlink-bd/bloodlink-web/internal/upstream"
	"github.com/bloodlink-bd/bloodlink-web/internal/view"
	"github.com/bloodlink-bd/bloodlink-web/pkg/helpers"
	"github.com/bloodlink-bd/bloodlink-web/pkg/validation"
)

type AuthHandler struct {
	Renderer
	Store  *session.Store
	JWT    *helpers.JWTManager
	Images *upstream.ImageHost
}

func NewAuthHandler(r Renderer, store *session.Store, jwt *helpers.JWTManager, images *upstream.ImageHost) *AuthHandler {
	return &AuthHandler{Renderer: r, Store: store, JWT: jwt, Images: images}
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	From     string `form:"from"`
}

type registerForm struct {
	Name            string `form:"name" binding:"required,min=2"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
	BloodGroup      string `form:"blood_group" binding:"required"`
	District        string `form:"district" binding:"required"`
	Upazila         string `form:"upazila" binding:"required"`
}

// ShowLogin GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if middleware.SessionFrom(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	h.HTML(c, http.StatusOK, "login", "Login", gin.H{
		"From":  safePath(c.Query("from"), ""),
		"Email": "",
	})
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.HTML(c, http.StatusOK, "login", "Login", gin.H{
			"Error": validation.Flatten(err),
			"Email": c.PostForm("email"),
			"From":  safePath(c.PostForm("from"), ""),
		})
		return
	}

	sess, err := h.Store.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		h.HTML(c, http.StatusOK, "login", "Login", gin.H{
			"Error": ErrText(err),
			"Email": form.Email,
			"From":  safePath(form.From, ""),
		})
		return
	}

	h.issueCookie(c, sess.ID)
	c.Redirect(http.StatusFound, safePath(form.From, "/dashboard"))
}

// ShowRegister GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if middleware.SessionFrom(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	h.HTML(c, http.StatusOK, "register", "Register", gin.H{
		"Form":        upstream.RegisterInput{},
		"BloodGroups": entity.BloodGroups,
		"Districts":   view.Districts,
	})
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	bindErr := c.ShouldBind(&form)

	in := upstream.RegisterInput{
		Name:       form.Name,
		Email:      form.Email,
		Password:   form.Password,
		BloodGroup: form.BloodGroup,
		District:   form.District,
		Upazila:    form.Upazila,
	}
	reshow := func(msg string) {
		in.Password = ""
		h.HTML(c, http.StatusOK, "register", "Register", gin.H{
			"Error":       msg,
			"Form":        in,
			"BloodGroups": entity.BloodGroups,
			"Districts":   view.Districts,
		})
	}

	if bindErr != nil {
		reshow(validation.Flatten(bindErr))
		return
	}

	if url, err := avatarFromForm(c, h.Images); err != nil {
		reshow(ErrText(err))
		return
	} else if url != "" {
		in.Avatar = url
	}

	sess, err := h.Store.Register(c.Request.Context(), in)
	if err != nil {
		reshow(ErrText(err))
		return
	}

	h.issueCookie(c, sess.ID)
	h.Cookies.SetFlash(c, "Welcome to BloodLink, "+sess.User.Name+"!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := middleware.SessionFrom(c); sess != nil {
		h.Store.Logout(c.Request.Context(), sess.ID)
	}
	h.Cookies.ClearSession(c)
	h.Cookies.SetFlash(c, "You have been signed out.")
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) issueCookie(c *gin.Context, sid string) {
	token, exp, err := h.JWT.GenerateSessionToken(sid)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("session cookie signing failed")
		}
		return
	}
	h.Cookies.SetSession(c, token, exp)
}
