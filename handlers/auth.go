package handlers

import (
	"log"
	"net/http"
	"strings"

	"gourmet-slice-web/api"
	"gourmet-slice-web/config"
	"gourmet-slice-web/models"

	"github.com/gin-gonic/gin"
)

const (
	customerDomainMessage = "Only @gmail.com email addresses are allowed for regular users."
	adminDomainMessage    = "Only @admins.gourmetslice.in email addresses are allowed for admin users."
	invalidCredsMessage   = "Invalid credentials, please check your email and password."
	transportErrMessage   = "Error: Something went wrong"
)

// ShowLogin renders the customer login form
func (h *Handler) ShowLogin(c *gin.Context) {
	h.render(c, "login.html", gin.H{"FormEmail": ""})
}

// Login submits customer credentials to the remote API. The domain
// allow-list is checked first; a violation never reaches the network.
func (h *Handler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		h.render(c, "login.html", gin.H{
			"Message":   "Email and password are required.",
			"FormEmail": creds.Email,
		})
		return
	}
	if !strings.HasSuffix(creds.Email, config.CustomerEmailSuffix) {
		h.render(c, "login.html", gin.H{
			"Message":   customerDomainMessage,
			"FormEmail": creds.Email,
		})
		return
	}

	resp, err := h.api.Login(c.Request.Context(), creds)
	if err != nil {
		h.render(c, "login.html", gin.H{
			"Message":   loginErrorMessage(err),
			"FormEmail": creds.Email,
		})
		return
	}
	if err := h.sessions.Login(c, resp.Token); err != nil {
		h.render(c, "login.html", gin.H{
			"Message":   transportErrMessage,
			"FormEmail": creds.Email,
		})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowAdminLogin renders the admin login form
func (h *Handler) ShowAdminLogin(c *gin.Context) {
	h.render(c, "admin_login.html", gin.H{"FormEmail": ""})
}

// AdminLogin submits admin credentials; success lands on the dashboard.
func (h *Handler) AdminLogin(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		h.render(c, "admin_login.html", gin.H{
			"Message":   "Email and password are required.",
			"FormEmail": creds.Email,
		})
		return
	}
	if !strings.HasSuffix(creds.Email, config.AdminEmailSuffix) {
		h.render(c, "admin_login.html", gin.H{
			"Message":   adminDomainMessage,
			"FormEmail": creds.Email,
		})
		return
	}

	resp, err := h.api.AdminLogin(c.Request.Context(), creds)
	if err != nil {
		h.render(c, "admin_login.html", gin.H{
			"Message":   loginErrorMessage(err),
			"FormEmail": creds.Email,
		})
		return
	}
	if err := h.sessions.Login(c, resp.Token); err != nil {
		h.render(c, "admin_login.html", gin.H{
			"Message":   transportErrMessage,
			"FormEmail": creds.Email,
		})
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// ShowSignUp renders the registration form
func (h *Handler) ShowSignUp(c *gin.Context) {
	h.render(c, "signup.html", gin.H{"FormName": "", "FormEmail": ""})
}

// SignUp registers a new customer account, then drops the user on the login
// form with the server's confirmation message.
func (h *Handler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, "signup.html", gin.H{
			"Message":  "Name, email and a password of at least 6 characters are required.",
			"FormName": req.Name, "FormEmail": req.Email,
		})
		return
	}
	if !strings.HasSuffix(req.Email, config.CustomerEmailSuffix) {
		h.render(c, "signup.html", gin.H{
			"Message":  customerDomainMessage,
			"FormName": req.Name, "FormEmail": req.Email,
		})
		return
	}

	resp, err := h.api.SignUp(c.Request.Context(), req)
	if err != nil {
		h.render(c, "signup.html", gin.H{
			"Message":  loginErrorMessage(err),
			"FormName": req.Name, "FormEmail": req.Email,
		})
		return
	}
	h.render(c, "login.html", gin.H{"Message": resp.Msg, "FormEmail": ""})
}

// Logout clears the session and returns to the landing page. Always safe,
// even with no session.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c); err != nil {
		// The cookie is already gone; a stale session row is harmless.
		log.Printf("Error clearing session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// loginErrorMessage maps a failed auth call onto the user-facing message:
// the well-known credentials error gets a friendly rewording, any other
// server msg is shown verbatim, and transport failures (or a server error
// with no usable msg) get the generic fallback.
func loginErrorMessage(err error) string {
	msg, fromServer := api.Message(err)
	switch {
	case !fromServer || msg == "":
		return transportErrMessage
	case msg == "Invalid credentials":
		return invalidCredsMessage
	default:
		return "Error: " + msg
	}
}
