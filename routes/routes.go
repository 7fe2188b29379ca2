package routes

import (
	"gourmet-slice-web/handlers"
	"gourmet-slice-web/middleware"
	"gourmet-slice-web/session"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, sessions *session.Manager) {
	// ── Public screens ─────────────────────────────────────────────
	r.GET("/", h.Home)
	r.GET("/sign-up", h.ShowSignUp)
	r.POST("/sign-up", h.SignUp)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/admin-login", h.ShowAdminLogin)
	r.POST("/admin-login", h.AdminLogin)
	r.GET("/logout", h.Logout)

	// ── Customer flow ──────────────────────────────────────────────
	r.GET("/order-food", h.OrderFood)
	r.GET("/cart", h.Cart)
	r.POST("/cart/add", h.AddToCart)
	r.POST("/cart/update", h.UpdateCart)
	r.POST("/cart/remove", h.RemoveFromCart)
	r.GET("/checkout", h.ShowCheckout)
	r.POST("/checkout", h.Checkout)
	r.GET("/order-success", h.OrderSuccess)
	r.GET("/my-orders", h.MyOrders)

	// ── Admin screens (session required) ───────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.RequireSession(sessions))
	{
		admin.GET("", h.Dashboard)
		admin.POST("/products", h.CreateProduct)
		admin.POST("/products/:id", h.UpdateProduct)
		admin.GET("/products/:id/delete", h.ConfirmDeleteProduct)
		admin.POST("/products/:id/delete", h.DeleteProduct)
	}
}
