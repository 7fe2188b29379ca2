package handlers

import (
	"log"
	"net/http"
	"strconv"

	"gourmet-slice-web/models"

	"github.com/gin-gonic/gin"
)

// Home renders the landing page
func (h *Handler) Home(c *gin.Context) {
	h.render(c, "home.html", gin.H{})
}

// OrderFood renders the public catalog with add-to-cart actions
func (h *Handler) OrderFood(c *gin.Context) {
	h.render(c, "order_food.html", gin.H{
		"Products": h.fetchProducts(c),
	})
}

// Cart renders the session's cart
func (h *Handler) Cart(c *gin.Context) {
	cart := h.sessions.Cart(c)
	h.render(c, "cart.html", gin.H{
		"Cart":  cart,
		"Total": cart.Total(),
	})
}

// AddToCart puts one unit of a catalog product into the session cart
func (h *Handler) AddToCart(c *gin.Context) {
	productID := c.PostForm("product_id")
	product, ok := models.FindProduct(h.fetchProducts(c), productID)
	if !ok {
		c.Redirect(http.StatusFound, "/order-food")
		return
	}
	cart := h.sessions.Cart(c).Add(product)
	if err := h.sessions.SaveCart(c, cart); err != nil {
		log.Printf("Error saving cart: %v", err)
	}
	c.Redirect(http.StatusFound, "/cart")
}

// UpdateCart sets a line's quantity; zero removes the line
func (h *Handler) UpdateCart(c *gin.Context) {
	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil {
		c.Redirect(http.StatusFound, "/cart")
		return
	}
	cart := h.sessions.Cart(c).SetQuantity(c.PostForm("product_id"), quantity)
	if err := h.sessions.SaveCart(c, cart); err != nil {
		log.Printf("Error saving cart: %v", err)
	}
	c.Redirect(http.StatusFound, "/cart")
}

// RemoveFromCart drops a line from the cart
func (h *Handler) RemoveFromCart(c *gin.Context) {
	cart := h.sessions.Cart(c).Remove(c.PostForm("product_id"))
	if err := h.sessions.SaveCart(c, cart); err != nil {
		log.Printf("Error saving cart: %v", err)
	}
	c.Redirect(http.StatusFound, "/cart")
}

// ShowCheckout renders the order summary; an empty cart bounces back
func (h *Handler) ShowCheckout(c *gin.Context) {
	cart := h.sessions.Cart(c)
	if len(cart) == 0 {
		c.Redirect(http.StatusFound, "/cart")
		return
	}
	h.render(c, "checkout.html", gin.H{
		"Cart":  cart,
		"Total": cart.Total(),
	})
}

// Checkout empties the cart and lands on the confirmation page
func (h *Handler) Checkout(c *gin.Context) {
	if err := h.sessions.ClearCart(c); err != nil {
		log.Printf("Error clearing cart: %v", err)
	}
	c.Redirect(http.StatusFound, "/order-success")
}

// OrderSuccess renders the post-checkout confirmation
func (h *Handler) OrderSuccess(c *gin.Context) {
	h.render(c, "order_success.html", gin.H{})
}

// MyOrders renders the customer order history screen; anonymous visitors are
// sent to login first
func (h *Handler) MyOrders(c *gin.Context) {
	if !h.sessions.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	h.render(c, "my_orders.html", gin.H{})
}
