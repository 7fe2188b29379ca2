// Package handlers renders the Gourmet Slice screens. Every handler is thin
// glue: read form/query state, call the remote API, render a template. No
// state lives here beyond the injected session manager.
package handlers

import (
	"log"
	"net/http"
	"sync"

	"gourmet-slice-web/api"
	"gourmet-slice-web/models"
	"gourmet-slice-web/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	api      *api.Client
	sessions *session.Manager
}

func New(client *api.Client, sessions *session.Manager) *Handler {
	return &Handler{api: client, sessions: sessions}
}

// render fills in the keys every page header needs before handing off to the
// template. Pages always answer 200; errors are shown inline as messages.
func (h *Handler) render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["LoggedIn"] = h.sessions.IsAuthenticated(c)
	data["UserEmail"] = h.sessions.UserClaims(c).Email
	data["CartCount"] = len(h.sessions.Cart(c))
	c.HTML(http.StatusOK, name, data)
}

func (h *Handler) fetchProducts(c *gin.Context) []models.Product {
	products, err := h.api.Products(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching products: %v", err)
	}
	return products
}

// fetchUsersAndOrders issues both reads concurrently and waits for both to
// settle. A failed fetch logs and leaves its slice empty; the page still
// renders with whatever arrived.
func (h *Handler) fetchUsersAndOrders(c *gin.Context) ([]models.User, []models.Order) {
	ctx := c.Request.Context()
	token := h.sessions.Token(c)

	var (
		wg     sync.WaitGroup
		users  []models.User
		orders []models.Order
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		result, err := h.api.Users(ctx, token)
		if err != nil {
			log.Printf("Error fetching users: %v", err)
			return
		}
		users = result
	}()
	go func() {
		defer wg.Done()
		result, err := h.api.AllOrders(ctx, token)
		if err != nil {
			log.Printf("Error fetching orders: %v", err)
			return
		}
		orders = result
	}()
	wg.Wait()
	return users, orders
}
