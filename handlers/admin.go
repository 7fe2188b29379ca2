package handlers

import (
	"strconv"

	"gourmet-slice-web/api"
	"gourmet-slice-web/models"

	"github.com/gin-gonic/gin"
)

const deletedMessage = "Product deleted successfully!"

// FormMode says whether the product form creates a new product or edits an
// existing one. Handlers dispatch on the tag, never on a nullable id.
type FormMode struct {
	editing   bool
	productID string
}

func ModeCreate() FormMode { return FormMode{} }

func ModeEdit(id string) FormMode { return FormMode{editing: true, productID: id} }

func (m FormMode) Editing() bool { return m.editing }

func (m FormMode) ProductID() string { return m.productID }

// productFormValues is what the form re-renders with. Price stays a string:
// it round-trips exactly what the admin typed, valid or not.
type productFormValues struct {
	Name        string
	Description string
	Price       string
	Category    string
}

func defaultProductForm() productFormValues {
	return productFormValues{Category: string(models.CategoryVeg)}
}

// Dashboard renders the admin screen: product form, product list, and the
// users & orders panel. ?edit=<id> pre-fills the form from the listed
// product; ?expand=<userID> opens that user's inline order list.
func (h *Handler) Dashboard(c *gin.Context) {
	products := h.fetchProducts(c)

	mode := ModeCreate()
	form := defaultProductForm()
	if id := c.Query("edit"); id != "" {
		if p, ok := models.FindProduct(products, id); ok {
			mode = ModeEdit(p.ID)
			form = productFormValues{
				Name:        p.Name,
				Description: p.Description,
				Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
				Category:    string(p.Category),
			}
		}
	}
	h.renderDashboard(c, products, "", mode, form)
}

// CreateProduct handles the form submitted in create mode
func (h *Handler) CreateProduct(c *gin.Context) {
	h.saveProduct(c, ModeCreate())
}

// UpdateProduct handles the form submitted in edit mode
func (h *Handler) UpdateProduct(c *gin.Context) {
	h.saveProduct(c, ModeEdit(c.Param("id")))
}

func (h *Handler) saveProduct(c *gin.Context, mode FormMode) {
	form := productFormValues{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Category:    c.PostForm("category"),
	}
	// Absent file is only an error in create mode; on edit the server keeps
	// the existing image when none is supplied.
	image, _ := c.FormFile("image")

	if msg := validateProductForm(form, mode, image != nil); msg != "" {
		h.renderDashboard(c, h.fetchProducts(c), msg, mode, form)
		return
	}

	payload := api.ProductForm{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Category:    form.Category,
		Image:       image,
	}

	var (
		resp models.APIMessage
		err  error
	)
	if mode.Editing() {
		resp, err = h.api.UpdateProduct(c.Request.Context(), mode.ProductID(), payload)
	} else {
		resp, err = h.api.CreateProduct(c.Request.Context(), payload)
	}

	// Truth is re-derived from the server after every mutation, success or not.
	products := h.fetchProducts(c)
	if err != nil {
		h.renderDashboard(c, products, "Error adding/updating product: "+mutationErrorMessage(err), mode, form)
		return
	}
	h.renderDashboard(c, products, resp.Msg, ModeCreate(), defaultProductForm())
}

// ConfirmDeleteProduct shows the blocking yes/no page before a delete
func (h *Handler) ConfirmDeleteProduct(c *gin.Context) {
	id := c.Param("id")
	product, _ := models.FindProduct(h.fetchProducts(c), id)
	h.render(c, "delete_product.html", gin.H{
		"ProductID": id,
		"Product":   product,
	})
}

// DeleteProduct issues the delete the admin just confirmed
func (h *Handler) DeleteProduct(c *gin.Context) {
	_, err := h.api.DeleteProduct(c.Request.Context(), c.Param("id"))

	message := deletedMessage
	if err != nil {
		message = "Error deleting product: " + mutationErrorMessage(err)
	}
	h.renderDashboard(c, h.fetchProducts(c), message, ModeCreate(), defaultProductForm())
}

func (h *Handler) renderDashboard(c *gin.Context, products []models.Product, message string, mode FormMode, form productFormValues) {
	users, orders := h.fetchUsersAndOrders(c)

	expanded := c.Query("expand")
	var expandedOrders []models.Order
	if expanded != "" {
		expandedOrders = models.OrdersForUser(orders, expanded)
	}

	h.render(c, "admin.html", gin.H{
		"Message":        message,
		"Mode":           mode,
		"Form":           form,
		"Categories":     models.Categories(),
		"Products":       products,
		"Users":          users,
		"ExpandedUser":   expanded,
		"ExpandedOrders": expandedOrders,
	})
}

func validateProductForm(form productFormValues, mode FormMode, hasImage bool) string {
	if form.Name == "" || form.Description == "" || form.Price == "" {
		return "Name, description and price are all required."
	}
	if _, err := strconv.ParseFloat(form.Price, 64); err != nil {
		return "Price must be a number."
	}
	if !models.Category(form.Category).Valid() {
		return "Unknown product category."
	}
	if !mode.Editing() && !hasImage {
		return "A product image is required."
	}
	return ""
}

// mutationErrorMessage follows the priority order the product screens use:
// server-provided msg, then the transport error text, then a last-resort
// literal. Guarded against an error body with no msg field.
func mutationErrorMessage(err error) string {
	if msg, ok := api.Message(err); ok && msg != "" {
		return msg
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "An unknown error occurred"
}
