package adminControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/store"
)

// ProductInput is the one form contract shared by create and edit.
// Price is a pointer so a present-but-zero price passes "required" while a
// missing or non-numeric one fails binding.
type ProductInput struct {
	Name        string   `form:"name" json:"name" binding:"required"`
	Price       *float64 `form:"price" json:"price" binding:"required,gte=0"`
	Description string   `form:"description" json:"description"`
}

// GET /admin/products
func ListProducts(products store.ProductStore, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.FindAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		ctx := gin.H{"products": list}
		if s, ok := middleware.SessionFromContext(c); ok {
			if flashes := session.PopFlashes(c.Request.Context(), sessions, s.ID); len(flashes) > 0 {
				ctx["flashes"] = flashes
			}
		}
		c.JSON(http.StatusOK, ctx)
	}
}

// GET /admin/product/new
func ShowNewProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"form": gin.H{"name": "", "price": nil, "description": ""}})
	}
}

// GET /admin/product/:id/edit
func ShowEditProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := loadProduct(c, products)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"form": gin.H{
			"name":        product.Name,
			"price":       product.Price,
			"description": product.Description,
		}})
	}
}

// POST /admin/product/new
func CreateProduct(products store.ProductStore, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		saveProduct(c, products, sessions, nil)
	}
}

// POST /admin/product/:id/edit
func UpdateProduct(products store.ProductStore, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := loadProduct(c, products)
		if !ok {
			return
		}
		saveProduct(c, products, sessions, product)
	}
}

// saveProduct validates the shared form and persists either a fresh product
// or the loaded one with its fields overwritten. Success redirects to the
// product list so a refresh cannot resubmit.
func saveProduct(c *gin.Context, products store.ProductStore, sessions session.Store, product *models.Product) {
	var input ProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var err error
	if product == nil {
		product = &models.Product{
			Name:        input.Name,
			Price:       *input.Price,
			Description: input.Description,
		}
		err = products.Insert(c.Request.Context(), product)
	} else {
		product.Name = input.Name
		product.Price = *input.Price
		product.Description = input.Description
		err = products.Update(c.Request.Context(), product)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
		return
	}

	flashAdmin(c, sessions, "Product saved.")
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// POST /admin/product/:id/delete
//
// Carts holding the deleted product are not reconciled; their views skip
// the dangling entry.
func DeleteProduct(products store.ProductStore, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := loadProduct(c, products)
		if !ok {
			return
		}

		if err := products.Delete(c.Request.Context(), product.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		flashAdmin(c, sessions, fmt.Sprintf("Product %q has been deleted.", product.Name))
		c.Redirect(http.StatusSeeOther, "/admin/products")
	}
}

func loadProduct(c *gin.Context, products store.ProductStore) (*models.Product, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return nil, false
	}

	product, err := products.FindByID(c.Request.Context(), uint(id64))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return nil, false
	}
	return product, true
}

func flashAdmin(c *gin.Context, sessions session.Store, msg string) {
	if s, ok := middleware.SessionFromContext(c); ok {
		_, _ = sessions.Update(c.Request.Context(), s.ID, func(s *session.Session) {
			s.Flash(msg)
		})
	}
}
