// cart.go - Handles the cart page, adding items, and placing orders

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // For sentinel error checks
	"net/http" // HTTP status codes
	"strconv"  // For parsing the item ID from the URL

	"go-storefront-backend/database"   // Database connection
	"go-storefront-backend/middleware" // For reading the current session
	"go-storefront-backend/models"     // MenuItem model

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM (for error sentinels)
)

func AddToCart(c *gin.Context) { // Handler for putting one menu item into the cart
	sess := middleware.CurrentSession(c) // Set by RequireSession

	// A non-numeric ID can never match a menu item, so it gets the
	// same 404 as an unknown one
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	var item models.MenuItem
	if err := database.DB.First(&item, uint(id)).Error; err != nil { // Look up the dish
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add item"})
		return
	}

	sess.AddToCart(item)                          // Put it in the cart
	sess.PushNotice(item.Name + " added to cart!") // Queue the confirmation for the menu page

	c.Redirect(http.StatusFound, "/") // Back to the menu
}

func Cart(c *gin.Context) { // Handler for the cart page
	sess := middleware.CurrentSession(c)

	entries, total := sess.CartState() // One consistent snapshot of the cart

	count := 0
	for _, e := range entries {
		count += e.Quantity
	}

	c.JSON(http.StatusOK, gin.H{
		"username":   sess.Username,
		"items":      cartLines(entries),
		"total":      total,
		"cart_count": count,
	})
}

func Order(c *gin.Context) { // Handler for placing the order
	sess := middleware.CurrentSession(c)

	entries, total := sess.TakeCart() // Read and clear the cart in one step

	c.JSON(http.StatusOK, gin.H{
		"message":  "order placed",
		"username": sess.Username,
		"items":    cartLines(entries),
		"total":    total,
	})
}

// cartLines - Shapes cart entries for JSON responses
func cartLines(entries []models.CartEntry) []gin.H {
	lines := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, gin.H{
			"id":       e.Item.ID,
			"name":     e.Item.Name,
			"price":    e.Item.Price,
			"image":    e.Item.Image,
			"quantity": e.Quantity,
			"subtotal": e.Subtotal(),
		})
	}
	return lines
}
