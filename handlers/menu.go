// menu.go - Handles the menu page

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes

	"go-storefront-backend/database"   // Database connection
	"go-storefront-backend/middleware" // For reading the current session
	"go-storefront-backend/models"     // MenuItem model

	"github.com/gin-gonic/gin" // Gin web framework
)

func Menu(c *gin.Context) { // Handler for the menu page (the storefront home)
	sess := middleware.CurrentSession(c) // Set by RequireSession

	var items []models.MenuItem // Declare slice for menu items
	if err := database.DB.Order("id").Find(&items).Error; err != nil { // Load the full menu
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load menu"})
		return
	}

	notices := sess.DrainNotices() // Messages queued by earlier actions, shown once
	if notices == nil {
		notices = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"username":   sess.Username,    // Who is logged in
		"items":      items,            // The dishes on offer
		"cart_count": sess.CartCount(), // Units currently in the cart
		"notices":    notices,          // One-shot messages like "Burger added to cart!"
	})
}
