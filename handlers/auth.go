// auth.go - Handles user registration, login, and logout

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // For sentinel error checks
	"net/http" // HTTP status codes
	"time"     // For cookie lifetime

	"go-storefront-backend/database"   // Database connection
	"go-storefront-backend/middleware" // For reading the current session
	"go-storefront-backend/models"     // User model
	"go-storefront-backend/session"    // Session store and cookie tokens

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM (for error sentinels)
)

type RegisterInput struct { // Struct for registration input
	Username string `json:"username" binding:"required,min=3,max=32,username"` // Login name (required)
	Password string `json:"password" binding:"required,min=6"`                 // Password (required, at least 6 chars)
}

type LoginInput struct { // Struct for login input
	Username string `json:"username" binding:"required"` // Login name (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

// invalidCredentials is the one message used for every failed login, so
// responses never reveal whether the username exists.
const invalidCredentials = "invalid username or password"

func RegisterPage(c *gin.Context) { // Handler for the registration form page
	c.JSON(http.StatusOK, gin.H{
		"page":   "register",
		"fields": []string{"username", "password"},
	})
}

func Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput                          // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if invalid
		return
	}

	// Check for an existing account first to give a clear answer
	var existing models.User
	err := database.DB.Where("username = ?", input.Username).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
		return
	}

	hash, err := models.HashPassword(input.Password) // Hash password
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
		return
	}

	user := models.User{Username: input.Username, PasswordHash: hash} // Create user struct
	if err := database.DB.Create(&user).Error; err != nil {           // Save user to DB
		// Two requests can race past the check above; the unique
		// constraint settles it and both get the same answer
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
		return
	}

	// Registration does not log the user in; they sign in next
	c.JSON(http.StatusCreated, gin.H{"message": "registration successful, please log in"})
}

func LoginPage(c *gin.Context) { // Handler for the login form page
	c.JSON(http.StatusOK, gin.H{
		"page":   "login",
		"fields": []string{"username", "password"},
	})
}

func Login(store *session.Store, tokens *session.TokenManager) gin.HandlerFunc { // Handler for user login
	return func(c *gin.Context) {
		var input LoginInput                             // Declare input variable
		if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if invalid
			return
		}

		var user models.User // Declare user variable
		if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials}) // Same answer as a bad password
			return
		}
		if !models.CheckPassword(user.PasswordHash, input.Password) { // Check password
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials})
			return
		}

		// Open a server-side session and hand the browser a signed
		// cookie that references it
		sess := store.Create(user.ID, user.Username)
		token, err := tokens.Generate(sess)
		if err != nil {
			store.Revoke(sess.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log in"})
			return
		}

		maxAge := int(time.Until(sess.ExpiresAt).Seconds())
		c.SetCookie(session.CookieName, token, maxAge, "/", "", false, true) // httpOnly session cookie

		c.JSON(http.StatusOK, gin.H{
			"message":  "login successful",
			"username": user.Username,
		})
	}
}

func Logout(store *session.Store) gin.HandlerFunc { // Handler for logging out
	return func(c *gin.Context) {
		if sess := middleware.CurrentSession(c); sess != nil {
			store.Revoke(sess.ID) // Kill the server-side session right away
		}
		c.SetCookie(session.CookieName, "", -1, "/", "", false, true) // Drop the cookie
		c.Redirect(http.StatusFound, "/login")                        // Back to the login page
	}
}
