// main.go - Entry point for the storefront server

package main // Declares the package name

import ( // Import required packages
	"go-storefront-backend/config"     // Project config management
	"go-storefront-backend/database"   // Database connection and setup
	"go-storefront-backend/handlers"   // HTTP handlers for the storefront pages
	"go-storefront-backend/logger"     // Structured logging setup
	"go-storefront-backend/middleware" // Middleware (authentication, validation)
	"go-storefront-backend/session"    // Login sessions and cookie tokens

	"github.com/gin-gonic/gin" // Gin web framework
	"go.uber.org/zap"          // Structured logging
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and set up logging
	cfg := config.Load() // Load configuration (port, DB path, session settings)
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	// STEP 2: Connect to the database (migrates tables and seeds the menu)
	if err := database.Connect(cfg.DBPath); err != nil {
		log.Fatal("db connection error", zap.Error(err)) // If error, log and exit
	}

	// STEP 3: Open the session store and the cookie token manager
	store := session.NewStore(cfg.SessionTTL)
	defer store.Close()
	tokens := session.NewTokenManager(cfg.SessionSecret)

	// STEP 4: Create Gin router and configure routes
	middleware.SetupValidator() // Register custom binding rules
	r := gin.New()              // Create a new Gin router (web server)
	r.Use(logger.RequestLogger(log), logger.Recovery(log))

	// Public routes (no login required)
	r.GET("/register", handlers.RegisterPage) // Public route: registration form
	r.POST("/register", handlers.Register)    // Public route: create an account
	r.GET("/login", handlers.LoginPage)       // Public route: login form
	r.POST("/login", handlers.Login(store, tokens)) // Public route: sign in

	// Protected routes (require a live login session)
	// Visitors without one are redirected to /login
	auth := r.Group("/")                                 // Route group for the storefront pages
	auth.Use(middleware.RequireSession(store, tokens))   // Apply the session gate
	{
		auth.GET("/", handlers.Menu)                     // Protected: the menu page
		auth.GET("/logout", handlers.Logout(store))      // Protected: end the session
		auth.GET("/cart", handlers.Cart)                 // Protected: view the cart
		auth.GET("/add_to_cart/:id", handlers.AddToCart) // Protected: add one item
		auth.GET("/order", handlers.Order)               // Protected: place the order
	}

	// STEP 5: Start the web server
	log.Info("storefront listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
