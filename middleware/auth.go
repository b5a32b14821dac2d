// auth.go - Session authentication middleware
// This file implements the login gate for protected pages
//
// Authentication Flow:
// 1. Extract the signed session token from the cookie
// 2. Validate the token signature and expiration
// 3. Look up the live server-side session by the token's ID
// 4. Store the session in context for handlers
//
// A request that fails any step is redirected to the login page.

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes (302, etc.)

	"go-storefront-backend/session" // Session store and token manager

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)
)

// SessionKey is the Gin context key the middleware stores the session under.
const SessionKey = "session"

// RequireSession - Returns a Gin middleware function that guards pages
// behind login. Visitors without a valid, still-live session are sent
// to /login with a 302 redirect.
//
// How it works:
// 1. Reads the session cookie set at login
// 2. Validates the signed token inside it
// 3. Looks up the server-side session by the token's ID; a session
//    revoked by logout or expiry fails here even if the token is valid
// 4. Cross-checks the token's user against the session
// 5. Stores the session in Gin context and continues
func RequireSession(store *session.Store, tokens *session.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract the session cookie
		tokenStr, err := c.Cookie(session.CookieName)
		if err != nil || tokenStr == "" { // No cookie means not logged in
			redirectToLogin(c)
			return
		}

		// STEP 2: Parse and validate the signed token
		claims, err := tokens.Parse(tokenStr)
		if err != nil { // Forged, malformed, or expired token
			redirectToLogin(c)
			return
		}

		// STEP 3: Look up the live session on the server
		// Logout revokes the session, so a stolen or stale cookie stops
		// working the moment the user logs out
		sess := store.Get(claims.ID)
		if sess == nil {
			redirectToLogin(c)
			return
		}

		// STEP 4: Cross-check the token against the session it references
		if sess.UserID != claims.UserID {
			redirectToLogin(c)
			return
		}

		// STEP 5: Store session in Gin context for later use
		c.Set(SessionKey, sess)

		c.Next() // Continue to next handler (authentication successful)
	}
}

// redirectToLogin - Sends the visitor to the login page and stops the chain
func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// CurrentSession - Returns the session stored by RequireSession, or nil
// when the request is not authenticated
func CurrentSession(c *gin.Context) *session.Session {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
