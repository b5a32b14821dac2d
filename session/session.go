// Package session keeps the server-side state of logged-in users: who
// they are, what is in their cart, and any notices queued for the next
// page they load. A signed cookie token carries the session ID; the
// session itself lives only in memory, so revoking it on logout takes
// effect immediately.
package session

import (
	"sync"
	"time"

	"go-storefront-backend/models"

	"github.com/shopspring/decimal"
)

// Session is the server side of one login.
type Session struct {
	ID        string // random UUID, also the token ID inside the cookie
	UserID    uint
	Username  string
	ExpiresAt time.Time

	mu      sync.Mutex
	cart    models.Cart
	notices []string
}

// AddToCart puts one unit of the item into the session's cart.
func (s *Session) AddToCart(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(item)
}

// CartState returns the cart lines and their total as one consistent view.
func (s *Session) CartState() ([]models.CartEntry, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Entries(), s.cart.Total()
}

// CartCount returns the number of units currently in the cart.
func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// TakeCart empties the cart and returns what it held, so placing an
// order reads and clears in one step.
func (s *Session) TakeCart() ([]models.CartEntry, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, total := s.cart.Entries(), s.cart.Total()
	s.cart.Clear()
	return entries, total
}

// PushNotice queues a message to show on the next page the user loads.
func (s *Session) PushNotice(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, msg)
}

// DrainNotices returns the queued messages and clears the queue.
func (s *Session) DrainNotices() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	notices := s.notices
	s.notices = nil
	return notices
}
