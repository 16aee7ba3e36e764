//go:build e2e

package upstreamtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// Server stands in for the main homestay backend during e2e runs.
type Server struct {
	*httptest.Server

	mu             sync.Mutex
	prices         map[int64]int64
	unavailable    map[string]string // date -> status
	coupons        map[string]int64
	paymentStatus  []string
	paymentPolls   int
	bookings       []map[string]any
	nextBookingID  int64
	rejectBookings string
}

func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		prices:        map[int64]int64{},
		unavailable:   map[string]string{},
		coupons:       map[string]int64{},
		paymentStatus: []string{"paid"},
		nextBookingID: 1000,
	}

	engine := gin.New()
	engine.GET("/api/homestays/:id", s.homestay)
	engine.GET("/api/availability/quick/:id", s.quickAvailability)
	engine.POST("/api/promotions/validate", s.validatePromotion)
	engine.POST("/api/bookings", s.createBooking)
	engine.GET("/api/payments/:provider/status/:id", s.paymentStatusHandler)

	s.Server = httptest.NewServer(engine)
	t.Cleanup(s.Close)
	return s
}

func (s *Server) SetPrice(homestayID, pricePerNight int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[homestayID] = pricePerNight
}

func (s *Server) SetDayStatus(date, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable[date] = status
}

func (s *Server) AddCoupon(code string, discount int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons[code] = discount
}

// SetPaymentStatuses scripts the statuses returned by successive polls; the last one repeats.
func (s *Server) SetPaymentStatuses(statuses ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentStatus = statuses
	s.paymentPolls = 0
}

func (s *Server) RejectBookings(detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectBookings = detail
}

func (s *Server) Bookings() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices = map[int64]int64{}
	s.unavailable = map[string]string{}
	s.coupons = map[string]int64{}
	s.paymentStatus = []string{"paid"}
	s.paymentPolls = 0
	s.bookings = nil
	s.rejectBookings = ""
}

func (s *Server) homestay(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.mu.Lock()
	price, ok := s.prices[id]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Homestay not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "price_per_night": fmt.Sprintf("%d.00", price)})
}

func (s *Server) quickAvailability(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	s.mu.Lock()
	defer s.mu.Unlock()

	days := gin.H{}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		key := d.Format(time.DateOnly)
		status, ok := s.unavailable[key]
		if !ok {
			status = "available"
		}
		available := 1
		if status != "available" {
			available = 0
		}
		days[key] = gin.H{
			"status":          status,
			"color":           "green",
			"available_rooms": available,
			"booked_rooms":    1 - available,
			"pending_rooms":   0,
			"min_price":       nil,
			"tooltip":         "",
		}
	}
	c.JSON(http.StatusOK, gin.H{"month": month, "year": year, "availability": days, "total_rooms": 1})
}

func (s *Server) validatePromotion(c *gin.Context) {
	var req struct {
		Code        string `json:"code"`
		TotalAmount int64  `json:"total_amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	s.mu.Lock()
	discount, ok := s.coupons[req.Code]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"valid": false, "code": req.Code, "discount_amount": "0", "message": "Promotion code not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":           true,
		"promotion_id":    1,
		"code":            req.Code,
		"discount_amount": strconv.FormatInt(min(discount, req.TotalAmount), 10),
		"message":         "Promotion applied",
	})
}

func (s *Server) createBooking(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rejectBookings != "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": s.rejectBookings})
		return
	}

	s.nextBookingID++
	id := s.nextBookingID
	s.bookings = append(s.bookings, body)

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking created",
		"booking": gin.H{
			"id":           id,
			"booking_code": fmt.Sprintf("BK%06d", id),
			"status":       "pending",
			"check_in":     body["check_in"],
			"check_out":    body["check_out"],
			"total_price":  body["total_price"],
			"payment_id":   id + 5000,
		},
	})
}

func (s *Server) paymentStatusHandler(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.mu.Lock()
	idx := min(s.paymentPolls, len(s.paymentStatus)-1)
	status := s.paymentStatus[idx]
	s.paymentPolls++
	s.mu.Unlock()

	resp := gin.H{
		"payment_id":     id,
		"status":         status,
		"amount":         "0",
		"transaction_id": nil,
		"paid_at":        nil,
		"booking_status": "pending",
	}
	if status == "paid" {
		resp["transaction_id"] = "TX" + c.Param("id")
		resp["paid_at"] = "2026-03-01T10:00:00"
		resp["booking_status"] = "confirmed"
	}
	c.JSON(http.StatusOK, resp)
}
