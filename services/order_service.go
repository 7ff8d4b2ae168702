package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hray3182/ordering-app/entity"
	"github.com/hray3182/ordering-app/pkg/logger"
	"github.com/hray3182/ordering-app/repository"

	"gorm.io/gorm"
)

// order numbers are padded to at least this many digits; wider numbers are
// kept as-is, never truncated
const orderNumberWidth = 6

// two checkouts racing for the same number collide on the unique index;
// the loser re-reads and tries again, at most this many times
const maxNumberAttempts = 3

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
	Log  *logger.Logger
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, log *logger.Logger) *OrderService {
	return &OrderService{DB: db, Repo: repo, Log: log}
}

// ----- DTOs from Controller -----

// CartLine is one finalized cart entry. Name and price are the snapshot the
// client took at add-to-cart time; they are trusted as-is and frozen onto
// the order item.
type CartLine struct {
	MenuItemID *uint   `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type CheckoutReq struct {
	Items []CartLine `json:"items"`
}

type UpdateOrderReq struct {
	Status *string `json:"status"`
	Paid   *bool   `json:"paid"`
}

type OrderDetail struct {
	ID          uint               `json:"id"`
	OrderNumber string             `json:"orderNumber"`
	Status      string             `json:"status"`
	Total       float64            `json:"total"`
	Paid        bool               `json:"paid"`
	CreatedAt   time.Time          `json:"createdAt"`
	Items       []entity.OrderItem `json:"items"`
}

func orderDetail(o *entity.Order, items []entity.OrderItem) *OrderDetail {
	return &OrderDetail{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		Total:       o.Total,
		Paid:        o.Paid,
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}
}

// ----- Checkout -----

// Checkout validates the cart lines, assigns the next order number and
// persists the order plus its items as one transaction. Number allocation
// and the insert share the transaction so the unique index on order_number
// aborts one of two racing checkouts; the loser retries the whole
// read-increment-write sequence.
func (s *OrderService) Checkout(req *CheckoutReq) (*OrderDetail, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidOrderInput)
	}
	var total float64
	for i, line := range req.Items {
		if line.Name == "" {
			return nil, fmt.Errorf("%w: line %d has no name", ErrInvalidOrderInput, i)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: line %d quantity must be at least 1", ErrInvalidOrderInput, i)
		}
		if line.Price < 0 {
			return nil, fmt.Errorf("%w: line %d price must not be negative", ErrInvalidOrderInput, i)
		}
		total += line.Price * float64(line.Quantity)
	}

	var out *OrderDetail
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			number, err := s.nextOrderNumber(tx)
			if err != nil {
				return err
			}

			order := entity.Order{
				OrderNumber: number,
				Status:      entity.OrderStatusPending,
				Total:       total,
				Paid:        false,
			}
			if err := s.Repo.CreateOrder(tx, &order); err != nil {
				return err
			}

			items := make([]entity.OrderItem, 0, len(req.Items))
			for _, line := range req.Items {
				oi := entity.OrderItem{
					OrderID:      order.ID,
					MenuItemID:   line.MenuItemID,
					MenuItemName: line.Name,
					Quantity:     line.Quantity,
					Price:        line.Price,
				}
				if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
					return err
				}
				items = append(items, oi)
			}

			out = orderDetail(&order, items)
			return nil
		})
		if err == nil {
			return out, nil
		}
		if isRetryableConflict(err) {
			s.Log.Warn("checkout", "order number conflict, retrying", "attempt", attempt, "error", err.Error())
			continue
		}
		s.Log.Error("checkout", "order creation failed", err)
		return nil, ErrOrderCreationFailed
	}
	return nil, ErrOrderCreationFailed
}

// isRetryableConflict reports whether err is a transient collision between
// two checkouts worth another attempt. Besides the translated duplicate-key
// error this covers sqlite's lock errors (how a losing writer surfaces there)
// and Postgres serialization/deadlock failures.
func isRetryableConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || // sqlite SQLITE_BUSY
		strings.Contains(msg, "database table is locked") || // sqlite SQLITE_LOCKED
		strings.Contains(msg, "SQLSTATE 40001") || // pg serialization_failure
		strings.Contains(msg, "SQLSTATE 40P01") // pg deadlock_detected
}

// nextOrderNumber computes highest existing number + 1, starting at 1 on an
// empty history, zero-padded to orderNumberWidth digits. Must run inside
// the same transaction as the order insert.
func (s *OrderService) nextOrderNumber(tx *gorm.DB) (string, error) {
	latest, err := s.Repo.LatestOrderNumber(tx)
	if err != nil {
		return "", err
	}
	next := 1
	if latest != "" {
		n, err := strconv.Atoi(latest)
		if err != nil {
			return "", fmt.Errorf("parse order number %q: %w", latest, err)
		}
		next = n + 1
	}
	return fmt.Sprintf("%0*d", orderNumberWidth, next), nil
}

// ----- State machine -----

// UpdateOrder applies only the fields present in the request. Status moves
// are deliberately unrestricted (completed back to pending is fine) and
// paid toggles independently of status.
func (s *OrderService) UpdateOrder(id uint, req *UpdateOrderReq) (*entity.Order, error) {
	fields := map[string]interface{}{}
	if req.Status != nil {
		if !entity.ValidOrderStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		fields["status"] = *req.Status
	}
	if req.Paid != nil {
		fields["paid"] = *req.Paid
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if err := s.Repo.Updates(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// ----- Query surface -----

// ListOrders returns every order, newest first. No pagination: scale is a
// single restaurant's order history.
func (s *OrderService) ListOrders() ([]entity.Order, error) {
	return s.Repo.List()
}

func (s *OrderService) GetOrder(id uint) (*OrderDetail, error) {
	o, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.detail(o)
}

// GetOrderByNumber is the customer-facing lookup for the confirmation view.
func (s *OrderService) GetOrderByNumber(number string) (*OrderDetail, error) {
	o, err := s.Repo.FindByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.detail(o)
}

func (s *OrderService) detail(o *entity.Order) (*OrderDetail, error) {
	items, err := s.Repo.FindItems(o.ID)
	if err != nil {
		return nil, err
	}
	return orderDetail(o, items), nil
}
