// Package memory provides in-process data sources for local development and tests.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
)

// Store keeps customers and orders in maps. It implements both
// ports.CustomerDataSource and ports.OrderDataSource.
type Store struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]ports.CustomerRecord
	orders    map[uuid.UUID]ports.OrderRecord
}

var (
	_ ports.CustomerDataSource = (*Store)(nil)
	_ ports.OrderDataSource    = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		customers: make(map[uuid.UUID]ports.CustomerRecord),
		orders:    make(map[uuid.UUID]ports.OrderRecord),
	}
}

// NewSeededStore returns a store holding the default customer, as the
// database migrations do.
func NewSeededStore() *Store {
	s := NewStore()
	id := uuid.MustParse(customer.DefaultID)
	s.customers[id] = ports.CustomerRecord{
		ID:    id,
		Name:  customer.DefaultName,
		Email: customer.DefaultEmail,
		Cpf:   customer.DefaultCpf,
	}
	return s
}

func (s *Store) InsertCustomer(_ context.Context, record ports.CustomerRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[record.ID]; ok {
		return false, errs.NewConflictError("customer", "id "+record.ID.String()+" already exists")
	}
	for _, c := range s.customers {
		if c.Cpf == record.Cpf && c.Email == record.Email {
			return false, errs.NewConflictError("customer", "a customer with this cpf and email already exists")
		}
	}

	s.customers[record.ID] = record
	return true, nil
}

func (s *Store) FindCustomerByCpf(_ context.Context, cpf string) (*ports.CustomerRecord, error) {
	return s.findCustomer(func(c ports.CustomerRecord) bool { return c.Cpf == cpf }), nil
}

func (s *Store) FindCustomerByEmail(_ context.Context, email string) (*ports.CustomerRecord, error) {
	return s.findCustomer(func(c ports.CustomerRecord) bool { return c.Email == email }), nil
}

func (s *Store) FindCustomerByID(_ context.Context, id uuid.UUID) (*ports.CustomerRecord, error) {
	return s.findCustomer(func(c ports.CustomerRecord) bool { return c.ID == id }), nil
}

func (s *Store) findCustomer(match func(ports.CustomerRecord) bool) *ports.CustomerRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if match(c) {
			found := c
			return &found
		}
	}
	return nil
}

// InsertOrder requires the referenced customer to exist.
func (s *Store) InsertOrder(_ context.Context, record ports.OrderRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[record.ID]; ok {
		return false, errs.NewConflictError("order", "id "+record.ID.String()+" already exists")
	}
	if _, ok := s.customers[record.Customer.ID]; !ok {
		return false, errs.NewConflictError("order", "customer "+record.Customer.ID.String()+" does not exist")
	}

	s.orders[record.ID] = cloneOrder(record)
	return true, nil
}

func (s *Store) FindOrderByID(_ context.Context, id uuid.UUID) (*ports.OrderRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	found := s.withCustomer(record)
	return &found, nil
}

func (s *Store) FindOrdersByCustomerID(_ context.Context, customerID uuid.UUID) ([]ports.OrderRecord, error) {
	return s.filterOrders(func(o ports.OrderRecord) bool { return o.Customer.ID == customerID }), nil
}

func (s *Store) FindOrdersByStatus(_ context.Context, statuses ...int) ([]ports.OrderRecord, error) {
	return s.filterOrders(func(o ports.OrderRecord) bool { return slices.Contains(statuses, o.Status) }), nil
}

func (s *Store) UpdateOrderStatus(_ context.Context, id uuid.UUID, status int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.orders[id]
	if !ok {
		return false, nil
	}
	record.Status = status
	s.orders[id] = record
	return true, nil
}

func (s *Store) ReplaceOrderItems(_ context.Context, orderID uuid.UUID, items []ports.OrderItemRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.orders[orderID]
	if !ok {
		return false, errs.NewConflictError("order", "order "+orderID.String()+" does not exist")
	}
	record.Items = slices.Clone(items)
	s.orders[orderID] = record
	return true, nil
}

// filterOrders returns matches sorted by creation time, oldest first.
func (s *Store) filterOrders(match func(ports.OrderRecord) bool) []ports.OrderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]ports.OrderRecord, 0)
	for _, o := range s.orders {
		if match(o) {
			found = append(found, s.withCustomer(o))
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].CreatedAt.Before(found[j].CreatedAt)
	})
	return found
}

func (s *Store) withCustomer(o ports.OrderRecord) ports.OrderRecord {
	o = cloneOrder(o)
	if c, ok := s.customers[o.Customer.ID]; ok {
		o.Customer = c
	}
	return o
}

func cloneOrder(o ports.OrderRecord) ports.OrderRecord {
	o.Items = slices.Clone(o.Items)
	return o
}
