package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/autohaus/dealership/internal/core/domain"
)

// memAccounts mirrors the partitioned, case-insensitive Mongo account store.
type memAccounts struct {
	byRole map[domain.Role]map[string]*domain.Account
	seq    int
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byRole: map[domain.Role]map[string]*domain.Account{
		domain.RoleUser:  {},
		domain.RoleAdmin: {},
	}}
}

func (m *memAccounts) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	part := m.byRole[a.Role]
	for _, existing := range part {
		if strings.EqualFold(existing.Email, a.Email) {
			return nil, domain.ErrAccountExists
		}
	}
	m.seq++
	clone := *a
	clone.ID = fmt.Sprintf("%s-%d", a.Role, m.seq)
	part[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (m *memAccounts) FindByEmail(_ context.Context, role domain.Role, email string) (*domain.Account, error) {
	for _, a := range m.byRole[role] {
		if strings.EqualFold(a.Email, email) {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *memAccounts) FindByID(_ context.Context, role domain.Role, id string) (*domain.Account, error) {
	a, ok := m.byRole[role][id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (m *memAccounts) UpdatePassword(_ context.Context, role domain.Role, id, hash string) error {
	a, ok := m.byRole[role][id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.PasswordHash = hash
	return nil
}

func (m *memAccounts) Delete(_ context.Context, role domain.Role, id string) error {
	if _, ok := m.byRole[role][id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(m.byRole[role], id)
	return nil
}

func (m *memAccounts) List(_ context.Context, role domain.Role) ([]*domain.Account, error) {
	out := make([]*domain.Account, 0, len(m.byRole[role]))
	for _, a := range m.byRole[role] {
		clone := *a
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memCars struct {
	items map[string]*domain.Car
	seq   int
}

func newMemCars() *memCars { return &memCars{items: map[string]*domain.Car{}} }

func (m *memCars) Create(_ context.Context, car *domain.Car) error {
	m.seq++
	car.ID = fmt.Sprintf("car-%d", m.seq)
	clone := *car
	m.items[car.ID] = &clone
	return nil
}

func (m *memCars) FindByID(_ context.Context, id string) (*domain.Car, error) {
	car, ok := m.items[id]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	clone := *car
	return &clone, nil
}

func (m *memCars) List(_ context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	var out []*domain.Car
	for _, car := range m.items {
		if filter.Status != "" && car.Status != filter.Status {
			continue
		}
		if filter.BrandID != "" && car.BrandID != filter.BrandID {
			continue
		}
		clone := *car
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memCars) Update(_ context.Context, car *domain.Car) error {
	if _, ok := m.items[car.ID]; !ok {
		return domain.ErrCarNotFound
	}
	clone := *car
	m.items[car.ID] = &clone
	return nil
}

func (m *memCars) SetStatus(_ context.Context, id string, status domain.CarStatus) error {
	car, ok := m.items[id]
	if !ok {
		return domain.ErrCarNotFound
	}
	car.Status = status
	return nil
}

func (m *memCars) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrCarNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memCars) CountByBrand(_ context.Context, brandID string) (int64, error) {
	var n int64
	for _, car := range m.items {
		if car.BrandID == brandID {
			n++
		}
	}
	return n, nil
}

type memBrands struct {
	items map[string]*domain.Brand
	seq   int
}

func newMemBrands() *memBrands { return &memBrands{items: map[string]*domain.Brand{}} }

func (m *memBrands) Create(_ context.Context, b *domain.Brand) error {
	for _, existing := range m.items {
		if strings.EqualFold(existing.Name, b.Name) {
			return domain.ErrBrandExists
		}
	}
	m.seq++
	b.ID = fmt.Sprintf("brand-%d", m.seq)
	clone := *b
	m.items[b.ID] = &clone
	return nil
}

func (m *memBrands) FindByID(_ context.Context, id string) (*domain.Brand, error) {
	b, ok := m.items[id]
	if !ok {
		return nil, domain.ErrBrandNotFound
	}
	clone := *b
	return &clone, nil
}

func (m *memBrands) List(_ context.Context) ([]*domain.Brand, error) {
	out := make([]*domain.Brand, 0, len(m.items))
	for _, b := range m.items {
		clone := *b
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memBrands) Update(_ context.Context, b *domain.Brand) error {
	if _, ok := m.items[b.ID]; !ok {
		return domain.ErrBrandNotFound
	}
	clone := *b
	m.items[b.ID] = &clone
	return nil
}

func (m *memBrands) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrBrandNotFound
	}
	delete(m.items, id)
	return nil
}

type memClients struct {
	items map[string]*domain.Client
	seq   int
}

func newMemClients() *memClients { return &memClients{items: map[string]*domain.Client{}} }

func (m *memClients) Create(_ context.Context, c *domain.Client) error {
	for _, existing := range m.items {
		if existing.AgreementNumber == c.AgreementNumber {
			return domain.ErrAgreementExists
		}
	}
	m.seq++
	c.ID = fmt.Sprintf("client-%d", m.seq)
	clone := *c
	m.items[c.ID] = &clone
	return nil
}

func (m *memClients) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (m *memClients) List(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(m.items))
	for _, c := range m.items {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (m *memClients) Update(_ context.Context, c *domain.Client) error {
	for id, existing := range m.items {
		if id != c.ID && existing.AgreementNumber == c.AgreementNumber {
			return domain.ErrAgreementExists
		}
	}
	clone := *c
	m.items[c.ID] = &clone
	return nil
}

func (m *memClients) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(m.items, id)
	return nil
}

type memOrders struct {
	items map[string]*domain.Order
	seq   int
}

func newMemOrders() *memOrders { return &memOrders{items: map[string]*domain.Order{}} }

func (m *memOrders) Create(_ context.Context, o *domain.Order) error {
	m.seq++
	o.ID = fmt.Sprintf("order-%d", m.seq)
	clone := *o
	m.items[o.ID] = &clone
	return nil
}

func (m *memOrders) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := m.items[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (m *memOrders) List(_ context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range m.items {
		if status != "" && o.Status != status {
			continue
		}
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}

func (m *memOrders) Update(_ context.Context, o *domain.Order) error {
	clone := *o
	m.items[o.ID] = &clone
	return nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(m.items, id)
	return nil
}

type memDocuments struct {
	items map[string]*domain.Document
	seq   int
}

func newMemDocuments() *memDocuments { return &memDocuments{items: map[string]*domain.Document{}} }

func (m *memDocuments) Create(_ context.Context, d *domain.Document) error {
	for _, existing := range m.items {
		if existing.TrackingCode == d.TrackingCode {
			return domain.ErrTrackingExists
		}
	}
	m.seq++
	d.ID = fmt.Sprintf("doc-%d", m.seq)
	clone := *d
	m.items[d.ID] = &clone
	return nil
}

func (m *memDocuments) FindByID(_ context.Context, id string) (*domain.Document, error) {
	d, ok := m.items[id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	clone := *d
	return &clone, nil
}

func (m *memDocuments) FindByTrackingCode(_ context.Context, code string) (*domain.Document, error) {
	for _, d := range m.items {
		if d.TrackingCode == code {
			clone := *d
			return &clone, nil
		}
	}
	return nil, domain.ErrDocumentNotFound
}

func (m *memDocuments) List(_ context.Context) ([]*domain.Document, error) {
	out := make([]*domain.Document, 0, len(m.items))
	for _, d := range m.items {
		clone := *d
		out = append(out, &clone)
	}
	return out, nil
}

func (m *memDocuments) Update(_ context.Context, d *domain.Document) error {
	clone := *d
	m.items[d.ID] = &clone
	return nil
}

func (m *memDocuments) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrDocumentNotFound
	}
	delete(m.items, id)
	return nil
}
