package usecase_test

import (
	"strings"
	"time"

	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios falsos en memoria para los tests de casos de uso.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	nextID    int64
	suppliers map[int64]*entity.Supplier
	// activeUsers respuesta del predicado HasActiveUsers por proveedor.
	activeUsers map[int64]bool
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{
		nextID:      1,
		suppliers:   make(map[int64]*entity.Supplier),
		activeUsers: make(map[int64]bool),
	}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) GetByCode(code string) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Code == code && !s.IsDeleted {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		if !s.IsDeleted {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) ListActive(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		if !s.IsDeleted && s.IsActive {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) ExistsByCode(code string, excludeID int64) (bool, error) {
	for _, s := range r.suppliers {
		if s.ID != excludeID && !s.IsDeleted && s.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSupplierRepo) ExistsByEmail(email string, excludeID int64) (bool, error) {
	for _, s := range r.suppliers {
		if s.ID != excludeID && !s.IsDeleted && s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSupplierRepo) ExistsByTaxCode(taxCode string, excludeID int64) (bool, error) {
	for _, s := range r.suppliers {
		if s.ID != excludeID && !s.IsDeleted && s.TaxCode != nil && *s.TaxCode == taxCode {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSupplierRepo) HasActiveUsers(supplierID int64) (bool, error) {
	return r.activeUsers[supplierID], nil
}

func (r *fakeSupplierRepo) SoftDelete(id int64, deletedBy *int64, deletedAt time.Time) error {
	s, ok := r.suppliers[id]
	if !ok {
		return nil
	}
	s.MarkDeleted(deletedBy, deletedAt)
	return nil
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) ListActive(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.IsActive {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListBySupplier(supplierID int64, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.SupplierID != nil && *u.SupplierID == supplierID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ExistsByEmail(email string, excludeID int64) (bool, error) {
	for _, u := range r.users {
		if u.ID != excludeID && u.Email == strings.ToLower(email) {
			return true, nil
		}
	}
	return false, nil
}

type fakeProcurementRepo struct {
	nextID int64
	reqs   map[int64]*entity.ProcurementRequest
}

func newFakeProcurementRepo() *fakeProcurementRepo {
	return &fakeProcurementRepo{nextID: 1, reqs: make(map[int64]*entity.ProcurementRequest)}
}

func (r *fakeProcurementRepo) Create(req *entity.ProcurementRequest) error {
	req.ID = r.nextID
	r.nextID++
	cp := *req
	r.reqs[req.ID] = &cp
	return nil
}

func (r *fakeProcurementRepo) GetByID(id int64) (*entity.ProcurementRequest, error) {
	req, ok := r.reqs[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *fakeProcurementRepo) Update(req *entity.ProcurementRequest) error {
	cp := *req
	r.reqs[req.ID] = &cp
	return nil
}

func (r *fakeProcurementRepo) List(limit, offset int) ([]*entity.ProcurementRequest, error) {
	var out []*entity.ProcurementRequest
	for _, req := range r.reqs {
		cp := *req
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProcurementRepo) ListBySupplier(supplierID int64, limit, offset int) ([]*entity.ProcurementRequest, error) {
	var out []*entity.ProcurementRequest
	for _, req := range r.reqs {
		if req.SupplierID == supplierID {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeDeliveryRepo struct {
	nextID int64
	notes  map[int64]*entity.DeliveryNote
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{nextID: 1, notes: make(map[int64]*entity.DeliveryNote)}
}

func (r *fakeDeliveryRepo) Create(n *entity.DeliveryNote) error {
	n.ID = r.nextID
	r.nextID++
	cp := *n
	r.notes[n.ID] = &cp
	return nil
}

func (r *fakeDeliveryRepo) GetByID(id int64) (*entity.DeliveryNote, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeDeliveryRepo) Update(n *entity.DeliveryNote) error {
	cp := *n
	r.notes[n.ID] = &cp
	return nil
}

func (r *fakeDeliveryRepo) List(limit, offset int) ([]*entity.DeliveryNote, error) {
	var out []*entity.DeliveryNote
	for _, n := range r.notes {
		cp := *n
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeDeliveryRepo) ListBySupplier(supplierID int64, limit, offset int) ([]*entity.DeliveryNote, error) {
	var out []*entity.DeliveryNote
	for _, n := range r.notes {
		if n.SupplierID == supplierID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}
