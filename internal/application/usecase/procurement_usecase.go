package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aladdin-chain/ycms-api/internal/application/dto"
	"github.com/aladdin-chain/ycms-api/internal/domain"
	"github.com/aladdin-chain/ycms-api/internal/domain/authz"
	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
	"github.com/aladdin-chain/ycms-api/internal/domain/repository"
)

// ProcurementUseCase reglas de negocio para solicitudes de compra (YCMS).
// La capacidad de originar la da el predicado del usuario; el alcance sobre
// filas concretas lo da el guard de tenant.
type ProcurementUseCase struct {
	repo         repository.ProcurementRequestRepository
	supplierRepo repository.SupplierRepository
}

// NewProcurementUseCase construye el caso de uso.
func NewProcurementUseCase(repo repository.ProcurementRequestRepository, supplierRepo repository.SupplierRepository) *ProcurementUseCase {
	return &ProcurementUseCase{repo: repo, supplierRepo: supplierRepo}
}

// Create origina una solicitud de compra. Requiere la capacidad de origen
// (solo personal de Aladdin) y un proveedor destino existente y no eliminado.
func (uc *ProcurementUseCase) Create(actor *entity.User, in dto.CreateProcurementRequest) (*dto.ProcurementResponse, error) {
	if !actor.MayOriginateProcurementRequest() {
		return nil, domain.ErrForbidden
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.IsDeleted {
		return nil, domain.ErrSupplierNotFound
	}

	now := time.Now()
	req := &entity.ProcurementRequest{
		Number:      newDocumentNumber("YCMS"),
		SupplierID:  in.SupplierID,
		RequestedBy: actor.ID,
		Status:      entity.ProcurementStatusDraft,
		TotalAmount: in.TotalAmount,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(req); err != nil {
		return nil, err
	}
	return toProcurementResponse(req), nil
}

// GetByID obtiene una solicitud aplicando el guard de tenant: fuera de
// alcance se reporta como fuera de alcance y el transporte lo enmascara como
// inexistente para no confirmar datos de otro tenant.
func (uc *ProcurementUseCase) GetByID(actor *entity.User, id int64) (*dto.ProcurementResponse, error) {
	req, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanAccessSupplier(actor, req.SupplierID) {
		return nil, domain.ErrSupplierScope
	}
	return toProcurementResponse(req), nil
}

// List lista solicitudes. Un actor de tipo supplier solo ve las de su propio
// proveedor; el resto ve todas.
func (uc *ProcurementUseCase) List(actor *entity.User, page dto.PageRequest) ([]*dto.ProcurementResponse, error) {
	page.DefaultPage()

	var (
		reqs []*entity.ProcurementRequest
		err  error
	)
	if actor.UserType == entity.UserTypeSupplier {
		reqs, err = uc.repo.ListBySupplier(*actor.SupplierID, page.Limit, page.Offset)
	} else {
		reqs, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ProcurementResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toProcurementResponse(r))
	}
	return out, nil
}

// UpdateStatus cambia el estado de una solicitud. La capacidad (update sobre
// procurement_requests) la verifica el middleware; aquí se verifica el
// alcance sobre la fila concreta.
func (uc *ProcurementUseCase) UpdateStatus(actor *entity.User, id int64, in dto.UpdateProcurementStatusRequest) (*dto.ProcurementResponse, error) {
	if !entity.ValidProcurementStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}

	req, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanAccessSupplier(actor, req.SupplierID) {
		return nil, domain.ErrSupplierScope
	}

	req.Status = in.Status
	req.UpdatedAt = time.Now()
	if err := uc.repo.Update(req); err != nil {
		return nil, err
	}
	return toProcurementResponse(req), nil
}

// newDocumentNumber genera un número de documento corto y único
// (VD: YCMS-1A2B3C4D).
func newDocumentNumber(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return prefix + "-" + suffix
}

func toProcurementResponse(r *entity.ProcurementRequest) *dto.ProcurementResponse {
	if r == nil {
		return nil
	}
	return &dto.ProcurementResponse{
		ID:          r.ID,
		Number:      r.Number,
		SupplierID:  r.SupplierID,
		RequestedBy: r.RequestedBy,
		Status:      r.Status,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
