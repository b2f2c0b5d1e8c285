package usecase

import (
	"time"

	"github.com/aladdin-chain/ycms-api/internal/application/dto"
	"github.com/aladdin-chain/ycms-api/internal/domain"
	"github.com/aladdin-chain/ycms-api/internal/domain/authz"
	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
	"github.com/aladdin-chain/ycms-api/internal/domain/repository"
)

// DeliveryUseCase reglas de negocio para notas de entrega.
type DeliveryUseCase struct {
	repo            repository.DeliveryNoteRepository
	procurementRepo repository.ProcurementRequestRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(repo repository.DeliveryNoteRepository, procurementRepo repository.ProcurementRequestRepository) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo, procurementRepo: procurementRepo}
}

// Create origina una nota de entrega. Requiere la capacidad de origen
// (Aladdin o supplier_admin) y alcance sobre el proveedor destino; la
// solicitud de compra referenciada debe pertenecer a ese mismo proveedor.
func (uc *DeliveryUseCase) Create(actor *entity.User, in dto.CreateDeliveryNoteRequest) (*dto.DeliveryNoteResponse, error) {
	if !actor.MayOriginateDeliveryNote() {
		return nil, domain.ErrForbidden
	}
	if !authz.CanAccessSupplier(actor, in.SupplierID) {
		return nil, domain.ErrSupplierScope
	}

	req, err := uc.procurementRepo.GetByID(in.ProcurementRequestID)
	if err != nil {
		return nil, err
	}
	if req == nil || req.SupplierID != in.SupplierID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	note := &entity.DeliveryNote{
		Number:               newDocumentNumber("DN"),
		SupplierID:           in.SupplierID,
		ProcurementRequestID: in.ProcurementRequestID,
		CreatedBy:            actor.ID,
		Status:               entity.DeliveryStatusPending,
		TotalAmount:          in.TotalAmount,
		Notes:                in.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(note); err != nil {
		return nil, err
	}
	return toDeliveryNoteResponse(note), nil
}

// GetByID obtiene una nota aplicando el guard de tenant.
func (uc *DeliveryUseCase) GetByID(actor *entity.User, id int64) (*dto.DeliveryNoteResponse, error) {
	note, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanAccessSupplier(actor, note.SupplierID) {
		return nil, domain.ErrSupplierScope
	}
	return toDeliveryNoteResponse(note), nil
}

// List lista notas de entrega; usuarios supplier solo ven las propias.
func (uc *DeliveryUseCase) List(actor *entity.User, page dto.PageRequest) ([]*dto.DeliveryNoteResponse, error) {
	page.DefaultPage()

	var (
		notes []*entity.DeliveryNote
		err   error
	)
	if actor.UserType == entity.UserTypeSupplier {
		notes, err = uc.repo.ListBySupplier(*actor.SupplierID, page.Limit, page.Offset)
	} else {
		notes, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.DeliveryNoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toDeliveryNoteResponse(n))
	}
	return out, nil
}

// UpdateStatus cambia el estado de una entrega tras verificar el alcance
// sobre la fila concreta (la capacidad la verifica el middleware).
func (uc *DeliveryUseCase) UpdateStatus(actor *entity.User, id int64, in dto.UpdateDeliveryStatusRequest) (*dto.DeliveryNoteResponse, error) {
	if !entity.ValidDeliveryStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}

	note, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanAccessSupplier(actor, note.SupplierID) {
		return nil, domain.ErrSupplierScope
	}

	note.Status = in.Status
	note.UpdatedAt = time.Now()
	if err := uc.repo.Update(note); err != nil {
		return nil, err
	}
	return toDeliveryNoteResponse(note), nil
}

func toDeliveryNoteResponse(n *entity.DeliveryNote) *dto.DeliveryNoteResponse {
	if n == nil {
		return nil
	}
	return &dto.DeliveryNoteResponse{
		ID:                   n.ID,
		Number:               n.Number,
		SupplierID:           n.SupplierID,
		ProcurementRequestID: n.ProcurementRequestID,
		CreatedBy:            n.CreatedBy,
		Status:               n.Status,
		TotalAmount:          n.TotalAmount,
		Notes:                n.Notes,
		CreatedAt:            n.CreatedAt,
		UpdatedAt:            n.UpdatedAt,
	}
}
