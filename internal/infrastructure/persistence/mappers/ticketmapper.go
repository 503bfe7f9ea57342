package mappers

import (
	"time"

	"minegate/internal/domain/ticket"
	vo "minegate/internal/domain/ticket/valueobjects"
	"minegate/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	MessageToModel(m *ticket.Message) *models.TicketMessageModel
	MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:              t.ID(),
		UserID:          t.UserID(),
		Status:          t.Status().String(),
		AssignedAdminID: t.AssignedAdminID(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := time.UnixMilli(*model.ClosedAt)
		closedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		vo.TicketStatus(model.Status),
		model.AssignedAdminID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
		closedAt,
	)
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.TicketMessageModel {
	return &models.TicketMessageModel{
		ID:         msg.ID(),
		TicketID:   msg.TicketID(),
		SenderID:   msg.SenderID(),
		Role:       msg.Role().String(),
		Kind:       msg.Kind().String(),
		Content:    msg.Content(),
		SenderName: msg.SenderName(),
		CreatedAt:  msg.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error) {
	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.SenderID,
		vo.SenderRole(model.Role),
		vo.MessageKind(model.Kind),
		model.Content,
		model.SenderName,
		time.UnixMilli(model.CreatedAt),
	)
}
