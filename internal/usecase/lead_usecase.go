package usecase

//go:generate mockgen -source=lead_usecase.go -destination=../adapter/http/handlers/mocks/lead_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrLeadNotFound             = errors.New("lead not found")
	ErrInvalidLead              = errors.New("lead name and email are required")
	ErrInvalidLeadStatus        = errors.New("invalid lead status")
	ErrLeadTransitionNotAllowed = errors.New("lead status transition not allowed")
)

// LeadInput is a contact submission from the site form, the public API or the AI agent.
type LeadInput struct {
	Name              string
	Email             string
	Phone             string
	Company           string
	ServiceInterestID string
	Message           string
	Source            string
	Budget            string
	Timeline          string
}

// ILeadUseCase captures prospects and lets staff progress them.
type ILeadUseCase interface {
	Submit(ctx context.Context, in LeadInput) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context, status entities.LeadStatus) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus, notes string) (entities.Lead, error)
}

type LeadUseCase struct {
	repo       interfaces.ILeadRepository
	services   interfaces.IContentRepository[entities.Service]
	dispatcher interfaces.ISideEffectDispatcher
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository, services interfaces.IContentRepository[entities.Service], dispatcher interfaces.ISideEffectDispatcher) *LeadUseCase {
	return &LeadUseCase{repo: repo, services: services, dispatcher: dispatcher}
}

// Submit stores a new lead and fans out the chat and AI agent notifications.
// Nothing is stored when name or email is missing.
func (u *LeadUseCase) Submit(ctx context.Context, in LeadInput) (entities.Lead, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return entities.Lead{}, ErrInvalidLead
	}

	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = entities.LeadSourceContactForm
	}

	now := time.Now().UTC()
	lead := entities.Lead{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.ToLower(email),
		Phone:     strings.TrimSpace(in.Phone),
		Company:   strings.TrimSpace(in.Company),
		Message:   strings.TrimSpace(in.Message),
		Status:    entities.LeadStatusNew,
		Source:    source,
		Budget:    strings.TrimSpace(in.Budget),
		Timeline:  strings.TrimSpace(in.Timeline),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// An unknown service is dropped rather than rejecting the prospect.
	if id := strings.TrimSpace(in.ServiceInterestID); id != "" && u.services != nil {
		svc, err := u.services.GetByID(ctx, id)
		if err != nil {
			return entities.Lead{}, err
		}
		if svc.ID != "" {
			lead.ServiceInterestID = svc.ID
			lead.ServiceInterest = svc.Title
		}
	}

	created, err := u.repo.Create(ctx, lead)
	if err != nil {
		return entities.Lead{}, err
	}
	logrus.WithFields(logrus.Fields{"lead_id": created.ID, "source": created.Source}).Info("[lead][usecase] lead created")

	dispatchAll(ctx, u.dispatcher,
		entities.SideEffect{Kind: entities.SideEffectChatLeadCreated, LeadID: created.ID},
		entities.SideEffect{Kind: entities.SideEffectAgentNewLead, LeadID: created.ID},
	)
	return created, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	lead, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return lead, nil
}

// List returns leads newest first, optionally filtered by status.
func (u *LeadUseCase) List(ctx context.Context, status entities.LeadStatus) ([]entities.Lead, error) {
	if status != "" && !status.IsValid() {
		return nil, ErrInvalidLeadStatus
	}
	leads, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return leads, nil
	}
	out := make([]entities.Lead, 0, len(leads))
	for _, l := range leads {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus, notes string) (entities.Lead, error) {
	if !status.IsValid() {
		return entities.Lead{}, ErrInvalidLeadStatus
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.Lead{}, ErrLeadTransitionNotAllowed
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, status, strings.TrimSpace(notes))
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		// Someone else moved the lead between the read and the write.
		return entities.Lead{}, ErrLeadTransitionNotAllowed
	}
	logrus.WithFields(logrus.Fields{"lead_id": updated.ID, "from": current.Status, "to": updated.Status}).Info("[lead][usecase] status updated")
	return updated, nil
}

// dispatchAll hands every effect to d. Dispatch errors are logged, never returned.
func dispatchAll(ctx context.Context, d interfaces.ISideEffectDispatcher, effects ...entities.SideEffect) {
	if d == nil {
		return
	}
	for _, e := range effects {
		if err := d.Dispatch(ctx, e); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"kind": e.Kind, "order_id": e.OrderID, "lead_id": e.LeadID}).Error("[side-effect][usecase] dispatch failed")
		}
	}
}
