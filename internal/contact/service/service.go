// Package service implements the contact business rules: required-field
// validation, duplicate detection, phone enrichment, and persistence.
package service

import (
	"context"
	"errors"
	"log/slog"

	"agenda/internal/contact"
	"agenda/internal/contact/store"
	"agenda/internal/phone"
	"agenda/internal/platform/metrics"
	dErrors "agenda/pkg/domain-errors"
)

// Service orchestrates the five contact operations.
type Service struct {
	contacts  store.Store
	validator phone.Validator
	apiKey    string
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func New(contacts store.Store, validator phone.Validator, apiKey string, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		contacts:  contacts,
		validator: validator,
		apiKey:    apiKey,
		logger:    logger,
		metrics:   m,
	}
}

// Create validates the input, rejects duplicate phone numbers, enriches the
// contact through the validation service, and persists it.
func (s *Service) Create(ctx context.Context, name, telefono string) (contact.Contact, error) {
	if name == "" || telefono == "" {
		return contact.Contact{}, dErrors.New(dErrors.CodeValidation, "Name and telefono are required")
	}
	if s.apiKey == "" {
		return contact.Contact{}, dErrors.New(dErrors.CodeConfig, "API_KEY is required")
	}

	_, err := s.contacts.FindByTelefono(ctx, telefono)
	if err == nil {
		return contact.Contact{}, dErrors.New(dErrors.CodeDuplicate, "Contact already exists")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return contact.Contact{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check existing contact")
	}

	validation, err := s.validatePhone(ctx, telefono)
	if err != nil {
		return contact.Contact{}, err
	}

	rec, err := s.contacts.Insert(ctx, contact.Record{
		Name:     name,
		Telefono: telefono,
		Country:  validation.Country,
		Timezone: validation.Timezones,
	})
	if err != nil {
		return contact.Contact{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save contact")
	}

	s.metrics.IncContactsCreated()
	return contact.FromRecord(rec), nil
}

// List returns every persisted contact in the store's natural order.
func (s *Service) List(ctx context.Context) ([]contact.Contact, error) {
	recs, err := s.contacts.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list contacts")
	}
	contacts := make([]contact.Contact, 0, len(recs))
	for _, rec := range recs {
		contacts = append(contacts, contact.FromRecord(rec))
	}
	return contacts, nil
}

// Get returns the contact with the given id.
func (s *Service) Get(ctx context.Context, id string) (contact.Contact, error) {
	rec, err := s.contacts.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return contact.Contact{}, dErrors.New(dErrors.CodeNotFound, "Contact not found")
	}
	if err != nil {
		return contact.Contact{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load contact")
	}
	return contact.FromRecord(rec), nil
}

// Update replaces name, telefono and the derived fields on an existing
// contact, re-validating the phone number. It does not re-check telefono
// uniqueness against other records, so a number can move between contacts.
func (s *Service) Update(ctx context.Context, id, name, telefono string) error {
	_, err := s.contacts.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "Contact not found")
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load contact")
	}

	if name == "" || telefono == "" {
		return dErrors.New(dErrors.CodeValidation, "Name and telefono are required")
	}

	validation, err := s.validatePhone(ctx, telefono)
	if err != nil {
		return err
	}

	err = s.contacts.Update(ctx, id, contact.Record{
		Name:     name,
		Telefono: telefono,
		Country:  validation.Country,
		Timezone: validation.Timezones,
	})
	if errors.Is(err, store.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "Contact not found")
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update contact")
	}

	s.metrics.IncContactsUpdated()
	return nil
}

// Delete removes the contact with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.contacts.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "Contact not found")
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete contact")
	}

	s.metrics.IncContactsDeleted()
	return nil
}

func (s *Service) validatePhone(ctx context.Context, telefono string) (phone.Validation, error) {
	validation, err := s.validator.Validate(ctx, telefono)
	if err != nil {
		s.metrics.IncPhoneValidationFailures()
		s.logger.WarnContext(ctx, "phone validation failed",
			"telefono", telefono,
			"error", err.Error(),
		)
		return phone.Validation{}, dErrors.New(dErrors.CodeInvalidPhone, "Phone number is not valid")
	}
	return validation, nil
}
