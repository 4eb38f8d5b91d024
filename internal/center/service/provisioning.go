package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/collections"
	"lscmis/pkg/platform/saga"
	"lscmis/pkg/platform/tx"
	"lscmis/pkg/requestcontext"
)

// ProvisionCenter creates an approved, active center together with its operator
// account. The steps run as a saga: a failing step undoes every earlier one.
func (s *Service) ProvisionCenter(ctx context.Context, cmd models.ProvisionCenterCommand) (res *models.ProvisionResult, err error) {
	start := time.Now()
	defer func() { s.observe(workflowProvision, start, err) }()

	email := strings.TrimSpace(cmd.Email)
	if email == "" || cmd.Password == "" || strings.TrimSpace(cmd.Fields.Name) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "missing required fields")
	}
	itemIDs := collections.Dedupe(cmd.ServiceItemIDs)
	if len(itemIDs) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "no services selected")
	}
	fields, err := s.prepareFields(ctx, cmd.Fields)
	if err != nil {
		return nil, err
	}
	if err := s.requireItems(ctx, itemIDs); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	center, err := models.NewProvisionedCenter(id.CenterID(uuid.New()), fields, now)
	if err != nil {
		return nil, invariantToValidation(err)
	}

	var userID id.UserID
	err = s.newSaga(workflowProvision).Run(ctx,
		s.createCredentialStep(email, cmd.Password, &userID),
		s.atomicStep(workflowProvision, center.ID,
			s.createCenterStep(center),
			s.createProfileStep(&userID, models.RoleLSC, models.Scope{CenterID: center.ID}, now),
			saga.Step{
				Name: "insert_associations",
				Action: func(ctx context.Context) error {
					if err := s.associations.InsertMany(ctx, models.NewAssociations(center.ID, itemIDs)); err != nil {
						return storeErr(err, "failed to link services")
					}
					return nil
				},
			},
		),
	)
	if err != nil {
		return nil, err
	}

	s.audit.centerProvisioned(ctx, models.CenterProvisioned{CenterID: center.ID, UserID: userID, Email: email})
	return &models.ProvisionResult{CenterID: center.ID, UserID: userID}, nil
}

// UpdateCenter replaces a center's fields and its whole service set.
func (s *Service) UpdateCenter(ctx context.Context, cmd models.UpdateCenterCommand) (center *models.Center, err error) {
	start := time.Now()
	defer func() { s.observe(workflowUpdate, start, err) }()

	if cmd.CenterID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "center id required")
	}
	fields, err := s.prepareFields(ctx, cmd.Fields)
	if err != nil {
		return nil, err
	}
	itemIDs := collections.Dedupe(cmd.ServiceItemIDs)
	if err := s.requireItems(ctx, itemIDs); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.centers.FindByID(ctx, cmd.CenterID)
		if err != nil {
			return notFoundOr(err, "center not found", "failed to load center")
		}
		if err := current.ApplyFields(fields, requestcontext.Now(ctx)); err != nil {
			return invariantToValidation(err)
		}
		if err := s.centers.Update(ctx, current); err != nil {
			return storeErr(err, "failed to update center")
		}
		if err := s.associations.DeleteByCenter(ctx, current.ID); err != nil {
			return storeErr(err, "failed to clear services")
		}
		if len(itemIDs) > 0 {
			if err := s.associations.InsertMany(ctx, models.NewAssociations(current.ID, itemIDs)); err != nil {
				return storeErr(err, "failed to link services")
			}
		}
		center = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.centerUpdated(ctx, center.ID)
	return center, nil
}

func (s *Service) GetCenter(ctx context.Context, centerID id.CenterID) (*models.CenterDetail, error) {
	center, err := s.centers.FindByID(ctx, centerID)
	if err != nil {
		return nil, notFoundOr(err, "center not found", "failed to load center")
	}
	services, err := s.associations.ListByCenter(ctx, centerID)
	if err != nil {
		return nil, storeErr(err, "failed to load services")
	}
	return &models.CenterDetail{Center: center, Services: services}, nil
}

// prepareFields validates fields and resolves their hierarchy before any write.
func (s *Service) prepareFields(ctx context.Context, fields models.Fields) (models.Fields, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	if err := models.ValidateFields(fields); err != nil {
		return fields, invariantToValidation(err)
	}
	return s.resolveHierarchy(ctx, fields)
}

// requireItems fails with a validation error when any id is not in the catalog.
func (s *Service) requireItems(ctx context.Context, itemIDs []id.ServiceItemID) error {
	if len(itemIDs) == 0 {
		return nil
	}
	found, err := s.catalog.ListItemsByIDs(ctx, itemIDs)
	if err != nil {
		return storeErr(err, "failed to load services")
	}
	if len(found) != len(itemIDs) {
		return dErrors.New(dErrors.CodeValidation, "unknown or inactive service item")
	}
	for _, it := range found {
		if !it.IsActive {
			return dErrors.New(dErrors.CodeValidation, "unknown or inactive service item")
		}
	}
	return nil
}

// atomicStep runs steps as one saga inside a store transaction. Under the SQL
// runner a failed step rolls the transaction back, so the step compensations are
// skipped; the in-memory runner keeps no undo log and relies on them.
func (s *Service) atomicStep(workflow string, centerID id.CenterID, steps ...saga.Step) saga.Step {
	inner := make([]saga.Step, len(steps))
	for i, step := range steps {
		inner[i] = step
		if step.Compensate == nil {
			continue
		}
		compensate := step.Compensate
		inner[i].Compensate = func(ctx context.Context) error {
			if _, ok := tx.From(ctx); ok {
				return nil
			}
			return compensate(ctx)
		}
	}
	return saga.Step{
		Name: "persist_center",
		Action: func(ctx context.Context) error {
			ctx = tx.WithShardKey(ctx, centerID.String())
			return s.tx.RunInTx(ctx, func(ctx context.Context) error {
				return s.newSaga(workflow).Run(ctx, inner...)
			})
		},
	}
}

// Shared saga steps. Steps that learn an id write it through a pointer so later
// steps and compensations see it.

func (s *Service) createCredentialStep(email, password string, userID *id.UserID) saga.Step {
	return saga.Step{
		Name: "create_credential",
		Action: func(ctx context.Context) error {
			created, err := s.identity.CreateCredential(ctx, email, password)
			if err != nil {
				if _, ok := dErrors.As(err); ok {
					return err
				}
				return dErrors.Wrap(err, dErrors.CodeAuth, "failed to create credential")
			}
			*userID = created
			return nil
		},
		Compensate: func(ctx context.Context) error {
			if err := s.identity.DeleteCredential(ctx, *userID); err != nil {
				return fmt.Errorf("delete credential %s: %w", *userID, err)
			}
			return nil
		},
	}
}

func (s *Service) createCenterStep(center *models.Center) saga.Step {
	return saga.Step{
		Name: "create_center",
		Action: func(ctx context.Context) error {
			if err := s.centers.Create(ctx, center); err != nil {
				return storeErr(err, "failed to create center")
			}
			return nil
		},
		Compensate: func(ctx context.Context) error {
			return s.deleteCenter(ctx, center.ID)
		},
	}
}

func (s *Service) createProfileStep(userID *id.UserID, role models.Role, scope models.Scope, now time.Time) saga.Step {
	return saga.Step{
		Name: "create_profile",
		Action: func(ctx context.Context) error {
			profile, err := models.NewProfile(*userID, role, scope, now)
			if err != nil {
				return invariantToValidation(err)
			}
			if err := s.profiles.Create(ctx, profile); err != nil {
				return storeErr(err, "failed to create profile")
			}
			return nil
		},
		Compensate: func(ctx context.Context) error {
			if err := s.profiles.Delete(ctx, *userID); err != nil {
				return fmt.Errorf("delete profile %s: %w", *userID, err)
			}
			return nil
		},
	}
}

func (s *Service) deleteCenter(ctx context.Context, centerID id.CenterID) error {
	if err := s.centers.Delete(ctx, centerID); err != nil {
		return fmt.Errorf("delete center %s: %w", centerID, err)
	}
	return nil
}
