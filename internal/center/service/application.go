package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/collections"
	"lscmis/pkg/platform/saga"
	"lscmis/pkg/platform/sentinel"
	"lscmis/pkg/requestcontext"
)

// SubmitApplication registers a pending center under a freshly generated code.
func (s *Service) SubmitApplication(ctx context.Context, cmd models.SubmitApplicationCommand) (res *models.SubmitResult, err error) {
	start := time.Now()
	defer func() { s.observe(workflowSubmit, start, err) }()

	if strings.TrimSpace(cmd.Fields.Name) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "center name required")
	}
	fields, err := s.prepareFields(ctx, cmd.Fields)
	if err != nil {
		return nil, err
	}
	itemIDs := collections.Dedupe(cmd.ServiceItemIDs)
	if err := s.requireItems(ctx, itemIDs); err != nil {
		return nil, err
	}

	count, err := s.centers.Count(ctx)
	if err != nil {
		return nil, storeErr(err, "failed to count centers")
	}

	now := requestcontext.Now(ctx)
	centerID := id.CenterID(uuid.New())
	var code string

	steps := []saga.Step{{
		Name: "create_center",
		Action: func(ctx context.Context) error {
			generated, err := s.codes.Generate(ctx, count, func(ctx context.Context, candidate string) error {
				center, err := models.NewApplication(centerID, fields, candidate, now)
				if err != nil {
					return invariantToValidation(err)
				}
				if err := s.centers.Create(ctx, center); err != nil {
					if errors.Is(err, sentinel.ErrAlreadyUsed) {
						return err
					}
					return storeErr(err, "failed to create application")
				}
				return nil
			})
			if err != nil {
				return err
			}
			code = generated
			return nil
		},
		Compensate: func(ctx context.Context) error {
			return s.deleteCenter(ctx, centerID)
		},
	}}
	if len(itemIDs) > 0 {
		steps = append(steps, saga.Step{
			Name: "insert_associations",
			Action: func(ctx context.Context) error {
				if err := s.associations.InsertMany(ctx, models.NewAssociations(centerID, itemIDs)); err != nil {
					return storeErr(err, "failed to link services")
				}
				return nil
			},
		})
	}
	if err := s.newSaga(workflowSubmit).Run(ctx, steps...); err != nil {
		return nil, err
	}

	s.audit.applicationSubmitted(ctx, models.ApplicationSubmitted{CenterID: centerID})
	return &models.SubmitResult{CenterID: centerID, ApplicationCode: code}, nil
}

// ReviewApplication moves a pending application to APPROVED or REJECTED.
func (s *Service) ReviewApplication(ctx context.Context, centerID id.CenterID, decision models.Status) (center *models.Center, err error) {
	start := time.Now()
	defer func() { s.observe(workflowReview, start, err) }()

	if centerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "center id required")
	}
	if !decision.IsDecision() {
		return nil, dErrors.New(dErrors.CodeValidation, "decision must be APPROVED or REJECTED")
	}

	now := requestcontext.Now(ctx)
	center, err = s.centers.Execute(ctx, centerID,
		func(c *models.Center) error {
			return c.CanReview(decision)
		},
		func(c *models.Center) {
			c.ApplyReview(decision, now)
		},
	)
	if err != nil {
		if _, ok := dErrors.As(err); ok {
			return nil, err
		}
		return nil, notFoundOr(err, "center not found", "failed to review application")
	}

	s.audit.applicationReviewed(ctx, models.ApplicationReviewed{CenterID: centerID, Decision: decision})
	return center, nil
}

// IssueCredentials creates the operator account for an approved application and
// consumes its code. A code is honoured at most once.
func (s *Service) IssueCredentials(ctx context.Context, cmd models.IssueCredentialsCommand) (res *models.ProvisionResult, err error) {
	start := time.Now()
	defer func() { s.observe(workflowIssueCredentials, start, err) }()

	email := strings.TrimSpace(cmd.Email)
	code := strings.TrimSpace(cmd.ApplicationCode)
	if email == "" || cmd.Password == "" || cmd.CenterID.IsNil() || code == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "missing required fields")
	}

	center, err := s.centers.FindByID(ctx, cmd.CenterID)
	if err != nil {
		return nil, notFoundOr(err, "center not found", "failed to load center")
	}
	if err := center.CanIssueCredentials(code); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	var userID id.UserID
	err = s.newSaga(workflowIssueCredentials).Run(ctx,
		s.createCredentialStep(email, cmd.Password, &userID),
		s.atomicStep(workflowIssueCredentials, center.ID,
			s.createProfileStep(&userID, models.RoleLSC, models.Scope{CenterID: center.ID}, now),
			saga.Step{
				Name: "consume_code",
				Action: func(ctx context.Context) error {
					err := s.centers.ConsumeCode(ctx, center.ID, code, now)
					switch {
					case err == nil:
						return nil
					case errors.Is(err, sentinel.ErrAlreadyUsed), errors.Is(err, sentinel.ErrNotFound):
						return dErrors.Wrap(err, dErrors.CodeStaleCode, "application code is invalid or already used")
					default:
						return storeErr(err, "failed to activate center")
					}
				},
			},
		),
	)
	if err != nil {
		return nil, err
	}

	s.audit.credentialsIssued(ctx, models.CredentialsIssued{CenterID: center.ID, UserID: userID, Email: email})
	return &models.ProvisionResult{CenterID: center.ID, UserID: userID}, nil
}

// ApplicationStatus looks an application up by its public code.
func (s *Service) ApplicationStatus(ctx context.Context, code string) (*models.Center, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "application code required")
	}
	center, err := s.centers.FindByCode(ctx, code)
	if err != nil {
		return nil, notFoundOr(err, "application not found", "failed to load application")
	}
	return center, nil
}

// ListApplications lists centers in status, or every center when status is empty.
func (s *Service) ListApplications(ctx context.Context, status models.Status) ([]*models.Center, error) {
	if status != "" && !status.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "status must be PENDING, APPROVED or REJECTED")
	}
	centers, err := s.centers.ListByStatus(ctx, status)
	if err != nil {
		return nil, storeErr(err, "failed to list applications")
	}
	return centers, nil
}
