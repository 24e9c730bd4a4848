package uc

import (
	"context"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/RumanAkhtar/lms-app-backend/engine/auth"
	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/identity"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
	"github.com/RumanAkhtar/lms-app-backend/engine/user"
	"github.com/RumanAkhtar/lms-app-backend/pkg/logger"
)

const (
	compensateAttempts = 2
	compensateBackoff  = 100 * time.Millisecond
)

// CreateInstructorInput is the request payload for provisioning an
// instructor account.
type CreateInstructorInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateInstructorOutput carries the new identity id back to the caller.
type CreateInstructorOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CreateInstructor provisions a new instructor account across the identity
// and data services. The two records live in independent services with no
// shared transaction, so the workflow compensates: when the profile insert
// fails after the identity was created, the identity is deleted again and
// the insert error is surfaced. No half-created account survives.
type CreateInstructor struct {
	identity identity.Service
	store    store.Service
	input    *CreateInstructorInput
}

// NewCreateInstructor creates the provisioning use case.
func NewCreateInstructor(identitySvc identity.Service, storeSvc store.Service, input *CreateInstructorInput) *CreateInstructor {
	return &CreateInstructor{
		identity: identitySvc,
		store:    storeSvc,
		input:    input,
	}
}

// Execute runs the workflow: validate, create the identity, insert the
// profile, compensate on partial failure.
func (uc *CreateInstructor) Execute(ctx context.Context) (*CreateInstructorOutput, error) {
	log := logger.FromContext(ctx)
	name := strings.TrimSpace(uc.input.Name)
	email := strings.ToLower(strings.TrimSpace(uc.input.Email))
	if name == "" {
		return nil, core.Validationf("name is required")
	}
	if email == "" {
		return nil, core.Validationf("email is required")
	}

	ident, err := uc.identity.CreateAccount(ctx, email)
	if err != nil {
		return nil, err
	}
	log.Debug("identity created", "identity_id", ident.ID, "email", email)

	_, err = uc.store.Insert(ctx, user.Table, store.Row{
		"id":    ident.ID,
		"name":  name,
		"email": email,
		"role":  string(auth.RoleInstructor),
	})
	if err != nil {
		uc.compensate(ctx, ident.ID)
		return nil, err
	}

	log.Info("instructor provisioned", "identity_id", ident.ID, "email", email)
	return &CreateInstructorOutput{ID: ident.ID, Email: email}, nil
}

// compensate deletes the identity created in step one. It is best-effort
// with a small bounded retry; its own failure is logged and never replaces
// the original error.
func (uc *CreateInstructor) compensate(ctx context.Context, identityID string) {
	log := logger.FromContext(ctx)
	backoff := retry.WithMaxRetries(compensateAttempts, retry.NewConstant(compensateBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := uc.identity.DeleteAccount(ctx, identityID); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		log.Error("compensating identity delete failed, orphaned identity remains",
			"identity_id", identityID, "error", err)
		return
	}
	log.Info("compensating identity delete succeeded", "identity_id", identityID)
}
