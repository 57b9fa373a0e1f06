package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hazelbrook/saffron/internal/auth"
	"github.com/hazelbrook/saffron/internal/domain"
	"github.com/hazelbrook/saffron/internal/repository"
)

func newUserServiceForTest(store repository.Store) UserService {
	return NewUserService(store, nil, nil, testLogger())
}

func TestRegister(t *testing.T) {
	var accountParams repository.CreateAccountParams
	var profileParams repository.CreateProfileParams

	accountID := uuid.New()
	store := &mockStore{
		CreateAccountFunc: func(ctx context.Context, arg repository.CreateAccountParams) (repository.Account, error) {
			accountParams = arg
			return repository.Account{
				ID:           pgtype.UUID{Bytes: accountID, Valid: true},
				Email:        arg.Email,
				PasswordHash: arg.PasswordHash,
				FirstName:    arg.FirstName,
				LastName:     arg.LastName,
			}, nil
		},
		CreateProfileFunc: func(ctx context.Context, arg repository.CreateProfileParams) (repository.Profile, error) {
			profileParams = arg
			return repository.Profile{
				ID:        pgtype.UUID{Bytes: uuid.New(), Valid: true},
				AccountID: arg.AccountID,
				Kind:      arg.Kind,
				Phone:     arg.Phone,
			}, nil
		},
	}

	svc := newUserServiceForTest(store)
	account, profile, err := svc.Register(context.Background(), RegisterParams{
		Email:     "  Jo.Malone@Example.COM ",
		Password:  "supersecret",
		FirstName: "Jo",
		LastName:  "Malone",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if account.Email != "jo.malone@example.com" {
		t.Errorf("email = %q, want lowercased trimmed form", account.Email)
	}
	if accountParams.PasswordHash == "supersecret" {
		t.Error("password must be stored hashed")
	}
	if err := auth.VerifyPassword("supersecret", accountParams.PasswordHash); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if profileParams.AccountID.Bytes != accountID {
		t.Error("profile must belong to the new account")
	}
	if profile.Kind != domain.CustomerKindRetail {
		t.Errorf("new profiles start retail, got %s", profile.Kind)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := newUserServiceForTest(&mockStore{})

	tests := []struct {
		name   string
		params RegisterParams
	}{
		{"missing email", RegisterParams{Password: "supersecret"}},
		{"malformed email", RegisterParams{Email: "not-an-email", Password: "supersecret"}},
		{"short password", RegisterParams{Email: "a@b.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tt.params)
			if domain.ErrorCode(err) != domain.EINVALID {
				t.Errorf("expected EINVALID, got %v", err)
			}
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	store := &mockStore{
		GetAccountByEmailFunc: func(ctx context.Context, email string) (repository.Account, error) {
			return repository.Account{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Email: email}, nil
		},
	}

	svc := newUserServiceForTest(store)
	_, _, err := svc.Register(context.Background(), RegisterParams{
		Email:    "jo@example.com",
		Password: "supersecret",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	hash, err := auth.HashPassword("supersecret")
	if err != nil {
		t.Fatal(err)
	}
	store := &mockStore{
		GetAccountByEmailFunc: func(ctx context.Context, email string) (repository.Account, error) {
			return repository.Account{
				ID:           pgtype.UUID{Bytes: uuid.New(), Valid: true},
				Email:        email,
				PasswordHash: hash,
			}, nil
		},
	}
	svc := newUserServiceForTest(store)

	account, err := svc.Authenticate(context.Background(), "jo@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if account.Email != "jo@example.com" {
		t.Errorf("email = %q", account.Email)
	}

	_, err = svc.Authenticate(context.Background(), "jo@example.com", "wrongpassword")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := newUserServiceForTest(&mockStore{})

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestApplyForDistributor_RequiresCompany(t *testing.T) {
	svc := newUserServiceForTest(&mockStore{})

	_, err := svc.ApplyForDistributor(context.Background(), ApplyDistributorParams{
		AccountID: uuid.New(),
	})
	if domain.ErrorCode(err) != domain.EINVALID {
		t.Errorf("expected EINVALID, got %v", err)
	}
}

func TestReviewApplication_ApprovePromotesProfile(t *testing.T) {
	applicationID := uuid.New()
	accountID := uuid.New()

	var promoted repository.SetProfileKindParams
	store := &mockStore{
		GetDistributorApplicationFunc: func(ctx context.Context, id pgtype.UUID) (repository.DistributorApplication, error) {
			return repository.DistributorApplication{
				ID:          pgtype.UUID{Bytes: applicationID, Valid: true},
				AccountID:   pgtype.UUID{Bytes: accountID, Valid: true},
				CompanyName: "Crescent Imports",
				Status:      "pending",
			}, nil
		},
		UpdateDistributorApplicationStatusFunc: func(ctx context.Context, arg repository.UpdateDistributorApplicationStatusParams) (repository.DistributorApplication, error) {
			return repository.DistributorApplication{
				ID:          arg.ID,
				AccountID:   pgtype.UUID{Bytes: accountID, Valid: true},
				CompanyName: "Crescent Imports",
				Status:      arg.Status,
				ReviewNote:  arg.ReviewNote,
			}, nil
		},
		SetProfileKindFunc: func(ctx context.Context, arg repository.SetProfileKindParams) error {
			promoted = arg
			return nil
		},
	}

	svc := newUserServiceForTest(store)
	app, err := svc.ReviewApplication(context.Background(), applicationID, true, "verified tax ID")
	if err != nil {
		t.Fatalf("ReviewApplication() error = %v", err)
	}

	if app.Status != domain.ApplicationApproved {
		t.Errorf("status = %s, want approved", app.Status)
	}
	if promoted.AccountID.Bytes != accountID {
		t.Error("approval must promote the applicant's profile")
	}
	if promoted.Kind != string(domain.CustomerKindWholesale) {
		t.Errorf("profile kind = %q, want wholesale", promoted.Kind)
	}
}

func TestReviewApplication_AlreadyReviewed(t *testing.T) {
	store := &mockStore{
		GetDistributorApplicationFunc: func(ctx context.Context, id pgtype.UUID) (repository.DistributorApplication, error) {
			return repository.DistributorApplication{ID: id, Status: "approved"}, nil
		},
	}

	svc := newUserServiceForTest(store)
	_, err := svc.ReviewApplication(context.Background(), uuid.New(), false, "")
	if !errors.Is(err, ErrApplicationReviewed) {
		t.Errorf("expected ErrApplicationReviewed, got %v", err)
	}
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	store := &mockStore{
		MarkNotificationReadFunc: func(ctx context.Context, arg repository.MarkNotificationReadParams) (int64, error) {
			return 0, nil
		},
	}

	svc := newUserServiceForTest(store)
	err := svc.MarkNotificationRead(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("expected ErrNotificationNotFound, got %v", err)
	}
}
