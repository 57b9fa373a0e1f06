package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hazelbrook/saffron/internal/auth"
	"github.com/hazelbrook/saffron/internal/domain"
	"github.com/hazelbrook/saffron/internal/email"
	"github.com/hazelbrook/saffron/internal/repository"
	"github.com/hazelbrook/saffron/internal/telemetry"
)

// UserService provides business logic for accounts, profiles, distributor
// applications and notifications.
type UserService interface {
	// Register creates an account and its profile together. Both rows are
	// written in one transaction so a half-registered account cannot exist.
	Register(ctx context.Context, params RegisterParams) (*domain.Account, *domain.Profile, error)

	// Authenticate verifies credentials and returns the account.
	Authenticate(ctx context.Context, emailAddr, password string) (*domain.Account, error)

	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error)

	// ApplyForDistributor files a wholesale access request.
	ApplyForDistributor(ctx context.Context, params ApplyDistributorParams) (*domain.DistributorApplication, error)
	ListPendingApplications(ctx context.Context) ([]domain.DistributorApplication, error)

	// ReviewApplication approves or rejects a pending application. Approval
	// promotes the applicant's profile to the wholesale kind.
	ReviewApplication(ctx context.Context, applicationID uuid.UUID, approve bool, note string) (*domain.DistributorApplication, error)

	ListNotifications(ctx context.Context, accountID uuid.UUID) ([]domain.Notification, error)
	CountUnreadNotifications(ctx context.Context, accountID uuid.UUID) (int64, error)
	MarkNotificationRead(ctx context.Context, accountID, notificationID uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context, accountID uuid.UUID) error
}

// RegisterParams carries a new customer signup.
type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// ApplyDistributorParams carries a wholesale access request.
type ApplyDistributorParams struct {
	AccountID   uuid.UUID
	CompanyName string
	TaxID       string
	Message     string
}

type userService struct {
	store    repository.Store
	notifier *email.Notifier
	metrics  *telemetry.BusinessMetrics
	logger   *slog.Logger
}

// NewUserService creates a new UserService instance.
// notifier and metrics may be nil.
func NewUserService(store repository.Store, notifier *email.Notifier, metrics *telemetry.BusinessMetrics, logger *slog.Logger) UserService {
	return &userService{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *userService) Register(ctx context.Context, params RegisterParams) (*domain.Account, *domain.Profile, error) {
	const op = "user.register"

	emailAddr := strings.ToLower(strings.TrimSpace(params.Email))
	if emailAddr == "" || !strings.Contains(emailAddr, "@") {
		return nil, nil, domain.Errorf(domain.EINVALID, op, "A valid email address is required")
	}
	if len(params.Password) < auth.MinPasswordLength {
		return nil, nil, domain.Errorf(domain.EINVALID, op, "Password must be at least %d characters", auth.MinPasswordLength)
	}
	if len(params.Password) > auth.MaxPasswordLength {
		return nil, nil, domain.Errorf(domain.EINVALID, op, "Password must be at most %d characters", auth.MaxPasswordLength)
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to hash password")
	}

	var account *domain.Account
	var profile *domain.Profile

	err = s.store.ExecTx(ctx, func(q repository.Querier) error {
		_, err := q.GetAccountByEmail(ctx, emailAddr)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to look up account")
		}

		accountRow, err := q.CreateAccount(ctx, repository.CreateAccountParams{
			Email:        emailAddr,
			PasswordHash: hash,
			FirstName:    pgText(params.FirstName),
			LastName:     pgText(params.LastName),
		})
		if err != nil {
			if isUniqueViolation(err) {
				return ErrEmailTaken
			}
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to save account")
		}

		profileRow, err := q.CreateProfile(ctx, repository.CreateProfileParams{
			AccountID: accountRow.ID,
			Kind:      string(domain.CustomerKindRetail),
			Phone:     pgText(params.Phone),
		})
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to save profile")
		}

		a := toDomainAccount(accountRow)
		p := toDomainProfile(profileRow)
		account = &a
		profile = &p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if s.metrics != nil {
		s.metrics.Signups.Inc()
	}
	s.logger.Info("account registered", "account_id", account.ID)

	if s.notifier != nil {
		err := s.notifier.SendWelcome(ctx, email.WelcomeEmail{
			Email: account.Email,
			Name:  account.FullName(),
		})
		if err != nil {
			if s.metrics != nil {
				s.metrics.EmailFailed.WithLabelValues("welcome").Inc()
			}
			s.logger.Error("failed to send welcome email", "account_id", account.ID, "error", err)
		} else if s.metrics != nil {
			s.metrics.EmailSent.WithLabelValues("welcome").Inc()
		}
	}

	return account, profile, nil
}

func (s *userService) Authenticate(ctx context.Context, emailAddr, password string) (*domain.Account, error) {
	const op = "user.authenticate"

	row, err := s.store.GetAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if s.metrics != nil {
				s.metrics.LoginFailed.Inc()
			}
			return nil, ErrInvalidCredentials
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to look up account")
	}

	if err := auth.VerifyPassword(password, row.PasswordHash); err != nil {
		if s.metrics != nil {
			s.metrics.LoginFailed.Inc()
		}
		return nil, ErrInvalidCredentials
	}

	if s.metrics != nil {
		s.metrics.Logins.Inc()
	}

	account := toDomainAccount(row)
	return &account, nil
}

func (s *userService) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	const op = "user.get_account"

	row, err := s.store.GetAccountByID(ctx, pgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load account")
	}
	account := toDomainAccount(row)
	return &account, nil
}

func (s *userService) GetProfile(ctx context.Context, accountID uuid.UUID) (*domain.Profile, error) {
	const op = "user.get_profile"

	row, err := s.store.GetProfileByAccountID(ctx, pgUUID(accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load profile")
	}
	profile := toDomainProfile(row)
	return &profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, accountID uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error) {
	const op = "user.update_profile"

	row, err := s.store.UpdateProfile(ctx, repository.UpdateProfileParams{
		AccountID:          pgUUID(accountID),
		Phone:              pgTextPtr(update.Phone),
		CompanyName:        pgTextPtr(update.CompanyName),
		ShippingAddress:    pgTextPtr(update.ShippingAddress),
		ShippingCity:       pgTextPtr(update.ShippingCity),
		ShippingRegion:     pgTextPtr(update.ShippingRegion),
		ShippingPostalCode: pgTextPtr(update.ShippingPostalCode),
		ShippingCountry:    pgTextPtr(update.ShippingCountry),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to update profile")
	}

	profile := toDomainProfile(row)
	return &profile, nil
}

func (s *userService) ApplyForDistributor(ctx context.Context, params ApplyDistributorParams) (*domain.DistributorApplication, error) {
	const op = "user.apply_distributor"

	if params.CompanyName == "" {
		return nil, domain.Errorf(domain.EINVALID, op, "Company name is required")
	}

	if _, err := s.store.GetAccountByID(ctx, pgUUID(params.AccountID)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load account")
	}

	row, err := s.store.CreateDistributorApplication(ctx, repository.CreateDistributorApplicationParams{
		AccountID:   pgUUID(params.AccountID),
		CompanyName: params.CompanyName,
		TaxID:       pgText(params.TaxID),
		Message:     pgText(params.Message),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrApplicationPending
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to save application")
	}

	if s.metrics != nil {
		s.metrics.DistributorApplications.WithLabelValues(string(domain.ApplicationPending)).Inc()
	}

	app := toDomainApplication(row)
	return &app, nil
}

func (s *userService) ListPendingApplications(ctx context.Context) ([]domain.DistributorApplication, error) {
	const op = "user.list_pending_applications"

	rows, err := s.store.ListPendingDistributorApplications(ctx)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list applications")
	}

	apps := make([]domain.DistributorApplication, len(rows))
	for i, row := range rows {
		apps[i] = toDomainApplication(row)
	}
	return apps, nil
}

func (s *userService) ReviewApplication(ctx context.Context, applicationID uuid.UUID, approve bool, note string) (*domain.DistributorApplication, error) {
	const op = "user.review_application"

	var reviewed *domain.DistributorApplication

	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		row, err := q.GetDistributorApplication(ctx, pgUUID(applicationID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrApplicationNotFound
			}
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to load application")
		}
		if domain.ApplicationStatus(row.Status) != domain.ApplicationPending {
			return ErrApplicationReviewed
		}

		status := domain.ApplicationRejected
		if approve {
			status = domain.ApplicationApproved
		}

		newRow, err := q.UpdateDistributorApplicationStatus(ctx, repository.UpdateDistributorApplicationStatusParams{
			ID:         row.ID,
			Status:     string(status),
			ReviewNote: pgText(note),
		})
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to update application")
		}

		if approve {
			err := q.SetProfileKind(ctx, repository.SetProfileKindParams{
				AccountID: row.AccountID,
				Kind:      string(domain.CustomerKindWholesale),
			})
			if err != nil {
				return domain.WrapError(err, domain.EINTERNAL, op, "failed to update profile")
			}
		}

		title := fmt.Sprintf("Distributor application %s", status)
		_, err = q.CreateNotification(ctx, repository.CreateNotificationParams{
			AccountID: row.AccountID,
			Kind:      string(domain.NotificationSystem),
			Title:     title,
			Body:      pgText(note),
		})
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to save notification")
		}

		app := toDomainApplication(newRow)
		reviewed = &app
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DistributorApplications.WithLabelValues(string(reviewed.Status)).Inc()
	}
	s.logger.Info("distributor application reviewed", "application_id", reviewed.ID, "status", reviewed.Status)

	return reviewed, nil
}

func (s *userService) ListNotifications(ctx context.Context, accountID uuid.UUID) ([]domain.Notification, error) {
	const op = "user.list_notifications"

	rows, err := s.store.ListNotifications(ctx, pgUUID(accountID))
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list notifications")
	}

	notifications := make([]domain.Notification, len(rows))
	for i, row := range rows {
		notifications[i] = toDomainNotification(row)
	}
	return notifications, nil
}

func (s *userService) CountUnreadNotifications(ctx context.Context, accountID uuid.UUID) (int64, error) {
	const op = "user.count_unread_notifications"

	count, err := s.store.CountUnreadNotifications(ctx, pgUUID(accountID))
	if err != nil {
		return 0, domain.WrapError(err, domain.EINTERNAL, op, "failed to count notifications")
	}
	return count, nil
}

func (s *userService) MarkNotificationRead(ctx context.Context, accountID, notificationID uuid.UUID) error {
	const op = "user.mark_notification_read"

	affected, err := s.store.MarkNotificationRead(ctx, repository.MarkNotificationReadParams{
		ID:        pgUUID(notificationID),
		AccountID: pgUUID(accountID),
	})
	if err != nil {
		return domain.WrapError(err, domain.EINTERNAL, op, "failed to update notification")
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *userService) MarkAllNotificationsRead(ctx context.Context, accountID uuid.UUID) error {
	const op = "user.mark_all_notifications_read"

	if err := s.store.MarkAllNotificationsRead(ctx, pgUUID(accountID)); err != nil {
		return domain.WrapError(err, domain.EINTERNAL, op, "failed to update notifications")
	}
	return nil
}
