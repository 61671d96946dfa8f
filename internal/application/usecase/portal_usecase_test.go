package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/session"
)

type fakeSubscriptionRepo struct {
	endsAt time.Time
	found  bool
}

func (f *fakeSubscriptionRepo) LatestPeriodEnd(context.Context) (time.Time, bool, error) {
	return f.endsAt, f.found, nil
}

type fakeNotificationRepo struct {
	list     []*entity.Notification
	gotLimit int
	updated  bool
}

func (f *fakeNotificationRepo) ListForUser(_ context.Context, _, _ int64, limit int) ([]*entity.Notification, error) {
	f.gotLimit = limit
	return f.list, nil
}

func (f *fakeNotificationRepo) MarkRead(context.Context, int64, int64) (bool, error) {
	return f.updated, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// SubscriptionUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckSubscription_PeriodoVigente(t *testing.T) {
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := &SubscriptionUseCase{
		repo: &fakeSubscriptionRepo{endsAt: frozen.AddDate(0, 1, 0), found: true},
		now:  func() time.Time { return frozen },
	}

	out, err := uc.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, out.IsExpired)
}

func TestCheckSubscription_PeriodoVencido(t *testing.T) {
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := &SubscriptionUseCase{
		repo: &fakeSubscriptionRepo{endsAt: frozen.AddDate(0, 0, -1), found: true},
		now:  func() time.Time { return frozen },
	}

	out, err := uc.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, out.IsExpired)
}

// Sin períodos cargados la suscripción cuenta como vencida.
func TestCheckSubscription_SinPeriodos_CuentaComoVencida(t *testing.T) {
	uc := &SubscriptionUseCase{
		repo: &fakeSubscriptionRepo{found: false},
		now:  time.Now,
	}

	out, err := uc.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, out.IsExpired)
}

// ──────────────────────────────────────────────────────────────────────────────
// NotificationUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestListNotifications_AplicaTopeDeBandeja(t *testing.T) {
	repo := &fakeNotificationRepo{list: []*entity.Notification{
		{ID: 2, Subject: "Cierre", FromUser: "Sistema"},
	}}
	uc := NewNotificationUseCase(repo)

	sess := session.Context{UserID: 10, CompanyID: 7}
	out, err := uc.List(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, notificationPageSize, repo.gotLimit)
	assert.Equal(t, "Sistema", out[0].FromUser)
}

func TestMarkNotificationRead_AjenaONoExistente(t *testing.T) {
	uc := NewNotificationUseCase(&fakeNotificationRepo{updated: false})

	sess := session.Context{UserID: 10, CompanyID: 7}
	err := uc.MarkRead(context.Background(), sess, 55)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkNotificationRead_OK(t *testing.T) {
	uc := NewNotificationUseCase(&fakeNotificationRepo{updated: true})

	sess := session.Context{UserID: 10, CompanyID: 7}
	assert.NoError(t, uc.MarkRead(context.Background(), sess, 55))
}
