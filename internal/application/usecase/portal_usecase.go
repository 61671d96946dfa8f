package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Portal-api/internal/application/dto"
	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/internal/domain/repository"
	"github.com/jhoicas/Portal-api/internal/domain/session"
)

// notificationPageSize tope de la bandeja, igual que el portal original.
const notificationPageSize = 50

// NotificationUseCase bandeja de notificaciones del usuario.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso de notificaciones.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List últimas notificaciones de la sesión en su empresa activa.
func (uc *NotificationUseCase) List(ctx context.Context, sess session.Context) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListForUser(ctx, sess.UserID, sess.CompanyID, notificationPageSize)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Subject:   n.Subject,
			Message:   n.Message,
			IsRead:    n.IsRead,
			FromUser:  n.FromUser,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead marca una notificación como leída. ErrNotFound cuando no existe o
// no está dirigida al usuario de la sesión.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, sess session.Context, notificationID int64) error {
	updated, err := uc.repo.MarkRead(ctx, notificationID, sess.UserID)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrNotFound
	}
	return nil
}

// DirectoryUseCase directorio de contactos de la empresa activa.
type DirectoryUseCase struct {
	repo repository.ContactRepository
}

// NewDirectoryUseCase construye el caso de uso del directorio.
func NewDirectoryUseCase(repo repository.ContactRepository) *DirectoryUseCase {
	return &DirectoryUseCase{repo: repo}
}

// List contactos de la empresa activa, orden ascendente por nombre.
func (uc *DirectoryUseCase) List(ctx context.Context, sess session.Context) ([]dto.ContactResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, sess.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ContactResponse{
			Name:    c.Name,
			Mobile:  c.Mobile,
			Email:   c.Email,
			Address: c.Address,
			Remark:  c.Remark,
		})
	}
	return out, nil
}

// ThemeUseCase preferencias de tema de interfaz.
type ThemeUseCase struct {
	repo repository.ThemeRepository
}

// NewThemeUseCase construye el caso de uso de temas.
func NewThemeUseCase(repo repository.ThemeRepository) *ThemeUseCase {
	return &ThemeUseCase{repo: repo}
}

// Current tema del usuario o el default del sistema. ErrNotFound cuando no
// hay ni preferencia ni tema default configurado.
func (uc *ThemeUseCase) Current(ctx context.Context, userID int64) (*dto.ThemeResponse, error) {
	theme, err := uc.repo.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ThemeResponse{
		NavbarBg:        theme.NavbarBg,
		SidebarBg:       theme.SidebarBg,
		ModuleBg:        theme.ModuleBg,
		FooterBg:        theme.FooterBg,
		MenuSubmenuBg:   theme.MenuSubmenuBg,
		CurrentModuleBg: theme.CurrentModuleBg,
		MtrsColor:       theme.MtrsColor,
		NavbarFontColor: theme.NavbarFontColor,
		MenuHeaderBg:    theme.MenuHeaderBg,
	}, nil
}

// List temas disponibles para el selector.
func (uc *ThemeUseCase) List(ctx context.Context) ([]dto.ThemeListItem, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ThemeListItem, 0, len(list))
	for _, t := range list {
		out = append(out, dto.ThemeListItem{ID: t.ID, Name: t.Name, NavbarBg: t.NavbarBg})
	}
	return out, nil
}

// Select guarda la preferencia de tema del usuario (upsert).
func (uc *ThemeUseCase) Select(ctx context.Context, userID, themeID int64) error {
	return uc.repo.SaveUserTheme(ctx, userID, themeID)
}

// SubscriptionUseCase estado de la suscripción del portal.
type SubscriptionUseCase struct {
	repo repository.SubscriptionRepository
	now  func() time.Time
}

// NewSubscriptionUseCase construye el caso de uso de suscripción.
func NewSubscriptionUseCase(repo repository.SubscriptionRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo, now: time.Now}
}

// Check vencimiento del último período. Sin períodos cargados cuenta como
// vencida, igual que el portal original.
func (uc *SubscriptionUseCase) Check(ctx context.Context) (*dto.SubscriptionResponse, error) {
	endsAt, found, err := uc.repo.LatestPeriodEnd(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return &dto.SubscriptionResponse{IsExpired: true}, nil
	}
	return &dto.SubscriptionResponse{IsExpired: endsAt.Before(uc.now())}, nil
}
