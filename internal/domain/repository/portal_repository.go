package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Portal-api/internal/domain/entity"
)

// NotificationRepository bandeja de notificaciones internas.
type NotificationRepository interface {
	// ListForUser últimas notificaciones del usuario en la empresa activa.
	ListForUser(ctx context.Context, userID, companyID int64, limit int) ([]*entity.Notification, error)
	// MarkRead marca como leída; updated=false si no existe o no es del usuario.
	MarkRead(ctx context.Context, id, userID int64) (updated bool, err error)
}

// ContactRepository directorio de contactos por empresa (solo lectura).
type ContactRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Contact, error)
}

// ThemeRepository preferencias de tema de interfaz.
type ThemeRepository interface {
	// ForUser tema elegido por el usuario o el default; (nil, nil) si no hay
	// ni preferencia ni default configurado.
	ForUser(ctx context.Context, userID int64) (*entity.Theme, error)
	List(ctx context.Context) ([]*entity.Theme, error)
	// SaveUserTheme upsert de la preferencia del usuario.
	SaveUserTheme(ctx context.Context, userID, themeID int64) error
}

// SubscriptionRepository fecha de fin del período de suscripción vigente.
type SubscriptionRepository interface {
	// LatestPeriodEnd found=false cuando no hay períodos cargados.
	LatestPeriodEnd(ctx context.Context) (endsAt time.Time, found bool, err error)
}
