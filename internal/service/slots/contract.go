//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=slots_test
package slots

import (
	"context"

	"onboarding/internal/entities"
)

type VendorRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Vendor, error)
}

type BookingRepository interface {
	// CountInstallationBookings возвращает число райдеров со Scheduled/Completed установкой
	// у вендора на дату, сгруппированное по началу слота (HH:MM).
	CountInstallationBookings(ctx context.Context, vendorID int64, date string) (map[string]int, error)
}
