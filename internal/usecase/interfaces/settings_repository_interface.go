package interfaces

import "context"

// ISettingsRepository abstracts the key/value configuration store. The
// quotation flow only reads keys by prefix (depreciation overrides);
// maintenance of the settings themselves is out of scope.
type ISettingsRepository interface {
	GetByPrefix(ctx context.Context, prefix string) (map[string]string, error)
}
