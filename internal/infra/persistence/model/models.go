// Package model holds the GORM persistence models.
package model

// All lists every model managed by migrations.
func All() []any {
	return []any{
		&AccountModel{},
		&ProviderLinkModel{},
		&LockoutModel{},
	}
}
