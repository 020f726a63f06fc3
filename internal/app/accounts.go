package app

import (
	"context"

	"cloudsweep/internal/arn"
)

type AccountEntry struct {
	Account string
	Profile string
}

// Accounts builds a fresh account directory from the profile store and
// returns its entries sorted by account id.
func (s Service) Accounts(ctx context.Context) ([]AccountEntry, error) {
	directory, err := arn.NewAccountDirectory(s.Profiles)
	if err != nil {
		return nil, err
	}
	entries := make([]AccountEntry, 0)
	for _, account := range directory.Accounts() {
		profile, err := directory.Resolve(account)
		if err != nil {
			return nil, err
		}
		entries = append(entries, AccountEntry{Account: account, Profile: profile})
	}
	return entries, nil
}
