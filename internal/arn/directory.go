package arn

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cloudsweep/internal/ports"
)

// AccountDirectory maps account ids to the credential profile that reaches
// them. It is built once from the profile store and read-only afterwards; a
// changed profile directory is only picked up by building a new one.
type AccountDirectory struct {
	profiles map[string]string
}

// NewAccountDirectory scans every available profile and records those whose
// scoped configuration carries an account_id.
func NewAccountDirectory(store ports.ProfileStorePort) (*AccountDirectory, error) {
	names, err := store.Profiles()
	if err != nil {
		return nil, err
	}
	dir := &AccountDirectory{profiles: map[string]string{}}
	for _, name := range names {
		cfg, err := store.Config(name)
		if err != nil {
			return nil, err
		}
		if cfg.AccountID != "" {
			dir.profiles[cfg.AccountID] = name
		}
	}
	return dir, nil
}

// Accounts returns the known account ids in sorted order.
func (d *AccountDirectory) Accounts() []string {
	accounts := make([]string, 0, len(d.profiles))
	for account := range d.profiles {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	return accounts
}

// Resolve maps an account id to its profile name.
func (d *AccountDirectory) Resolve(accountID string) (string, error) {
	profile, ok := d.profiles[accountID]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no profile maps account %s", accountID))
	}
	return profile, nil
}
