// Package chart loads the chart of accounts, applying optional YAML overrides
// of account codes and display names on top of the built-in table.
package chart

import (
	"fmt"
	"os"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Override replaces the code and/or name of one account type. Categories are fixed.
type Override struct {
	Type string `yaml:"type"`
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type file struct {
	Accounts []Override `yaml:"accounts"`
}

// Load returns the default chart when path is empty, otherwise the defaults
// merged with the overrides found in the YAML file at path.
func Load(path string) (*domain.ChartOfAccounts, error) {
	if path == "" {
		return domain.DefaultChartOfAccounts(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart of accounts file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse applies the YAML overrides in raw to the default chart.
func Parse(raw []byte) (*domain.ChartOfAccounts, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: invalid chart of accounts yaml: %v", apperrors.ErrValidation, err)
	}

	defs := domain.DefaultAccountDefinitions()
	index := make(map[domain.AccountType]int, len(defs))
	for i, def := range defs {
		index[def.Type] = i
	}

	seen := make(map[domain.AccountType]bool, len(f.Accounts))
	for _, o := range f.Accounts {
		accountType := domain.AccountType(o.Type)
		i, ok := index[accountType]
		if !ok {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownAccountType, o.Type)
		}
		if seen[accountType] {
			return nil, fmt.Errorf("%w: account type %s overridden twice", apperrors.ErrValidation, accountType)
		}
		seen[accountType] = true

		if o.Code != "" {
			defs[i].Code = o.Code
		}
		if o.Name != "" {
			defs[i].Name = o.Name
		}
	}

	return domain.NewChartOfAccounts(defs...)
}
