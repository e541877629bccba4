package domain

import (
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
)

// AccountType identifies one account of the fixed chart of accounts.
type AccountType string

const (
	CashAsset          AccountType = "CASH_ASSET"
	BankAsset          AccountType = "BANK_ASSET"
	AccountsReceivable AccountType = "ACCOUNTS_RECEIVABLE"
	InventoryAsset     AccountType = "INVENTORY_ASSET"
	FixedAsset         AccountType = "FIXED_ASSET"

	AccountsPayable AccountType = "ACCOUNTS_PAYABLE"
	TaxPayable      AccountType = "TAX_PAYABLE"
	ShortTermDebt   AccountType = "SHORT_TERM_DEBT"
	LongTermDebt    AccountType = "LONG_TERM_DEBT"

	Capital          AccountType = "CAPITAL"
	RetainedEarnings AccountType = "RETAINED_EARNINGS"

	RentalRevenue AccountType = "RENTAL_REVENUE"
	OtherRevenue  AccountType = "OTHER_REVENUE"

	OperatingExpense      AccountType = "OPERATING_EXPENSE"
	MaintenanceExpense    AccountType = "MAINTENANCE_EXPENSE"
	AdministrativeExpense AccountType = "ADMINISTRATIVE_EXPENSE"
	TaxExpense            AccountType = "TAX_EXPENSE"
	FuelExpense           AccountType = "FUEL_EXPENSE"
	InsuranceExpense      AccountType = "INSURANCE_EXPENSE"
)

// AccountTypes lists every account type in chart order.
var AccountTypes = []AccountType{
	CashAsset, BankAsset, AccountsReceivable, InventoryAsset, FixedAsset,
	AccountsPayable, TaxPayable, ShortTermDebt, LongTermDebt,
	Capital, RetainedEarnings,
	RentalRevenue, OtherRevenue,
	OperatingExpense, MaintenanceExpense, AdministrativeExpense, TaxExpense, FuelExpense, InsuranceExpense,
}

// IsValid reports whether t is a member of the closed account type enumeration.
func (t AccountType) IsValid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AccountCategory is the fundamental accounting class of an account type.
type AccountCategory string

const (
	CategoryAsset     AccountCategory = "ASSET"
	CategoryLiability AccountCategory = "LIABILITY"
	CategoryEquity    AccountCategory = "EQUITY"
	CategoryRevenue   AccountCategory = "REVENUE"
	CategoryExpense   AccountCategory = "EXPENSE"
)

// AccountDefinition is one row of the chart of accounts.
type AccountDefinition struct {
	Type     AccountType     `json:"accountType"`
	Code     string          `json:"accountCode"`
	Name     string          `json:"accountName"`
	Category AccountCategory `json:"category"`
}

// ChartOfAccounts is an immutable lookup table from account type to its code,
// display name and category. Build it once at start-up and pass it around.
type ChartOfAccounts struct {
	byType map[AccountType]AccountDefinition
	order  map[AccountType]int
}

// NewChartOfAccounts validates the definitions and returns a chart. Every
// account type must be defined exactly once with a non-empty code and name.
func NewChartOfAccounts(defs ...AccountDefinition) (*ChartOfAccounts, error) {
	chart := &ChartOfAccounts{
		byType: make(map[AccountType]AccountDefinition, len(defs)),
		order:  make(map[AccountType]int, len(AccountTypes)),
	}
	for i, t := range AccountTypes {
		chart.order[t] = i
	}

	codes := make(map[string]AccountType, len(defs))
	for _, def := range defs {
		if !def.Type.IsValid() {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownAccountType, def.Type)
		}
		if _, dup := chart.byType[def.Type]; dup {
			return nil, fmt.Errorf("%w: account type %s defined twice", apperrors.ErrValidation, def.Type)
		}
		if def.Code == "" || def.Name == "" {
			return nil, fmt.Errorf("%w: account type %s needs a code and a name", apperrors.ErrValidation, def.Type)
		}
		if other, taken := codes[def.Code]; taken {
			return nil, fmt.Errorf("%w: account code %s used by %s and %s", apperrors.ErrValidation, def.Code, other, def.Type)
		}
		switch def.Category {
		case CategoryAsset, CategoryLiability, CategoryEquity, CategoryRevenue, CategoryExpense:
		default:
			return nil, fmt.Errorf("%w: account type %s has invalid category %q", apperrors.ErrValidation, def.Type, def.Category)
		}
		codes[def.Code] = def.Type
		chart.byType[def.Type] = def
	}

	for _, t := range AccountTypes {
		if _, ok := chart.byType[t]; !ok {
			return nil, fmt.Errorf("%w: account type %s missing from chart", apperrors.ErrValidation, t)
		}
	}
	return chart, nil
}

// DefaultAccountDefinitions returns the built-in chart rows. Codes follow the
// uniform chart used by the rental business.
func DefaultAccountDefinitions() []AccountDefinition {
	return []AccountDefinition{
		{Type: CashAsset, Code: "100", Name: "Cash", Category: CategoryAsset},
		{Type: BankAsset, Code: "102", Name: "Bank Accounts", Category: CategoryAsset},
		{Type: AccountsReceivable, Code: "120", Name: "Accounts Receivable", Category: CategoryAsset},
		{Type: InventoryAsset, Code: "153", Name: "Inventory", Category: CategoryAsset},
		{Type: FixedAsset, Code: "254", Name: "Vehicles and Fixed Assets", Category: CategoryAsset},
		{Type: ShortTermDebt, Code: "300", Name: "Short-Term Bank Loans", Category: CategoryLiability},
		{Type: AccountsPayable, Code: "320", Name: "Accounts Payable", Category: CategoryLiability},
		{Type: TaxPayable, Code: "360", Name: "Taxes Payable", Category: CategoryLiability},
		{Type: LongTermDebt, Code: "400", Name: "Long-Term Bank Loans", Category: CategoryLiability},
		{Type: Capital, Code: "500", Name: "Capital", Category: CategoryEquity},
		{Type: RetainedEarnings, Code: "570", Name: "Retained Earnings", Category: CategoryEquity},
		{Type: RentalRevenue, Code: "600", Name: "Rental Revenue", Category: CategoryRevenue},
		{Type: OtherRevenue, Code: "649", Name: "Other Revenue", Category: CategoryRevenue},
		{Type: TaxExpense, Code: "691", Name: "Tax Expense", Category: CategoryExpense},
		{Type: OperatingExpense, Code: "740", Name: "Operating Expense", Category: CategoryExpense},
		{Type: MaintenanceExpense, Code: "741", Name: "Maintenance Expense", Category: CategoryExpense},
		{Type: FuelExpense, Code: "742", Name: "Fuel Expense", Category: CategoryExpense},
		{Type: InsuranceExpense, Code: "743", Name: "Insurance Expense", Category: CategoryExpense},
		{Type: AdministrativeExpense, Code: "770", Name: "Administrative Expense", Category: CategoryExpense},
	}
}

// DefaultChartOfAccounts returns the built-in chart. It panics if the
// built-in table is inconsistent, which only a code change can cause.
func DefaultChartOfAccounts() *ChartOfAccounts {
	chart, err := NewChartOfAccounts(DefaultAccountDefinitions()...)
	if err != nil {
		panic(fmt.Sprintf("domain: invalid default chart of accounts: %v", err))
	}
	return chart
}

// Lookup returns the definition for t or ErrUnknownAccountType.
func (c *ChartOfAccounts) Lookup(t AccountType) (AccountDefinition, error) {
	def, ok := c.byType[t]
	if !ok {
		return AccountDefinition{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownAccountType, t)
	}
	return def, nil
}

// MustLookup is Lookup for callers that already validated t.
func (c *ChartOfAccounts) MustLookup(t AccountType) AccountDefinition {
	def, err := c.Lookup(t)
	if err != nil {
		panic(err)
	}
	return def
}

// Types returns every account type in chart order.
func (c *ChartOfAccounts) Types() []AccountType {
	types := make([]AccountType, len(AccountTypes))
	copy(types, AccountTypes)
	return types
}

// Definitions returns every account in chart order.
func (c *ChartOfAccounts) Definitions() []AccountDefinition {
	defs := make([]AccountDefinition, 0, len(AccountTypes))
	for _, t := range AccountTypes {
		defs = append(defs, c.byType[t])
	}
	return defs
}

// ByCategory returns the account types of one category in chart order.
func (c *ChartOfAccounts) ByCategory(category AccountCategory) []AccountType {
	var types []AccountType
	for _, t := range AccountTypes {
		if c.byType[t].Category == category {
			types = append(types, t)
		}
	}
	return types
}

// Less orders account types by chart position, then by account code.
func (c *ChartOfAccounts) Less(a, b AccountType) bool {
	if c.order[a] != c.order[b] {
		return c.order[a] < c.order[b]
	}
	return c.byType[a].Code < c.byType[b].Code
}
