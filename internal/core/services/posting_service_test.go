package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PostingServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockLedgerRepository
	mockDocuments *MockDocumentNumbers
	mockPublisher *MockEventPublisher
	service       portssvc.PostingSvc
	ctx           context.Context
	now           time.Time
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.mockDocuments = new(MockDocumentNumbers)
	suite.mockPublisher = new(MockEventPublisher)
	suite.ctx = context.Background()
	suite.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	suite.service = services.NewPostingService(
		domain.DefaultChartOfAccounts(),
		suite.mockRepo,
		services.WithDocumentNumberGenerator(suite.mockDocuments),
		services.WithEventPublisher(suite.mockPublisher),
		services.WithPostingClock(func() time.Time { return suite.now }),
	)
}

func (suite *PostingServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockDocuments.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}

func revenuePosting(amount string) domain.PostingRequest {
	return domain.PostingRequest{
		TransactionType: domain.TransactionRevenue,
		DebitAccount:    domain.CashAsset,
		CreditAccount:   domain.RentalRevenue,
		Amount:          decimal.RequireFromString(amount),
		Description:     "Weekend rental",
	}
}

func (suite *PostingServiceTestSuite) TestPost_Success() {
	suite.mockDocuments.On("NextDocumentNumber", suite.ctx).Return("JE-0000000042", nil).Once()

	var savedDebit, savedCredit domain.LedgerEntry
	suite.mockRepo.On("SaveJournalEntry", suite.ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedDebit = args.Get(1).(domain.LedgerEntry)
			savedCredit = args.Get(2).(domain.LedgerEntry)
		}).Return(nil).Once()
	suite.mockPublisher.On("PublishJournalPosted", suite.ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.Post(suite.ctx, revenuePosting("100.00"))

	suite.Require().NoError(err)
	suite.Equal("JE-0000000042", entry.DocumentNumber)
	suite.True(entry.IsBalanced())

	suite.Equal(domain.CashAsset, savedDebit.AccountType)
	suite.Equal("100", savedDebit.AccountCode)
	suite.Equal("Cash", savedDebit.AccountName)
	suite.True(savedDebit.DebitAmount.Equal(decimal.NewFromInt(100)))
	suite.True(savedDebit.CreditAmount.IsZero())

	suite.Equal(domain.RentalRevenue, savedCredit.AccountType)
	suite.Equal("600", savedCredit.AccountCode)
	suite.True(savedCredit.CreditAmount.Equal(decimal.NewFromInt(100)))
	suite.True(savedCredit.DebitAmount.IsZero())

	suite.NotEqual(savedDebit.EntryID, savedCredit.EntryID)
	suite.Equal(savedDebit.DocumentNumber, savedCredit.DocumentNumber)
	suite.Equal(suite.now, savedDebit.TransactionDate)
	suite.Equal(suite.now, savedCredit.TransactionDate)
	suite.False(savedDebit.Reconciled)
}

func (suite *PostingServiceTestSuite) TestPost_RoundsToTwoDecimals() {
	suite.mockDocuments.On("NextDocumentNumber", suite.ctx).Return("JE-1", nil).Once()
	suite.mockRepo.On("SaveJournalEntry", suite.ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPublisher.On("PublishJournalPosted", suite.ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.Post(suite.ctx, revenuePosting("10.005"))

	suite.Require().NoError(err)
	suite.Equal("10.01", entry.Debit.DebitAmount.StringFixed(2))
}

func (suite *PostingServiceTestSuite) TestPost_UsesGivenTransactionDate() {
	at := time.Date(2023, 12, 31, 23, 0, 0, 0, time.FixedZone("CET", 3600))
	req := revenuePosting("5")
	req.TransactionDate = &at

	suite.mockDocuments.On("NextDocumentNumber", suite.ctx).Return("JE-2", nil).Once()
	suite.mockRepo.On("SaveJournalEntry", suite.ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPublisher.On("PublishJournalPosted", suite.ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.Post(suite.ctx, req)

	suite.Require().NoError(err)
	suite.True(at.Equal(entry.Debit.TransactionDate))
	suite.Equal(time.UTC, entry.Debit.TransactionDate.Location())
	suite.Equal(suite.now, entry.Debit.CreatedAt)
}

func (suite *PostingServiceTestSuite) TestPost_ValidationFailures() {
	tests := []struct {
		name   string
		mutate func(*domain.PostingRequest)
		want   error
	}{
		{"unknown transaction type", func(r *domain.PostingRequest) { r.TransactionType = "GIFT" }, apperrors.ErrValidation},
		{"unknown debit account", func(r *domain.PostingRequest) { r.DebitAccount = "PETTY_CASH" }, apperrors.ErrUnknownAccountType},
		{"unknown credit account", func(r *domain.PostingRequest) { r.CreditAccount = "" }, apperrors.ErrUnknownAccountType},
		{"zero amount", func(r *domain.PostingRequest) { r.Amount = decimal.Zero }, apperrors.ErrInvalidAmount},
		{"negative amount", func(r *domain.PostingRequest) { r.Amount = decimal.NewFromInt(-100) }, apperrors.ErrInvalidAmount},
		{"rounds to zero", func(r *domain.PostingRequest) { r.Amount = decimal.RequireFromString("0.004") }, apperrors.ErrInvalidAmount},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := revenuePosting("100")
			tt.mutate(&req)

			entry, err := suite.service.Post(suite.ctx, req)

			suite.Nil(entry)
			suite.ErrorIs(err, tt.want)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPost_SameDebitAndCreditAllowed() {
	req := revenuePosting("1")
	req.CreditAccount = domain.CashAsset

	suite.mockDocuments.On("NextDocumentNumber", suite.ctx).Return("JE-3", nil).Once()
	suite.mockRepo.On("SaveJournalEntry", suite.ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPublisher.On("PublishJournalPosted", suite.ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.Post(suite.ctx, req)
	suite.NoError(err)
}

func (suite *PostingServiceTestSuite) TestPost_DocumentNumberFailure() {
	suite.mockDocuments.On("NextDocumentNumber", suite.ctx).Return("", errors.New("redis down")).Once()

	_, err := suite.service.Post(suite.ctx, revenuePosting("100"))

	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPost_SaveFailureIsPersistenceError() {
	suite.mockDocuments.On("NextDocumentNumber", suite.ctx).Return("JE-4", nil).Once()
	suite.mockRepo.On("SaveJournalEntry", suite.ctx, mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	entry, err := suite.service.Post(suite.ctx, revenuePosting("100"))

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishJournalPosted", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPost_PublishFailureIsNotReturned() {
	suite.mockDocuments.On("NextDocumentNumber", suite.ctx).Return("JE-5", nil).Once()
	suite.mockRepo.On("SaveJournalEntry", suite.ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPublisher.On("PublishJournalPosted", suite.ctx, mock.Anything).Return(errors.New("broker gone")).Once()

	entry, err := suite.service.Post(suite.ctx, revenuePosting("100"))

	suite.NoError(err)
	suite.NotNil(entry)
}

func TestPost_DefaultDocumentNumbersAreUnique(t *testing.T) {
	repo := new(MockLedgerRepository)
	repo.On("SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	svc := services.NewPostingService(domain.DefaultChartOfAccounts(), repo)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		entry, err := svc.Post(context.Background(), revenuePosting("1"))
		assert.NoError(t, err)
		assert.Regexp(t, `^JE-`, entry.DocumentNumber)
		assert.False(t, seen[entry.DocumentNumber])
		seen[entry.DocumentNumber] = true
	}
}
