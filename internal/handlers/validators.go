package handlers

import (
	"sync"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the ledger enum tags (accounttype, transactiontype,
// paymentmethod) to gin's validator. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
			return domain.AccountType(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("transactiontype", func(fl validator.FieldLevel) bool {
			return domain.TransactionType(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
			return domain.PaymentMethod(fl.Field().String()).IsValid()
		})
	})
}
