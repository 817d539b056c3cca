// Package validator provides the validation engine for service parameters,
// including custom validations for the ledger's enumerated fields.
package validator

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// validCurrencies contains ISO 4217 currency codes.
var validCurrencies = func() map[string]struct{} {
	codes := strings.Fields(`
		AED AFN ALL AMD ANG AOA ARS AUD AWG AZN BAM BBD BDT BGN BHD BIF
		BMD BND BOB BRL BSD BTN BWP BYN BZD CAD CDF CHF CLP CNY COP CRC
		CUP CVE CZK DJF DKK DOP DZD EGP ERN ETB EUR FJD FKP GBP GEL GHS
		GIP GMD GNF GTQ GYD HKD HNL HRK HTG HUF IDR ILS INR IQD IRR ISK
		JMD JOD JPY KES KGS KHR KMF KPW KRW KWD KYD KZT LAK LBP LKR LRD
		LSL LYD MAD MDL MGA MKD MMK MNT MOP MRU MUR MVR MWK MXN MYR MZN
		NAD NGN NIO NOK NPR NZD OMR PAB PEN PGK PHP PKR PLN PYG QAR RON
		RSD RUB RWF SAR SBD SCR SDG SEK SGD SHP SLE SOS SRD SSP STN SVC
		SYP SZL THB TJS TMT TND TOP TRY TTD TWD TZS UAH UGX USD UYU UZS
		VES VND VUV WST XAF XCD XOF XPF YER ZAR ZMW ZWL`)
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}()

// Get returns the shared validation engine with all custom validators
// registered.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("iso4217", validateISO4217)
		_ = validate.RegisterValidation("account_type", validateAccountType)
		_ = validate.RegisterValidation("tx_type", validateTransactionType)
		_ = validate.RegisterValidation("category_direction", validateCategoryDirection)
		_ = validate.RegisterValidation("recurrence_frequency", validateRecurrenceFrequency)
		_ = validate.RegisterValidation("transfer_type", validateTransferType)
	})
	return validate
}

// Struct validates a tagged parameter struct.
func Struct(s interface{}) error {
	return Get().Struct(s)
}

func validateISO4217(fl validator.FieldLevel) bool {
	_, ok := validCurrencies[fl.Field().String()]
	return ok
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cash", "debit", "credit", "savings", "investment":
		return true
	}
	return false
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateCategoryDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense", "both":
		return true
	}
	return false
}

func validateRecurrenceFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "daily", "weekly", "monthly", "yearly":
		return true
	}
	return false
}

func validateTransferType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "regular", "credit_payment":
		return true
	}
	return false
}
