package bank

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrBeneficiaryNotFound = errors.New("beneficiary not found")
	ErrBillNotFound        = errors.New("bill not found")
	ErrTransferNotFound    = errors.New("transfer not found or already processed")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
