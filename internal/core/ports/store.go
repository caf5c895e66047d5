package ports

import "go.trai.ch/anvil/internal/core/domain"

// ReceiptStore persists build receipts.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReceiptStore interface {
	// Put stores the receipt of a successful build run.
	Put(receipt domain.BuildReceipt) error
}
