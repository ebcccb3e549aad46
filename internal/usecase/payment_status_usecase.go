package usecase

import (
	"context"
	"errors"
	"strings"

	"pix_server/internal/domain/entities"
	"pix_server/internal/usecase/interfaces"
)

var ErrInvalidTxID = errors.New("invalid txid")

type IPaymentStatusUseCase interface {
	GetStatus(ctx context.Context, txid string) (entities.PaymentRecord, error)
}

type PaymentStatusUseCase struct {
	repo interfaces.IPaymentStatusRepository
}

var _ IPaymentStatusUseCase = (*PaymentStatusUseCase)(nil)

func NewPaymentStatusUseCase(repo interfaces.IPaymentStatusRepository) *PaymentStatusUseCase {
	return &PaymentStatusUseCase{repo: repo}
}

// GetStatus never reports "not found": unknown ids are pending.
func (u *PaymentStatusUseCase) GetStatus(ctx context.Context, txid string) (entities.PaymentRecord, error) {
	txid = strings.TrimSpace(txid)
	if txid == "" {
		return entities.PaymentRecord{}, ErrInvalidTxID
	}
	rec, err := u.repo.Get(ctx, txid)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if rec.Status == "" {
		rec.Status = entities.PaymentStatusPending
	}
	rec.TxID = txid
	return rec, nil
}
