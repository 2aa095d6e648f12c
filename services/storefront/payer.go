package storefront

import (
	"context"
	"fmt"
	"time"

	"github.com/MarcGrol/cakeshop/lib/myerrors"
	"github.com/MarcGrol/cakeshop/lib/myuuid"
)

type PaymentRequest struct {
	AmountInCents int64
	Currency      string
	Email         string
	Billing       BillingInfo
}

//go:generate mockgen -source=payer.go -package storefront -destination payer_mock.go Payer
type Payer interface {
	Pay(c context.Context, req PaymentRequest) (string, error)
}

// simulatedPayer approves every payment after a fixed delay
type simulatedPayer struct {
	delay  time.Duration
	uuider myuuid.UUIDer
}

func NewSimulatedPayer(delay time.Duration, uuider myuuid.UUIDer) Payer {
	return &simulatedPayer{
		delay:  delay,
		uuider: uuider,
	}
}

func (p *simulatedPayer) Pay(c context.Context, req PaymentRequest) (string, error) {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-c.Done():
		return "", myerrors.NewPaymentError(fmt.Errorf("payment interrupted: %w", c.Err()))
	case <-timer.C:
	}

	return "ord_" + myuuid.Compact(p.uuider), nil
}
