package storefront

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarcGrol/cakeshop/lib/myerrors"
	"github.com/MarcGrol/cakeshop/lib/myevents"
	"github.com/MarcGrol/cakeshop/lib/mylog"
	"github.com/MarcGrol/cakeshop/services/storefront/storefrontevents"
)

// beginCheckout enters checkout. Without an identity the auth dialog is opened instead.
func (s *service) beginCheckout(c context.Context, visitorUID string) (Snapshot, error) {
	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		if !v.session.IsAuthenticated() {
			s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Checkout requires authentication")

			v.view.AuthOpen = true
			return []myevents.Event{storefrontevents.AuthRequired{
				VisitorUID: visitorUID,
			}}, nil
		}

		s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Begin checkout of %d items", v.cart.Count())

		v.view.Page = PageCheckout
		v.view.CartOpen = false
		v.attempt++

		return []myevents.Event{storefrontevents.CheckoutStarted{
			VisitorUID:    visitorUID,
			AmountInCents: v.cart.Total(),
			Currency:      s.currency.String(),
		}}, nil
	})
}

func (s *service) leaveCheckout(c context.Context, visitorUID string) (Snapshot, error) {
	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		if v.view.Page != PageCheckout {
			return nil, nil
		}

		s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Leave checkout")

		v.view.Page = PageBrowsing
		v.attempt++

		return []myevents.Event{storefrontevents.CheckoutCancelled{
			VisitorUID: visitorUID,
		}}, nil
	})
}

func validatePayment(shipping ShippingInfo, billing BillingInfo) error {
	missing := missingFields(
		field{"address", shipping.Address},
		field{"city", shipping.City},
		field{"zip", shipping.Zip},
		field{"nameOnCard", billing.NameOnCard},
		field{"cardNumber", billing.CardNumber},
		field{"exp", billing.Exp},
		field{"cvc", billing.CVC},
	)
	if len(missing) > 0 {
		return myerrors.NewValidationErrorf("%s required", strings.Join(missing, ", "))
	}
	return nil
}

func last4(cardNumber string) string {
	runes := []rune(cardNumber)
	if len(runes) < 4 {
		return ""
	}
	return string(runes[len(runes)-4:])
}

type checkoutAttempt struct {
	attempt       int
	cartRevision  int
	amountInCents int64
	email         string
}

// pay charges the cart total of the active checkout. The payer runs without the visitor lock;
// its outcome is only applied when the checkout it was started for is still the active one.
func (s *service) pay(c context.Context, visitorUID string, shipping ShippingInfo, billing BillingInfo) (Receipt, error) {
	err := validateVisitor(visitorUID)
	if err != nil {
		return Receipt{}, err
	}

	err = validatePayment(shipping, billing)
	if err != nil {
		return Receipt{}, err
	}

	v, started, err := s.startPayment(c, visitorUID)
	if err != nil {
		return Receipt{}, err
	}
	defer s.endPayment(v)

	s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Start payment of %s", NewMoney(started.amountInCents, s.currency))

	orderUID, err := s.payer.Pay(c, PaymentRequest{
		AmountInCents: started.amountInCents,
		Currency:      s.currency.String(),
		Email:         started.email,
		Billing:       billing,
	})
	if err != nil {
		s.logger.Log(c, visitorUID, mylog.SeverityWarn, "Payment failed: %s", err)
		if myerrors.IsPaymentError(err) {
			return Receipt{}, err
		}
		return Receipt{}, myerrors.NewPaymentError(err)
	}

	receipt := Receipt{
		UID:             orderUID,
		AmountInCents:   started.amountInCents,
		FormattedAmount: NewMoney(started.amountInCents, s.currency).String(),
		Email:           started.email,
		Shipping:        shipping,
		BilledTo:        billing.NameOnCard,
		Last4:           last4(billing.CardNumber),
	}

	err = s.completePayment(c, v, started)
	if err != nil {
		s.logger.Log(c, visitorUID, mylog.SeverityWarn, "Discard result of payment %s: %s", orderUID, err)
		return Receipt{}, err
	}

	s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Payment %s completed", orderUID)

	s.publish(c, visitorUID, storefrontevents.PaymentCompleted{
		VisitorUID:    visitorUID,
		OrderUID:      receipt.UID,
		AmountInCents: receipt.AmountInCents,
		Currency:      s.currency.String(),
		Email:         receipt.Email,
		Last4:         receipt.Last4,
	})

	return receipt, nil
}

func (s *service) startPayment(c context.Context, visitorUID string) (*visitorState, checkoutAttempt, error) {
	v := s.lockVisitor(c, visitorUID)
	defer v.Unlock()

	identity, authenticated := v.session.Identity()
	if !authenticated {
		return nil, checkoutAttempt{}, myerrors.NewAuthenticationError(fmt.Errorf("login required before payment"))
	}
	if v.view.Page != PageCheckout {
		return nil, checkoutAttempt{}, myerrors.NewPaymentError(fmt.Errorf("no checkout in progress"))
	}

	v.payments++

	return v, checkoutAttempt{
		attempt:       v.attempt,
		cartRevision:  v.cartRevision,
		amountInCents: v.cart.Total(),
		email:         identity.Email,
	}, nil
}

func (s *service) endPayment(v *visitorState) {
	v.Lock()
	defer v.Unlock()

	v.payments--
}

func (s *service) completePayment(c context.Context, v *visitorState, started checkoutAttempt) error {
	v.Lock()
	defer v.Unlock()

	if v.attempt != started.attempt || v.cartRevision != started.cartRevision || v.view.Page != PageCheckout {
		return myerrors.NewPaymentError(fmt.Errorf("checkout attempt superseded"))
	}

	v.cart.Clear()
	v.cartChanged(c)
	v.view.Page = PageBrowsing
	v.attempt++

	return nil
}
