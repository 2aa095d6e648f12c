package storefront

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/cakeshop/lib/myerrors"
	"github.com/MarcGrol/cakeshop/lib/myuuid"
)

func TestSimulatedPayer(t *testing.T) {
	t.Run("Approved after delay", func(t *testing.T) {
		// given
		ctrl := gomock.NewController(t)
		uuider := myuuid.NewMockUUIDer(ctrl)
		uuider.EXPECT().Create().Return("2b7f0c1e-8d7a-4a52-b1c4-6f1e0d9a7c33")
		payer := NewSimulatedPayer(5*time.Millisecond, uuider)

		// when
		start := time.Now()
		orderUID, err := payer.Pay(context.Background(), PaymentRequest{AmountInCents: 9600})

		// then
		require.NoError(t, err)
		assert.Equal(t, "ord_2b7f0c1e8d7a4a52b1c46f1e0d9a7c33", orderUID)
		assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	})

	t.Run("Cancelled", func(t *testing.T) {
		// given
		ctrl := gomock.NewController(t)
		payer := NewSimulatedPayer(time.Hour, myuuid.NewMockUUIDer(ctrl))
		c, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err := payer.Pay(c, PaymentRequest{AmountInCents: 9600})

		// then
		assert.True(t, myerrors.IsPaymentError(err))
	})
}
