package storefrontevents

const (
	TopicName             = "storefront"
	cartOpenedName        = TopicName + ".cart.opened"
	authRequiredName      = TopicName + ".auth.required"
	sessionStartedName    = TopicName + ".session.started"
	sessionEndedName      = TopicName + ".session.ended"
	checkoutStartedName   = TopicName + ".checkout.started"
	checkoutCancelledName = TopicName + ".checkout.cancelled"
	paymentCompletedName  = TopicName + ".payment.completed"
)

type CartOpened struct {
	VisitorUID string
	ProductUID string
	Quantity   int
}

func (e CartOpened) GetEventTypeName() string {
	return cartOpenedName
}

func (e CartOpened) GetAggregateName() string {
	return e.VisitorUID
}

// AuthRequired is emitted when checkout was requested without an identity
type AuthRequired struct {
	VisitorUID string
}

func (e AuthRequired) GetEventTypeName() string {
	return authRequiredName
}

func (e AuthRequired) GetAggregateName() string {
	return e.VisitorUID
}

type SessionStarted struct {
	VisitorUID string
	Email      string
	Registered bool
}

func (e SessionStarted) GetEventTypeName() string {
	return sessionStartedName
}

func (e SessionStarted) GetAggregateName() string {
	return e.VisitorUID
}

type SessionEnded struct {
	VisitorUID string
}

func (e SessionEnded) GetEventTypeName() string {
	return sessionEndedName
}

func (e SessionEnded) GetAggregateName() string {
	return e.VisitorUID
}

type CheckoutStarted struct {
	VisitorUID    string
	AmountInCents int64
	Currency      string
}

func (e CheckoutStarted) GetEventTypeName() string {
	return checkoutStartedName
}

func (e CheckoutStarted) GetAggregateName() string {
	return e.VisitorUID
}

type CheckoutCancelled struct {
	VisitorUID string
}

func (e CheckoutCancelled) GetEventTypeName() string {
	return checkoutCancelledName
}

func (e CheckoutCancelled) GetAggregateName() string {
	return e.VisitorUID
}

type PaymentCompleted struct {
	VisitorUID    string
	OrderUID      string
	AmountInCents int64
	Currency      string
	Email         string
	Last4         string
}

func (e PaymentCompleted) GetEventTypeName() string {
	return paymentCompletedName
}

func (e PaymentCompleted) GetAggregateName() string {
	return e.VisitorUID
}
