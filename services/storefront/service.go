package storefront

import (
	"context"
	"sync"
	"time"

	"golang.org/x/text/currency"

	"github.com/MarcGrol/cakeshop/lib/myevents"
	"github.com/MarcGrol/cakeshop/lib/mykv"
	"github.com/MarcGrol/cakeshop/lib/mylog"
	"github.com/MarcGrol/cakeshop/lib/mypublisher"
	"github.com/MarcGrol/cakeshop/lib/mytime"
	"github.com/MarcGrol/cakeshop/services/storefront/storefrontevents"
)

const defaultVisitorIdleTimeout = 30 * time.Minute

type Config struct {
	PaymentDelay time.Duration
	Currency     currency.Unit
	// VisitorIdleTimeout is how long an inactive visitor is kept in memory; zero means the default
	VisitorIdleTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		PaymentDelay:       800 * time.Millisecond,
		Currency:           currency.USD,
		VisitorIdleTimeout: defaultVisitorIdleTimeout,
	}
}

type service struct {
	sync.Mutex
	visitors    map[string]*visitorState
	lastSweep   time.Time
	idleTimeout time.Duration
	catalog     Catalog
	kv          mykv.KeyValueStore
	payer       Payer
	publisher   mypublisher.Publisher
	nower       mytime.Nower
	logger      mylog.Logger
	currency    currency.Unit
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(cur currency.Unit, catalog Catalog, kv mykv.KeyValueStore, payer Payer, nower mytime.Nower, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		visitors:    map[string]*visitorState{},
		idleTimeout: defaultVisitorIdleTimeout,
		catalog:     catalog,
		kv:          kv,
		payer:       payer,
		publisher:   pub,
		nower:       nower,
		logger:      logger,
		currency:    cur,
	}
}

// publish is best effort: a failing event transport never fails the operation
func (s *service) publish(c context.Context, visitorUID string, events ...myevents.Event) {
	for _, e := range events {
		err := s.publisher.Publish(c, storefrontevents.TopicName, e)
		if err != nil {
			s.logger.Log(c, visitorUID, mylog.SeverityWarn, "Error publishing %s: %s", e.GetEventTypeName(), err)
		}
	}
}
