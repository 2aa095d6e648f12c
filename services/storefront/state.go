package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/MarcGrol/cakeshop/lib/mykv"
	"github.com/MarcGrol/cakeshop/lib/mylog"
)

const (
	cartKey  = "cart"
	userKey  = "auth_user"
	tokenKey = "auth_token"
)

// visitorState is the application state of a single visitor. It has a single writer:
// every access happens with the lock held.
type visitorState struct {
	sync.Mutex
	visitorUID string
	cart       *Cart
	session    *Session
	view       View

	// attempt identifies the active checkout; it changes whenever checkout is entered or left
	attempt int
	// cartRevision changes with every cart mutation
	cartRevision int

	lastSeen time.Time
	// payments counts payments in flight; such a visitor is never evicted
	payments int
	// evicted is set once the visitor left the registry; its state must no longer be used
	evicted bool

	cartValue  mykv.Value[[]CartLine]
	userValue  mykv.Value[*Identity]
	tokenValue mykv.Value[string]
}

func visitorKey(visitorUID string, name string) string {
	return visitorUID + ":" + name
}

func (s *service) newVisitorState(c context.Context, visitorUID string) *visitorState {
	v := &visitorState{
		visitorUID: visitorUID,
		view:       View{Page: PageBrowsing},
		cartValue:  mykv.NewValue[[]CartLine](s.kv, visitorKey(visitorUID, cartKey), visitorUID, s.logger),
		userValue:  mykv.NewValue[*Identity](s.kv, visitorKey(visitorUID, userKey), visitorUID, s.logger),
		tokenValue: mykv.NewValue[string](s.kv, visitorKey(visitorUID, tokenKey), visitorUID, s.logger),
	}

	v.cart = NewCart(v.cartValue.Load(c, []CartLine{}))
	v.session = NewSession(s.nower, v.userValue.Load(c, nil), v.tokenValue.Load(c, ""))

	return v
}

// visitor returns the state of the visitor, restoring it from storage on first use
func (s *service) visitor(c context.Context, visitorUID string) *visitorState {
	s.Lock()
	v, found := s.visitors[visitorUID]
	s.Unlock()
	if found {
		return v
	}

	restored := s.newVisitorState(c, visitorUID)

	s.Lock()
	defer s.Unlock()

	v, found = s.visitors[visitorUID]
	if found {
		return v
	}

	now := s.nower.Now()
	if now.Sub(s.lastSweep) >= s.idleTimeout {
		s.evictIdleVisitors(c, now)
		s.lastSweep = now
	}

	restored.lastSeen = now
	s.visitors[visitorUID] = restored

	return restored
}

// lockVisitor returns the locked state of the visitor. The caller must unlock it.
func (s *service) lockVisitor(c context.Context, visitorUID string) *visitorState {
	for {
		v := s.visitor(c, visitorUID)
		v.Lock()
		if !v.evicted {
			v.lastSeen = s.nower.Now()
			return v
		}
		v.Unlock()
	}
}

// evictIdleVisitors drops visitors that have been idle for the idle timeout. Their cart and
// identity are in the key-value store and are restored on the next request. Must be called
// with the service lock held.
func (s *service) evictIdleVisitors(c context.Context, now time.Time) {
	evicted := 0
	for visitorUID, v := range s.visitors {
		if !v.TryLock() {
			continue
		}
		if v.payments == 0 && now.Sub(v.lastSeen) >= s.idleTimeout {
			v.evicted = true
			delete(s.visitors, visitorUID)
			evicted++
		}
		v.Unlock()
	}
	if evicted > 0 {
		s.logger.Log(c, "", mylog.SeverityDebug, "Evicted %d idle visitors, %d remaining", evicted, len(s.visitors))
	}
}

func (v *visitorState) cartChanged(c context.Context) {
	v.cartRevision++
	v.cartValue.Save(c, v.cart.Lines())
}

func (v *visitorState) sessionChanged(c context.Context) {
	identity, found := v.session.Identity()
	if !found {
		v.userValue.Clear(c)
		v.tokenValue.Clear(c)
		return
	}
	v.userValue.Save(c, &identity)
	v.tokenValue.Save(c, v.session.Token())
}

func (v *visitorState) snapshot(s *service) Snapshot {
	snapshot := Snapshot{
		VisitorUID:     v.visitorUID,
		Lines:          v.cart.Lines(),
		Count:          v.cart.Count(),
		TotalInCents:   v.cart.Total(),
		FormattedTotal: NewMoney(v.cart.Total(), s.currency).String(),
		View:           v.view,
	}
	identity, found := v.session.Identity()
	if found {
		snapshot.Identity = &identity
	}
	return snapshot
}
