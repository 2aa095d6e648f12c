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

func (s *service) search(c context.Context, query string) []Product {
	s.logger.Log(c, "", mylog.SeverityDebug, "Search products with query '%s'", query)

	return Search(s.catalog, query)
}

func validateVisitor(visitorUID string) error {
	if strings.TrimSpace(visitorUID) == "" {
		return myerrors.NewInvalidInputErrorf("missing visitorUID")
	}
	if strings.Contains(visitorUID, ":") {
		return myerrors.NewInvalidInputErrorf("invalid visitorUID %s", visitorUID)
	}
	return nil
}

// mutate runs f on the locked state of the visitor, then publishes the events f returned
func (s *service) mutate(c context.Context, visitorUID string, f func(v *visitorState) ([]myevents.Event, error)) (Snapshot, error) {
	err := validateVisitor(visitorUID)
	if err != nil {
		return Snapshot{}, err
	}

	v := s.lockVisitor(c, visitorUID)
	events, err := f(v)
	snapshot := v.snapshot(s)
	v.Unlock()

	if err != nil {
		return Snapshot{}, err
	}

	s.publish(c, visitorUID, events...)

	return snapshot, nil
}

func (s *service) getSnapshot(c context.Context, visitorUID string) (Snapshot, error) {
	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		return nil, nil
	})
}

func (s *service) addToCart(c context.Context, visitorUID string, productUID string, quantity int) (Snapshot, error) {
	product, found := findProduct(s.catalog, productUID)
	if !found {
		return Snapshot{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID))
	}

	s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Add %d x %s to cart", quantity, productUID)

	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		v.cart.Add(product, quantity)
		v.cartChanged(c)
		v.view.CartOpen = true

		return []myevents.Event{storefrontevents.CartOpened{
			VisitorUID: visitorUID,
			ProductUID: productUID,
			Quantity:   max(quantity, 1),
		}}, nil
	})
}

func (s *service) incrementLine(c context.Context, visitorUID string, productUID string) (Snapshot, error) {
	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		if v.cart.Increment(productUID) {
			v.cartChanged(c)
		}
		return nil, nil
	})
}

func (s *service) decrementLine(c context.Context, visitorUID string, productUID string) (Snapshot, error) {
	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		if v.cart.Decrement(productUID) {
			v.cartChanged(c)
		}
		return nil, nil
	})
}

func (s *service) removeLine(c context.Context, visitorUID string, productUID string) (Snapshot, error) {
	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		if v.cart.Remove(productUID) {
			v.cartChanged(c)
		}
		return nil, nil
	})
}

func (s *service) clearCart(c context.Context, visitorUID string) (Snapshot, error) {
	s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Clear cart")

	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		v.cart.Clear()
		v.cartChanged(c)
		return nil, nil
	})
}

func (s *service) setCartOpen(c context.Context, visitorUID string, open bool) (Snapshot, error) {
	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		v.view.CartOpen = open
		return nil, nil
	})
}

func (s *service) setAuthOpen(c context.Context, visitorUID string, open bool) (Snapshot, error) {
	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		v.view.AuthOpen = open
		return nil, nil
	})
}

func (s *service) login(c context.Context, visitorUID string, email, password string) (Snapshot, error) {
	s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Login as %s", email)

	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		identity, err := v.session.Login(email, password)
		if err != nil {
			return nil, err
		}
		v.sessionChanged(c)
		v.view.AuthOpen = false

		return []myevents.Event{storefrontevents.SessionStarted{
			VisitorUID: visitorUID,
			Email:      identity.Email,
		}}, nil
	})
}

func (s *service) register(c context.Context, visitorUID string, name, email, password string) (Snapshot, error) {
	s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Register %s", email)

	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		identity, err := v.session.Register(name, email, password)
		if err != nil {
			return nil, err
		}
		v.sessionChanged(c)
		v.view.AuthOpen = false

		return []myevents.Event{storefrontevents.SessionStarted{
			VisitorUID: visitorUID,
			Email:      identity.Email,
			Registered: true,
		}}, nil
	})
}

// logout also closes the cart panel and leaves checkout; the cart itself is kept
func (s *service) logout(c context.Context, visitorUID string) (Snapshot, error) {
	s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Logout")

	return s.mutate(c, visitorUID, func(v *visitorState) ([]myevents.Event, error) {
		v.session.Logout()
		v.sessionChanged(c)
		v.view.CartOpen = false
		v.view.Page = PageBrowsing
		v.attempt++

		return []myevents.Event{storefrontevents.SessionEnded{
			VisitorUID: visitorUID,
		}}, nil
	})
}
