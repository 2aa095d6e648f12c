package storefront

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/cakeshop/lib/mycontext"
	"github.com/MarcGrol/cakeshop/lib/myerrors"
	"github.com/MarcGrol/cakeshop/lib/myhttp"
	"github.com/MarcGrol/cakeshop/lib/mykv"
	"github.com/MarcGrol/cakeshop/lib/mylog"
	"github.com/MarcGrol/cakeshop/lib/mypublisher"
	"github.com/MarcGrol/cakeshop/lib/mytime"
	"github.com/MarcGrol/cakeshop/lib/myuuid"
	"github.com/MarcGrol/cakeshop/services/storefront/storefrontevents"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(cfg Config, catalog Catalog, kv mykv.KeyValueStore, nower mytime.Nower, uuider myuuid.UUIDer, pub mypublisher.Publisher) *webService {
	logger := mylog.New("storefront")
	payer := NewSimulatedPayer(cfg.PaymentDelay, uuider)
	service := newService(cfg.Currency, catalog, kv, payer, nower, logger, pub)
	if cfg.VisitorIdleTimeout > 0 {
		service.idleTimeout = cfg.VisitorIdleTimeout
	}
	return &webService{
		logger:  logger,
		service: service,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.service.publisher.CreateTopic(c, storefrontevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", storefrontevents.TopicName, err)
	}

	router.HandleFunc("/api/product", s.searchPage()).Methods("GET")

	visitor := router.PathPrefix("/api/visitor/{visitorUID}").Subrouter()
	visitor.HandleFunc("", s.snapshotPage()).Methods("GET")

	visitor.HandleFunc("/cart", s.addToCartPage()).Methods("POST")
	visitor.HandleFunc("/cart", s.visitorPage(s.service.clearCart)).Methods("DELETE")
	visitor.HandleFunc("/cart/open", s.visitorPage(s.openCart)).Methods("PUT")
	visitor.HandleFunc("/cart/close", s.visitorPage(s.closeCart)).Methods("PUT")
	visitor.HandleFunc("/cart/{productUID}/increment", s.linePage(s.service.incrementLine)).Methods("PUT")
	visitor.HandleFunc("/cart/{productUID}/decrement", s.linePage(s.service.decrementLine)).Methods("PUT")
	visitor.HandleFunc("/cart/{productUID}", s.linePage(s.service.removeLine)).Methods("DELETE")

	visitor.HandleFunc("/auth/open", s.visitorPage(s.openAuth)).Methods("PUT")
	visitor.HandleFunc("/auth/close", s.visitorPage(s.closeAuth)).Methods("PUT")

	visitor.HandleFunc("/session/login", s.loginPage()).Methods("POST")
	visitor.HandleFunc("/session/register", s.registerPage()).Methods("POST")
	visitor.HandleFunc("/session", s.visitorPage(s.service.logout)).Methods("DELETE")

	visitor.HandleFunc("/checkout", s.visitorPage(s.service.beginCheckout)).Methods("POST")
	visitor.HandleFunc("/checkout", s.visitorPage(s.service.leaveCheckout)).Methods("DELETE")
	visitor.HandleFunc("/checkout/pay", s.payPage()).Methods("POST")

	return nil
}

func (s *webService) openCart(c context.Context, visitorUID string) (Snapshot, error) {
	return s.service.setCartOpen(c, visitorUID, true)
}

func (s *webService) closeCart(c context.Context, visitorUID string) (Snapshot, error) {
	return s.service.setCartOpen(c, visitorUID, false)
}

func (s *webService) openAuth(c context.Context, visitorUID string) (Snapshot, error) {
	return s.service.setAuthOpen(c, visitorUID, true)
}

func (s *webService) closeAuth(c context.Context, visitorUID string) (Snapshot, error) {
	return s.service.setAuthOpen(c, visitorUID, false)
}

func (s *webService) searchPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		products := s.service.search(c, r.URL.Query().Get("q"))

		writer.Write(c, w, http.StatusOK, products)
	}
}

func (s *webService) snapshotPage() http.HandlerFunc {
	return s.visitorPage(s.service.getSnapshot)
}

// visitorPage serves a command that only needs the visitor
func (s *webService) visitorPage(command func(c context.Context, visitorUID string) (Snapshot, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		snapshot, err := command(c, mux.Vars(r)["visitorUID"])
		if err != nil {
			writer.WriteError(c, w, 1, err)
			return
		}

		writer.Write(c, w, http.StatusOK, snapshot)
	}
}

// linePage serves a command on a single cart line
func (s *webService) linePage(command func(c context.Context, visitorUID string, productUID string) (Snapshot, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		snapshot, err := command(c, mux.Vars(r)["visitorUID"], mux.Vars(r)["productUID"])
		if err != nil {
			writer.WriteError(c, w, 1, err)
			return
		}

		writer.Write(c, w, http.StatusOK, snapshot)
	}
}

type addToCartRequest struct {
	ProductUID string `form:"productUID"`
	Quantity   *int   `form:"quantity"`
}

func (s *webService) addToCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		req := addToCartRequest{}
		err := myhttp.DecodeForm(r, &req)
		if err != nil {
			writer.WriteError(c, w, 1, err)
			return
		}
		if req.ProductUID == "" {
			writer.WriteError(c, w, 2, myerrors.NewValidationErrorf("productUID required"))
			return
		}
		quantity := 1
		if req.Quantity != nil {
			if *req.Quantity < 1 || *req.Quantity > MaxLineQuantity {
				writer.WriteError(c, w, 3, myerrors.NewValidationErrorf("quantity must be between 1 and %d", MaxLineQuantity))
				return
			}
			quantity = *req.Quantity
		}

		snapshot, err := s.service.addToCart(c, mux.Vars(r)["visitorUID"], req.ProductUID, quantity)
		if err != nil {
			writer.WriteError(c, w, 4, err)
			return
		}

		writer.Write(c, w, http.StatusOK, snapshot)
	}
}

type loginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (s *webService) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		req := loginRequest{}
		err := myhttp.DecodeForm(r, &req)
		if err != nil {
			writer.WriteError(c, w, 1, err)
			return
		}

		snapshot, err := s.service.login(c, mux.Vars(r)["visitorUID"], req.Email, req.Password)
		if err != nil {
			writer.WriteError(c, w, 2, err)
			return
		}

		writer.Write(c, w, http.StatusOK, snapshot)
	}
}

type registerRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (s *webService) registerPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		req := registerRequest{}
		err := myhttp.DecodeForm(r, &req)
		if err != nil {
			writer.WriteError(c, w, 1, err)
			return
		}

		snapshot, err := s.service.register(c, mux.Vars(r)["visitorUID"], req.Name, req.Email, req.Password)
		if err != nil {
			writer.WriteError(c, w, 2, err)
			return
		}

		writer.Write(c, w, http.StatusOK, snapshot)
	}
}

type payRequest struct {
	Address    string `form:"address"`
	City       string `form:"city"`
	Zip        string `form:"zip"`
	NameOnCard string `form:"nameOnCard"`
	CardNumber string `form:"cardNumber"`
	Exp        string `form:"exp"`
	CVC        string `form:"cvc"`
}

func (s *webService) payPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		req := payRequest{}
		err := myhttp.DecodeForm(r, &req)
		if err != nil {
			writer.WriteError(c, w, 1, err)
			return
		}

		receipt, err := s.service.pay(c, mux.Vars(r)["visitorUID"],
			ShippingInfo{
				Address: req.Address,
				City:    req.City,
				Zip:     req.Zip,
			},
			BillingInfo{
				NameOnCard: req.NameOnCard,
				CardNumber: req.CardNumber,
				Exp:        req.Exp,
				CVC:        req.CVC,
			})
		if err != nil {
			writer.WriteError(c, w, 2, err)
			return
		}

		writer.Write(c, w, http.StatusOK, receipt)
	}
}
