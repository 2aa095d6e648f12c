package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/cakeshop/lib/mycontext"
	"github.com/MarcGrol/cakeshop/lib/myerrors"
	"github.com/MarcGrol/cakeshop/lib/myhttp"
	"github.com/MarcGrol/cakeshop/lib/mykv"
	"github.com/MarcGrol/cakeshop/lib/mylog"
)

const probeKey = "warmup:probe"

type webService struct {
	logger mylog.Logger
	kv     mykv.KeyValueStore
}

// NewService serves the App Engine warmup request: it touches the key-value store
// so the first visitor does not pay for opening the connection.
func NewService(kv mykv.KeyValueStore) *webService {
	return &webService{
		logger: mylog.New("warmup"),
		kv:     kv,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		_, _, err := s.kv.Get(c, probeKey)
		if err != nil {
			writer.WriteError(c, w, 1, myerrors.NewUnavailableError(err))
			return
		}

		writer.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}
