package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/text/currency"

	"github.com/MarcGrol/cakeshop/lib/mykv"
	"github.com/MarcGrol/cakeshop/lib/mypublisher"
	"github.com/MarcGrol/cakeshop/lib/mypubsub"
	"github.com/MarcGrol/cakeshop/lib/mytime"
	"github.com/MarcGrol/cakeshop/lib/myuuid"
	"github.com/MarcGrol/cakeshop/services/storefront"
	"github.com/MarcGrol/cakeshop/services/warmup"
)

func main() {
	c := context.Background()

	cfg, err := configFromEnvironment()
	if err != nil {
		log.Fatalf("Error reading configuration: %s", err)
	}

	router := mux.NewRouter()

	kv, kvCleanup, err := mykv.New(c)
	if err != nil {
		log.Fatalf("Error creating key-value store: %s", err)
	}
	defer kvCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	nower := mytime.RealNower{}
	publisher := mypublisher.New(pubsub, nower)

	storefrontService := storefront.NewWebService(cfg,
		storefront.NewStaticCatalog(storefront.DefaultProducts()),
		kv,
		nower,
		myuuid.RealUUIDer{},
		publisher)
	err = storefrontService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering storefront endpoints: %s", err)
	}

	warmup.NewService(kv).RegisterEndpoints(c, router)

	startWebServerBlocking(router)
}

func configFromEnvironment() (storefront.Config, error) {
	cfg := storefront.DefaultConfig()

	if delay := os.Getenv("PAYMENT_DELAY"); delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			return cfg, fmt.Errorf("invalid PAYMENT_DELAY %s: %s", delay, err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("PAYMENT_DELAY must be positive, got %s", delay)
		}
		cfg.PaymentDelay = d
	}

	if timeout := os.Getenv("VISITOR_IDLE_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return cfg, fmt.Errorf("invalid VISITOR_IDLE_TIMEOUT %s: %s", timeout, err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("VISITOR_IDLE_TIMEOUT must be positive, got %s", timeout)
		}
		cfg.VisitorIdleTimeout = d
	}

	if code := os.Getenv("SHOP_CURRENCY"); code != "" {
		cur, err := currency.ParseISO(code)
		if err != nil {
			return cfg, fmt.Errorf("invalid SHOP_CURRENCY %s: %s", code, err)
		}
		cfg.Currency = cur
	}

	return cfg, nil
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s/api/product)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
