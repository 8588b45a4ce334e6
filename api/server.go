// Package api - Thin HTTP layer over the calculators
// The API is ONLY responsible for: input decoding, calculator orchestration, output serialization.
// The API NEVER performs money or ratio logic.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"event-economics/adapters/checkout"
	"event-economics/adapters/tools"
	"event-economics/core/consumption"
	"event-economics/core/money"
	"event-economics/core/pricing"
	"event-economics/core/staffing"
	"event-economics/core/types"
	"event-economics/internal/config"
	"event-economics/internal/errors"
	"event-economics/internal/logging"
	"event-economics/internal/metrics"
)

// DefaultMaxBodySize bounds request bodies
const DefaultMaxBodySize int64 = 1 << 20

// Server is the API server
type Server struct {
	cfg        *config.Config
	catalog    *pricing.Catalog
	dispatcher *tools.Dispatcher
	checkout   *checkout.Builder
	logger     *zap.Logger
	metrics    *metrics.Metrics
	registry   *prometheus.Registry
	mux        *http.ServeMux
	handler    http.Handler
	version    string
}

// NewServer creates a new API server from a validated configuration
func NewServer(version string, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		cfg:        cfg,
		catalog:    catalog,
		dispatcher: tools.NewDispatcher(cfg.Economics, catalog, logger),
		checkout:   checkout.NewBuilder(cfg.Economics.Pricing, catalog),
		logger:     logger,
		metrics:    metrics.New(registry),
		registry:   registry,
		mux:        http.NewServeMux(),
		version:    version,
	}

	s.registerRoutes()
	s.handler = requestIDMiddleware(s.recoveryMiddleware(s.loggingMiddleware(corsMiddleware(s.mux))))
	return s, nil
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Calculators
	s.mux.HandleFunc("POST /staffing", s.handleStaffing)
	s.mux.HandleFunc("POST /consumption", s.handleConsumption)
	s.mux.HandleFunc("POST /price", s.handlePrice)
	s.mux.HandleFunc("POST /checkout/quote", s.handleCheckoutQuote)

	// Assistant tools
	s.mux.HandleFunc("GET /tools", s.handleListTools)
	s.mux.HandleFunc("POST /tools/{name}", s.handleTool)

	// Supporting endpoints
	s.mux.HandleFunc("GET /addons", s.handleAddons)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	if s.cfg.Server.MetricsEnabled {
		s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
}

// handleStaffing handles POST /staffing
func (s *Server) handleStaffing(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req StaffingRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, "staffing", start, err)
		return
	}

	res, err := staffing.CheckRequest(req, s.cfg.Economics.Staffing)
	if err != nil {
		s.fail(w, r, "staffing", start, err)
		return
	}
	s.metrics.Observe("staffing", start, nil)

	s.writeJSON(w, http.StatusOK, StaffingResponse{RequestID: RequestID(r.Context()), Result: res})
}

// handleConsumption handles POST /consumption
func (s *Server) handleConsumption(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req ConsumptionRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, "consumption", start, err)
		return
	}

	res, err := consumption.EstimateRequest(req, s.cfg.Economics.Consumption)
	if err != nil {
		s.fail(w, r, "consumption", start, err)
		return
	}
	s.metrics.Observe("consumption", start, nil)

	s.writeJSON(w, http.StatusOK, ConsumptionResponse{RequestID: RequestID(r.Context()), Result: res})
}

// handlePrice handles POST /price
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req PriceRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, "price", start, err)
		return
	}

	hourly, err := hourlyRate(req.HourlyRate)
	if err != nil {
		s.fail(w, r, "price", start, err)
		return
	}
	lines, err := s.catalog.Resolve(req.AddonIDs)
	if err != nil {
		s.fail(w, r, "price", start, err)
		return
	}
	rate := s.cfg.Economics.Pricing.PlatformFeeRate
	res, err := pricing.Calculate(types.PriceRequest{
		HourlyRate:      hourly,
		DurationHours:   req.DurationHours,
		GuestCount:      req.GuestCount,
		SelectedAddons:  lines,
		PlatformFeeRate: rate,
	})
	if err != nil {
		s.fail(w, r, "price", start, err)
		return
	}
	s.metrics.Observe("price", start, nil)

	cur := money.Currency(s.cfg.Economics.Pricing.Currency)
	resp := PriceResponse{
		RequestID:       RequestID(r.Context()),
		ServiceSubtotal: res.ServiceSubtotal.Value(cur),
		AddonSubtotal:   res.AddonSubtotal.Value(cur),
		GrandTotal:      res.GrandTotal.Value(cur),
		PlatformFee:     res.PlatformFee.Value(cur),
		BartenderPayout: res.BartenderPayout.Value(cur),
		PlatformFeeRate: rate,
	}
	for _, l := range res.Lines {
		resp.Lines = append(resp.Lines, PriceLine{ID: l.ID, Amount: l.Amount.Value(cur)})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleCheckoutQuote handles POST /checkout/quote
func (s *Server) handleCheckoutQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req CheckoutRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, "checkout", start, err)
		return
	}

	hourly, err := hourlyRate(req.HourlyRate)
	if err != nil {
		s.fail(w, r, "checkout", start, err)
		return
	}
	charge, err := s.checkout.Build(checkout.Order{
		BookingID:          req.BookingID,
		ClientID:           req.ClientID,
		BartenderID:        req.BartenderID,
		DestinationAccount: req.DestinationAccount,
		HourlyRate:         hourly,
		DurationHours:      req.DurationHours,
		GuestCount:         req.GuestCount,
		AddonIDs:           req.AddonIDs,
	})
	if err != nil {
		s.fail(w, r, "checkout", start, err)
		return
	}
	s.metrics.Observe("checkout", start, nil)
	s.metrics.Quoted(int64(charge.Amount))

	s.logger.Info("checkout quoted",
		zap.String("request_id", RequestID(r.Context())),
		zap.String("booking_id", req.BookingID),
		logging.Cents("amount", int64(charge.Amount)),
		logging.Cents("application_fee", int64(charge.ApplicationFee)),
	)

	s.writeJSON(w, http.StatusOK, CheckoutResponse{
		RequestID:      RequestID(r.Context()),
		AmountCents:    int64(charge.Amount),
		FeeCents:       int64(charge.ApplicationFee),
		PayoutCents:    int64(charge.Payout),
		Currency:       charge.Currency,
		Destination:    charge.Destination,
		Description:    charge.Description,
		IdempotencyKey: charge.IdempotencyKey,
		Metadata:       charge.Metadata,
		Total:          charge.Amount.Value(money.Currency(s.cfg.Economics.Pricing.Currency)),
	})
}

// handleListTools handles GET /tools
func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, ToolListResponse{Tools: s.dispatcher.Specs()})
}

// handleTool handles POST /tools/{name}
func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := r.PathValue("name")

	args, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxBodySize))
	if err != nil {
		s.fail(w, r, "tool", start, errors.InvalidInput("body", "could not read request body: %v", err))
		return
	}

	payload, err := s.dispatcher.Dispatch(r.Context(), name, args)
	if err != nil {
		s.fail(w, r, "tool", start, err)
		return
	}
	s.metrics.Observe("tool", start, nil)

	s.writeJSON(w, http.StatusOK, ToolResponse{RequestID: RequestID(r.Context()), Tool: name, Payload: payload})
}

// handleAddons handles GET /addons
func (s *Server) handleAddons(w http.ResponseWriter, r *http.Request) {
	cur := money.Currency(s.cfg.Economics.Pricing.Currency)
	lines := s.catalog.List()
	out := make([]AddonResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, AddonResponse{
			ID:        l.ID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.Value(cur),
			Billing:   string(l.BillingUnit),
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"addons": out})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version": s.version,
		"config":  s.cfg.Version,
	})
}

// hourlyRate converts a major-unit rate from a request body to cents
func hourlyRate(d decimal.Decimal) (money.Cents, error) {
	c, err := money.FromDecimal(d)
	if err != nil {
		return 0, errors.InvalidInput("hourly_rate", "%v", err)
	}
	return c, nil
}

// decode reads a bounded JSON body into v
func (s *Server) decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, DefaultMaxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.InvalidInput("body", "invalid JSON: %v", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.InvalidInput("body", "unexpected data after JSON object")
	}
	return nil
}

// fail records the failed calculation and writes the error response
func (s *Server) fail(w http.ResponseWriter, r *http.Request, operation string, start time.Time, err error) {
	s.metrics.Observe(operation, start, err)

	status, body := errorBody(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", RequestID(r.Context())),
			zap.String("operation", operation),
			zap.Error(err),
		)
	} else {
		s.logger.Debug("request rejected",
			zap.String("request_id", RequestID(r.Context())),
			zap.String("operation", operation),
			zap.Error(err),
		)
	}
	s.writeJSON(w, status, ErrorResponse{RequestID: RequestID(r.Context()), Error: body})
}

// errorBody maps an error to its HTTP status and public body
func errorBody(err error) (int, ErrorBody) {
	e, ok := errors.As(err)
	if !ok {
		return http.StatusInternalServerError, ErrorBody{Code: string(errors.TypeInternal), Message: "internal server error"}
	}
	body := ErrorBody{Code: string(e.Type), Field: e.Field, Message: e.Message}
	switch e.Type {
	case errors.TypeInput:
		return http.StatusBadRequest, body
	case errors.TypeNotFound:
		return http.StatusNotFound, body
	default:
		return http.StatusInternalServerError, body
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ShutdownTimeout bounds graceful shutdown in Run
const ShutdownTimeout = 10 * time.Second

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
// A ctx cancelled before the listener is up still returns promptly.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = s.cfg.Server.Addr
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", zap.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return serveError(err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server", zap.String("address", addr))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.TypeInternal, "http shutdown", err)
	}
	return serveError(<-errCh)
}

func serveError(err error) error {
	if err == nil || err == http.ErrServerClosed {
		return nil
	}
	return errors.Wrap(errors.TypeInternal, "http server", err)
}
