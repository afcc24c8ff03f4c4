package port

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/aelexs/civiltime/internal/domain"
	"github.com/aelexs/civiltime/internal/errmap"
	"github.com/aelexs/civiltime/internal/locale"
	"github.com/aelexs/civiltime/internal/observability"
	"github.com/aelexs/civiltime/pkg/civiltime"
)

// RequestIDHeader carries the per-request ID on every response.
const RequestIDHeader = "X-Request-Id"

// clockService is the narrow, consumer-defined interface the handler needs.
// *civiltime.Service satisfies it.
type clockService interface {
	Snapshot(ctx context.Context) (civiltime.Snapshot, error)
}

// HTTPHandler serves civil time over HTTP.
type HTTPHandler struct {
	svc    clockService
	logger *slog.Logger
}

// NewHTTPHandler creates an HTTPHandler backed by svc.
func NewHTTPHandler(svc *civiltime.Service, logger *slog.Logger) *HTTPHandler {
	return newHTTPHandler(svc, logger)
}

func newHTTPHandler(svc clockService, logger *slog.Logger) *HTTPHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHandler{svc: svc, logger: logger}
}

// Register mounts the handler's routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.Handle("GET /v1/now", h.wrap("clockd.now", h.now))
	mux.Handle("GET /v1/now/gmt", h.wrap("clockd.now_gmt", h.nowGMT))
	mux.Handle("GET /v1/convert", h.wrap("clockd.convert", h.convert))
	mux.Handle("GET /v1/locales", h.wrap("clockd.locales", h.locales))
}

// NowResponse is the JSON body of /v1/now and /v1/convert.
type NowResponse struct {
	Locale         string `json:"locale"`
	LocaleName     string `json:"locale_name"`
	LocaleFallback bool   `json:"locale_fallback"`
	OffsetSeconds  uint64 `json:"offset_seconds"`

	Year        uint64 `json:"year"`
	Month       uint64 `json:"month"`
	Day         uint64 `json:"day"`
	Hour        uint64 `json:"hour"`
	Minute      uint64 `json:"minute"`
	Second      uint64 `json:"second"`
	Millisecond uint64 `json:"millisecond"`
	Microsecond uint64 `json:"microsecond"`

	Timestamp       uint64 `json:"timestamp"`
	TimestampMillis uint64 `json:"timestamp_millis"`
	TimestampMicros uint64 `json:"timestamp_micros"`

	Time       string `json:"time"`
	Date       string `json:"date"`
	TimeMillis string `json:"time_millis"`
	TimeMicros string `json:"time_micros"`
	GMT        string `json:"gmt"`
}

// LocaleEntry is one element of the /v1/locales body.
type LocaleEntry struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	OffsetSeconds uint64 `json:"offset_seconds"`
	Default       bool   `json:"default,omitempty"`
}

func toNowResponse(sn civiltime.Snapshot) NowResponse {
	dt := sn.Local
	return NowResponse{
		Locale:          sn.Locale.String(),
		LocaleName:      sn.Locale.DisplayName(),
		LocaleFallback:  sn.Fallback,
		OffsetSeconds:   sn.Offset,
		Year:            dt.Year,
		Month:           dt.Month,
		Day:             dt.Day,
		Hour:            dt.Hour,
		Minute:          dt.Minute,
		Second:          dt.Second,
		Millisecond:     dt.Millisecond,
		Microsecond:     dt.Microsecond,
		Timestamp:       sn.Timestamp(),
		TimestampMillis: sn.TimestampMillis(),
		TimestampMicros: sn.TimestampMicros(),
		Time:            dt.String(),
		Date:            dt.DateString(),
		TimeMillis:      dt.MillisString(),
		TimeMicros:      dt.MicrosString(),
		GMT:             sn.GMT(),
	}
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// wrap adds a request ID, a span and error mapping around fn.
func (h *HTTPHandler) wrap(span string, fn handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set(RequestIDHeader, requestID)

		ctx, sp := observability.StartSpan(r.Context(), span,
			attribute.String("request_id", requestID),
			attribute.String("http.route", r.URL.Path),
		)
		defer sp.End()

		err := fn(w, r.WithContext(ctx))
		if err == nil {
			return
		}

		httpErr := errmap.ToHTTPError(err)
		sp.RecordError(err)
		sp.SetStatus(codes.Error, httpErr.Code)

		logger := observability.WithTraceID(ctx, h.logger)
		logger.Error("request failed",
			slog.String("request_id", requestID),
			slog.String("path", r.URL.Path),
			slog.Int("status", httpErr.StatusCode),
			slog.String("error", err.Error()),
		)
		writeJSON(w, httpErr.StatusCode, httpErr)
	})
}

func (h *HTTPHandler) now(w http.ResponseWriter, r *http.Request) error {
	sn, err := h.svc.Snapshot(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, toNowResponse(sn))
	return nil
}

func (h *HTTPHandler) nowGMT(w http.ResponseWriter, r *http.Request) error {
	sn, err := h.svc.Snapshot(r.Context())
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintln(w, sn.GMT())
	return nil
}

func (h *HTTPHandler) convert(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()

	raw := q.Get("seconds")
	if raw == "" {
		return fmt.Errorf("seconds is required: %w", domain.ErrInvalidInput)
	}
	secs, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("seconds %q: %w", raw, domain.ErrInvalidInput)
	}

	var nanos uint64
	if raw := q.Get("nanos"); raw != "" {
		nanos, err = strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return fmt.Errorf("nanos %q: %w", raw, domain.ErrInvalidInput)
		}
	}

	reading := domain.EpochReading{Seconds: secs, Nanos: uint32(nanos)}
	if err := reading.Validate(); err != nil {
		return err
	}
	sn := civiltime.Convert(reading, q.Get("locale"))
	writeJSON(w, http.StatusOK, toNowResponse(sn))
	return nil
}

func (h *HTTPHandler) locales(w http.ResponseWriter, _ *http.Request) error {
	all := locale.All()
	out := make([]LocaleEntry, 0, len(all))
	for _, l := range all {
		out = append(out, LocaleEntry{
			ID:            l.String(),
			DisplayName:   l.DisplayName(),
			OffsetSeconds: l.Offset(),
			Default:       l == locale.Default,
		})
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
