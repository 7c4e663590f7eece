package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/activity"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
)

const maxLoggedBody = 64 << 10

type activityDetails struct {
	Method    string          `json:"method"`
	Path      string          `json:"path"`
	RequestID string          `json:"request_id,omitempty"`
	Body      json.RawMessage `json:"body,omitempty"`
}

// LogActivity appends an entry to the audit trail for every request that
// reaches it. The write happens on its own goroutine and never affects the
// response.
func LogActivity(action, entityType string, recorder activity.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := readBody(r)

			entry := activity.Log{
				Action:     action,
				EntityType: &entityType,
				EntityID:   urlID(r),
				IPAddress:  clientIP(r),
			}
			if principal, err := user.PrincipalFromContext(r.Context()); err == nil {
				entry.UserID = &principal.UserID
			}

			details, err := json.Marshal(activityDetails{
				Method:    r.Method,
				Path:      r.URL.Path,
				RequestID: chiMiddleware.GetReqID(r.Context()),
				Body:      redact(body),
			})
			if err == nil {
				s := string(details)
				entry.Details = &s
			}

			ctx := context.WithoutCancel(r.Context())
			go func() {
				if err := recorder.Record(ctx, entry); err != nil {
					slog.Error("failed to record activity", "action", action, "error", err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// readBody reads at most maxLoggedBody bytes for the log and hands the
// handler a reader that replays them before the rest of the stream. Larger
// bodies are not logged; the handler applies its own size limit.
func readBody(r *http.Request) []byte {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	prefix, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody+1))
	r.Body = replayBody{
		Reader: io.MultiReader(bytes.NewReader(prefix), r.Body),
		Closer: r.Body,
	}
	if err != nil || len(prefix) > maxLoggedBody {
		return nil
	}
	return prefix
}

type replayBody struct {
	io.Reader
	io.Closer
}

// redact drops password fields from JSON object bodies. Anything that is
// not a JSON object is left out of the log.
func redact(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}
	for key := range fields {
		if strings.Contains(strings.ToLower(key), "password") {
			delete(fields, key)
		}
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return out
}

func urlID(r *http.Request) *int64 {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func clientIP(r *http.Request) *string {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	if ip == "" {
		return nil
	}
	return &ip
}
