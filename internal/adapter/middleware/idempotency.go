package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	HeaderRequestID = "Ax-Request-Id"
	HeaderRequestAt = "Ax-Request-At"

	// How long a request may hold its in-progress marker before another attempt can take over.
	provisionalLockTTL = 60 * time.Second
	// Allowed client/server clock skew for Ax-Request-At.
	maxClockSkew = 10 * time.Minute
	storeTimeout = 2 * time.Second
)

type idempEntry struct {
	InProgress  bool      `json:"in_progress"`
	Code        int       `json:"code"`
	Body        []byte    `json:"body"`
	BodySHA256  string    `json:"body_sha256"`
	RequestID   string    `json:"request_id"`
	RequestAtMS int64     `json:"request_at_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// respRecorder tees the response so it can be replayed later.
type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// IdempotencyMiddleware records the first response of a mutating request in
// Redis under method + route + user id + request id and replays it for
// retries carrying the same body. It must run after Authenticate.
//
// Ax-Request-At is epoch seconds/ms or RFC3339 with a zone.
// Server errors (5xx) are not recorded so the client can retry them.
func IdempotencyMiddleware(rdb *redis.Client, ttl time.Duration, log *slog.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			reqID := strings.TrimSpace(req.Header.Get(HeaderRequestID))
			if reqID == "" {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing " + HeaderRequestID})
			}
			if !validReqID(reqID) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid " + HeaderRequestID + " format"})
			}
			reqAt, err := parseAxRequestAt(req.Header.Get(HeaderRequestAt))
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			now := nowUTC()
			if reqAt.Before(now.Add(-maxClockSkew)) || reqAt.After(now.Add(maxClockSkew)) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": HeaderRequestAt + " too skewed"})
			}

			p, authed := PrincipalFrom(c)
			if !authed {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			var body []byte
			if req.Body != nil {
				if body, err = io.ReadAll(req.Body); err != nil {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable body"})
				}
			}
			req.Body = io.NopCloser(bytes.NewReader(body))
			bhash := bodyHash(body)

			key := buildKey(req.Method, c.Path(), p.UserID, reqID)
			ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
			defer cancel()

			acquired, err := provisionalSet(ctx, rdb, key, idempEntry{
				InProgress:  true,
				BodySHA256:  bhash,
				RequestID:   reqID,
				RequestAtMS: reqAt.UnixMilli(),
				CreatedAt:   nowUTC(),
			})
			if err != nil {
				log.Error("idempotency store unavailable", "key", key, "error", err)
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "idempotency store unavailable"})
			}
			if !acquired {
				cur, errLoad := loadEntry(ctx, rdb, key)
				if errLoad != nil {
					log.Warn("idempotency entry load failed", "key", key, "error", errLoad)
				}
				if cur.BodySHA256 != "" && cur.BodySHA256 != bhash {
					return c.JSON(http.StatusConflict, map[string]string{"error": HeaderRequestID + " reused with different body"})
				}
				if !cur.InProgress && cur.Code != 0 && len(cur.Body) > 0 {
					c.Response().Header().Set("Ax-Idempotent-Replay", "true")
					return c.Blob(cur.Code, echo.MIMEApplicationJSON, cur.Body)
				}
				return c.JSON(http.StatusConflict, map[string]string{"error": "request is already in progress"})
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			if rec.code >= http.StatusInternalServerError {
				if err := rdb.Del(context.Background(), key).Err(); err != nil {
					log.Warn("idempotency marker release failed", "key", key, "error", err)
				}
				return nil
			}
			final := idempEntry{
				Code:        rec.code,
				Body:        rec.buf.Bytes(),
				BodySHA256:  bhash,
				RequestID:   reqID,
				RequestAtMS: reqAt.UnixMilli(),
				CreatedAt:   nowUTC(),
			}
			if err := saveFinal(context.Background(), rdb, key, final, ttl); err != nil {
				log.Warn("idempotency entry save failed", "key", key, "error", err)
			}
			return nil
		}
	}
}
