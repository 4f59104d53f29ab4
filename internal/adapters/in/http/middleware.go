package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"wiggy/internal/core/application/usecases/queries"
	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const userIDKey = "userID"

// requireAuth resolves the bearer token to an existing user and stores the id on the context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "Access denied, you need to login first"})
		}

		userID, err := s.tokens.Verify(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "Invalid token"})
		}

		query, err := queries.NewGetCurrentUserQuery(userID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "Invalid token"})
		}
		if _, err := s.handlers.GetCurrentUser.Handle(c.Request().Context(), query); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return c.JSON(http.StatusUnauthorized, errorResponse{Message: "User not found"})
			}
			return s.fail(c, err, "Failed to authenticate")
		}

		c.Set(userIDKey, userID)
		return next(c)
	}
}

func currentUserID(c echo.Context) kernel.UUID {
	id, _ := c.Get(userIDKey).(kernel.UUID)
	return id
}

// OpenAPIValidator checks requests against doc. Requests that match no operation pass
// through untouched. Authentication is left to requireAuth. The client gets the failing
// field and reason; the full validation error goes to logger.
func OpenAPIValidator(doc *openapi3.T, logger *slog.Logger) (echo.MiddlewareFunc, error) {
	if logger == nil {
		logger = slog.Default()
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				logger.InfoContext(req.Context(), "request rejected by openapi validation",
					"method", req.Method,
					"path", req.URL.Path,
					"error", err.Error(),
				)
				return c.JSON(http.StatusBadRequest, errorResponse{Message: validationMessage(err)})
			}
			return next(c)
		}
	}, nil
}

// validationMessage names the rejected input and the reason without the schema dump
// kin-openapi puts into Error().
func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if !errors.As(err, &requestErr) {
		return "Invalid request"
	}

	subject := "request"
	switch {
	case requestErr.Parameter != nil:
		subject = fmt.Sprintf("parameter %q in %s", requestErr.Parameter.Name, requestErr.Parameter.In)
	case requestErr.RequestBody != nil:
		subject = "request body"
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			return fmt.Sprintf("%s: field /%s: %s", subject, strings.Join(pointer, "/"), schemaErr.Reason)
		}
		return fmt.Sprintf("%s: %s", subject, schemaErr.Reason)
	}
	if requestErr.Reason != "" {
		return fmt.Sprintf("%s: %s", subject, requestErr.Reason)
	}
	return "Invalid request"
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.RequestID != "" {
				attrs = append(attrs, slog.String("request_id", v.RequestID))
			}
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
