package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/logger"
	"hearth/internal/models"
	"hearth/internal/services"
	"hearth/internal/testutil"
	"hearth/internal/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func doRequest(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := parseBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %v", body)
	}
	code, _ := errObj["code"].(string)
	return code
}

func TestAuthMiddleware(t *testing.T) {
	user := &models.User{Base: models.Base{ID: uuid.New()}, HouseholdID: uuid.New(), Email: "a@example.com"}
	token, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(userIDKey)})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid", "Bearer " + token, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong_scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage_token", "Bearer not.a.token", http.StatusUnauthorized},
		{"extra_parts", "Bearer " + token + " x", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			rec := doRequest(r, http.MethodGet, "/me", headers)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			body := parseBody(t, rec)
			if tt.wantStatus == http.StatusOK {
				if body["user_id"] != user.ID {
					t.Errorf("expected user id %s, got %v", user.ID, body["user_id"])
				}
				return
			}
			if code := errorCode(t, rec); code != "UNAUTHORIZED" {
				t.Errorf("expected UNAUTHORIZED, got %s", code)
			}
		})
	}
}

func TestParseAccessToken(t *testing.T) {
	user := &models.User{Base: models.Base{ID: uuid.New()}, HouseholdID: uuid.New(), Email: "b@example.com"}
	token, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != user.ID || claims.HouseholdID != user.HouseholdID || claims.Subject != user.ID {
		t.Errorf("unexpected claims %+v", claims)
	}

	if _, err := ParseAccessToken(token + "x"); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestAuditAPICall(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	household := testutil.CreateTestHousehold(t, db)
	user := testutil.CreateTestUser(t, db, household.ID)
	audit := services.NewAuditService(db)

	newRouter := func(userID string) *gin.Engine {
		r := gin.New()
		r.Use(RequestLogging())
		r.Use(func(c *gin.Context) {
			if userID != "" {
				c.Set(userIDKey, userID)
			}
			c.Next()
		})
		r.Use(AuditAPICall(audit))
		r.DELETE("/funds/:id", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"call": c.GetString(auditAPICallIDKey)})
		})
		r.POST("/deposits", func(c *gin.Context) {
			c.Header("X-Audit-Call", c.GetString(auditAPICallIDKey))
			_ = c.Error(apperrors.ErrDepositFundNotFound)
		})
		return r
	}

	t.Run("records_and_completes", func(t *testing.T) {
		rec := doRequest(newRouter(user.ID), http.MethodDelete, "/funds/"+uuid.New(), nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
		callID, _ := parseBody(t, rec)["call"].(string)
		if !uuid.IsValid(callID) {
			t.Fatalf("expected audit call id in context, got %q", callID)
		}

		var call models.AuditAPICall
		if err := db.First(&call, "id = ?", callID).Error; err != nil {
			t.Fatalf("expected audit call row: %v", err)
		}
		if call.UserID != user.ID || call.Method != http.MethodDelete || call.Path != "/funds/:id" {
			t.Errorf("unexpected call %+v", call)
		}
		if call.StatusCode != http.StatusNotFound {
			t.Errorf("expected completed status 404, got %d", call.StatusCode)
		}
		if call.RequestID != rec.Header().Get("X-Request-ID") {
			t.Errorf("expected request id %s, got %s", rec.Header().Get("X-Request-ID"), call.RequestID)
		}
	})

	t.Run("completes_with_error_status", func(t *testing.T) {
		rec := doRequest(newRouter(user.ID), http.MethodPost, "/deposits", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "DEPOSIT_FUND_NOT_FOUND" {
			t.Errorf("expected DEPOSIT_FUND_NOT_FOUND, got %s", code)
		}

		var call models.AuditAPICall
		if err := db.First(&call, "id = ?", rec.Header().Get("X-Audit-Call")).Error; err != nil {
			t.Fatalf("expected audit call row: %v", err)
		}
		if call.StatusCode != http.StatusNotFound {
			t.Errorf("expected completed status 404, got %d", call.StatusCode)
		}
	})

	t.Run("no_user", func(t *testing.T) {
		rec := doRequest(newRouter(""), http.MethodDelete, "/funds/x", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("bad_user_id", func(t *testing.T) {
		rec := doRequest(newRouter("nope"), http.MethodDelete, "/funds/x", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "MISSING_AUDIT_CALL" {
			t.Errorf("expected MISSING_AUDIT_CALL, got %s", code)
		}
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperrors.ErrFundNotFound) })
	r.GET("/wrapped", func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrBudgetExists, errors.New("duplicate key")))
	})
	r.GET("/plain", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })

	tests := []struct {
		path       string
		wantStatus int
		wantCode   string
	}{
		{"/app", http.StatusNotFound, "FUND_NOT_FOUND"},
		{"/wrapped", http.StatusUnprocessableEntity, "BUDGET_EXISTS"},
		{"/plain", http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(strings.TrimPrefix(tt.path, "/"), func(t *testing.T) {
			rec := doRequest(r, http.MethodGet, tt.path, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if code := errorCode(t, rec); code != tt.wantCode {
				t.Errorf("expected %s, got %s", tt.wantCode, code)
			}
			if strings.Contains(rec.Body.String(), "duplicate key") {
				t.Error("internal error leaked to the client")
			}
		})
	}
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	incoming := uuid.New()
	rec := doRequest(r, http.MethodGet, "/ping", map[string]string{"X-Request-ID": incoming})
	if got := rec.Header().Get("X-Request-ID"); got != incoming {
		t.Errorf("expected incoming request id to be kept, got %s", got)
	}

	rec = doRequest(r, http.MethodGet, "/ping", map[string]string{"X-Request-ID": "<script>"})
	if got := rec.Header().Get("X-Request-ID"); !uuid.IsValid(got) || got == "<script>" {
		t.Errorf("expected a fresh request id, got %s", got)
	}
}

func TestMetricsAuthMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		configuredKey string
		requestKey    string
		wantStatus    int
		wantErrorCode string
	}{
		{"valid_api_key", "secret-metrics-key", "secret-metrics-key", http.StatusOK, ""},
		{"invalid_api_key", "secret-metrics-key", "wrong-key", http.StatusUnauthorized, "INVALID_API_KEY"},
		{"missing_api_key", "secret-metrics-key", "", http.StatusUnauthorized, "INVALID_API_KEY"},
		{"empty_configured_key", "", "any-key", http.StatusServiceUnavailable, "METRICS_NOT_CONFIGURED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(MetricsAuthMiddleware(tt.configuredKey))
			r.GET("/metrics", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

			headers := map[string]string{}
			if tt.requestKey != "" {
				headers["X-API-Key"] = tt.requestKey
			}
			rec := doRequest(r, http.MethodGet, "/metrics", headers)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantErrorCode != "" {
				if code := errorCode(t, rec); code != tt.wantErrorCode {
					t.Errorf("expected error code %s, got %s", tt.wantErrorCode, code)
				}
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", m.Handler())

	doRequest(r, http.MethodGet, "/ping", nil)
	doRequest(r, http.MethodGet, "/ping", nil)
	doRequest(r, http.MethodGet, "/nowhere", nil)

	rec := doRequest(r, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`hearth_http_requests_total{method="GET",route="/ping",status="200"} 2`,
		`hearth_http_requests_total{method="GET",route="unmatched",status="404"} 1`,
		`hearth_http_request_duration_seconds_count{method="GET",route="/ping"} 2`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected metrics output to contain %q", want)
		}
	}
}
