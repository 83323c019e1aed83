package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcart_back_end/internal/config"
	"shopcart_back_end/internal/middleware"
	"shopcart_back_end/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	return NewEngine(Deps{Config: config.Default()})
}

func do(r http.Handler, method, target string, body string, contentType string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

const formType = "application/x-www-form-urlencoded"

func TestEndpointContract(t *testing.T) {
	r := newTestEngine(t)

	cases := []struct {
		method  string
		target  string
		body    string
		status  int
		data    string
		message string
	}{
		{http.MethodGet, "/api/users", "", 200, `[]`, "已 獲取所有使用者"},
		{http.MethodGet, "/api/users/search?q=bob", "", 200, `{"q":"bob"}`, "搜尋使用者成功"},
		{http.MethodGet, "/api/users/7", "", 200, `{"id":"7"}`, "已 獲取 7 的使用者"},
		{http.MethodPost, "/api/users", "account=a&password=b&mail=c", 201, `{}`, "註冊成功"},
		{http.MethodPut, "/api/users/7", "name=x", 200, `{"id":"7"}`, "更新使用者成功"},
		{http.MethodDelete, "/api/users/7", "", 200, `{"id":"7"}`, "刪除使用者成功"},
		{http.MethodPost, "/api/users/login", "account=bob&password=x", 200, `"token"`, "使用者bob登入成功"},
		{http.MethodPost, "/api/users/logout", "", 200, `"token"`, "使用者登出成功"},
		{http.MethodPost, "/api/users/status", "", 200, `"token"`, "檢查登入狀態成功"},

		{http.MethodGet, "/api/pts", "", 200, `[]`, "已 獲取所有產品"},
		{http.MethodGet, "/api/pts/search?key=phone", "", 200, `{"key":"phone"}`, "搜尋產品成功"},
		{http.MethodGet, "/api/pts/123", "", 200, `{"id":"123"}`, "已 獲取 123 的產品"},
		{http.MethodPost, "/api/pts", "name=iPhone&price=25000", 201, `{}`, "新增一個產品成功"},
		{http.MethodPut, "/api/pts/123", "price=1", 200, `{"id":"123"}`, "更新產品成功"},
		{http.MethodDelete, "/api/pts/123", "", 200, `{"id":"123"}`, "刪除產品成功"},
		{http.MethodPost, "/api/pts/login", "account=admin&password=password123", 200, `"token"`, "使用者admin登入成功"},
		{http.MethodPost, "/api/pts/logout", "", 200, `"token"`, "使用者登出成功"},
		{http.MethodPost, "/api/pts/status", "", 200, `"token"`, "檢查登入狀態成功"},

		{http.MethodGet, "/api/cart", "", 200, `[]`, "已獲取購物車內容"},
		{http.MethodPost, "/api/cart", "productId=123&quantity=1", 201, `{}`, "商品新增到購物車成功"},
		{http.MethodPut, "/api/cart/cart123", "quantity=3", 200, `{"id":"cart123"}`, "購物車商品數量更新成功"},
		{http.MethodDelete, "/api/cart/cart123", "", 200, `{"id":"cart123"}`, "商品從購物車移除成功"},
		{http.MethodDelete, "/api/cart/clear", "", 200, `{}`, "購物車清空成功"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			contentType := ""
			if tc.body != "" {
				contentType = formType
			}
			w := do(r, tc.method, tc.target, tc.body, contentType, nil)

			assert.Equal(t, tc.status, w.Code)
			env := decode(t, w)
			assert.Equal(t, "success", env.Status)
			assert.JSONEq(t, tc.data, string(env.Data))
			assert.Equal(t, tc.message, env.Message)
		})
	}
}

func TestCollectionRootsAcceptTrailingSlash(t *testing.T) {
	r := newTestEngine(t)

	cases := []struct {
		method  string
		target  string
		status  int
		message string
	}{
		{http.MethodGet, "/api/users/", 200, "已 獲取所有使用者"},
		{http.MethodGet, "/api/pts/", 200, "已 獲取所有產品"},
		{http.MethodGet, "/api/cart/", 200, "已獲取購物車內容"},
		{http.MethodPost, "/api/users/", 201, "註冊成功"},
		{http.MethodPost, "/api/pts/", 201, "新增一個產品成功"},
		{http.MethodPost, "/api/cart/", 201, "商品新增到購物車成功"},
	}

	for _, tc := range cases {
		w := do(r, tc.method, tc.target, "", "", nil)
		require.Equal(t, tc.status, w.Code, tc.method+" "+tc.target)
		assert.Empty(t, w.Header().Get("Location"), tc.target)
		assert.Equal(t, tc.message, decode(t, w).Message, tc.target)
	}
}

func TestSearchProductsUnicodeKey(t *testing.T) {
	r := newTestEngine(t)

	w := do(r, http.MethodGet, "/api/pts/search?key="+url.QueryEscape("手機"), "", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","data":{"key":"手機"},"message":"搜尋產品成功"}`, w.Body.String())
}

func TestProductLoginScenario(t *testing.T) {
	r := newTestEngine(t)

	w := do(r, http.MethodPost, "/api/pts/login", "account=admin&password=password123", formType, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","data":"token","message":"使用者admin登入成功"}`, w.Body.String())
}

func TestLoginAcceptsJSONAndMultipart(t *testing.T) {
	r := newTestEngine(t)

	w := do(r, http.MethodPost, "/api/pts/login", `{"account":"admin","password":"password123"}`, "application/json", nil)
	assert.Equal(t, "使用者admin登入成功", decode(t, w).Message)

	w = do(r, http.MethodPost, "/api/pts/login", `{"account":123,"password":"x"}`, "application/json", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "使用者123登入成功", decode(t, w).Message)

	w = do(r, http.MethodPost, "/api/users/login", `{"account":true}`, "application/json", nil)
	assert.Equal(t, "使用者true登入成功", decode(t, w).Message)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("account", "alice"))
	require.NoError(t, mw.WriteField("password", "pw"))
	require.NoError(t, mw.Close())

	w = do(r, http.MethodPost, "/api/users/login", buf.String(), mw.FormDataContentType(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "使用者alice登入成功", decode(t, w).Message)
}

func TestClearCartScenario(t *testing.T) {
	r := newTestEngine(t)

	w := do(r, http.MethodDelete, "/api/cart/clear", "", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","data":{},"message":"購物車清空成功"}`, w.Body.String())
}

func TestStatusIgnoresBodyContents(t *testing.T) {
	r := newTestEngine(t)

	bodies := []struct {
		body        string
		contentType string
	}{
		{"", ""},
		{"quantity=-5&productId=", formType},
		{"quantity=abc", formType},
		{`{"quantity":"lots","price":"free"}`, "application/json"},
		{`{not json`, "application/json"},
		{`{}`, "application/json"},
	}

	for _, b := range bodies {
		assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/cart", b.body, b.contentType, nil).Code, b.body)
		assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/pts", b.body, b.contentType, nil).Code, b.body)
		assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/users", b.body, b.contentType, nil).Code, b.body)
		assert.Equal(t, http.StatusOK, do(r, http.MethodPut, "/api/cart/9", b.body, b.contentType, nil).Code, b.body)
		assert.Equal(t, http.StatusOK, do(r, http.MethodPut, "/api/pts/9", b.body, b.contentType, nil).Code, b.body)
		assert.Equal(t, http.StatusOK, do(r, http.MethodPut, "/api/users/9", b.body, b.contentType, nil).Code, b.body)
		assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/pts/login", b.body, b.contentType, nil).Code, b.body)
	}
}

func TestPathIdentifierIsEchoed(t *testing.T) {
	r := newTestEngine(t)

	ids := []string{"1", "does-not-exist", "abc_123", "手機", "0000"}
	for _, id := range ids {
		for _, target := range []string{"/api/pts/", "/api/cart/", "/api/users/"} {
			for _, method := range []string{http.MethodPut, http.MethodDelete} {
				w := do(r, method, target+url.PathEscape(id), "", "", nil)
				require.Equal(t, http.StatusOK, w.Code, method+" "+target+id)
				assert.JSONEq(t, `{"id":`+quote(id)+`}`, string(decode(t, w).Data), method+" "+target+id)
			}
		}
	}
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestRepeatedCallsAreIdempotent(t *testing.T) {
	r := newTestEngine(t)

	calls := []struct{ method, target string }{
		{http.MethodGet, "/api/pts"},
		{http.MethodGet, "/api/pts/42"},
		{http.MethodGet, "/api/pts/search?key=x"},
		{http.MethodGet, "/api/cart"},
		{http.MethodPut, "/api/pts/42"},
		{http.MethodPut, "/api/cart/42"},
		{http.MethodDelete, "/api/pts/42"},
		{http.MethodDelete, "/api/cart/42"},
		{http.MethodDelete, "/api/cart/clear"},
		{http.MethodGet, "/api/users/42"},
	}

	for _, call := range calls {
		first := do(r, call.method, call.target, "", "", nil)
		second := do(r, call.method, call.target, "", "", nil)
		assert.Equal(t, first.Code, second.Code, call.target)
		assert.Equal(t, first.Body.String(), second.Body.String(), call.target)
	}
}

func TestCORSOnAPIRoutes(t *testing.T) {
	r := newTestEngine(t)

	for _, origin := range config.DefaultAllowedOrigins {
		w := do(r, http.MethodGet, "/api/cart", "", "", http.Header{"Origin": {origin}})
		assert.Equal(t, http.StatusOK, w.Code, origin)
		assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"), origin)
	}

	w := do(r, http.MethodGet, "/api/cart", "", "", http.Header{"Origin": {"http://attacker.example"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodGet, "/api/cart", "", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	sameHost := httptest.NewRequest(http.MethodGet, "http://evil.example/api/cart", nil)
	sameHost.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, sameHost)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORSUsesConfiguredAllowList(t *testing.T) {
	cfg := config.Default()
	cfg.AllowedOrigins = []string{"https://shop.example.com"}
	r := NewEngine(Deps{Config: cfg})

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/pts", "", "", http.Header{"Origin": {"https://shop.example.com"}}).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/pts", "", "", http.Header{"Origin": {"http://localhost:3000"}}).Code)
}

func TestHome(t *testing.T) {
	r := newTestEngine(t)

	w := do(r, http.MethodGet, "/", "", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api-docs")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestDocs(t *testing.T) {
	r := newTestEngine(t)

	for _, target := range []string{"/api-docs", "/api-docs/"} {
		w := do(r, http.MethodGet, target, "", "", nil)
		require.Equal(t, http.StatusOK, w.Code, target)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html", target)
		body := w.Body.String()
		assert.Contains(t, body, "<title>購物車 API 文檔</title>", target)
		assert.Contains(t, body, ".swagger-ui .topbar { display: none }", target)
		assert.Contains(t, body, `src="/api-docs/swagger-ui-bundle.js"`, target)
		assert.Contains(t, body, "doc.json", target)
	}

	w := do(r, http.MethodGet, "/api-docs/swagger-ui-bundle.js", "", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api-docs/index.html", "", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")

	w = do(r, http.MethodGet, "/api-docs/doc.json", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Swagger             string                                `json:"swagger"`
		Info                struct{ Title string }                `json:"info"`
		Paths               map[string]map[string]json.RawMessage `json:"paths"`
		SecurityDefinitions map[string]json.RawMessage            `json:"securityDefinitions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "購物車 RESTful API", doc.Info.Title)
	assert.Contains(t, doc.SecurityDefinitions, "BearerAuth")

	documented := map[string][]string{
		"/api/pts":          {"get", "post"},
		"/api/pts/search":   {"get"},
		"/api/pts/{id}":     {"get", "put", "delete"},
		"/api/pts/login":    {"post"},
		"/api/pts/logout":   {"post"},
		"/api/pts/status":   {"post"},
		"/api/cart":         {"get", "post"},
		"/api/cart/{id}":    {"put", "delete"},
		"/api/cart/clear":   {"delete"},
		"/api/users":        {"get", "post"},
		"/api/users/{id}":   {"get", "put", "delete"},
		"/api/users/login":  {"post"},
		"/api/users/search": {"get"},
	}
	for path, methods := range documented {
		require.Contains(t, doc.Paths, path)
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, path)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestEngine(t)

	do(r, http.MethodGet, "/api/pts", "", "", nil)
	w := do(r, http.MethodGet, "/metrics", "", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `shopcart_http_requests_total{method="GET",route="/api/pts",status="200"} 1`)
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestEngine(t)

	w := do(r, http.MethodGet, "/api/cart", "", "", http.Header{middleware.RequestIDHeader: {"req-1"}})

	assert.Equal(t, "req-1", w.Header().Get(middleware.RequestIDHeader))
}

func TestJWTModeGuardsSessionRoutes(t *testing.T) {
	cfg := config.Default()
	cfg.AuthMode = config.AuthModeJWT
	cfg.JWTSecret = "s3cr3t"
	authz, err := middleware.NewAuthorizer(cfg)
	require.NoError(t, err)
	r := NewEngine(Deps{Config: cfg, Authorizer: authz})

	for _, target := range []string{"/api/pts/logout", "/api/pts/status", "/api/users/logout", "/api/users/status"} {
		w := do(r, http.MethodPost, target, "", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
		assert.Equal(t, "fail", decode(t, w).Status, target)
	}

	token, err := utils.GenerateJWT("admin", cfg.JWTSecret, time.Hour)
	require.NoError(t, err)
	w := do(r, http.MethodPost, "/api/pts/logout", "", "", http.Header{"Authorization": {"Bearer " + token}})
	assert.Equal(t, http.StatusOK, w.Code)

	// Les routes non protégées ne regardent pas le jeton.
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/cart", "", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/pts/login", "account=a", formType, nil).Code)
}
