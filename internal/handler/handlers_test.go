package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/middleware"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/session"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/zoho"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testLog = logging.New("error")

// testRouter wires the API routes against a session manager, without
// templates or the audit database.
func testRouter(mgr *session.Manager) *gin.Engine {
	r := gin.New()

	authHandler := NewAuthHandler(nil, mgr, testLog)
	r.POST("/api/logout", authHandler.Logout)

	protected := r.Group("/api")
	protected.Use(middleware.SessionRequired(mgr))

	protected.GET("/user", NewUserHandler(testLog).Get)

	meetings := NewMeetingHandler(testLog)
	protected.GET("/meetings", meetings.List)
	protected.GET("/meetings/recordings", meetings.Recordings)

	wd := NewWorkDriveHandler(testLog)
	protected.GET("/workdrive/folder-contents", wd.FolderContents)

	protected.GET("/overview", NewOverviewHandler(testLog).Get)

	return r
}

// loginCookie builds a valid session cookie whose data center points every
// family at upstreamURL.
func loginCookie(t *testing.T, mgr *session.Manager, upstreamURL string) *http.Cookie {
	t.Helper()

	dc := zoho.DataCenter{
		Code:      "test",
		Name:      "Test",
		Accounts:  upstreamURL,
		API:       upstreamURL,
		Meeting:   upstreamURL,
		Learn:     upstreamURL,
		Mail:      upstreamURL,
		WorkDrive: upstreamURL,
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := mgr.Create(c,
		zoho.User{Email: "u@x.test", Name: "U", ID: "u-1"},
		zoho.TokenSet{AccessToken: "tok", ExpiresIn: 3600, TokenType: "Bearer"},
		dc, "")
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func doJSON(r *gin.Engine, method, path string, cookie *http.Cookie) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestProtectedRoutes_NoSession(t *testing.T) {
	r := testRouter(session.NewManager("sec", "enc", false))

	for _, path := range []string{
		"/api/user",
		"/api/meetings",
		"/api/meetings/recordings",
		"/api/workdrive/folder-contents",
		"/api/overview",
	} {
		w, body := doJSON(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.NotEmpty(t, body["error"], path)
	}
}

func TestUser_ReturnsSessionIdentity(t *testing.T) {
	mgr := session.NewManager("sec", "enc", false)
	r := testRouter(mgr)
	cookie := loginCookie(t, mgr, "http://127.0.0.1:0")

	w, body := doJSON(r, http.MethodGet, "/api/user", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	user := body["user"].(map[string]any)
	assert.Equal(t, "u@x.test", user["email"])
	dc := body["dataCenter"].(map[string]any)
	assert.Equal(t, "test", dc["code"])
}

func TestMeetings_UpstreamFailureYieldsEmptyListAnd500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	mgr := session.NewManager("sec", "enc", false)
	r := testRouter(mgr)
	cookie := loginCookie(t, mgr, srv.URL)

	w, body := doJSON(r, http.MethodGet, "/api/meetings", cookie)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, body["error"])

	meetings, ok := body["meetings"].([]any)
	require.True(t, ok, "payload must carry the collection field")
	assert.Empty(t, meetings)
}

func TestMeetings_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/user.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"userDetails":{"zsoid":5}}`))
	})
	mux.HandleFunc("/api/v2/5/sessions.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"session":[{"meetingKey":"k1","topic":"Standup"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mgr := session.NewManager("sec", "enc", false)
	r := testRouter(mgr)
	cookie := loginCookie(t, mgr, srv.URL)

	w, body := doJSON(r, http.MethodGet, "/api/meetings", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	meetings := body["meetings"].([]any)
	require.Len(t, meetings, 1)
	assert.Equal(t, "Standup", meetings[0].(map[string]any)["topic"])
}

func TestFolderContents_MissingFolderID(t *testing.T) {
	mgr := session.NewManager("sec", "enc", false)
	r := testRouter(mgr)
	cookie := loginCookie(t, mgr, "http://127.0.0.1:0")

	w, body := doJSON(r, http.MethodGet, "/api/workdrive/folder-contents", cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "folderId is required", body["error"])
}

func TestLogout_ThenAuthenticatedGetIs401(t *testing.T) {
	mgr := session.NewManager("sec", "enc", false)
	r := testRouter(mgr)
	cookie := loginCookie(t, mgr, "http://127.0.0.1:0")

	// sanity: the cookie works
	w, _ := doJSON(r, http.MethodGet, "/api/user", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	// logout deletes the cookie
	w, _ = doJSON(r, http.MethodPost, "/api/logout", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	cleared := w.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Negative(t, cleared[0].MaxAge)

	// the browser no longer sends a cookie
	w, body := doJSON(r, http.MethodGet, "/api/user", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, body["error"])
}

func TestOverview_ToleratesPartialFailure(t *testing.T) {
	mux := http.NewServeMux()
	// meetings family healthy
	mux.HandleFunc("/api/v2/user.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"userDetails":{"zsoid":5}}`))
	})
	mux.HandleFunc("/api/v2/5/sessions.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"session":[{"meetingKey":"k1","topic":"Standup"}]}`))
	})
	mux.HandleFunc("/meeting/api/v2/5/recordings.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"recordings":[]}`))
	})
	// learn down, mail empty
	mux.HandleFunc("/api/v1/courses", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mgr := session.NewManager("sec", "enc", false)
	r := testRouter(mgr)
	cookie := loginCookie(t, mgr, srv.URL)

	w, body := doJSON(r, http.MethodGet, "/api/overview", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	meetings := body["meetings"].(map[string]any)
	assert.Len(t, meetings["items"].([]any), 1)
	assert.Nil(t, meetings["error"])

	courses := body["courses"].(map[string]any)
	assert.NotEmpty(t, courses["error"])
	assert.Empty(t, courses["items"])

	mail := body["mail"].(map[string]any)
	assert.Nil(t, mail["error"])
	assert.Empty(t, mail["items"])
}
