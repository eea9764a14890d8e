package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cleangod/internal/adapter/http/middleware"
	"cleangod/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var customer = entities.User{ID: "user-1", Name: "Asha", Email: "asha@example.com"}

type stubTokens struct {
	user entities.User
}

func (s stubTokens) Parse(token string) (entities.User, error) {
	if token == "" {
		return entities.User{}, errors.New("missing token")
	}
	return s.user, nil
}

// authAs returns a RequireAuth middleware that accepts any bearer token as user.
func authAs(user entities.User) gin.HandlerFunc {
	return middleware.RequireAuth(stubTokens{user: user})
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func perform(r *gin.Engine, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestStepPath(t *testing.T) {
	cases := map[entities.WizardStep]string{
		entities.StepServices: "/services",
		entities.StepTime:     "/booking/time",
		entities.StepAddress:  "/booking/address",
		entities.StepPayment:  "/booking/payment",
	}
	for step, want := range cases {
		if got := StepPath(step); got != want {
			t.Fatalf("%s: expected %q, got %q", step, want, got)
		}
	}
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"empty body", "", "{}", false},
		{"raw payload", `{"payment_method_id":"pix"}`, `{"payment_method_id":"pix"}`, false},
		{"wrapped payload", `{"mp_payload":{"token":"t"}}`, `{"token":"t"}`, false},
		{"null wrapper", `{"mp_payload":null}`, "", true},
		{"invalid json", `{`, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))

			got, err := readProviderPayload(c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil || string(got) != tc.want {
				t.Fatalf("expected %s, got %s err=%v", tc.want, got, err)
			}
		})
	}
}
