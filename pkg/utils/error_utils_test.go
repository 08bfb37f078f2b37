package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRespondWithErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondConflict(c, "Period value already exists.", "duplicate key")

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if !c.IsAborted() {
		t.Fatal("handler chain should be aborted")
	}
	var body struct {
		Error APIError `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Code != ErrCodeConflict || body.Error.Message != "Period value already exists." || body.Error.Details != "duplicate key" {
		t.Fatalf("error = %+v", body.Error)
	}
}
