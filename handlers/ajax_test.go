package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"beforeafter/service"
)

func TestDispatchTool_CacheStatus(t *testing.T) {
	env := setupEnv(t)

	form := url.Values{
		"nonce":       {env.nonce(ActionDebugTools)},
		"tool":        {"cache"},
		"tool_action": {"status"},
	}
	w := env.postForm("/admin/ajax", form, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
}

func TestDispatchTool_UnknownToolIsRejected(t *testing.T) {
	env := setupEnv(t)

	form := url.Values{
		"nonce":       {env.nonce(ActionDebugTools)},
		"tool":        {"reactor"},
		"tool_action": {"meltdown"},
	}
	w := env.postForm("/admin/ajax", form, true)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Success {
		t.Fatalf("expected failure envelope, got %+v", resp)
	}
}

func TestDispatchTool_UnknownActionReturnsFailureEnvelope(t *testing.T) {
	env := setupEnv(t)

	form := url.Values{
		"nonce":       {env.nonce(ActionDebugTools)},
		"tool":        {"cache"},
		"tool_action": {"defragment"},
	}
	w := env.postForm("/admin/ajax", form, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with failure body, got %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Success {
		t.Fatalf("expected failure envelope, got %+v", resp)
	}
	msg, ok := resp.Data.(string)
	if !ok || !strings.Contains(msg, "defragment") {
		t.Fatalf("expected message naming the action, got %v", resp.Data)
	}
}

func TestDispatchTool_MissingNonce(t *testing.T) {
	env := setupEnv(t)

	form := url.Values{
		"tool":        {"cache"},
		"tool_action": {"status"},
	}
	w := env.postForm("/admin/ajax", form, true)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Success {
		t.Fatalf("expected failure envelope, got %+v", resp)
	}
}

func TestDispatchTool_NoSession(t *testing.T) {
	env := setupEnv(t)

	form := url.Values{
		"nonce":       {env.nonce(ActionDebugTools)},
		"tool":        {"cache"},
		"tool_action": {"status"},
	}
	w := env.postForm("/admin/ajax", form, false)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestDispatchTool_MissingToolFields(t *testing.T) {
	env := setupEnv(t)

	form := url.Values{
		"nonce": {env.nonce(ActionDebugTools)},
		"tool":  {"cache"},
	}
	w := env.postForm("/admin/ajax", form, true)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDispatchTool_PayloadReachesHandler(t *testing.T) {
	env := setupEnv(t)

	form := url.Values{
		"nonce":       {env.nonce(ActionDebugTools)},
		"tool":        {"demo"},
		"tool_action": {"seed"},
		"count":       {"2"},
	}
	w := env.postForm("/admin/ajax", form, true)
	resp := decodeResponse(t, w)
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}

	galleries, err := service.GlobalServices.Gallery.Count()
	if err != nil {
		t.Fatalf("count galleries: %v", err)
	}
	if galleries != 2 {
		t.Fatalf("expected 2 seeded galleries, got %d", galleries)
	}
}
