package checks

import (
	"context"
	"strings"
	"testing"
)

const apidocPage = `<!DOCTYPE html>
<html>
<head><title>RestConf Documentation</title></head>
<body><div id="explorer"></div></body>
</html>`

func TestPageTitle(t *testing.T) {
	if got := pageTitle(apidocPage); got != "RestConf Documentation" {
		t.Fatalf("expected page title, got %q", got)
	}
	if got := pageTitle("plain text, no markup"); got != "" {
		t.Fatalf("expected empty title for body without one, got %q", got)
	}
}

func TestSDNCStatusCheckReportsPageTitle(t *testing.T) {
	sender := &stubSender{body: apidocPage}
	check, err := newSDNCStatusCheck(CheckConfig{ID: "sdnc"}, Env{Settings: testSettings(), Sender: sender})
	if err != nil {
		t.Fatalf("newSDNCStatusCheck: %v", err)
	}

	res, err := check.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(res.Detail, "RestConf Documentation") {
		t.Fatalf("expected page title in detail, got %q", res.Detail)
	}
	if len(sender.urls) != 1 || sender.urls[0] != "http://10.0.0.5:8282/apidoc/explorer/" {
		t.Fatalf("unexpected request urls %v", sender.urls)
	}
}

func TestSDNCConnectivityCheckUsesEnvNodeDefaults(t *testing.T) {
	sender := &stubSender{decoded: map[string]interface{}{}}
	env := Env{Settings: testSettings(), Sender: sender, ODUNode: "o-du-1122", ORUNode: "o-ru-11221"}

	check, err := newSDNCConnectivityCheck(CheckConfig{ID: "conn"}, env)
	if err != nil {
		t.Fatalf("newSDNCConnectivityCheck: %v", err)
	}
	if _, err := check.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	url := sender.urls[0]
	if !strings.Contains(url, "node=o-du-1122") || !strings.Contains(url, "du-to-ru-connection=o-ru-11221") {
		t.Fatalf("expected default nodes in url, got %q", url)
	}
}

func TestSDNCConnectivityCheckConfigOverridesNodes(t *testing.T) {
	sender := &stubSender{decoded: map[string]interface{}{}}
	env := Env{Settings: testSettings(), Sender: sender, ODUNode: "o-du-1122", ORUNode: "o-ru-11221"}
	cfg := CheckConfig{ID: "conn", SDNC: &SDNCCheckConfig{ODUNode: "o-du-9", ORUNode: "o-ru-9"}}

	check, err := newSDNCConnectivityCheck(cfg, env)
	if err != nil {
		t.Fatalf("newSDNCConnectivityCheck: %v", err)
	}
	if _, err := check.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	url := sender.urls[0]
	if !strings.Contains(url, "node=o-du-9") || !strings.Contains(url, "du-to-ru-connection=o-ru-9") {
		t.Fatalf("expected overridden nodes in url, got %q", url)
	}
}

func TestSDNCConnectivityCheckRequiresNodes(t *testing.T) {
	env := Env{Settings: testSettings(), Sender: &stubSender{}}
	if _, err := newSDNCConnectivityCheck(CheckConfig{ID: "conn"}, env); err == nil {
		t.Fatalf("expected error without node ids anywhere")
	}
}
