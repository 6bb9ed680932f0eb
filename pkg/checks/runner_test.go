package checks

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/o-ran-sc/oransdk-go/pkg/httpclient"
	"github.com/o-ran-sc/oransdk-go/pkg/settings"
)

type stubSender struct {
	body    string
	decoded map[string]interface{}
	err     error
	urls    []string
}

func (s *stubSender) SendMessage(_ context.Context, _, _, url string, _ ...httpclient.RequestOption) (string, error) {
	s.urls = append(s.urls, url)
	return s.body, s.err
}

func (s *stubSender) SendMessageJSON(_ context.Context, _, _, url string, _ ...httpclient.RequestOption) (map[string]interface{}, error) {
	s.urls = append(s.urls, url)
	return s.decoded, s.err
}

func testSettings() *settings.Settings {
	return &settings.Settings{
		PolicyBasicAuth: settings.BasicAuth{Username: "healthcheck", Password: "zb!XztG34"},
		DmaapURL:        "http://10.43.36.141:3904",
		A1SimOscURL:     "http://10.43.1.1:8085",
		A1SimStd1URL:    "http://10.43.1.2:3904",
		A1SimStd2URL:    "http://10.43.1.3:3904",
		PolicyPapURL:    "https://10.43.2.1:6969",
		PolicyAPIURL:    "https://10.43.2.2:6969",
		SdncURL:         "http://10.0.0.5:8282",
	}
}

type stubCheck struct {
	id  string
	typ string
	res Result
	err error
}

func (s *stubCheck) ID() string                          { return s.id }
func (s *stubCheck) Type() string                        { return s.typ }
func (s *stubCheck) Run(context.Context) (Result, error) { return s.res, s.err }

func TestRunnerCountsPassesAndJoinsFailures(t *testing.T) {
	runner := NewRunner([]Check{
		&stubCheck{id: "ok1", typ: TypeSDNCStatus, res: Result{Detail: "fine"}},
		&stubCheck{id: "bad", typ: TypeDmaapTopics, err: errors.New("unreachable")},
		&stubCheck{id: "ok2", typ: TypePolicyAPI},
	}, nil)

	passed, err := runner.Run(context.Background())
	if passed != 2 {
		t.Fatalf("expected 2 passes, got %d", passed)
	}
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	if !strings.Contains(err.Error(), "dmaap-topics check[bad]") {
		t.Fatalf("expected failing check named in error, got %v", err)
	}
}

func TestRunnerWithoutChecks(t *testing.T) {
	passed, err := NewRunner(nil, nil).Run(context.Background())
	if passed != 0 || err != nil {
		t.Fatalf("expected idle runner, got passed=%d err=%v", passed, err)
	}
}

func TestBuildAllWithDefaultRegistry(t *testing.T) {
	env := Env{Settings: testSettings(), Sender: &stubSender{}}
	cks, err := BuildAll(DefaultRegistry(), []CheckConfig{
		{ID: "sdnc", Type: TypeSDNCStatus},
		{ID: "bus", Type: TypeDmaapTopics},
		{ID: "ric", Type: TypeA1Sim, A1Sim: &A1SimCheckConfig{Instance: A1InstanceOSC}},
	}, env)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if len(cks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(cks))
	}
}

func TestCheckForUnknownType(t *testing.T) {
	env := Env{Settings: testSettings(), Sender: &stubSender{}}
	if _, err := DefaultRegistry().CheckFor(CheckConfig{ID: "x", Type: "nope"}, env); err == nil {
		t.Fatalf("expected error for unregistered check type")
	}
}

func TestBuildersRejectIncompleteEnv(t *testing.T) {
	if _, err := newSDNCStatusCheck(CheckConfig{ID: "sdnc"}, Env{Settings: testSettings()}); err == nil {
		t.Fatalf("expected error for env without a sender")
	}
	if _, err := newDmaapTopicsCheck(CheckConfig{ID: "bus"}, Env{Sender: &stubSender{}}); err == nil {
		t.Fatalf("expected error for env without settings")
	}
}
