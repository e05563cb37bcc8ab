package barline

import (
	"bytes"
	"context"
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barline/barline/service/event"
	"github.com/barline/barline/service/menu"
)

func TestService_Defaults(t *testing.T) {
	srv := New()
	defer srv.Close()

	require.NotNil(t, srv.Dispatcher())
	cost, ok := srv.Dispatcher().Menu().Cost("tea")
	assert.True(t, ok)
	assert.Equal(t, 1, cost)
}

func TestService_EventBus(t *testing.T) {
	srv := New(WithNotices(&bytes.Buffer{}))
	defer srv.Close()

	received := make(chan event.Kind, 32)
	srv.Events().SetListener(func(e *event.Event) {
		received <- e.Kind
	})

	ctx := context.Background()
	d := srv.Dispatcher()
	_, err := d.CreateQueue(ctx, "A", 1)
	require.NoError(t, err)
	d.Admit(ctx, "A", "tea")
	d.Run(ctx, 1)

	var kinds []event.Kind
	deadline := time.After(time.Second)
	for len(kinds) < 4 {
		select {
		case kind := <-received:
			kinds = append(kinds, kind)
		case <-deadline:
			t.Fatalf("expected 4 events, received %v", kinds)
		}
	}
	assert.Equal(t, []event.Kind{event.KindCreate, event.KindEnqueue, event.KindRun, event.KindFinish}, kinds)
}

func TestService_CustomMenu(t *testing.T) {
	srv := New(WithMenu(menu.Menu{"espresso": 1}))
	defer srv.Close()

	_, ok := srv.Dispatcher().Menu().Cost("tea")
	assert.False(t, ok)
	cost, ok := srv.Dispatcher().Menu().Cost("espresso")
	assert.True(t, ok)
	assert.Equal(t, 1, cost)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	invalid := DefaultConfig()
	invalid.Events.QueueBuffer = -1
	assert.Error(t, invalid.Validate())

	invalid = DefaultConfig()
	invalid.Menu = map[string]int{"espresso": 0}
	assert.Error(t, invalid.Validate())
}

func TestNewFromConfigURL(t *testing.T) {
	dir := t.TempDir()
	URL := path.Join(dir, "config.yaml")
	document := "menu:\n  espresso: 1\n  flat_white: 3\nevents:\n  queueBuffer: 10\n"
	require.NoError(t, os.WriteFile(URL, []byte(document), 0o644))

	srv, err := NewFromConfigURL(context.Background(), URL)
	require.NoError(t, err)
	defer srv.Close()

	cost, ok := srv.Dispatcher().Menu().Cost("flat_white")
	assert.True(t, ok)
	assert.Equal(t, 3, cost)

	// Invalid documents are rejected before any wiring happens.
	bad := path.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("menu:\n  espresso: 0\n"), 0o644))
	_, err = NewFromConfigURL(context.Background(), bad)
	assert.Error(t, err)
}

func TestService_SessionWiring(t *testing.T) {
	out := &bytes.Buffer{}
	srv := New(WithOutput(out), WithNotices(out))
	defer srv.Close()

	sess := srv.Session()
	require.NoError(t, sess.Run(context.Background(), bytes.NewReader([]byte("CREATE A 1\nENQ A cortado\n\n"))))
	assert.Contains(t, out.String(), "Sorry, we don't serve that.")
	assert.Contains(t, out.String(), "time=0 event=reject queue=A reason=unknown_item")
	assert.Contains(t, out.String(), "Break time!")
}
