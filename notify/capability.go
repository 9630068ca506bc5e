package notify

import (
	"sync"

	"github.com/gregdel/pushover"

	"github.com/jask/benchkit/glyph"
	"github.com/jask/benchkit/internal/config"
	"github.com/jask/benchkit/internal/diag"
)

// Pusher is the push-notification transport contract. Retry, delivery
// confirmation and auth belong to the transport.
type Pusher interface {
	Send(message, title string) error
}

// Capabilities holds the resolved optional-dependency handles. Resolution
// happens once; the handles never change for the life of the process.
type Capabilities struct {
	Pusher Pusher
	Sub    glyph.Substituter
}

// Resolve binds a live or stub handle for each optional capability.
// A capability that cannot be acquired downgrades to a stub with a single
// diagnostic; resolution itself never fails.
func Resolve(cfg config.Config, log *diag.Log) Capabilities {
	if log == nil {
		log = diag.Default()
	}

	caps := Capabilities{}

	if cfg.Push.Token != "" && cfg.Push.UserKey != "" {
		caps.Pusher = &pushoverPusher{
			app:       pushover.New(cfg.Push.Token),
			recipient: pushover.NewRecipient(cfg.Push.UserKey),
		}
	} else {
		log.MissingCapability("pushover",
			"push notifications disabled; set push.token and push.user_key in the benchkit config to enable them")
		caps.Pusher = stubPusher{}
	}

	if cfg.Glyph.Emoji {
		caps.Sub = glyph.Expander{}
	} else {
		log.MissingCapability("emoji",
			"alias expansion disabled; messages will not expand :alias: tokens (set glyph.emoji = true to enable)")
		caps.Sub = glyph.Identity{}
	}

	return caps
}

// pushoverPusher is the live Pusher bound to configured credentials.
type pushoverPusher struct {
	app       *pushover.Pushover
	recipient *pushover.Recipient
}

func (p *pushoverPusher) Send(message, title string) error {
	msg := pushover.NewMessageWithTitle(message, title)
	_, err := p.app.SendMessage(msg, p.recipient)
	return err
}

// stubPusher silently drops messages. The missing-capability diagnostic
// was emitted at resolution time.
type stubPusher struct{}

func (stubPusher) Send(message, title string) error { return nil }

var (
	defaultOnce     sync.Once
	defaultNotifier *Notifier
)

// Default returns the package notifier, resolving capabilities from the
// ambient configuration on first use.
func Default() *Notifier {
	defaultOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			diag.Default().Warnf("load config: %v", err)
		}
		defaultNotifier = New(Resolve(cfg, diag.Default()))
	})
	return defaultNotifier
}
