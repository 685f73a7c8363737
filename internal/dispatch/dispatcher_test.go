package dispatch

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"outreach_backend/internal/contractor"
	"outreach_backend/platform/logger"
)

type fakeChannel struct {
	name      string
	available bool
	err       error
	requires  string
	calls     int
}

func (f *fakeChannel) Name() string { return f.name }

func (f *fakeChannel) Available(lead contractor.Lead) bool { return f.available }

func (f *fakeChannel) Send(ctx context.Context, lead contractor.Lead, msg Message) error {
	f.calls++
	return f.err
}

type fakeGatedChannel struct {
	fakeChannel
}

func (f *fakeGatedChannel) Requires() string { return f.requires }

func newTestLead() contractor.Lead {
	return contractor.Lead{Name: "Acme", Email: "a@b.com", Phone: "5551234567"}
}

func TestDispatch_AllChannelsSucceed(t *testing.T) {
	email := &fakeChannel{name: ChannelEmail, available: true}
	sms := &fakeChannel{name: ChannelSMS, available: true}
	voice := &fakeGatedChannel{fakeChannel{name: ChannelVoice, available: true}}
	voice.requires = ChannelSMS

	d := NewDispatcher(false, logger.New("test"), email, sms, voice)
	got := d.Dispatch(context.Background(), newTestLead(), Message{})

	want := []string{ChannelEmail, ChannelSMS, ChannelVoice}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDispatch_VoiceSkippedWhenSMSFails(t *testing.T) {
	email := &fakeChannel{name: ChannelEmail, available: true}
	sms := &fakeChannel{name: ChannelSMS, available: true, err: errors.New("carrier rejected")}
	voice := &fakeGatedChannel{fakeChannel{name: ChannelVoice, available: true}}
	voice.requires = ChannelSMS

	d := NewDispatcher(false, logger.New("test"), email, sms, voice)
	got := d.Dispatch(context.Background(), newTestLead(), Message{})

	want := []string{ChannelEmail}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if voice.calls != 0 {
		t.Fatalf("voice must not be attempted after SMS failure, got %d calls", voice.calls)
	}
}

func TestDispatch_ChannelFailureDoesNotAbortOthers(t *testing.T) {
	email := &fakeChannel{name: ChannelEmail, available: true, err: errors.New("smtp down")}
	sms := &fakeChannel{name: ChannelSMS, available: true}

	d := NewDispatcher(false, logger.New("test"), email, sms)
	got := d.Dispatch(context.Background(), newTestLead(), Message{})

	want := []string{ChannelSMS}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if sms.calls != 1 {
		t.Fatalf("sms must still be attempted after email failure, got %d calls", sms.calls)
	}
}

func TestDispatch_UnavailableChannelsSkipped(t *testing.T) {
	email := &fakeChannel{name: ChannelEmail, available: false}
	sms := &fakeChannel{name: ChannelSMS, available: true}

	d := NewDispatcher(false, logger.New("test"), email, sms)
	got := d.Dispatch(context.Background(), newTestLead(), Message{})

	if email.calls != 0 {
		t.Fatalf("unavailable channel must not be attempted, got %d calls", email.calls)
	}
	want := []string{ChannelSMS}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDispatch_NoChannelsAvailable(t *testing.T) {
	email := &fakeChannel{name: ChannelEmail, available: false}
	sms := &fakeChannel{name: ChannelSMS, available: false}

	d := NewDispatcher(false, logger.New("test"), email, sms)
	got := d.Dispatch(context.Background(), newTestLead(), Message{})

	if len(got) != 0 {
		t.Fatalf("expected no succeeded channels, got %v", got)
	}
}

func TestDispatch_DevelopmentModeSimulatesSuccess(t *testing.T) {
	email := &fakeChannel{name: ChannelEmail, available: true, err: errors.New("must not be called")}
	sms := &fakeChannel{name: ChannelSMS, available: true, err: errors.New("must not be called")}
	voice := &fakeGatedChannel{fakeChannel{name: ChannelVoice, available: true}}
	voice.requires = ChannelSMS

	d := NewDispatcher(true, logger.New("development"), email, sms, voice)
	got := d.Dispatch(context.Background(), newTestLead(), Message{BidLink: "https://example.com/bid"})

	want := []string{ChannelEmail, ChannelSMS, ChannelVoice}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected simulated success on all channels, got %v", got)
	}
	if email.calls != 0 || sms.calls != 0 || voice.calls != 0 {
		t.Fatal("development mode must not hit real channels")
	}
}

func TestBuildSubject_TruncatesLongDetails(t *testing.T) {
	long := "Looking for a contractor to install a 20x40 in-ground pool with attached spa and decking"
	subject := buildSubject(long)

	if len([]rune(subject)) != len("Bid Request: ")+subjectDetailsLimit+len("...") {
		t.Fatalf("unexpected subject length: %q", subject)
	}
}

func TestBuildSMSBody_TruncatesAndAppendsLink(t *testing.T) {
	long := strings.Repeat("pool installation details ", 20)
	body := buildSMSBody(Message{Body: long, BidLink: "https://example.com/bid"})

	wantSuffix := "... Bid details: https://example.com/bid"
	if !strings.HasSuffix(body, wantSuffix) {
		t.Fatalf("expected body to end with %q, got %q", wantSuffix, body)
	}
	if got := len([]rune(body)); got != smsBodyLimit+len([]rune(wantSuffix)) {
		t.Fatalf("unexpected body length %d: %q", got, body)
	}
}

func TestBuildSMSBody_ShortMessageKeptWhole(t *testing.T) {
	body := buildSMSBody(Message{Body: "short note", BidLink: "https://example.com/bid"})

	if !strings.HasPrefix(body, "short note...") {
		t.Fatalf("expected full short body, got %q", body)
	}
}

func TestBuildCallScript_EscapesMarkup(t *testing.T) {
	script := buildCallScript("A&B Builders", "fence <100ft>")

	if !strings.Contains(script, "A&amp;B Builders") {
		t.Fatalf("expected escaped ampersand in %q", script)
	}
	if strings.Contains(script, "<100ft>") {
		t.Fatalf("expected angle brackets escaped in %q", script)
	}
}
