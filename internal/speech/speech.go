// Package speech defines the text-to-speech collaborator contract. The core
// never synthesizes audio itself; clients plug in whatever on-device engine
// they have.
package speech

import "sync"

// Speaker requests speech synthesis for a text in the given BCP 47 language
// tag ("en-US", "ru-RU"). Implementations must cancel any in-flight
// utterance before starting a new one.
type Speaker interface {
	Speak(text, lang string) error
}

// Nop is a Speaker that silently does nothing, for deployments without an
// audio device.
type Nop struct{}

func (Nop) Speak(text, lang string) error { return nil }

// Utterance is one recorded Speak call.
type Utterance struct {
	Text string
	Lang string
}

// Recorder is a Speaker for tests: it records utterances and models
// cancel-before-speak by only keeping the latest as Current.
type Recorder struct {
	mu      sync.Mutex
	All     []Utterance
	Current *Utterance
}

func (r *Recorder) Speak(text, lang string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := Utterance{Text: text, Lang: lang}
	r.All = append(r.All, u)
	r.Current = &u
	return nil
}
